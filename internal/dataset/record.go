package dataset

import (
	"time"
)

// Record is one row of a dataset. Cells hold string, float64 or time.Time
// values according to the kind of their column.
type Record struct {
	id    string
	cells map[string]any
}

func (r Record) ID() string {
	return r.id
}

// String returns the value of a string cell.
func (r Record) String(key string) string {
	v, _ := r.cells[key].(string)
	return v
}

// Number returns the value of a number cell.
func (r Record) Number(key string) float64 {
	v, _ := r.cells[key].(float64)
	return v
}

// Time returns the value of a time cell.
func (r Record) Time(key string) time.Time {
	v, _ := r.cells[key].(time.Time)
	return v
}

// Value returns the raw cell value.
func (r Record) Value(key string) (any, bool) {
	v, ok := r.cells[key]
	return v, ok
}

// Map returns the record as a plain map including the "id" key.
func (r Record) Map() map[string]any {
	ret := make(map[string]any, len(r.cells)+1)
	for key, v := range r.cells {
		ret[key] = v
	}
	ret[idKey] = r.id

	return ret
}
