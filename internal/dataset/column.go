package dataset

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Alp4ka/tableview"
)

// ColumnKind is the value type of a column as written in dataset files.
type ColumnKind string

const (
	KindString ColumnKind = "string"
	KindNumber ColumnKind = "number"
	KindTime   ColumnKind = "time"
)

const defaultTimeLayout = time.DateOnly

// Column describes one column of a dataset.
type Column struct {
	Key              string     `yaml:"key"                         json:"key"`
	Title            string     `yaml:"title"                       json:"title"`
	Kind             ColumnKind `yaml:"kind"                        json:"kind"`
	DefaultDirection string     `yaml:"default_direction,omitempty" json:"default_direction,omitempty"`
	// Decimals is the number of fraction digits shown for number cells.
	Decimals int `yaml:"decimals,omitempty" json:"decimals,omitempty"`
	// Unit is appended to formatted number cells.
	Unit string `yaml:"unit,omitempty" json:"unit,omitempty"`
	// Layout is the time layout used to parse and show time cells.
	Layout string `yaml:"layout,omitempty" json:"layout,omitempty"`
}

// Header returns the column title, or the key when no title is set.
func (c Column) Header() string {
	if c.Title != "" {
		return c.Title
	}

	return c.Key
}

// Format renders the cell of r for display. Numbers are grouped and rounded
// according to the printer's language.
func (c Column) Format(p *message.Printer, r Record) string {
	switch c.Kind {
	case KindNumber:
		text := p.Sprintf(fmt.Sprintf("%%.%df", max(c.Decimals, 0)), r.Number(c.Key))
		switch c.Unit {
		case "":
			return text
		case "%":
			return text + c.Unit
		default:
			return text + " " + c.Unit
		}
	case KindTime:
		return r.Time(c.Key).Format(c.layout())
	default:
		return r.String(c.Key)
	}
}

func (c Column) layout() string {
	if c.Layout != "" {
		return c.Layout
	}

	return defaultTimeLayout
}

func (c Column) direction() (tableview.Direction, error) {
	if c.DefaultDirection == "" {
		return tableview.DirectionASC, nil
	}

	return tableview.ParseDirection(c.DefaultDirection)
}

func (c Column) validate() error {
	if c.Key == idKey {
		return fmt.Errorf("column key %q is reserved", idKey)
	}

	switch c.Kind {
	case KindString, KindNumber, KindTime:
	default:
		return fmt.Errorf("column %q: unknown kind %q", c.Key, c.Kind)
	}

	if c.Decimals < 0 {
		return fmt.Errorf("column %q: decimals must not be negative", c.Key)
	}

	if _, err := c.direction(); err != nil {
		return fmt.Errorf("column %q: %w", c.Key, err)
	}

	return nil
}

// field builds the typed accessor of the column.
func (c Column) field(locale language.Tag) tableview.Field[Record] {
	direction, _ := c.direction()
	key := c.Key
	opts := []tableview.FieldOption{
		tableview.WithDefaultDirection(direction),
		tableview.WithLocale(locale),
	}

	switch c.Kind {
	case KindNumber:
		return tableview.NumberField(key, func(r Record) float64 { return r.Number(key) }, opts...)
	case KindTime:
		return tableview.TimeField(key, func(r Record) time.Time { return r.Time(key) }, opts...)
	default:
		return tableview.StringField(key, func(r Record) string { return r.String(key) }, opts...)
	}
}

// decode converts a raw YAML value into the cell type of the column.
func (c Column) decode(raw any) (any, error) {
	switch c.Kind {
	case KindString:
		if v, ok := raw.(string); ok {
			return v, nil
		}
	case KindNumber:
		switch v := raw.(type) {
		case int:
			return float64(v), nil
		case int64:
			return float64(v), nil
		case uint64:
			return float64(v), nil
		case float64:
			return v, nil
		}
	case KindTime:
		switch v := raw.(type) {
		case time.Time:
			return v, nil
		case string:
			for _, layout := range []string{c.layout(), time.RFC3339, time.DateOnly} {
				if t, err := time.Parse(layout, v); err == nil {
					return t, nil
				}
			}
		}
	}

	return nil, fmt.Errorf("%w: column %q is %s, got %T %v", ErrCellType, c.Key, c.Kind, raw, raw)
}
