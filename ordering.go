package tableview

import (
	"fmt"
	"math"
	"strings"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// Direction defines the sort direction for the requested dataset.
type Direction string

const (
	DirectionASC  Direction = "ASC"
	DirectionDESC Direction = "DESC"
)

func (o Direction) Valid() bool {
	return o == DirectionASC || o == DirectionDESC
}

// Flip returns the opposite direction.
func (o Direction) Flip() Direction {
	switch o {
	case DirectionASC:
		return DirectionDESC
	case DirectionDESC:
		return DirectionASC
	default:
		panic(fmt.Errorf("cannot flip direction '%s'", o))
	}
}

// sign maps the direction to the multiplier applied to a comparator result.
func (o Direction) sign() int {
	switch o {
	case DirectionASC:
		return 1
	case DirectionDESC:
		return -1
	default:
		panic(fmt.Errorf("cannot map direction '%s' to comparator sign", o))
	}
}

// Short returns the lowercase form used in sort expressions.
func (o Direction) Short() string {
	return strings.ToLower(string(o))
}

// ParseDirection accepts "asc" or "desc" in any case.
func ParseDirection(s string) (Direction, error) {
	d := Direction(strings.ToUpper(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("%w: got %q", ErrInvalidDirection, s)
	}

	return d, nil
}

type (
	Orderings []OrderBy
	OrderBy   struct {
		Column    string
		Direction Direction
	}

	// SortSpec names the active field and direction of an in-memory sort.
	SortSpec struct {
		Field     string    `json:"field"     yaml:"field"`
		Direction Direction `json:"direction" yaml:"direction"`
	}
)

var _availableKeySymbols = append([]rune("_.'`\""), lo.AlphanumericCharset...)

// validKey guards field keys and column names against anything other than
// identifier characters.
func validKey(key string) bool {
	return key != "" && lo.Every(_availableKeySymbols, []rune(key))
}

func (o OrderBy) validate() error {
	if !o.Direction.Valid() {
		return fmt.Errorf("invalid ordering direction '%s'", o.Direction)
	}

	if !validKey(o.Column) {
		return fmt.Errorf("ordering column name contains forbidden symbols '%s'", o.Column)
	}

	return nil
}

// ToSQLSlice converts Orderings to a slice of strings in the form
// "<order_column> <order_direction>".
//
// Example: for Orderings: [{"a", "ASC"}, {"b", "DESC"}] returns ["a ASC", "b DESC"].
func (o Orderings) ToSQLSlice() []string {
	ret := make([]string, 0, len(o))
	for _, ordering := range o {
		ret = append(ret, fmt.Sprintf("%s %s", ordering.Column, ordering.Direction))
	}

	return ret
}

// ToSQL converts Orderings to a single string
// "<order_column_1> <order_direction_1>, <order_column_2> <order_direction_2>".
// Example: for [{"a", "ASC"}, {"b", "DESC"}] returns "a ASC, b DESC".
func (o Orderings) ToSQL() string {
	return strings.Join(o.ToSQLSlice(), ", ")
}

// Apply applies the ordering to a gorm query.
func (o Orderings) Apply(db *gorm.DB) *gorm.DB {
	return db.Order(o.ToSQL())
}

func (o Orderings) validate() error {
	if len(o) == 0 {
		return fmt.Errorf("empty ordering list")
	}

	var err error
	for _, ordering := range o {
		err = ordering.validate()
		if err != nil {
			return err
		}
	}

	return nil
}

// ParseSort builds a SortSpec from an expression of the form "field" or
// "field asc|desc". A bare field uses the field's default direction.
// Unknown fields are reported together with the closest registered key.
func ParseSort[T any](expr string, fields Fields[T]) (SortSpec, error) {
	parts := strings.Fields(expr)
	if len(parts) == 0 || len(parts) > 2 {
		return SortSpec{}, fmt.Errorf("%w: %q", ErrInvalidSortFormat, expr)
	}

	field, err := fields.Lookup(parts[0])
	if err != nil {
		return SortSpec{}, err
	}

	direction := field.DefaultDirection()
	if len(parts) == 2 {
		direction, err = ParseDirection(parts[1])
		if err != nil {
			return SortSpec{}, err
		}
	}

	return SortSpec{Field: field.Key(), Direction: direction}, nil
}

// String renders the spec back into the "field dir" expression form.
func (s SortSpec) String() string {
	return fmt.Sprintf("%s %s", s.Field, s.Direction.Short())
}

func closestKey(input string, dataSet []string) string {
	minDist := math.MaxInt
	closest := ""

	for _, key := range dataSet {
		dist := levenshtein([]rune(key), []rune(input))
		if dist < minDist {
			minDist = dist
			closest = key
		}
	}

	return closest
}
