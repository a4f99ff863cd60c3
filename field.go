package tableview

import (
	"cmp"
	"fmt"
	"time"

	"github.com/samber/lo"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Kind is the comparison type of a field. Every item of a table is compared
// through the same typed getter, so a field never mixes kinds.
type Kind int

const (
	KindString Kind = iota + 1
	KindNumber
	KindTime
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindTime:
		return "time"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Number is the set of types accepted by NumberField.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Field is a typed accessor for one column of T. Fields are built with
// StringField, NumberField or TimeField and are immutable afterwards.
type Field[T any] struct {
	key              string
	kind             Kind
	defaultDirection Direction
	locale           language.Tag

	// text is set for string fields only.
	text func(T) string
	// compare is set for number and time fields.
	compare func(a, b T) int
}

type fieldConfig struct {
	direction Direction
	locale    language.Tag
}

// FieldOption configures a Field at construction time.
type FieldOption func(*fieldConfig)

// WithDefaultDirection sets the direction applied when the field becomes the
// active sort field.
func WithDefaultDirection(direction Direction) FieldOption {
	return func(c *fieldConfig) {
		c.direction = direction
	}
}

// WithLocale sets the collation language of a string field.
func WithLocale(tag language.Tag) FieldOption {
	return func(c *fieldConfig) {
		c.locale = tag
	}
}

func newFieldConfig(opts []FieldOption) fieldConfig {
	cfg := fieldConfig{
		direction: DirectionASC,
		locale:    language.English,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// StringField declares a string field. String fields can be searched and are
// ordered by locale-aware collation.
func StringField[T any](key string, get func(T) string, opts ...FieldOption) Field[T] {
	cfg := newFieldConfig(opts)

	return Field[T]{
		key:              key,
		kind:             KindString,
		defaultDirection: cfg.direction,
		locale:           cfg.locale,
		text:             get,
	}
}

// NumberField declares a numeric field ordered by numeric comparison.
func NumberField[T any, N Number](key string, get func(T) N, opts ...FieldOption) Field[T] {
	cfg := newFieldConfig(opts)

	var compare func(a, b T) int
	if get != nil {
		compare = func(a, b T) int {
			return cmp.Compare(get(a), get(b))
		}
	}

	return Field[T]{
		key:              key,
		kind:             KindNumber,
		defaultDirection: cfg.direction,
		compare:          compare,
	}
}

// TimeField declares a chronologically ordered field.
func TimeField[T any](key string, get func(T) time.Time, opts ...FieldOption) Field[T] {
	cfg := newFieldConfig(opts)

	var compare func(a, b T) int
	if get != nil {
		compare = func(a, b T) int {
			return get(a).Compare(get(b))
		}
	}

	return Field[T]{
		key:              key,
		kind:             KindTime,
		defaultDirection: cfg.direction,
		compare:          compare,
	}
}

func (f Field[T]) Key() string {
	return f.key
}

func (f Field[T]) Kind() Kind {
	return f.kind
}

func (f Field[T]) DefaultDirection() Direction {
	return f.defaultDirection
}

// Text returns the string getter of a string field.
func (f Field[T]) Text() (func(T) string, bool) {
	return f.text, f.kind == KindString && f.text != nil
}

// comparator returns an ascending three-way comparison of two items.
// String comparators own a collator and must not be shared between goroutines.
func (f Field[T]) comparator() func(a, b T) int {
	if f.kind != KindString {
		return f.compare
	}

	collator := collate.New(f.locale)
	text := f.text

	return func(a, b T) int {
		return collator.CompareString(text(a), text(b))
	}
}

func (f Field[T]) validate() error {
	if !validKey(f.key) {
		return fmt.Errorf("%w: %q", ErrInvalidFieldKey, f.key)
	}

	if !f.defaultDirection.Valid() {
		return fmt.Errorf("field %q: %w: got %q", f.key, ErrInvalidDirection, f.defaultDirection)
	}

	switch f.kind {
	case KindString:
		if f.text == nil {
			return fmt.Errorf("field %q has no getter", f.key)
		}
	case KindNumber, KindTime:
		if f.compare == nil {
			return fmt.Errorf("field %q has no getter", f.key)
		}
	default:
		return fmt.Errorf("field %q has unsupported kind %s", f.key, f.kind)
	}

	return nil
}

// Fields is an ordered registry of the fields of T, resolved once at
// construction.
type Fields[T any] struct {
	list  []Field[T]
	index map[string]int
}

// NewFields validates the given fields and indexes them by key.
func NewFields[T any](fields ...Field[T]) (Fields[T], error) {
	ret := Fields[T]{
		list:  make([]Field[T], 0, len(fields)),
		index: make(map[string]int, len(fields)),
	}

	for _, field := range fields {
		if err := field.validate(); err != nil {
			return Fields[T]{}, err
		}

		if _, ok := ret.index[field.key]; ok {
			return Fields[T]{}, fmt.Errorf("%w: %q", ErrDuplicateField, field.key)
		}

		ret.index[field.key] = len(ret.list)
		ret.list = append(ret.list, field)
	}

	return ret, nil
}

// MustFields is like NewFields but panics on error. Intended for package-level
// field declarations.
func MustFields[T any](fields ...Field[T]) Fields[T] {
	ret, err := NewFields(fields...)
	if err != nil {
		panic(err)
	}

	return ret
}

// Lookup returns the field registered under key.
func (f Fields[T]) Lookup(key string) (Field[T], error) {
	if idx, ok := f.index[key]; ok {
		return f.list[idx], nil
	}

	if closest := closestKey(key, f.Keys()); closest != "" {
		return Field[T]{}, fmt.Errorf("%w %q, closest: %q", ErrUnknownField, key, closest)
	}

	return Field[T]{}, fmt.Errorf("%w %q", ErrUnknownField, key)
}

// Keys returns field keys in registration order.
func (f Fields[T]) Keys() []string {
	return lo.Map(f.list, func(field Field[T], _ int) string {
		return field.key
	})
}

// All returns a copy of the registered fields in registration order.
func (f Fields[T]) All() []Field[T] {
	return append([]Field[T](nil), f.list...)
}

func (f Fields[T]) Len() int {
	return len(f.list)
}
