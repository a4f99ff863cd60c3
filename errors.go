package tableview

import "errors"

var (
	ErrUnknownField      = errors.New("unknown field")
	ErrDuplicateField    = errors.New("duplicate field")
	ErrInvalidFieldKey   = errors.New("invalid field key")
	ErrNotStringField    = errors.New("field is not a string field")
	ErrInvalidDirection  = errors.New("sort direction must be 'asc' or 'desc'")
	ErrInvalidSortFormat = errors.New("invalid sort format: use 'field' or 'field asc|desc'")
	ErrInvalidPageState  = errors.New("invalid page state")
	ErrNilSource         = errors.New("source is nil")
)
