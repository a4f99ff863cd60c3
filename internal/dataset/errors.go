package dataset

import "errors"

var (
	ErrInvalidDataset  = errors.New("invalid dataset")
	ErrCellType        = errors.New("cell value does not match column kind")
	ErrDuplicateID     = errors.New("duplicate record id")
	ErrDatasetNotFound = errors.New("dataset not found")
)
