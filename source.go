package tableview

import "context"

// Source supplies the rows of a table. Implementations return the full item
// set; filtering, ordering and paging happen in memory.
type Source[T any] interface {
	Fetch(ctx context.Context) ([]T, error)
}

// SourceFunc is a function adapter that implements Source.
type SourceFunc[T any] func(ctx context.Context) ([]T, error)

// Fetch - implements Source.
func (f SourceFunc[T]) Fetch(ctx context.Context) ([]T, error) {
	return f(ctx)
}

// SliceSource serves a fixed set of items.
type SliceSource[T any] []T

// Fetch - implements Source. Returns a copy of the items.
func (s SliceSource[T]) Fetch(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return append(make([]T, 0, len(s)), s...), nil
}

var (
	_ Source[any] = SourceFunc[any](nil)
	_ Source[any] = SliceSource[any](nil)
)
