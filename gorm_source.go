package tableview

import (
	"context"
	"fmt"
	"slices"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// GORMSource loads every row of a model through GORM. Rows are fetched in a
// deterministic order (by "id" ascending unless configured otherwise) so that
// stable in-memory sorting keeps a predictable tie order.
//
// Usage:
//
//	src := tableview.NewGORMSource[Asset](db.Where("portfolio_id = ?", id))
//	err := table.Load(ctx, src)
type GORMSource[T any] struct {
	db   *gorm.DB
	sort Orderings
}

// NewGORMSource creates a source over db. When no ordering is given rows are
// ordered by "id ASC".
func NewGORMSource[T any](db *gorm.DB, orderBy ...OrderBy) *GORMSource[T] {
	s := &GORMSource[T]{db: db}
	if len(orderBy) == 0 {
		orderBy = []OrderBy{{Column: "id", Direction: DirectionASC}}
	}

	return s.WithSort(orderBy...)
}

// WithSort appends orderings without overwriting existing ones. A column that
// is already present moves to the end with its new direction.
func (s *GORMSource[T]) WithSort(orderBy ...OrderBy) *GORMSource[T] {
	if s == nil {
		s = new(GORMSource[T])
	}

	for _, o := range orderBy {
		idx := slices.IndexFunc(s.sort, func(processed OrderBy) bool {
			return processed.Column == o.Column
		})

		// Remove previous occurrence (avoid duplication).
		if idx != -1 {
			s.sort = slices.Delete(s.sort, idx, idx+1)
		}

		s.sort = append(s.sort, o)
	}

	return s
}

// GetSort returns orderings applied to the query.
func (s *GORMSource[T]) GetSort() Orderings {
	if s == nil {
		return nil
	}

	return s.sort
}

// Fetch - implements Source.
func (s *GORMSource[T]) Fetch(ctx context.Context) ([]T, error) {
	if s == nil || s.db == nil {
		return nil, ErrNilSource
	}

	if err := s.sort.validate(); err != nil {
		return nil, fmt.Errorf("cannot fetch: %w", err)
	}

	var items []T
	if err := s.sort.Apply(s.db.WithContext(ctx)).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("fetch rows: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Int("count", len(items)).
		Str("order", s.sort.ToSQL()).
		Msg("rows fetched")

	return items, nil
}

var _ Source[any] = (*GORMSource[any])(nil)
