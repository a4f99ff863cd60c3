package tableview

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// Table holds the rows of one table view together with its PageState and
// derives the visible page from them:
//
//	Paginate(Sort(Filter(items, query, search...), sortField, sortDirection), pageSize, currentPage)
//
// The derived view is recomputed from the full item set on every call; the
// item set itself is never reordered.
//
// By default any change of the query or the sort returns the view to page 1.
// WithPageRetention keeps the current page instead, clamped to the new page
// count. In both modes the current page stays within [1, TotalPages].
//
// A Table is meant to be owned by a single view and is not safe for
// concurrent use.
type Table[T any] struct {
	fields     Fields[T]
	search     []func(T) string
	pageSize   int
	retainPage bool

	items []T
	state PageState
}

type tableConfig struct {
	pageSize      int
	searchKeys    []string
	sortKey       string
	sortDirection Direction
	retainPage    bool
}

// TableOption configures a Table.
type TableOption func(*tableConfig)

// WithPageSize sets the number of rows per page. NormalizePageSize applies.
func WithPageSize(size int) TableOption {
	return func(c *tableConfig) {
		c.pageSize = size
	}
}

// WithSearchFields names the string fields matched by the query.
func WithSearchFields(keys ...string) TableOption {
	return func(c *tableConfig) {
		c.searchKeys = append(c.searchKeys, keys...)
	}
}

// WithDefaultSort sets the initially active sort field. Its default direction
// applies unless WithDefaultSortDirection is given as well.
func WithDefaultSort(key string) TableOption {
	return func(c *tableConfig) {
		c.sortKey = key
	}
}

// WithDefaultSortDirection overrides the direction of the initial sort.
func WithDefaultSortDirection(direction Direction) TableOption {
	return func(c *tableConfig) {
		c.sortDirection = direction
	}
}

// WithPageRetention keeps the current page (clamped) when the query or the
// sort changes, instead of going back to page 1.
func WithPageRetention() TableOption {
	return func(c *tableConfig) {
		c.retainPage = true
	}
}

// NewTable creates an empty table over fields. Rows are supplied with SetItems
// or Load.
func NewTable[T any](fields Fields[T], opts ...TableOption) (*Table[T], error) {
	cfg := &tableConfig{
		pageSize: DefaultPageSize,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	t := &Table[T]{
		fields:     fields,
		pageSize:   NormalizePageSize(cfg.pageSize),
		retainPage: cfg.retainPage,
		items:      []T{},
		state:      PageState{CurrentPage: 1},
	}

	for _, key := range lo.Uniq(cfg.searchKeys) {
		field, err := fields.Lookup(key)
		if err != nil {
			return nil, fmt.Errorf("search field: %w", err)
		}

		text, ok := field.Text()
		if !ok {
			return nil, fmt.Errorf("search field %q: %w (kind %s)", key, ErrNotStringField, field.Kind())
		}

		t.search = append(t.search, text)
	}

	if cfg.sortKey != "" {
		field, err := fields.Lookup(cfg.sortKey)
		if err != nil {
			return nil, fmt.Errorf("default sort: %w", err)
		}

		direction := lo.Ternary(cfg.sortDirection != "", cfg.sortDirection, field.DefaultDirection())
		if !direction.Valid() {
			return nil, fmt.Errorf("default sort: %w: got %q", ErrInvalidDirection, direction)
		}

		t.state.SortField = field.Key()
		t.state.SortDirection = direction
	}

	return t, nil
}

// Load replaces the rows with the ones fetched from src. On error the previous
// rows are kept.
func (t *Table[T]) Load(ctx context.Context, src Source[T]) error {
	if src == nil {
		return ErrNilSource
	}

	items, err := src.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("load items: %w", err)
	}

	t.SetItems(items)

	zerolog.Ctx(ctx).Debug().
		Int("items", len(items)).
		Int("total_pages", t.TotalPages()).
		Msg("table loaded")

	return nil
}

// SetItems replaces the rows. The current page is kept and clamped.
func (t *Table[T]) SetItems(items []T) {
	t.items = append(make([]T, 0, len(items)), items...)
	t.state.CurrentPage = ClampPage(t.state.CurrentPage, t.TotalPages())
}

// SetQuery changes the filter text.
func (t *Table[T]) SetQuery(query string) {
	if query == t.state.Query {
		return
	}

	t.state.Query = query
	t.viewChanged()
}

// ToggleSort applies the sort-header policy: selecting the active field flips
// the direction, selecting another field activates it with its default
// direction.
func (t *Table[T]) ToggleSort(key string) error {
	field, err := t.fields.Lookup(key)
	if err != nil {
		return err
	}

	if field.Key() == t.state.SortField {
		t.state.SortDirection = t.state.SortDirection.Flip()
	} else {
		t.state.SortField = field.Key()
		t.state.SortDirection = field.DefaultDirection()
	}

	t.viewChanged()

	return nil
}

// SetSort activates key with an explicit direction.
func (t *Table[T]) SetSort(key string, direction Direction) error {
	field, err := t.fields.Lookup(key)
	if err != nil {
		return err
	}

	if !direction.Valid() {
		return fmt.Errorf("%w: got %q", ErrInvalidDirection, direction)
	}

	t.state.SortField = field.Key()
	t.state.SortDirection = direction
	t.viewChanged()

	return nil
}

// GoToPage moves to page n clamped to [1, TotalPages] and returns the page
// that became current.
func (t *Table[T]) GoToPage(n int) int {
	t.state.CurrentPage = ClampPage(n, t.TotalPages())
	return t.state.CurrentPage
}

// NextPage moves one page forward. It is a no-op on the last page.
func (t *Table[T]) NextPage() int {
	if t.state.CurrentPage >= t.TotalPages() {
		return t.state.CurrentPage
	}

	return t.GoToPage(t.state.CurrentPage + 1)
}

// PrevPage moves one page back. It is a no-op on the first page.
func (t *Table[T]) PrevPage() int {
	if t.state.CurrentPage <= 1 {
		return t.state.CurrentPage
	}

	return t.GoToPage(t.state.CurrentPage - 1)
}

// Page returns the visible page for the current state.
func (t *Table[T]) Page() PageResult[T] {
	return Paginate(t.view(), t.pageSize, t.state.CurrentPage)
}

// Rows returns the filtered and sorted rows of every page.
func (t *Table[T]) Rows() []T {
	return t.view()
}

// State returns a copy of the current PageState.
func (t *Table[T]) State() PageState {
	return t.state
}

// Restore applies a previously saved state. An empty sort field keeps the
// current sort; an empty direction falls back to the field default. The page
// is clamped to the restored view.
func (t *Table[T]) Restore(state PageState) error {
	if err := state.validate(); err != nil {
		return err
	}

	next := t.state
	next.Query = state.Query

	if state.SortField != "" {
		field, err := t.fields.Lookup(state.SortField)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidPageState, err)
		}

		next.SortField = field.Key()
		next.SortDirection = lo.Ternary(state.SortDirection != "", state.SortDirection, field.DefaultDirection())
	}

	t.state = next
	t.state.CurrentPage = ClampPage(state.CurrentPage, t.TotalPages())

	return nil
}

// Sort returns the active sort. The field is empty when rows keep source order.
func (t *Table[T]) Sort() SortSpec {
	return t.state.Sort()
}

func (t *Table[T]) Query() string {
	return t.state.Query
}

func (t *Table[T]) CurrentPage() int {
	return t.state.CurrentPage
}

func (t *Table[T]) PageSize() int {
	return t.pageSize
}

func (t *Table[T]) Fields() Fields[T] {
	return t.fields
}

// Len returns the number of rows before filtering.
func (t *Table[T]) Len() int {
	return len(t.items)
}

// FilteredLen returns the number of rows matching the query.
func (t *Table[T]) FilteredLen() int {
	return len(t.filtered())
}

// TotalPages returns the page count of the filtered rows, at least 1.
func (t *Table[T]) TotalPages() int {
	return TotalPages(t.FilteredLen(), t.pageSize)
}

func (t *Table[T]) viewChanged() {
	if t.retainPage {
		t.state.CurrentPage = ClampPage(t.state.CurrentPage, t.TotalPages())
		return
	}

	t.state.CurrentPage = 1
}

func (t *Table[T]) filtered() []T {
	return Filter(t.items, t.state.Query, t.search...)
}

func (t *Table[T]) view() []T {
	rows := t.filtered()
	if t.state.SortField == "" {
		return rows
	}

	// The sort field was resolved when it became active.
	field, err := t.fields.Lookup(t.state.SortField)
	if err != nil {
		panic(fmt.Errorf("active sort field: %w", err))
	}

	return Sort(rows, field, t.state.SortDirection)
}
