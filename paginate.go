package tableview

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"
)

// siblingPages is the number of page links shown on either side of the
// current page.
const siblingPages = 2

// LinkKind tags an entry of the page navigation sequence.
type LinkKind int

const (
	LinkPage LinkKind = iota
	LinkLeadingEllipsis
	LinkTrailingEllipsis
)

func (k LinkKind) String() string {
	switch k {
	case LinkPage:
		return "page"
	case LinkLeadingEllipsis:
		return "leading_ellipsis"
	case LinkTrailingEllipsis:
		return "trailing_ellipsis"
	default:
		return fmt.Sprintf("LinkKind(%d)", int(k))
	}
}

// MarshalText - implements encoding.TextMarshaler.
func (k LinkKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// PageLink is one entry of the page navigation sequence: either a page number
// or a marker for a collapsed range of pages.
type PageLink struct {
	Kind LinkKind `json:"kind"           yaml:"kind"`
	Page int      `json:"page,omitempty" yaml:"page,omitempty"`
}

func (l PageLink) IsEllipsis() bool {
	return l.Kind != LinkPage
}

// Key returns an identifier that is unique within one navigation sequence.
func (l PageLink) Key() string {
	switch l.Kind {
	case LinkLeadingEllipsis:
		return "ellipsis-leading"
	case LinkTrailingEllipsis:
		return "ellipsis-trailing"
	default:
		return "page-" + strconv.Itoa(l.Page)
	}
}

// String - implements fmt.Stringer.
func (l PageLink) String() string {
	if l.IsEllipsis() {
		return "…"
	}

	return strconv.Itoa(l.Page)
}

func pageLink(page int) PageLink {
	return PageLink{Kind: LinkPage, Page: page}
}

// PageMeta contains metadata about a paginated result.
type PageMeta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// PageResult is the visible slice of a list together with navigation data.
type PageResult[T any] struct {
	// Items of the requested page. Never nil; empty when the page is out of range.
	Items []T
	// CurrentPage as requested, 1-indexed.
	CurrentPage int
	PageSize    int
	// TotalPages is at least 1, even for an empty list.
	TotalPages int
	TotalItems int
	Links      []PageLink
}

// Meta returns the page metadata.
func (r PageResult[T]) Meta() PageMeta {
	return PageMeta{
		CurrentPage: r.CurrentPage,
		PageSize:    r.PageSize,
		TotalPages:  r.TotalPages,
		TotalItems:  r.TotalItems,
		HasPrevious: r.CurrentPage > 1,
		HasNext:     r.CurrentPage < r.TotalPages,
	}
}

// Offset returns the index of the first item of the page within the full list.
func (r PageResult[T]) Offset() int {
	if r.CurrentPage < 1 {
		return 0
	}

	return (r.CurrentPage - 1) * r.PageSize
}

// TotalPages returns max(1, ceil(count/pageSize)). A page size of zero or less
// means DefaultPageSize.
func TotalPages(count, pageSize int) int {
	pageSize = pageSizeOrDefault(pageSize)
	if count <= 0 {
		return 1
	}

	return (count-1)/pageSize + 1
}

// ClampPage bounds page to [1, totalPages].
func ClampPage(page, totalPages int) int {
	return max(1, min(page, max(1, totalPages)))
}

// Paginate returns page currentPage of items. It never fails: a page outside
// [1, TotalPages] yields an empty Items slice, clamping is up to the caller.
// Any positive page size is used as is.
func Paginate[T any](items []T, pageSize, currentPage int) PageResult[T] {
	pageSize = pageSizeOrDefault(pageSize)
	totalPages := TotalPages(len(items), pageSize)

	visible := []T{}
	if currentPage >= 1 && currentPage <= totalPages {
		start := (currentPage - 1) * pageSize
		visible = append(visible, lo.Slice(items, start, start+pageSize)...)
	}

	return PageResult[T]{
		Items:       visible,
		CurrentPage: currentPage,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		TotalItems:  len(items),
		Links:       PageNumbers(currentPage, totalPages),
	}
}

func pageSizeOrDefault(pageSize int) int {
	if pageSize <= 0 {
		return DefaultPageSize
	}

	return pageSize
}

// PageNumbers builds the page navigation sequence. The first and last pages are
// always present, as are up to two pages on either side of the current page.
// A single skipped page is shown as a number; longer gaps collapse into one
// leading or trailing ellipsis.
//
// Example: PageNumbers(6, 20) returns 1 … 4 5 6 7 8 … 20.
func PageNumbers(currentPage, totalPages int) []PageLink {
	if totalPages <= 1 {
		return []PageLink{pageLink(1)}
	}

	current := ClampPage(currentPage, totalPages)
	start := max(2, current-siblingPages)
	end := min(totalPages-1, current+siblingPages)

	links := make([]PageLink, 0, 2*siblingPages+5)
	links = append(links, pageLink(1))

	switch {
	case start == 3:
		links = append(links, pageLink(2))
	case start > 3:
		links = append(links, PageLink{Kind: LinkLeadingEllipsis})
	}

	for page := start; page <= end; page++ {
		links = append(links, pageLink(page))
	}

	switch {
	case end == totalPages-2:
		links = append(links, pageLink(totalPages-1))
	case end < totalPages-2:
		links = append(links, PageLink{Kind: LinkTrailingEllipsis})
	}

	return append(links, pageLink(totalPages))
}
