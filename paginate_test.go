package tableview

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Paginate_Coverage(t *testing.T) {
	for _, n := range []int{1, 2, 5, 6, 11, 23} {
		for _, size := range []int{1, 2, 3, 5, 7, 50} {
			items := numbered(n)
			first := Paginate(items, size, 1)

			var all []tAsset
			for page := 1; page <= first.TotalPages; page++ {
				res := Paginate(items, size, page)
				assert.LessOrEqual(t, len(res.Items), size)
				if page < first.TotalPages {
					assert.Len(t, res.Items, size, "n=%d size=%d page=%d", n, size, page)
				}
				all = append(all, res.Items...)
			}

			assert.Equal(t, items, all, "n=%d size=%d", n, size)
		}
	}
}

func Test_Paginate(t *testing.T) {
	field, err := assetFields().Lookup("allocation")
	require.NoError(t, err)
	sorted := Sort(portfolio(), field, DirectionDESC)

	tests := []struct {
		name       string
		items      []tAsset
		size       int
		page       int
		wantIDs    []int
		wantTotal  int
		wantOffset int
	}{
		{"single page of five", sorted, 5, 1, []int{1, 2, 3, 5, 4}, 1, 0},
		{"first page of two", sorted, 2, 1, []int{1, 2}, 3, 0},
		{"last page holds the remainder", sorted, 2, 3, []int{4}, 3, 4},
		{"page beyond the end is empty", sorted, 2, 4, []int{}, 3, 6},
		{"page zero is empty", sorted, 2, 0, []int{}, 3, 0},
		{"negative page is empty", sorted, 2, -3, []int{}, 3, 0},
		{"empty list", nil, 5, 1, []int{}, 1, 0},
		{"non-positive page size uses default", numbered(12), 0, 2, []int{6, 7, 8, 9, 10}, 3, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Paginate(tt.items, tt.size, tt.page)

			require.NotNil(t, res.Items)
			assert.Equal(t, tt.wantIDs, assetIDs(res.Items))
			assert.Equal(t, tt.wantTotal, res.TotalPages)
			assert.Equal(t, len(tt.items), res.TotalItems)
			assert.Equal(t, tt.page, res.CurrentPage)
			assert.Equal(t, tt.wantOffset, res.Offset())
		})
	}
}

func Test_Paginate_HugePageDoesNotOverflow(t *testing.T) {
	res := Paginate(numbered(3), 2, int(^uint(0)>>1))
	assert.Empty(t, res.Items)
	assert.Equal(t, 2, res.TotalPages)
}

func Test_Paginate_PageSizeAboveMax(t *testing.T) {
	items := numbered(MaxPageSize + 500)

	res := Paginate(items, 2*MaxPageSize, 1)
	assert.Len(t, res.Items, len(items))
	assert.Equal(t, 1, res.TotalPages)
	assert.Equal(t, 2*MaxPageSize, res.PageSize)

	res = Paginate(items, MaxPageSize+100, 2)
	assert.Len(t, res.Items, 400)
	assert.Equal(t, 2, res.TotalPages)
	assert.Equal(t, MaxPageSize+101, res.Items[0].ID)
}

func Test_Paginate_Empty(t *testing.T) {
	res := Paginate([]tAsset{}, 5, 1)

	assert.Equal(t, []tAsset{}, res.Items)
	assert.Equal(t, 1, res.TotalPages)
	assert.Equal(t, []PageLink{{Kind: LinkPage, Page: 1}}, res.Links)
}

func Test_Paginate_ResultDoesNotAliasInput(t *testing.T) {
	items := numbered(4)
	res := Paginate(items, 2, 1)
	res.Items[0].Name = "changed"

	assert.Equal(t, "Asset", items[0].Name)
}

func Test_PageResult_Meta(t *testing.T) {
	tests := []struct {
		name string
		page int
		want PageMeta
	}{
		{"first", 1, PageMeta{CurrentPage: 1, PageSize: 2, TotalPages: 3, TotalItems: 5, HasPrevious: false, HasNext: true}},
		{"middle", 2, PageMeta{CurrentPage: 2, PageSize: 2, TotalPages: 3, TotalItems: 5, HasPrevious: true, HasNext: true}},
		{"last", 3, PageMeta{CurrentPage: 3, PageSize: 2, TotalPages: 3, TotalItems: 5, HasPrevious: true, HasNext: false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Paginate(numbered(5), 2, tt.page).Meta())
		})
	}
}

func Test_TotalPages(t *testing.T) {
	tests := []struct {
		count, size, want int
	}{
		{0, 5, 1},
		{-1, 5, 1},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{5, 2, 3},
		{10, 0, 2},
		{1500, 2000, 1},
		{2500, 2000, 2},
		{3, int(^uint(0) >> 1), 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.count, tt.size), "count=%d size=%d", tt.count, tt.size)
	}
}

func Test_ClampPage(t *testing.T) {
	tests := []struct {
		page, total, want int
	}{
		{-5, 3, 1},
		{0, 3, 1},
		{2, 3, 2},
		{999, 3, 3},
		{4, 0, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampPage(tt.page, tt.total), "page=%d total=%d", tt.page, tt.total)
	}
}

// render joins a navigation sequence into "1 2 … 9".
func render(links []PageLink) string {
	parts := make([]string, 0, len(links))
	for _, link := range links {
		parts = append(parts, link.String())
	}

	return strings.Join(parts, " ")
}

func Test_PageNumbers(t *testing.T) {
	tests := []struct {
		current, total int
		want           string
	}{
		{1, 1, "1"},
		{1, 0, "1"},
		{1, 2, "1 2"},
		{2, 3, "1 2 3"},
		{1, 7, "1 2 3 … 7"},
		{1, 5, "1 2 3 4 5"},
		{4, 7, "1 2 3 4 5 6 7"},
		{5, 10, "1 2 3 4 5 6 7 … 10"},
		{6, 20, "1 … 4 5 6 7 8 … 20"},
		{17, 20, "1 … 15 16 17 18 19 20"},
		{20, 20, "1 … 18 19 20"},
		{-4, 10, "1 2 3 … 10"},
		{99, 10, "1 … 8 9 10"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, render(PageNumbers(tt.current, tt.total)))
		})
	}
}

func Test_PageNumbers_EllipsisKeysAreDistinct(t *testing.T) {
	links := PageNumbers(10, 20)

	keys := make(map[string]struct{}, len(links))
	for _, link := range links {
		keys[link.Key()] = struct{}{}
	}
	assert.Len(t, keys, len(links))

	assert.Equal(t, LinkLeadingEllipsis, links[1].Kind)
	assert.Equal(t, "ellipsis-leading", links[1].Key())
	assert.Equal(t, LinkTrailingEllipsis, links[len(links)-2].Kind)
	assert.Equal(t, "ellipsis-trailing", links[len(links)-2].Key())
	assert.True(t, links[1].IsEllipsis())
	assert.Equal(t, "page-20", links[len(links)-1].Key())
}

func Test_PageLink_JSON(t *testing.T) {
	data, err := json.Marshal([]PageLink{{Kind: LinkPage, Page: 1}, {Kind: LinkTrailingEllipsis}})
	require.NoError(t, err)

	assert.JSONEq(t, `[{"kind":"page","page":1},{"kind":"trailing_ellipsis"}]`, string(data))
}
