package tableview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func byName(a tAsset) string     { return a.Name }
func byCategory(a tAsset) string { return a.Category }

func Test_Filter(t *testing.T) {
	items := portfolio()

	tests := []struct {
		name   string
		query  string
		fields []func(tAsset) string
		want   []int
	}{
		{"substring match on name", "bond", []func(tAsset) string{byName}, []int{2}},
		{"case insensitive", "GLOBAL tech", []func(tAsset) string{byName}, []int{3}},
		{"empty query keeps everything", "", []func(tAsset) string{byName}, []int{1, 2, 3, 4, 5}},
		{"any field may match", "equity", []func(tAsset) string{byName, byCategory}, []int{1, 3}},
		{"field not searched", "equity", []func(tAsset) string{byName}, []int{}},
		{"no search fields", "gold", nil, []int{}},
		{"whitespace is not trimmed", " ", []func(tAsset) string{byCategory}, []int{2, 5}},
		{"no match", "crypto", []func(tAsset) string{byName, byCategory}, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(items, tt.query, tt.fields...)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, assetIDs(got))
		})
	}
}

func Test_Filter_UnicodeFolding(t *testing.T) {
	items := []tAsset{
		{ID: 1, Name: "Ärztekammer Nord"},
		{ID: 2, Name: "Straße 9"},
		{ID: 3, Name: "Clinic"},
	}

	assert.Equal(t, []int{1}, assetIDs(Filter(items, "ärzte", byName)))
	assert.Equal(t, []int{2}, assetIDs(Filter(items, "STRASSE", byName)))
}

func Test_Filter_Idempotent(t *testing.T) {
	items := portfolio()

	for _, query := range []string{"", "fund", "e", "zzz"} {
		once := Filter(items, query, byName, byCategory)
		twice := Filter(once, query, byName, byCategory)
		assert.Equal(t, once, twice, "query %q", query)
	}
}

func Test_Filter_DoesNotAliasInput(t *testing.T) {
	items := portfolio()

	got := Filter(items, "", byName)
	got[0].Name = "changed"

	assert.Equal(t, "S&P 500 ETF", items[0].Name)
}
