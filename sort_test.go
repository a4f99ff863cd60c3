package tableview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Sort(t *testing.T) {
	fields := assetFields()
	items := portfolio()

	tests := []struct {
		name      string
		key       string
		direction Direction
		want      []int
	}{
		{"allocation desc keeps equal keys in order", "allocation", DirectionDESC, []int{1, 2, 3, 5, 4}},
		{"allocation asc keeps equal keys in order", "allocation", DirectionASC, []int{4, 3, 5, 2, 1}},
		{"name asc", "name", DirectionASC, []int{3, 4, 5, 1, 2}},
		{"name desc", "name", DirectionDESC, []int{2, 1, 5, 4, 3}},
		{"category asc is stable", "category", DirectionASC, []int{4, 1, 3, 2, 5}},
		{"updated desc", "updated", DirectionDESC, []int{2, 4, 3, 1, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, err := fields.Lookup(tt.key)
			require.NoError(t, err)

			got := Sort(items, field, tt.direction)
			assert.Equal(t, tt.want, assetIDs(got))
		})
	}
}

func Test_Sort_Allocations(t *testing.T) {
	field, err := assetFields().Lookup("allocation")
	require.NoError(t, err)

	got := Sort(portfolio(), field, DirectionDESC)

	allocations := make([]float64, 0, len(got))
	for _, item := range got {
		allocations = append(allocations, item.Allocation)
	}
	assert.Equal(t, []float64{35, 25, 15, 15, 10}, allocations)
	// The two 15s keep their original relative order.
	assert.Equal(t, 3, got[2].ID)
	assert.Equal(t, 5, got[3].ID)
}

func Test_Sort_StableWithManyDuplicates(t *testing.T) {
	field, err := assetFields().Lookup("allocation")
	require.NoError(t, err)

	items := make([]tAsset, 0, 40)
	for i := 0; i < 40; i++ {
		items = append(items, tAsset{ID: i, Allocation: float64(i % 3)})
	}

	for _, direction := range []Direction{DirectionASC, DirectionDESC} {
		got := Sort(items, field, direction)
		for i := 1; i < len(got); i++ {
			if got[i].Allocation == got[i-1].Allocation {
				assert.Less(t, got[i-1].ID, got[i].ID, "direction %s, position %d", direction, i)
			}
		}
	}
}

func Test_Sort_DoesNotMutateInput(t *testing.T) {
	field, err := assetFields().Lookup("allocation")
	require.NoError(t, err)

	items := portfolio()
	_ = Sort(items, field, DirectionASC)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, assetIDs(items))
}

func Test_Sort_Empty(t *testing.T) {
	field, err := assetFields().Lookup("name")
	require.NoError(t, err)

	got := Sort(nil, field, DirectionASC)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func Test_Sort_InvalidDirectionPanics(t *testing.T) {
	field, err := assetFields().Lookup("name")
	require.NoError(t, err)

	assert.Panics(t, func() { Sort(portfolio(), field, "sideways") })
}
