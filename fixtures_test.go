package tableview

import "time"

type tAsset struct {
	ID         int
	Name       string
	Category   string
	Allocation float64
	Updated    time.Time
}

func assetFields() Fields[tAsset] {
	return MustFields(
		StringField("name", func(a tAsset) string { return a.Name }),
		StringField("category", func(a tAsset) string { return a.Category }),
		NumberField("allocation", func(a tAsset) float64 { return a.Allocation }, WithDefaultDirection(DirectionDESC)),
		NumberField("id", func(a tAsset) int { return a.ID }),
		TimeField("updated", func(a tAsset) time.Time { return a.Updated }, WithDefaultDirection(DirectionDESC)),
	)
}

// portfolio returns five assets with allocations {35, 25, 15, 10, 15}.
func portfolio() []tAsset {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	return []tAsset{
		{ID: 1, Name: "S&P 500 ETF", Category: "Equity", Allocation: 35, Updated: day},
		{ID: 2, Name: "US Treasury Bond Fund", Category: "Fixed Income", Allocation: 25, Updated: day.AddDate(0, 0, 3)},
		{ID: 3, Name: "Global Technology Fund", Category: "Equity", Allocation: 15, Updated: day.AddDate(0, 0, 1)},
		{ID: 4, Name: "Gold Trust", Category: "Commodity", Allocation: 10, Updated: day.AddDate(0, 0, 2)},
		{ID: 5, Name: "Real Estate Income", Category: "Real Estate", Allocation: 15, Updated: day.AddDate(0, 0, -1)},
	}
}

func assetIDs(items []tAsset) []int {
	ids := make([]int, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}

	return ids
}

// numbered returns n assets with ids 1..n.
func numbered(n int) []tAsset {
	items := make([]tAsset, 0, n)
	for i := 1; i <= n; i++ {
		items = append(items, tAsset{ID: i, Name: "Asset", Allocation: float64(i)})
	}

	return items
}
