package tableview

import (
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
)

// Filter keeps the items for which query is a case-insensitive substring of at
// least one of the given string getters. An empty query keeps every item.
// The result is a new slice in the original order.
func Filter[T any](items []T, query string, fields ...func(T) string) []T {
	if query == "" {
		return append(make([]T, 0, len(items)), items...)
	}

	folder := cases.Fold()
	needle := folder.String(query)

	return lo.Filter(items, func(item T, _ int) bool {
		return lo.SomeBy(fields, func(get func(T) string) bool {
			return strings.Contains(folder.String(get(item)), needle)
		})
	})
}
