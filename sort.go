package tableview

import "slices"

// Sort returns a copy of items stably ordered by field in the given direction.
// Items with equal keys keep their relative order in both directions.
//
// Sort panics if direction is invalid or field was not built by one of the
// field constructors.
func Sort[T any](items []T, field Field[T], direction Direction) []T {
	sign := direction.sign()
	compare := field.comparator()

	sorted := append(make([]T, 0, len(items)), items...)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return sign * compare(a, b)
	})

	return sorted
}
