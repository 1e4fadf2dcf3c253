// Package util provides small generic helpers shared by the glob compiler.
package util

import (
	"cmp"
	"slices"
)

// RemoveDuplicates returns a new slice with duplicates removed.
// Note: This function sorts the result, so original order is not preserved.
func RemoveDuplicates[S ~[]E, E cmp.Ordered](list S) S {
	result := slices.Clone(list)
	slices.Sort(result)

	return slices.Compact(result)
}

// RemoveDuplicatesFunc is like RemoveDuplicates but orders and compares elements with the given
// three-way comparison function. Elements for which compare returns 0 are considered equal.
func RemoveDuplicatesFunc[S ~[]E, E any](list S, compare func(a, b E) int) S {
	result := slices.Clone(list)
	slices.SortFunc(result, compare)

	return slices.CompactFunc(result, func(a, b E) bool {
		return compare(a, b) == 0
	})
}
