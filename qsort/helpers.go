package qsort

import "golang.org/x/exp/constraints"

// Helper routines shared across the sorting implementations.
// These stay generic and carry no instrumentation.

// InsertionSort sorts data in place. Intended for small ranges, where it
// beats partitioning; the optimized quicksort delegates to it below the
// insertion threshold.
func InsertionSort[T constraints.Ordered](data []T) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && data[j] > key {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}

// IsSorted reports whether data is in ascending order.
func IsSorted[T constraints.Ordered](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}
