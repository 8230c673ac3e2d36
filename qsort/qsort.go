// Copyright 2026 go-quicksort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package qsort

import "golang.org/x/exp/constraints"

// Thresholds for switching sorting strategies.
const (
	// insertionThreshold: ranges shorter than this are insertion sorted
	// by the optimized quicksort instead of partitioned further.
	insertionThreshold = 10

	// radixSortCutoff: below this length RadixSort falls back to the
	// comparison sort; per-byte counting passes only pay off on larger
	// inputs.
	radixSortCutoff = 64
)

// Sorted returns a sorted copy of data in ascending order using plain
// recursive quicksort. The input slice is not modified.
//
// The pivot is always the last element of the range, so already-sorted
// and reverse-sorted inputs degrade to O(n^2) time and O(n) recursion
// depth. Use SortedOptimized when the input order is unknown.
func Sorted[T constraints.Ordered](data []T) []T {
	out := make([]T, len(data))
	copy(out, data)
	quickSort(out)
	return out
}

// SortedOptimized returns a sorted copy of data in ascending order.
// The input slice is not modified.
//
// Compared to Sorted it adds three refinements:
//   - Ranges shorter than 10 elements are insertion sorted
//   - The pivot is the median of the first, middle, and last elements
//   - Each split recurses into the smaller partition and iterates over
//     the larger, so call-stack depth stays O(log n) for any input
func SortedOptimized[T constraints.Ordered](data []T) []T {
	out := make([]T, len(data))
	copy(out, data)
	sortOptimized(out)
	return out
}

// Sort sorts data in place in ascending order using the optimized
// quicksort. It is the in-place counterpart of SortedOptimized.
func Sort[T constraints.Ordered](data []T) {
	sortOptimized(data)
}

// quickSort is the plain recursive quicksort. The base case lives in the
// callee, so both sides of every split are recursed into unconditionally.
func quickSort[T constraints.Ordered](data []T) {
	if len(data) <= 1 {
		return
	}

	p := Partition(data)
	quickSort(data[:p])
	quickSort(data[p+1:])
}

// sortOptimized sorts data in place with the insertion cutoff,
// median-of-three pivot, and recurse-smaller/iterate-larger strategy.
func sortOptimized[T constraints.Ordered](data []T) {
	for len(data) > 1 {
		if len(data) < insertionThreshold {
			InsertionSort(data)
			return
		}

		n := len(data)

		// Move the median-of-three element into the pivot slot.
		m := MedianOfThree(data)
		data[m], data[n-1] = data[n-1], data[m]

		p := Partition(data)

		// Recurse into the smaller partition, loop over the larger.
		// The recursed side never exceeds half the range, which bounds
		// the call-stack depth at O(log n).
		if p < n-1-p {
			sortOptimized(data[:p])
			data = data[p+1:]
		} else {
			sortOptimized(data[p+1:])
			data = data[:p]
		}
	}
}
