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

// MergeSort sorts data in place in ascending order. It is stable: equal
// elements keep their relative order. A single scratch buffer of the
// input's length is allocated up front and reused by every merge.
func MergeSort[T constraints.Ordered](data []T) {
	if len(data) <= 1 {
		return
	}
	scratch := make([]T, len(data))
	mergeSort(data, scratch)
}

func mergeSort[T constraints.Ordered](data, scratch []T) {
	if len(data) < insertionThreshold {
		InsertionSort(data)
		return
	}

	mid := len(data) / 2
	mergeSort(data[:mid], scratch[:mid])
	mergeSort(data[mid:], scratch[mid:])
	merge(data, mid, scratch)
}

// merge combines the sorted halves data[:mid] and data[mid:]. Only the
// left half is staged in scratch; ties take from it first, which is what
// keeps the sort stable.
func merge[T constraints.Ordered](data []T, mid int, scratch []T) {
	left := scratch[:mid]
	copy(left, data[:mid])
	right := data[mid:]

	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if right[j] < left[i] {
			data[k] = right[j]
			j++
		} else {
			data[k] = left[i]
			i++
		}
		k++
	}
	for i < len(left) {
		data[k] = left[i]
		i++
		k++
	}
	// Any leftover right elements already sit in their final slots.
}
