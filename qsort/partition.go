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

// Partition rearranges data around its last element (the pivot) and
// returns the pivot's final index. After the call every element left of
// the returned index is <= the pivot and every element right of it is
// greater.
//
// Elements equal to the pivot gather on the left side, so duplicate-heavy
// inputs still make progress: the pivot position strictly separates the
// range. Partition panics if data is empty.
func Partition[T constraints.Ordered](data []T) int {
	high := len(data) - 1
	pivot := data[high]

	// i trails the region of elements known to be <= pivot.
	i := -1
	for j := 0; j < high; j++ {
		if data[j] <= pivot {
			i++
			data[i], data[j] = data[j], data[i]
		}
	}

	data[i+1], data[high] = data[high], data[i+1]
	return i + 1
}

// MedianOfThree returns the index of the median of the first, middle,
// and last elements of data, without mutating it. The middle element is
// the one at index (len(data)-1)/2.
//
// Swapping the returned element into the last position before calling
// Partition guards against the pivot landing on an extreme value for
// sorted and reverse-sorted inputs. MedianOfThree panics if data is
// empty.
func MedianOfThree[T constraints.Ordered](data []T) int {
	lo, mid, hi := 0, (len(data)-1)/2, len(data)-1

	if data[lo] > data[mid] {
		if data[mid] > data[hi] {
			return mid
		}
		if data[lo] > data[hi] {
			return hi
		}
		return lo
	}
	if data[lo] > data[hi] {
		return lo
	}
	if data[mid] > data[hi] {
		return hi
	}
	return mid
}
