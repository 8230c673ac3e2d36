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

// NthElement rearranges data in place so that data[n] holds the element
// that would occupy index n if the slice were fully sorted. Every
// element before index n is <= data[n] and every element after it is
// >= data[n]; neither side is otherwise ordered.
//
// The implementation is quickselect over the same median-of-three
// partitioning as the optimized quicksort, so it runs in O(n) expected
// time. NthElement is a no-op if n is out of range.
func NthElement[T constraints.Ordered](data []T, n int) {
	if n < 0 || n >= len(data) {
		return
	}

	for len(data) > 1 {
		if len(data) < insertionThreshold {
			InsertionSort(data)
			return
		}

		m := MedianOfThree(data)
		data[m], data[len(data)-1] = data[len(data)-1], data[m]

		p := Partition(data)
		switch {
		case n < p:
			data = data[:p]
		case n > p:
			data = data[p+1:]
			n -= p + 1
		default:
			return
		}
	}
}
