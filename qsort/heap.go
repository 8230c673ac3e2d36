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

// HeapSort sorts data in place in ascending order. Unlike quicksort it
// guarantees O(n log n) comparisons on every input, at the cost of worse
// cache behavior, and it allocates nothing.
func HeapSort[T constraints.Ordered](data []T) {
	n := len(data)

	// Build a max-heap over the whole slice.
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(data, i, n)
	}

	// Repeatedly move the maximum to the end and shrink the heap.
	for i := n - 1; i > 0; i-- {
		data[0], data[i] = data[i], data[0]
		siftDown(data, 0, i)
	}
}

// siftDown restores the max-heap property for the subtree rooted at
// root, treating data[:hi] as the heap.
func siftDown[T constraints.Ordered](data []T, root, hi int) {
	for {
		child := 2*root + 1
		if child >= hi {
			return
		}
		if child+1 < hi && data[child] < data[child+1] {
			child++
		}
		if data[root] >= data[child] {
			return
		}
		data[root], data[child] = data[child], data[root]
		root = child
	}
}
