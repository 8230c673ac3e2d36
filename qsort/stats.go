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

// Stats reports the work done by a single SortedWithStats call.
type Stats struct {
	// Comparisons counts element-vs-pivot comparisons across all
	// partition passes.
	Comparisons int

	// Swaps counts element exchanges that moved data. Exchanges whose
	// two indices coincide are not executed and not counted.
	Swaps int

	// RecursionDepth is the maximum call depth reached, with the
	// top-level call at depth 0.
	RecursionDepth int
}

// SortedWithStats returns a sorted copy of data along with counters
// describing the work performed. The input slice is not modified.
//
// The sort itself is the plain recursive quicksort of Sorted, so the
// counters reflect the unoptimized algorithm: adversarial inputs show
// their quadratic comparison counts and linear recursion depth here.
func SortedWithStats[T constraints.Ordered](data []T) ([]T, Stats) {
	out := make([]T, len(data))
	copy(out, data)

	var st Stats
	quickSortStats(out, 0, &st)
	return out, st
}

// quickSortStats mirrors quickSort with a shared Stats record threaded
// through the recursion. The depth maximum is taken on entry so that
// base-case calls still register, which keeps RecursionDepth >= 1 for
// every input of more than one element.
func quickSortStats[T constraints.Ordered](data []T, depth int, st *Stats) {
	if depth > st.RecursionDepth {
		st.RecursionDepth = depth
	}
	if len(data) <= 1 {
		return
	}

	p := partitionStats(data, st)
	quickSortStats(data[:p], depth+1, st)
	quickSortStats(data[p+1:], depth+1, st)
}

// partitionStats mirrors Partition and counts one comparison per scanned
// element. Swaps are executed and counted only when the two indices
// differ, including the final pivot placement.
func partitionStats[T constraints.Ordered](data []T, st *Stats) int {
	high := len(data) - 1
	pivot := data[high]

	i := -1
	for j := 0; j < high; j++ {
		st.Comparisons++
		if data[j] <= pivot {
			i++
			if i != j {
				data[i], data[j] = data[j], data[i]
				st.Swaps++
			}
		}
	}

	if i+1 != high {
		data[i+1], data[high] = data[high], data[i+1]
		st.Swaps++
	}
	return i + 1
}
