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

import (
	"math"
	"math/rand"
	"slices"
	"testing"
)

// TestHeapSortRandom tests heap sort on random data across sizes
func TestHeapSortRandom(t *testing.T) {
	sizes := []int{0, 1, 2, 3, 7, 8, 15, 16, 63, 64, 100, 256, 1000}
	for _, n := range sizes {
		data := make([]int, n)
		for i := range data {
			data[i] = rand.Intn(10000) - 5000
		}
		HeapSort(data)
		if !isSorted(data) {
			t.Errorf("HeapSort(random, n=%d) produced unsorted result", n)
		}
	}
}

// TestHeapSortEdgeCases tests fixed heap sort inputs
func TestHeapSortEdgeCases(t *testing.T) {
	tests := []struct {
		name string
		data []int
	}{
		{"empty", []int{}},
		{"single", []int{7}},
		{"sorted", []int{1, 2, 3, 4, 5}},
		{"reverse", []int{5, 4, 3, 2, 1}},
		{"duplicates", []int{3, 1, 3, 2, 1, 3}},
		{"all_same", []int{9, 9, 9, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]int, len(tt.data))
			copy(data, tt.data)
			HeapSort(data)
			if !isSorted(data) {
				t.Errorf("HeapSort(%s) produced unsorted result: %v", tt.name, data)
			}
		})
	}
}

// TestHeapSortMatchesStdlib verifies HeapSort produces same result as
// slices.Sort
func TestHeapSortMatchesStdlib(t *testing.T) {
	rand.Seed(13579)
	data1 := make([]int, 5000)
	data2 := make([]int, 5000)
	for i := range data1 {
		v := rand.Intn(1000000) - 500000
		data1[i] = v
		data2[i] = v
	}

	HeapSort(data1)
	slices.Sort(data2)

	if !slices.Equal(data1, data2) {
		t.Errorf("HeapSort does not match slices.Sort")
	}
}

// TestMergeSortRandom tests merge sort on random data across sizes
func TestMergeSortRandom(t *testing.T) {
	sizes := []int{0, 1, 2, 3, 7, 8, 9, 10, 11, 15, 16, 63, 64, 100, 256, 1000}
	for _, n := range sizes {
		data := make([]float64, n)
		for i := range data {
			data[i] = rand.Float64() * 1000
		}
		MergeSort(data)
		if !isSorted(data) {
			t.Errorf("MergeSort(random, n=%d) produced unsorted result", n)
		}
	}
}

// TestMergeSortMatchesStdlib verifies MergeSort produces same result as
// slices.Sort
func TestMergeSortMatchesStdlib(t *testing.T) {
	rand.Seed(97531)
	data1 := make([]int, 5000)
	data2 := make([]int, 5000)
	for i := range data1 {
		v := rand.Intn(1000)
		data1[i] = v
		data2[i] = v
	}

	MergeSort(data1)
	slices.Sort(data2)

	if !slices.Equal(data1, data2) {
		t.Errorf("MergeSort does not match slices.Sort")
	}
}

// TestMergeSortStable verifies equal elements keep their relative order,
// observed through the sign bit of floating point zeros
func TestMergeSortStable(t *testing.T) {
	negZero := math.Copysign(0, -1)
	data := []float64{
		1, negZero, 0, 1, negZero, 0, 1, negZero,
		0, 1, negZero, 0, 1, negZero, 0, 1,
	}

	MergeSort(data)

	// The ten zeros sort ahead of the ones and must still alternate
	// starting with the negative zero.
	for i := 0; i < 10; i++ {
		wantNeg := i%2 == 0
		if math.Signbit(data[i]) != wantNeg {
			t.Fatalf("zero at index %d has signbit=%v, want %v", i, math.Signbit(data[i]), wantNeg)
		}
	}
	for i := 10; i < len(data); i++ {
		if data[i] != 1 {
			t.Fatalf("data[%d] = %v, want 1", i, data[i])
		}
	}
}

// TestRadixSortInt32 tests radix sort for int32
func TestRadixSortInt32(t *testing.T) {
	sizes := []int{0, 1, 7, 8, 15, 16, 31, 32, 63, 64, 100, 256, 1000, 10000}
	for _, n := range sizes {
		data := make([]int32, n)
		for i := range data {
			data[i] = rand.Int31n(1000000) - 500000
		}
		RadixSort(data)
		if !isSorted(data) {
			t.Errorf("RadixSort[int32](n=%d) produced unsorted result", n)
		}
	}
}

// TestRadixSortInt64 tests radix sort for int64
func TestRadixSortInt64(t *testing.T) {
	sizes := []int{0, 1, 7, 8, 15, 16, 31, 32, 63, 64, 100, 256, 1000, 10000}
	for _, n := range sizes {
		data := make([]int64, n)
		for i := range data {
			data[i] = rand.Int63n(1000000) - 500000
		}
		RadixSort(data)
		if !isSorted(data) {
			t.Errorf("RadixSort[int64](n=%d) produced unsorted result", n)
		}
	}
}

// TestRadixSortUint32 tests radix sort for an unsigned type, where no
// sign pass applies
func TestRadixSortUint32(t *testing.T) {
	sizes := []int{0, 1, 63, 64, 100, 256, 1000}
	for _, n := range sizes {
		data := make([]uint32, n)
		for i := range data {
			data[i] = rand.Uint32()
		}
		RadixSort(data)
		if !isSorted(data) {
			t.Errorf("RadixSort[uint32](n=%d) produced unsorted result", n)
		}
	}
}

// TestRadixSortInt8 tests the single pass case with an odd pass count
func TestRadixSortInt8(t *testing.T) {
	data := make([]int8, 200)
	for i := range data {
		data[i] = int8(rand.Intn(256) - 128)
	}
	RadixSort(data)
	if !isSorted(data) {
		t.Errorf("RadixSort[int8] produced unsorted result")
	}
}

// TestRadixSortMatchesStdlib verifies RadixSort produces same result as
// slices.Sort
func TestRadixSortMatchesStdlib(t *testing.T) {
	rand.Seed(54321)
	sizes := []int{100, 256, 1000, 10000}
	for _, n := range sizes {
		data1 := make([]int32, n)
		data2 := make([]int32, n)
		for i := range data1 {
			v := rand.Int31n(1000000) - 500000
			data1[i] = v
			data2[i] = v
		}

		RadixSort(data1)
		slices.Sort(data2)

		if !slices.Equal(data1, data2) {
			t.Errorf("RadixSort[int32](n=%d) does not match slices.Sort", n)
		}
	}
}

// TestRadixSortExtremes tests type extremes on an input long enough to
// run the byte passes rather than the comparison sort fallback
func TestRadixSortExtremes(t *testing.T) {
	data := make([]int32, 100)
	for i := range data {
		data[i] = rand.Int31n(1000) - 500
	}
	data[17] = math.MinInt32
	data[42] = math.MaxInt32
	data[63] = 0

	RadixSort(data)

	if !isSorted(data) {
		t.Errorf("RadixSort(extremes) produced unsorted result")
	}
	if data[0] != math.MinInt32 || data[len(data)-1] != math.MaxInt32 {
		t.Errorf("extremes not at the ends: first=%v last=%v", data[0], data[len(data)-1])
	}
}

// TestRadixSortBelowCutoff tests the comparison sort fallback for short
// inputs, including sign handling
func TestRadixSortBelowCutoff(t *testing.T) {
	tests := []struct {
		name string
		data []int32
	}{
		{"all_zeros", []int32{0, 0, 0, 0, 0}},
		{"all_negative", []int32{-5, -3, -8, -1, -9}},
		{"mixed_signs", []int32{-5, 3, -8, 1, 0, -9, 7}},
		{"min_max", []int32{math.MinInt32, math.MaxInt32, 0, -1, 1}},
		{"sorted", []int32{1, 2, 3, 4, 5}},
		{"reverse", []int32{5, 4, 3, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]int32, len(tt.data))
			copy(data, tt.data)
			RadixSort(data)
			if !isSorted(data) {
				t.Errorf("RadixSort(%s) produced unsorted result: %v", tt.name, data)
			}
		})
	}
}

// TestNthElement tests partial sorting across every rank of a small input
func TestNthElement(t *testing.T) {
	ref := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	for k := range ref {
		data := make([]int, len(ref))
		copy(data, ref)
		rand.Shuffle(len(data), func(i, j int) { data[i], data[j] = data[j], data[i] })

		NthElement(data, k)

		if data[k] != ref[k] {
			t.Errorf("NthElement(k=%d): got %v, want %v", k, data[k], ref[k])
		}
	}
}

// TestNthElementPartitionsAround verifies the ordering guarantee on both
// sides of the selected rank
func TestNthElementPartitionsAround(t *testing.T) {
	rand.Seed(24680)
	data := make([]int, 1000)
	for i := range data {
		data[i] = rand.Intn(10000)
	}

	want := Sorted(data)
	for _, k := range []int{0, 1, 250, 499, 500, 750, 998, 999} {
		work := make([]int, len(data))
		copy(work, data)

		NthElement(work, k)

		if work[k] != want[k] {
			t.Errorf("NthElement(k=%d): got %v, want %v", k, work[k], want[k])
		}
		for i := 0; i < k; i++ {
			if work[i] > work[k] {
				t.Errorf("k=%d: work[%d]=%v exceeds selected %v", k, i, work[i], work[k])
				break
			}
		}
		for i := k + 1; i < len(work); i++ {
			if work[i] < work[k] {
				t.Errorf("k=%d: work[%d]=%v below selected %v", k, i, work[i], work[k])
				break
			}
		}
	}
}

// TestNthElementOutOfRange verifies out of range indices leave the data
// untouched
func TestNthElementOutOfRange(t *testing.T) {
	orig := []int{3, 1, 2}
	for _, k := range []int{-1, 3, 100} {
		data := slices.Clone(orig)
		NthElement(data, k)
		if !slices.Equal(data, orig) {
			t.Errorf("NthElement(k=%d) modified data: %v, want %v", k, data, orig)
		}
	}
}
