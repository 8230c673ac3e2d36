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
	"unsafe"

	"golang.org/x/exp/constraints"
)

// RadixSort sorts data in place in ascending order using LSD radix sort
// with one pass per byte of the element type. Slices shorter than the
// radix cutoff are handed to the comparison sort instead.
//
// Each pass is a counting sort over 256 buckets, ping-ponging between
// data and a scratch buffer. For signed types the final pass lays out
// the sign-bit buckets (128-255) before the non-negative ones.
func RadixSort[T constraints.Integer](data []T) {
	n := len(data)
	if n < radixSortCutoff {
		Sort(data)
		return
	}

	var zero T
	size := int(unsafe.Sizeof(zero))
	signed := ^zero < zero

	buf := make([]T, n)
	src, dst := data, buf

	for pass := 0; pass < size; pass++ {
		shift := pass * 8
		if signed && pass == size-1 {
			radixPassSigned(src, dst, shift)
		} else {
			radixPass(src, dst, shift)
		}
		src, dst = dst, src
	}

	// An odd number of passes leaves the result in the scratch buffer.
	if size%2 == 1 {
		copy(data, src)
	}
}

// radixPass distributes src into dst ordered by the byte at shift,
// preserving the relative order of elements with equal digits.
func radixPass[T constraints.Integer](src, dst []T, shift int) {
	var count [256]int

	for _, v := range src {
		count[int(v>>shift)&0xFF]++
	}

	// Prefix sum turns counts into bucket offsets.
	offset := 0
	for b := 0; b < 256; b++ {
		c := count[b]
		count[b] = offset
		offset += c
	}

	for _, v := range src {
		digit := int(v>>shift) & 0xFF
		dst[count[digit]] = v
		count[digit]++
	}
}

// radixPassSigned is the final pass for signed types. The top byte
// carries the sign bit, so buckets 128-255 (negative values) come before
// buckets 0-127.
func radixPassSigned[T constraints.Integer](src, dst []T, shift int) {
	var count [256]int

	for _, v := range src {
		count[int(v>>shift)&0xFF]++
	}

	offset := 0
	for b := 128; b < 256; b++ {
		c := count[b]
		count[b] = offset
		offset += c
	}
	for b := 0; b < 128; b++ {
		c := count[b]
		count[b] = offset
		offset += c
	}

	for _, v := range src {
		digit := int(v>>shift) & 0xFF
		dst[count[digit]] = v
		count[digit]++
	}
}
