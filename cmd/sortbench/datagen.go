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

package main

import (
	"fmt"
	"math/rand"
)

// Input distributions understood by the generator.
const (
	distRandom       = "random"
	distSorted       = "sorted"
	distReversed     = "reversed"
	distNearlySorted = "nearly_sorted"
)

var distributionNames = []string{distRandom, distSorted, distReversed, distNearlySorted}

func knownDistribution(name string) bool {
	for _, d := range distributionNames {
		if d == name {
			return true
		}
	}
	return false
}

// makeInput generates n elements following the named distribution. The
// nearly sorted shape is ascending data disturbed by n/20 random swaps.
func makeInput(dist string, n int, rng *rand.Rand) ([]int, error) {
	data := make([]int, n)

	switch dist {
	case distRandom:
		for i := range data {
			data[i] = rng.Intn(n * 10)
		}
	case distSorted:
		for i := range data {
			data[i] = i
		}
	case distReversed:
		for i := range data {
			data[i] = n - i
		}
	case distNearlySorted:
		for i := range data {
			data[i] = i
		}
		for s := 0; s < n/20; s++ {
			i, j := rng.Intn(n), rng.Intn(n)
			data[i], data[j] = data[j], data[i]
		}
	default:
		return nil, fmt.Errorf("unknown distribution %q", dist)
	}
	return data, nil
}
