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
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-quicksort/qsort"
)

func TestMakeInputSorted(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	data, err := makeInput(distSorted, 100, rng)
	require.NoError(t, err)
	require.Len(t, data, 100)
	require.True(t, qsort.IsSorted(data))
}

func TestMakeInputReversed(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	data, err := makeInput(distReversed, 100, rng)
	require.NoError(t, err)
	require.Len(t, data, 100)

	for i := 1; i < len(data); i++ {
		require.Greater(t, data[i-1], data[i], "index %d", i)
	}
}

func TestMakeInputNearlySorted(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	n := 1000
	data, err := makeInput(distNearlySorted, n, rng)
	require.NoError(t, err)
	require.Len(t, data, n)

	// The swaps only rearrange; the values stay a permutation of 0..n-1.
	sorted := slices.Clone(data)
	slices.Sort(sorted)
	for i, v := range sorted {
		require.Equal(t, i, v)
	}

	// Fewer than n/20 swap pairs means at most n/10 displaced elements.
	displaced := 0
	for i, v := range data {
		if v != i {
			displaced++
		}
	}
	require.LessOrEqual(t, displaced, n/10)
}

func TestMakeInputRandomRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	n := 500
	data, err := makeInput(distRandom, n, rng)
	require.NoError(t, err)
	require.Len(t, data, n)

	for _, v := range data {
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, n*10)
	}
}

func TestMakeInputDeterministic(t *testing.T) {
	a, err := makeInput(distRandom, 200, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, err := makeInput(distRandom, 200, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestMakeInputUnknownDistribution(t *testing.T) {
	_, err := makeInput("zigzag", 10, rand.New(rand.NewSource(1)))
	require.ErrorContains(t, err, "unknown distribution")
}
