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
	"runtime"
	"slices"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"

	"github.com/ajroetker/go-quicksort/qsort"
)

// Algorithm names accepted in configuration files.
const (
	algoQuicksort = "quicksort"
	algoOptimized = "optimized"
	algoHeap      = "heap"
	algoMerge     = "merge"
	algoRadix     = "radix"
	algoStdlib    = "stdlib"
)

// Plain quicksort goes quadratic on pre-ordered inputs; cases beyond
// this size are skipped rather than left to run for minutes.
const maxQuadraticSize = 10000

// sortFunc returns a sorted copy of its input.
type sortFunc func([]int) []int

var algorithms = map[string]sortFunc{
	algoQuicksort: qsort.Sorted[int],
	algoOptimized: qsort.SortedOptimized[int],
	algoHeap: func(data []int) []int {
		out := slices.Clone(data)
		qsort.HeapSort(out)
		return out
	},
	algoMerge: func(data []int) []int {
		out := slices.Clone(data)
		qsort.MergeSort(out)
		return out
	},
	algoRadix: func(data []int) []int {
		out := slices.Clone(data)
		qsort.RadixSort(out)
		return out
	},
	algoStdlib: func(data []int) []int {
		out := slices.Clone(data)
		slices.Sort(out)
		return out
	},
}

func algorithmNames() []string {
	names := maps.Keys(algorithms)
	slices.Sort(names)
	return names
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "time every configured algorithm x distribution x size scenario",
	Args:  cobra.NoArgs,
	RunE:  runBench,
}

func runBench(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg := defaultConfig()
	if configPath != "" {
		cfg, err = loadConfig(configPath)
		if err != nil {
			return err
		}
	}

	logHostInfo(logger)

	rng := rand.New(rand.NewSource(cfg.Seed))
	for _, dist := range cfg.Distributions {
		for _, n := range cfg.Sizes {
			input, err := makeInput(dist, n, rng)
			if err != nil {
				return err
			}

			for _, name := range cfg.Algorithms {
				if skipScenario(name, dist, n) {
					logger.Debug("skipping quadratic scenario",
						zap.String("algorithm", name),
						zap.String("distribution", dist),
						zap.Int("size", n))
					continue
				}

				avg, err := timeScenario(algorithms[name], input, cfg.Repetitions)
				if err != nil {
					return fmt.Errorf("%s on %s/%d: %w", name, dist, n, err)
				}

				logger.Info("scenario complete",
					zap.String("algorithm", name),
					zap.String("distribution", dist),
					zap.Int("size", n),
					zap.Int("repetitions", cfg.Repetitions),
					zap.Duration("avg", avg))
			}
		}
	}
	return nil
}

// timeScenario runs sort over input the given number of times, checking
// every result, and returns the average duration.
func timeScenario(sort sortFunc, input []int, reps int) (time.Duration, error) {
	var total time.Duration
	for rep := 0; rep < reps; rep++ {
		start := time.Now()
		out := sort(input)
		total += time.Since(start)

		if len(out) != len(input) {
			return 0, fmt.Errorf("output has %d elements, want %d", len(out), len(input))
		}
		if !qsort.IsSorted(out) {
			return 0, fmt.Errorf("output is not sorted")
		}
	}
	return total / time.Duration(reps), nil
}

func skipScenario(name, dist string, n int) bool {
	return name == algoQuicksort && n > maxQuadraticSize && dist != distRandom
}

func logHostInfo(logger *zap.Logger) {
	logger.Info("host",
		zap.String("go", runtime.Version()),
		zap.String("arch", runtime.GOARCH),
		zap.Int("cpus", runtime.NumCPU()),
		zap.Strings("features", cpuFeatures()))
}
