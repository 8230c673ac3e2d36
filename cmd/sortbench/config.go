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

	"github.com/BurntSushi/toml"
)

// Config describes the scenario matrix the run subcommand executes.
type Config struct {
	// Algorithms to time. See algorithmNames for the accepted values.
	Algorithms []string `toml:"algorithms"`

	// Distributions of generated input data.
	Distributions []string `toml:"distributions"`

	// Sizes of the generated inputs, in element counts.
	Sizes []int `toml:"sizes"`

	// Repetitions per scenario; reported times are the average.
	Repetitions int `toml:"repetitions"`

	// Seed for the input generator. Fixed so runs are reproducible.
	Seed int64 `toml:"seed"`
}

// defaultConfig returns the scenario matrix used when no file is given.
func defaultConfig() Config {
	return Config{
		Algorithms:    []string{algoQuicksort, algoOptimized, algoStdlib},
		Distributions: []string{distRandom, distSorted, distReversed, distNearlySorted},
		Sizes:         []int{1000, 10000, 100000},
		Repetitions:   5,
		Seed:          1,
	}
}

// loadConfig reads a TOML scenario file. Fields missing from the file
// keep their defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if len(c.Algorithms) == 0 {
		return fmt.Errorf("no algorithms configured")
	}
	for _, name := range c.Algorithms {
		if _, ok := algorithms[name]; !ok {
			return fmt.Errorf("unknown algorithm %q (have %v)", name, algorithmNames())
		}
	}
	if len(c.Distributions) == 0 {
		return fmt.Errorf("no distributions configured")
	}
	for _, dist := range c.Distributions {
		if !knownDistribution(dist) {
			return fmt.Errorf("unknown distribution %q (have %v)", dist, distributionNames)
		}
	}
	if len(c.Sizes) == 0 {
		return fmt.Errorf("no sizes configured")
	}
	for _, n := range c.Sizes {
		if n <= 0 {
			return fmt.Errorf("invalid size %d", n)
		}
	}
	if c.Repetitions < 1 {
		return fmt.Errorf("repetitions must be at least 1, got %d", c.Repetitions)
	}
	return nil
}
