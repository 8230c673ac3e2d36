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

// Command sortbench times the sorting implementations against each other
// and against the standard library across input distributions.
//
// Usage:
//
//	sortbench run                          # built-in sizes and distributions
//	sortbench run --config bench.toml      # scenario matrix from a TOML file
//	sortbench demo --size 1000             # per-algorithm operation counters
//
// The run subcommand executes every algorithm x distribution x size
// combination from the configuration, verifies each result, and reports
// timings. The demo subcommand sorts a handful of inputs with the
// instrumented quicksort and prints its comparison, swap, and recursion
// depth counters.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "sortbench",
	Short: "benchmark harness for the quicksort library",
	Long: `sortbench exercises the sorting implementations on generated inputs.

Scenarios are driven either by built-in defaults or by a TOML
configuration file naming the algorithms, input distributions, sizes,
and repetition count to run.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML scenario file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(demoCmd)
}

// newLogger builds the process logger. Debug level is gated behind the
// verbose flag.
func newLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
