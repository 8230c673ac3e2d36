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

//go:build amd64

package main

import "golang.org/x/sys/cpu"

// cpuFeatures reports the x86 vector extensions present on the host.
// Cache and vector width shape sorting throughput, so the report makes
// timings comparable across machines.
func cpuFeatures() []string {
	var feats []string
	if cpu.X86.HasSSE42 {
		feats = append(feats, "sse42")
	}
	if cpu.X86.HasAVX {
		feats = append(feats, "avx")
	}
	if cpu.X86.HasAVX2 {
		feats = append(feats, "avx2")
	}
	if cpu.X86.HasAVX512 {
		feats = append(feats, "avx512")
	}
	return feats
}
