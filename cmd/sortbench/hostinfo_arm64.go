//go:build arm64

package main

import "golang.org/x/sys/cpu"

// cpuFeatures reports the ARM64 vector extensions present on the host.
// ASIMD is part of the ARMv8-A base architecture, so it is effectively
// always set; SVE shows up on newer server parts.
func cpuFeatures() []string {
	var feats []string
	if cpu.ARM64.HasASIMD {
		feats = append(feats, "asimd")
	}
	if cpu.ARM64.HasSVE {
		feats = append(feats, "sve")
	}
	return feats
}
