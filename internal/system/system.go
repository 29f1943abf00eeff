// Package system sizes the sprite pipeline's parallelism from the host it
// runs on.
package system

import (
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// frameBudget is the memory assumed per in-flight decoded frame. Large
// sprite sheets decode to tens of megabytes; this leaves generous headroom.
const frameBudget = 256 << 20

// Workers returns how many frames may be decoded concurrently: one per
// logical CPU, reduced so the in-flight frames fit in available memory,
// and never above max (0 means no cap). Always at least 1.
func Workers(max int) int {
	n := 1
	if counts, err := cpu.Counts(true); err == nil && counts > 1 {
		n = counts
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		byMem := int(vm.Available / frameBudget)
		if byMem < 1 {
			byMem = 1
		}
		if n > byMem {
			n = byMem
		}
	}

	if max > 0 && n > max {
		n = max
	}
	return n
}
