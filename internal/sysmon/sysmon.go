// Package sysmon samples system and process resource usage for the TUI
// footer.
package sysmon

import (
	"os"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
)

// Stats is one snapshot of resource usage.
type Stats struct {
	// CPUPercent is system-wide CPU usage, 0..100.
	CPUPercent float64
	// MemPercent is system-wide memory usage, 0..100.
	MemPercent float64
	// ProcessRSS is this process's resident set size in bytes.
	ProcessRSS uint64
}

// Sample collects one snapshot. CPU uses interval=0, i.e. the delta since the
// previous call. Fields that cannot be sampled stay zero; sampling never
// fails hard, the dashboard just shows zeros.
func Sample() Stats {
	var s Stats

	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = pcts[0]
	}
	if vmem, err := mem.VirtualMemory(); err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	if proc, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if info, err := proc.MemoryInfo(); err == nil && info != nil {
			s.ProcessRSS = info.RSS
		}
	}
	return s
}
