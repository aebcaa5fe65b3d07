package sysinfo

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

const unknown = "unknown"

// HostInfo describes the machine a benchmark ran on.
type HostInfo struct {
	CPUModel     string
	LogicalCores int
	CacheKB      int32  // Per-CPU cache size as reported by the OS, 0 if unknown
	TotalMemory  uint64 // Bytes, 0 if unknown
	OS           string
	Arch         string
}

// Describe collects host details. Lookups that fail leave their field unknown.
func Describe() HostInfo {
	info := HostInfo{
		CPUModel: unknown,
		OS:       runtime.GOOS,
		Arch:     runtime.GOARCH,
	}

	if stats, err := cpu.Info(); err == nil && len(stats) > 0 {
		if stats[0].ModelName != "" {
			info.CPUModel = stats[0].ModelName
		}
		info.CacheKB = stats[0].CacheSize
	}

	if n, err := cpu.Counts(true); err == nil {
		info.LogicalCores = n
	} else {
		info.LogicalCores = runtime.NumCPU()
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		info.TotalMemory = vm.Total
	}
	return info
}

// String renders a one-line summary, e.g. "Intel(R) Xeon(R) | 8 cores | 32768 KB cache | 15.5 GiB | linux/amd64".
func (h HostInfo) String() string {
	cache := unknown
	if h.CacheKB > 0 {
		cache = fmt.Sprintf("%d KB", h.CacheKB)
	}
	memory := unknown
	if h.TotalMemory > 0 {
		memory = fmt.Sprintf("%.1f GiB", float64(h.TotalMemory)/(1024*1024*1024))
	}
	return fmt.Sprintf("%s | %d cores | %s cache | %s | %s/%s",
		h.CPUModel, h.LogicalCores, cache, memory, h.OS, h.Arch)
}
