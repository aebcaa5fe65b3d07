//go:build linux

package benchmark

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

// PinToCPU locks the calling goroutine to its OS thread and restricts that thread to one CPU.
// The cpu must be in the process's current affinity mask. A negative cpu leaves scheduling alone.
func PinToCPU(cpu int) error {
	if cpu < 0 {
		return nil
	}

	// Containers often expose a cpuset such as 4-7, so check membership rather than count
	var allowed unix.CPUSet
	if err := unix.SchedGetaffinity(0, &allowed); err != nil {
		return fmt.Errorf("unable to read cpu affinity: %w", err)
	}
	if !allowed.IsSet(cpu) {
		return fmt.Errorf("cpu %d is not in the allowed set (%d cpus available)", cpu, allowed.Count())
	}

	runtime.LockOSThread()

	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)

	// pid 0 targets the calling thread, which LockOSThread has just fixed
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		runtime.UnlockOSThread()
		return fmt.Errorf("unable to set cpu affinity: %w", err)
	}

	fmt.Printf("Measuring thread pinned to CPU %d.\n", cpu)
	return nil
}
