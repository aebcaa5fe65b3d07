//go:build !linux

package benchmark

import (
	"errors"
	"runtime"
)

// PinToCPU only locks the OS thread here; per-thread affinity needs Linux.
func PinToCPU(cpu int) error {
	if cpu < 0 {
		return nil
	}
	runtime.LockOSThread()
	return errors.New("cpu pinning is only supported on linux")
}
