//go:build darwin

package smcfile

import "syscall"

// detectPerfCores returns the performance-core count on Apple Silicon,
// falling back to the physical core count, or 0 if neither sysctl is
// available.
func detectPerfCores() int {
	for _, name := range []string{"hw.perflevel0.physicalcpu", "hw.physicalcpu"} {
		if n, err := syscall.SysctlUint32(name); err == nil && n > 0 {
			return int(n)
		}
	}
	return 0
}
