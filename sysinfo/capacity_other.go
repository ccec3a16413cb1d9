//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly && !solaris

package sysinfo

func CPUCount() int32 {
	return fallbackCPUCount()
}

func TotalMemory() int64 {
	return fallbackTotalMemory()
}
