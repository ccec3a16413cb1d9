//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly || solaris

package sysinfo

import "github.com/tklauser/go-sysconf"

// CPUCount returns the number of online processors.
func CPUCount() int32 {
	n, err := sysconf.Sysconf(sysconf.SC_NPROCESSORS_ONLN)
	if err != nil {
		return fallbackCPUCount()
	}
	return int32(n)
}

// TotalMemory returns physical memory in bytes.
func TotalMemory() int64 {
	pages, err := sysconf.Sysconf(sysconf.SC_PHYS_PAGES)
	if err != nil {
		return fallbackTotalMemory()
	}
	pageSize, err := sysconf.Sysconf(sysconf.SC_PAGESIZE)
	if err != nil {
		return fallbackTotalMemory()
	}
	return pages * pageSize
}
