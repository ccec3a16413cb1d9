package sysinfo

import (
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

func fallbackCPUCount() int32 {
	n, err := cpu.Counts(true)
	if err != nil || n <= 0 {
		return int32(runtime.NumCPU())
	}
	return int32(n)
}

func fallbackTotalMemory() int64 {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0
	}
	return int64(vm.Total)
}
