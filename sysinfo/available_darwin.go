package sysinfo

import (
	"codeberg.org/iklabib/runlog/model"
	"github.com/tklauser/go-sysconf"
	"golang.org/x/sys/unix"
)

// AvailableMemory reads the VM page counters the kernel keeps in
// vm_statistics64 and returns free plus file cache in bytes.
func (p *Prober) AvailableMemory() (model.Optional[int64], error) {
	var counts VMPageCounts
	for _, c := range []struct {
		name string
		dst  *uint32
	}{
		{"vm.page_free_count", &counts.Free},
		{"vm.page_speculative_count", &counts.Speculative},
		{"vm.page_purgeable_count", &counts.Purgeable},
		{"vm.page_pageable_external_count", &counts.External},
	} {
		v, err := unix.SysctlUint32(c.name)
		if err != nil {
			p.Logger.WithError(err).WithField("sysctl", c.name).Warn("vm statistics unavailable")
			return model.None[int64](), nil
		}
		*c.dst = v
	}

	pageSize, err := sysconf.Sysconf(sysconf.SC_PAGESIZE)
	if err != nil {
		return model.None[int64](), nil
	}

	avail, ok := counts.Available(pageSize)
	if !ok {
		p.Logger.WithField("counts", counts).Warn("inconsistent vm statistics")
		return model.None[int64](), nil
	}

	return model.Some(avail), nil
}
