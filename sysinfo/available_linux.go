package sysinfo

import (
	"os"
	"path/filepath"

	"codeberg.org/iklabib/runlog/model"
	"github.com/prometheus/procfs"
)

// AvailableMemory derives available memory from meminfo in bytes.
func (p *Prober) AvailableMemory() (model.Optional[int64], error) {
	f, err := os.Open(filepath.Join(p.ProcRoot, "meminfo"))
	if err != nil {
		p.Logger.WithError(err).Warn("meminfo unavailable")
		return model.None[int64](), nil
	}
	defer f.Close()

	info, err := ParseMeminfo(f)
	if err != nil {
		return model.None[int64](), err
	}

	var minFree int64 = -1
	if _, ok := info.MemAvailable.Get(); ok {
		p.Logger.Debug("available memory from MemAvailable")
	} else {
		minFree = p.minFreeKbytes()
		p.Logger.WithField("min_free_kbytes", minFree).Debug("available memory from fallback counters")
	}

	avail, err := EstimateAvailable(info, minFree)
	if err != nil {
		return model.None[int64](), err
	}

	return model.Some(avail * 1024), nil
}

// -1 when the sysctl cannot be read, which the estimate tolerates
func (p *Prober) minFreeKbytes() int64 {
	fs, err := procfs.NewFS(p.ProcRoot)
	if err != nil {
		p.Logger.WithError(err).Warn("procfs unavailable")
		return -1
	}

	vm, err := fs.VM()
	if err != nil || vm.MinFreeKbytes == nil {
		p.Logger.WithError(err).Warn("min_free_kbytes unavailable")
		return -1
	}

	return *vm.MinFreeKbytes
}
