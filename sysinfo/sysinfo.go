// Package sysinfo reports point-in-time host capacity: CPU count, total
// memory and an estimate of the memory available to new demand.
package sysinfo

import (
	"io"

	"codeberg.org/iklabib/runlog/model"
	"github.com/sirupsen/logrus"
)

const DefaultProcRoot = "/proc"

// Prober takes system snapshots. ProcRoot is only consulted on linux.
type Prober struct {
	ProcRoot string
	Logger   logrus.FieldLogger
}

func NewProber(procRoot string, logger logrus.FieldLogger) *Prober {
	if procRoot == "" {
		procRoot = DefaultProcRoot
	}
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}
	return &Prober{ProcRoot: procRoot, Logger: logger}
}

// Snapshot never fails for an unsupported or failing estimator, the value is
// absent instead. Only ErrMalformedKernelOutput is reported.
func (p *Prober) Snapshot() (model.SystemSnapshot, error) {
	avail, err := p.AvailableMemory()
	if err != nil {
		return model.SystemSnapshot{}, err
	}

	return model.SystemSnapshot{
		CPUCount:        CPUCount(),
		TotalMemory:     TotalMemory(),
		AvailableMemory: avail,
	}, nil
}
