//go:build !linux && !darwin

package sysinfo

import "codeberg.org/iklabib/runlog/model"

// AvailableMemory has no estimator on this platform.
func (p *Prober) AvailableMemory() (model.Optional[int64], error) {
	return model.None[int64](), nil
}
