//go:build unix

package supervise

import (
	"time"

	"codeberg.org/iklabib/runlog/model"
	"golang.org/x/sys/unix"
)

// translate is the only place where the platform rusage layout is read.
func translate(ru *unix.Rusage) *model.LaunchResult {
	return &model.LaunchResult{
		UserTime: time.Duration(ru.Utime.Nano()),
		SysTime:  time.Duration(ru.Stime.Nano()),

		// casts are not redundant on 32-bit arches
		PeakRSS:     normalizeMaxRSS(int64(ru.Maxrss), maxRSSUnit()),
		MinorFaults: model.Some(int64(ru.Minflt)),
		MajorFaults: model.Some(int64(ru.Majflt)),
		BlockInput:  model.Some(int64(ru.Inblock)),
		BlockOutput: model.Some(int64(ru.Oublock)),
	}
}
