//go:build unix

package supervise

import (
	"codeberg.org/iklabib/runlog/model"
	"golang.org/x/sys/unix"
)

func classify(ws unix.WaitStatus) model.Termination {
	switch {
	case ws.Exited():
		return model.Exited{Code: int32(ws.ExitStatus())}
	case ws.Signaled():
		return model.Signaled{Number: int32(ws.Signal())}
	default:
		// stopped or continued, a blocking wait without WUNTRACED never sees these
		return model.Anomalous{Raw: uint32(ws)}
	}
}
