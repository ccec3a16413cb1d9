//go:build !unix

package supervise

import (
	"errors"
	"fmt"
	"io"
	"runtime"

	"codeberg.org/iklabib/runlog/model"
	"github.com/sirupsen/logrus"
)

type Supervisor struct {
	Logger  logrus.FieldLogger
	Signals Disposer
}

func New(logger logrus.FieldLogger) *Supervisor {
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}
	return &Supervisor{Logger: logger, Signals: NotifyDisposer{}}
}

// Run reports that supervision is not implemented on this platform.
func (s *Supervisor) Run(argv []string) (*model.LaunchResult, error) {
	if len(argv) == 0 {
		return nil, ErrNoCommand
	}
	return nil, fmt.Errorf("%w: %s: %w", ErrSpawnFailed, runtime.GOOS, errors.ErrUnsupported)
}
