//go:build unix

package supervise

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"
	"time"

	"codeberg.org/iklabib/runlog/model"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

type spawnFunc func(path string, argv []string) (int, error)

type waitFunc func(pid int, status *unix.WaitStatus, options int, rusage *unix.Rusage) (int, error)

// Supervisor launches one child at a time and blocks until it terminates.
type Supervisor struct {
	Logger  logrus.FieldLogger
	Signals Disposer

	lookPath func(file string) (string, error)
	spawn    spawnFunc
	wait4    waitFunc
}

func New(logger logrus.FieldLogger) *Supervisor {
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}

	return &Supervisor{
		Logger:   logger,
		Signals:  NotifyDisposer{},
		lookPath: exec.LookPath,
		spawn:    forkExec,
		wait4:    unix.Wait4,
	}
}

// Run executes argv[0] with argv as its arguments and reports the resources
// the child consumed. The child inherits the environment and standard streams.
func (s *Supervisor) Run(argv []string) (*model.LaunchResult, error) {
	if len(argv) == 0 {
		return nil, ErrNoCommand
	}

	path, err := s.lookPath(argv[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSpawnFailed, err)
	}

	start := time.Now()
	pid, err := s.spawn(path, argv)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSpawnFailed, path, err)
	}

	log := s.Logger.WithField("pid", pid)
	log.WithField("path", path).Debug("child spawned")

	status, usage, stop, err := s.waitChild(log, pid)
	if err != nil {
		return nil, err
	}

	result := translate(usage)
	result.Command = append([]string(nil), argv...)
	result.WallTime = stop.Sub(start)
	result.Termination = classify(status)

	log.WithField("termination", result.Termination.String()).Debug("child terminated")

	return result, nil
}

// interrupt and quit meant for the child must not end the measurement early
func (s *Supervisor) waitChild(log logrus.FieldLogger, pid int) (unix.WaitStatus, *unix.Rusage, time.Time, error) {
	restore := s.Signals.Suppress(unix.SIGINT, unix.SIGQUIT)
	defer restore()

	var status unix.WaitStatus
	var usage unix.Rusage
	for {
		wpid, err := s.wait4(pid, &status, 0, &usage)
		if errors.Is(err, unix.EINTR) {
			log.Debug("wait interrupted, retrying")
			continue
		}
		if err != nil {
			return 0, nil, time.Time{}, fmt.Errorf("%w: pid %d: %w", ErrWaitFailed, pid, err)
		}
		if wpid == pid {
			return status, &usage, time.Now(), nil
		}
		log.WithField("wpid", wpid).Debug("wait returned another process")
	}
}

func forkExec(path string, argv []string) (int, error) {
	attr := &syscall.ProcAttr{
		Env:   os.Environ(),
		Files: []uintptr{os.Stdin.Fd(), os.Stdout.Fd(), os.Stderr.Fd()},
	}
	return syscall.ForkExec(path, argv, attr)
}
