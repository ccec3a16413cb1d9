package model

import (
	"fmt"
	"time"
)

const (
	NoExitCode int32 = -1
	NoSignal   int32 = 0
)

// Termination describes how a child process ended. Exactly one of the
// variants Exited, Signaled or Anomalous is produced per child.
type Termination interface {
	ExitCode() int32
	TerminatingSignal() int32
	String() string
	isTermination()
}

// Exited is a child that ran to its own exit call.
type Exited struct {
	Code int32
}

func (e Exited) ExitCode() int32          { return e.Code }
func (e Exited) TerminatingSignal() int32 { return NoSignal }
func (e Exited) String() string           { return fmt.Sprintf("exited with status %d", e.Code) }
func (Exited) isTermination()             {}

// Signaled is a child killed by delivery of a signal.
type Signaled struct {
	Number int32
}

func (s Signaled) ExitCode() int32          { return NoExitCode }
func (s Signaled) TerminatingSignal() int32 { return s.Number }
func (s Signaled) String() string           { return fmt.Sprintf("killed by signal %d", s.Number) }
func (Signaled) isTermination()             {}

// Anomalous holds a raw wait status that is neither an exit nor a signal
// death, e.g. stopped or continued. Both accessors return their sentinels.
type Anomalous struct {
	Raw uint32
}

func (a Anomalous) ExitCode() int32          { return NoExitCode }
func (a Anomalous) TerminatingSignal() int32 { return NoSignal }
func (a Anomalous) String() string           { return fmt.Sprintf("anomalous wait status %#x", a.Raw) }
func (Anomalous) isTermination()             {}

type LaunchResult struct {
	Command  []string
	WallTime time.Duration
	UserTime time.Duration
	SysTime  time.Duration
	PeakRSS  int64 // bytes

	Termination Termination

	MinorFaults Optional[int64]
	MajorFaults Optional[int64]
	BlockInput  Optional[int64]
	BlockOutput Optional[int64]
}

func (r *LaunchResult) WallSeconds() float64 { return r.WallTime.Seconds() }
func (r *LaunchResult) UserSeconds() float64 { return r.UserTime.Seconds() }
func (r *LaunchResult) SysSeconds() float64  { return r.SysTime.Seconds() }

func (r *LaunchResult) ExitCode() int32 {
	if r.Termination == nil {
		return NoExitCode
	}
	return r.Termination.ExitCode()
}

func (r *LaunchResult) TerminatingSignal() int32 {
	if r.Termination == nil {
		return NoSignal
	}
	return r.Termination.TerminatingSignal()
}

type SystemSnapshot struct {
	CPUCount        int32
	TotalMemory     int64 // bytes
	AvailableMemory Optional[int64]
}
