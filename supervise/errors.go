package supervise

import "errors"

var (
	ErrNoCommand   = errors.New("no command to launch")
	ErrSpawnFailed = errors.New("failed to spawn child")
	ErrWaitFailed  = errors.New("failed to wait for child")
)

// ExecFailedStatus is the status a child exits with when it cannot replace
// its image with the target program after being spawned.
const ExecFailedStatus = 127
