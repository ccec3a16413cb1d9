package model

const (
	// reported by the tool when the child died by a signal
	SignaledExitStatus = 2
	// reported by the tool when the measurement itself failed
	SupervisorFailureStatus = 125
	UsageExitStatus         = 1
)

// ExitStatus maps a child's termination to the exit status of the tool.
func ExitStatus(t Termination) int {
	switch t := t.(type) {
	case Exited:
		return int(t.Code)
	case Signaled:
		return SignaledExitStatus
	default:
		return SupervisorFailureStatus
	}
}
