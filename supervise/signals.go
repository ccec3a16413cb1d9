package supervise

import (
	"os"
	"os/signal"
)

// Disposer suppresses the default disposition of signals for a scope. The
// returned function restores exactly what was in effect before.
type Disposer interface {
	Suppress(sigs ...os.Signal) (restore func())
}

// NotifyDisposer routes suppressed signals to a channel nobody reads, which
// keeps them from terminating the supervisor. Signals already ignored are
// left alone; signal.Stop only drops this channel, so any handler installed
// by the caller is preserved.
type NotifyDisposer struct{}

func (NotifyDisposer) Suppress(sigs ...os.Signal) func() {
	var caught []os.Signal
	for _, sig := range sigs {
		if !signal.Ignored(sig) {
			caught = append(caught, sig)
		}
	}

	if len(caught) == 0 {
		return func() {}
	}

	sink := make(chan os.Signal, 1)
	signal.Notify(sink, caught...)

	return func() {
		signal.Stop(sink)
	}
}
