// Package report renders a launch and the system snapshots around it.
package report

import (
	"io"

	"codeberg.org/iklabib/runlog/configs"
	"codeberg.org/iklabib/runlog/model"
	"codeberg.org/iklabib/runlog/sysinfo"
)

// Header is known before the child is spawned.
type Header struct {
	Command []string
	Before  model.SystemSnapshot
	Host    *sysinfo.HostInfo
}

// Footer is known once the child has terminated.
type Footer struct {
	After  model.SystemSnapshot
	Result *model.LaunchResult
}

// Reporter writes the header before the child runs so the child's own
// output lands between the two halves.
type Reporter interface {
	Start(h Header) error
	Finish(f Footer) error
	// Abort closes a started report when no measurement could be taken.
	Abort(err error) error
}

func New(format string, w io.Writer) Reporter {
	if format == configs.FormatJSON {
		return &jsonReporter{w: w}
	}
	return &textReporter{w: w}
}
