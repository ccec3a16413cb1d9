package report

import (
	"encoding/json"
	"io"

	"codeberg.org/iklabib/runlog/model"
	"codeberg.org/iklabib/runlog/sysinfo"
)

type jsonReport struct {
	CPUCount       int32                 `json:"cpus"`
	TotalMemory    int64                 `json:"total_memory_bytes"`
	AvailableStart model.Optional[int64] `json:"available_memory_bytes_start"`
	AvailableEnd   model.Optional[int64] `json:"available_memory_bytes_end"`
	Host           *sysinfo.HostInfo     `json:"host,omitempty"`
	Command        []string              `json:"command"`
	Termination    string                `json:"termination"`
	Signal         int32                 `json:"signal"`
	ExitCode       int32                 `json:"exit_code"`
	WallTime       float64               `json:"real_time_sec"`
	UserTime       float64               `json:"user_time_sec"`
	SysTime        float64               `json:"sys_time_sec"`
	PeakRSS        int64                 `json:"peak_rss_bytes"`
	MinorFaults    model.Optional[int64] `json:"minor_page_faults"`
	MajorFaults    model.Optional[int64] `json:"major_page_faults"`
	BlockInput     model.Optional[int64] `json:"block_input_ops"`
	BlockOutput    model.Optional[int64] `json:"block_output_ops"`
}

// jsonReporter holds the header back and emits one object once finished.
type jsonReporter struct {
	w io.Writer
	header Header
}

func (r *jsonReporter) Start(h Header) error {
	r.header = h
	return nil
}

// nothing was written yet, so nothing is emitted
func (r *jsonReporter) Abort(error) error {
	return nil
}

func (r *jsonReporter) Finish(f Footer) error {
	res := f.Result
	out := jsonReport{
		CPUCount:       r.header.Before.CPUCount,
		TotalMemory:    r.header.Before.TotalMemory,
		AvailableStart: r.header.Before.AvailableMemory,
		AvailableEnd:   f.After.AvailableMemory,
		Host:           r.header.Host,
		Command:        r.header.Command,
		Termination:    res.Termination.String(),
		Signal:         res.TerminatingSignal(),
		ExitCode:       res.ExitCode(),
		WallTime:       res.WallSeconds(),
		UserTime:       res.UserSeconds(),
		SysTime:        res.SysSeconds(),
		PeakRSS:        res.PeakRSS,
		MinorFaults:    res.MinorFaults,
		MajorFaults:    res.MajorFaults,
		BlockInput:     res.BlockInput,
		BlockOutput:    res.BlockOutput,
	}

	return json.NewEncoder(r.w).Encode(out)
}
