package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"codeberg.org/iklabib/runlog/model"
)

const (
	gigabyte = 1073741824.0
	megabyte = 1048576.0

	notAvailable = "NA"
)

type textReporter struct {
	w   io.Writer
	err error
}

func (r *textReporter) Start(h Header) error {
	r.line("runlog_number_of_cpus", strconv.Itoa(int(h.Before.CPUCount)))
	r.line("runlog_total_ram_in_gb", fmt.Sprintf("%.6f", float64(h.Before.TotalMemory)/gigabyte))
	r.line("runlog_available_ram_in_gb_start", gigabytes(h.Before.AvailableMemory))
	if h.Host != nil {
		r.line("runlog_hostname", h.Host.Hostname)
		r.line("runlog_kernel", strings.Join([]string{h.Host.OS, h.Host.KernelVersion, h.Host.KernelArch}, " "))
	}
	r.line("runlog_command_line", strings.Join(h.Command, " "))
	r.printf("runlog_start =====>\n")
	return r.err
}

func (r *textReporter) Finish(f Footer) error {
	res := f.Result
	r.printf("runlog_end <=====\n")
	r.line("runlog_available_ram_in_gb_end", gigabytes(f.After.AvailableMemory))
	r.line("runlog_signal", strconv.Itoa(int(res.TerminatingSignal())))
	r.line("runlog_return_value", strconv.Itoa(int(res.ExitCode())))
	r.line("runlog_real_time_in_sec", fmt.Sprintf("%.3f", res.WallSeconds()))
	r.line("runlog_user_time_in_sec", fmt.Sprintf("%.3f", res.UserSeconds()))
	r.line("runlog_sys_time_in_sec", fmt.Sprintf("%.3f", res.SysSeconds()))
	r.line("runlog_peak_rss_in_mb", fmt.Sprintf("%.6f", float64(res.PeakRSS)/megabyte))
	r.line("runlog_minor_page_faults", count(res.MinorFaults))
	r.line("runlog_major_page_faults", count(res.MajorFaults))
	r.line("runlog_block_input_ops", count(res.BlockInput))
	r.line("runlog_block_output_ops", count(res.BlockOutput))
	return r.err
}

// the header is already out, mark it so it never reads as a measurement
func (r *textReporter) Abort(err error) error {
	r.printf("runlog_end <=====\n")
	r.line("runlog_error", err.Error())
	return r.err
}

func (r *textReporter) line(key, value string) {
	r.printf("%s\t%s\n", key, value)
}

// the first write error sticks
func (r *textReporter) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

func gigabytes(o model.Optional[int64]) string {
	v, ok := o.Get()
	if !ok {
		return notAvailable
	}
	return fmt.Sprintf("%.6f", float64(v)/gigabyte)
}

func count(o model.Optional[int64]) string {
	v, ok := o.Get()
	if !ok {
		return notAvailable
	}
	return strconv.FormatInt(v, 10)
}
