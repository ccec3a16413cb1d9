package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"codeberg.org/iklabib/runlog/configs"
	"codeberg.org/iklabib/runlog/model"
	"codeberg.org/iklabib/runlog/sysinfo"
	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func fixture() (Header, Footer) {
	h := Header{
		Command: []string{"/bin/sh", "-c", "exit 7"},
		Before: model.SystemSnapshot{
			CPUCount:        8,
			TotalMemory:     16 << 30,
			AvailableMemory: model.Some[int64](8 << 30),
		},
	}
	f := Footer{
		After: model.SystemSnapshot{CPUCount: 8, TotalMemory: 16 << 30},
		Result: &model.LaunchResult{
			Command:     h.Command,
			WallTime:    1500 * time.Millisecond,
			UserTime:    1250 * time.Millisecond,
			SysTime:     125 * time.Millisecond,
			PeakRSS:     12345 * 1024,
			Termination: model.Exited{Code: 7},
			MinorFaults: model.Some[int64](10),
			MajorFaults: model.Some[int64](0),
			BlockOutput: model.Some[int64](3),
		},
	}
	return h, f
}

func TestTextReport(t *testing.T) {
	h, f := fixture()
	var buf bytes.Buffer
	r := New(configs.FormatText, &buf)

	assert.NilError(t, r.Start(h))
	buf.WriteString("child output\n")
	assert.NilError(t, r.Finish(f))

	want := `runlog_number_of_cpus	8
runlog_total_ram_in_gb	16.000000
runlog_available_ram_in_gb_start	8.000000
runlog_command_line	/bin/sh -c exit 7
runlog_start =====>
child output
runlog_end <=====
runlog_available_ram_in_gb_end	NA
runlog_signal	0
runlog_return_value	7
runlog_real_time_in_sec	1.500
runlog_user_time_in_sec	1.250
runlog_sys_time_in_sec	0.125
runlog_peak_rss_in_mb	12.055664
runlog_minor_page_faults	10
runlog_major_page_faults	0
runlog_block_input_ops	NA
runlog_block_output_ops	3
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("text report mismatch (-want +got):\n%s", diff)
	}
}

func TestTextReportSignaledWithHost(t *testing.T) {
	h, f := fixture()
	h.Host = &sysinfo.HostInfo{Hostname: "builder", OS: "linux", KernelVersion: "6.1.0", KernelArch: "x86_64"}
	f.Result.Termination = model.Signaled{Number: 9}

	var buf bytes.Buffer
	r := New(configs.FormatText, &buf)
	assert.NilError(t, r.Start(h))
	assert.NilError(t, r.Finish(f))

	out := buf.String()
	assert.Check(t, is.Contains(out, "runlog_hostname\tbuilder\n"))
	assert.Check(t, is.Contains(out, "runlog_kernel\tlinux 6.1.0 x86_64\n"))
	assert.Check(t, is.Contains(out, "runlog_signal\t9\n"))
	assert.Check(t, is.Contains(out, "runlog_return_value\t-1\n"))
}

func TestJSONReport(t *testing.T) {
	h, f := fixture()
	var buf bytes.Buffer
	r := New(configs.FormatJSON, &buf)

	assert.NilError(t, r.Start(h))
	assert.Equal(t, buf.Len(), 0)
	assert.NilError(t, r.Finish(f))

	var got map[string]any
	assert.NilError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, got["exit_code"], float64(7))
	assert.Equal(t, got["signal"], float64(0))
	assert.Equal(t, got["termination"], "exited with status 7")
	assert.Equal(t, got["available_memory_bytes_start"], float64(8<<30))
	assert.Equal(t, got["available_memory_bytes_end"], nil)
	assert.Equal(t, got["block_input_ops"], nil)
	assert.Equal(t, got["major_page_faults"], float64(0))
	assert.Equal(t, got["peak_rss_bytes"], float64(12345*1024))
	_, hasHost := got["host"]
	assert.Assert(t, !hasHost)
}

func TestTextReportAbort(t *testing.T) {
	h, _ := fixture()
	var buf bytes.Buffer
	r := New(configs.FormatText, &buf)

	assert.NilError(t, r.Start(h))
	assert.NilError(t, r.Abort(errors.New("failed to spawn child: no such file")))

	out := buf.String()
	assert.Check(t, strings.HasSuffix(out, "runlog_start =====>\nrunlog_end <=====\nrunlog_error\tfailed to spawn child: no such file\n"))
	assert.Check(t, !strings.Contains(out, "runlog_return_value"))
}

func TestJSONReportAbort(t *testing.T) {
	h, _ := fixture()
	var buf bytes.Buffer
	r := New(configs.FormatJSON, &buf)

	assert.NilError(t, r.Start(h))
	assert.NilError(t, r.Abort(errors.New("wait failed")))
	assert.Equal(t, buf.Len(), 0)
}

func TestMetrics(t *testing.T) {
	h, f := fixture()

	expected := `
# HELP runlog_exit_code Exit code of the child, -1 when it did not exit.
# TYPE runlog_exit_code gauge
runlog_exit_code{command="sh"} 7
# HELP runlog_available_memory_bytes Memory available to new demand, around the launch.
# TYPE runlog_available_memory_bytes gauge
runlog_available_memory_bytes{command="sh",phase="start"} 8589934592
# HELP runlog_block_operations Block device operations of the child.
# TYPE runlog_block_operations gauge
runlog_block_operations{command="sh",direction="output"} 3
`
	err := testutil.GatherAndCompare(registry(h, f), strings.NewReader(expected),
		"runlog_exit_code", "runlog_available_memory_bytes", "runlog_block_operations")
	assert.NilError(t, err)
}

func TestWriteTextfile(t *testing.T) {
	h, f := fixture()
	path := filepath.Join(t.TempDir(), "runlog.prom")

	assert.NilError(t, WriteTextfile(path, h, f))

	content, err := os.ReadFile(path)
	assert.NilError(t, err)
	assert.Check(t, is.Contains(string(content), `runlog_peak_rss_bytes{command="sh"}`))
	assert.Check(t, is.Contains(string(content), `runlog_wall_time_seconds{command="sh"} 1.5`))
}
