package report

import (
	"path/filepath"

	"codeberg.org/iklabib/runlog/model"
	"github.com/prometheus/client_golang/prometheus"
)

// WriteTextfile writes the launch as a node_exporter textfile collector file.
func WriteTextfile(path string, h Header, f Footer) error {
	return prometheus.WriteToTextfile(path, registry(h, f))
}

func registry(h Header, f Footer) *prometheus.Registry {
	labels := prometheus.Labels{}
	if len(h.Command) > 0 {
		labels["command"] = filepath.Base(h.Command[0])
	}

	reg := prometheus.NewRegistry()
	gauge := func(name, help string, value float64) {
		g := prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "runlog",
			Name:        name,
			Help:        help,
			ConstLabels: labels,
		})
		g.Set(value)
		reg.MustRegister(g)
	}

	optional := func(vec *prometheus.GaugeVec, label string, o model.Optional[int64]) {
		if v, ok := o.Get(); ok {
			vec.WithLabelValues(label).Set(float64(v))
		}
	}

	res := f.Result
	gauge("cpus", "Number of online processors.", float64(h.Before.CPUCount))
	gauge("total_memory_bytes", "Physical memory of the host.", float64(h.Before.TotalMemory))
	gauge("wall_time_seconds", "Elapsed real time of the child.", res.WallSeconds())
	gauge("user_time_seconds", "User CPU time of the child.", res.UserSeconds())
	gauge("sys_time_seconds", "System CPU time of the child.", res.SysSeconds())
	gauge("peak_rss_bytes", "Peak resident set size of the child.", float64(res.PeakRSS))
	gauge("exit_code", "Exit code of the child, -1 when it did not exit.", float64(res.ExitCode()))
	gauge("terminating_signal", "Signal that killed the child, 0 when it exited.", float64(res.TerminatingSignal()))

	available := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   "runlog",
		Name:        "available_memory_bytes",
		Help:        "Memory available to new demand, around the launch.",
		ConstLabels: labels,
	}, []string{"phase"})
	optional(available, "start", h.Before.AvailableMemory)
	optional(available, "end", f.After.AvailableMemory)

	faults := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   "runlog",
		Name:        "page_faults",
		Help:        "Page faults of the child.",
		ConstLabels: labels,
	}, []string{"kind"})
	optional(faults, "minor", res.MinorFaults)
	optional(faults, "major", res.MajorFaults)

	blocks := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   "runlog",
		Name:        "block_operations",
		Help:        "Block device operations of the child.",
		ConstLabels: labels,
	}, []string{"direction"})
	optional(blocks, "input", res.BlockInput)
	optional(blocks, "output", res.BlockOutput)

	reg.MustRegister(available, faults, blocks)

	return reg
}
