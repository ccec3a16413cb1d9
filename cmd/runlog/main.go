package main

import (
	"fmt"
	"io"
	"os"

	"codeberg.org/iklabib/runlog/configs"
	"codeberg.org/iklabib/runlog/model"
	"codeberg.org/iklabib/runlog/report"
	"codeberg.org/iklabib/runlog/supervise"
	"codeberg.org/iklabib/runlog/sysinfo"
	"codeberg.org/iklabib/runlog/util"
	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	code, err := run(os.Args[1:], log)
	util.Bail(log, err)

	os.Exit(code)
}

type CLI struct {
	Config      string   `short:"c" env:"RUNLOG_CONFIG" help:"YAML config file."`
	Output      string   `short:"o" help:"Write the report to a file instead of stderr."`
	Format      string   `short:"f" help:"Report format, text or json."`
	MetricsFile string   `name:"metrics-file" help:"Also write a Prometheus textfile collector file."`
	EnvFile     []string `name:"env-file" help:"Load variables for the child from a dotenv file."`
	HostInfo    bool     `name:"host-info" help:"Report hostname and kernel."`
	Verbose     int      `short:"v" type:"counter" help:"Log more, repeat for debug output."`
	Command     []string `arg:"" optional:"" passthrough:"" help:"Program and its arguments."`
}

// run returns the exit status of the tool; a non-nil error means the
// measurement could not be taken.
func run(args []string, log *logrus.Logger) (int, error) {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("runlog"),
		kong.Description("Run a program and log the resources it used."),
	)
	if err != nil {
		return 0, err
	}

	if _, err := parser.Parse(args); err != nil {
		parser.Errorf("%s", err)
		return model.UsageExitStatus, nil
	}

	if len(cli.Command) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: runlog [flags] <prog> [arguments]")
		return model.UsageExitStatus, nil
	}

	config, err := configs.LoadConfig(cli.Config)
	if err != nil {
		return 0, err
	}
	cli.apply(&config)
	if err := config.Validate(); err != nil {
		return 0, err
	}

	level, _ := logrus.ParseLevel(config.LogLevel)
	switch {
	case cli.Verbose == 1:
		level = logrus.InfoLevel
	case cli.Verbose > 1:
		level = logrus.DebugLevel
	}
	log.SetLevel(level)

	if err := configs.LoadEnvFiles(config.EnvFiles); err != nil {
		return 0, err
	}

	out, err := openOutput(config.Output)
	if err != nil {
		return 0, err
	}
	defer out.Close()

	prober := sysinfo.NewProber(config.ProcRoot, log)
	before, err := prober.Snapshot()
	if err != nil {
		return 0, err
	}

	header := report.Header{Command: cli.Command, Before: before}
	if config.HostInfo {
		host, err := sysinfo.Host()
		if err != nil {
			log.WithError(err).Warn("host info unavailable")
		} else {
			header.Host = &host
		}
	}

	reporter := report.New(config.Format, out)
	if err := reporter.Start(header); err != nil {
		return 0, err
	}

	result, err := supervise.New(log).Run(cli.Command)
	if err != nil {
		if abortErr := reporter.Abort(err); abortErr != nil {
			log.WithError(abortErr).Warn("failed to close report")
		}
		return 0, err
	}

	// the measurement is already taken, a malformed source only loses the end value
	after, err := prober.Snapshot()
	if err != nil {
		log.WithError(err).Error("available memory after launch unknown")
		after = model.SystemSnapshot{CPUCount: before.CPUCount, TotalMemory: before.TotalMemory}
	}

	footer := report.Footer{After: after, Result: result}
	if err := reporter.Finish(footer); err != nil {
		return 0, err
	}

	if config.MetricsFile != "" {
		if err := report.WriteTextfile(config.MetricsFile, header, footer); err != nil {
			log.WithError(err).WithField("path", config.MetricsFile).Error("failed to write metrics")
		}
	}

	switch term := result.Termination.(type) {
	case model.Anomalous:
		log.WithField("status", term.Raw).Error("child ended with an anomalous wait status")
	case model.Exited:
		if term.Code == supervise.ExecFailedStatus {
			log.WithField("command", cli.Command[0]).Info("child exited with the exec failure status")
		}
	}

	return model.ExitStatus(result.Termination), nil
}

// flags given on the command line win over the config file
func (cli *CLI) apply(config *configs.RunlogConfig) {
	if cli.Output != "" {
		config.Output = cli.Output
	}
	if cli.Format != "" {
		config.Format = cli.Format
	}
	if cli.MetricsFile != "" {
		config.MetricsFile = cli.MetricsFile
	}
	if cli.HostInfo {
		config.HostInfo = true
	}
	config.EnvFiles = append(config.EnvFiles, cli.EnvFile...)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stderr}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open report output: %w", err)
	}
	return f, nil
}
