package configs

import (
	"fmt"

	"codeberg.org/iklabib/runlog/sysinfo"
	"github.com/sirupsen/logrus"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// empty values mean the report goes to stderr and no metrics file is written
type RunlogConfig struct {
	Output      string   `config:"output" json:"output" yaml:"output"`
	Format      string   `config:"format" json:"format" yaml:"format"`
	MetricsFile string   `config:"metrics_file" json:"metrics_file" yaml:"metrics_file"`
	LogLevel    string   `config:"log_level" json:"log_level" yaml:"log_level"`
	HostInfo    bool     `config:"host_info" json:"host_info" yaml:"host_info"`
	EnvFiles    []string `config:"env_files" json:"env_files" yaml:"env_files"`
	ProcRoot    string   `config:"proc_root" json:"proc_root" yaml:"proc_root"`
}

func Default() RunlogConfig {
	return RunlogConfig{
		Format:   FormatText,
		LogLevel: logrus.WarnLevel.String(),
		ProcRoot: sysinfo.DefaultProcRoot,
	}
}

// Validate is also called by ucfg while unpacking.
func (c RunlogConfig) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("unknown report format '%s'", c.Format)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}
