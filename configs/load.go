package configs

import (
	"fmt"

	"github.com/elastic/go-ucfg"
	"github.com/elastic/go-ucfg/yaml"
	"github.com/joho/godotenv"
)

var options = []ucfg.Option{ucfg.PathSep("."), ucfg.VarExp}

// LoadConfig reads a YAML file over the defaults. An empty path yields the
// defaults.
func LoadConfig(path string) (RunlogConfig, error) {
	config := Default()
	if path == "" {
		return config, nil
	}

	raw, err := yaml.NewConfigWithFile(path, options...)
	if err != nil {
		return config, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := raw.Unpack(&config, options...); err != nil {
		return config, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return config, config.Validate()
}

func LoadConfigFromBytes(buf []byte) (RunlogConfig, error) {
	config := Default()

	raw, err := yaml.NewConfig(buf, options...)
	if err != nil {
		return config, err
	}

	if err := raw.Unpack(&config, options...); err != nil {
		return config, err
	}

	return config, config.Validate()
}

// LoadEnvFiles adds the variables of each file to the process environment
// so the child inherits them. Variables already set are kept.
func LoadEnvFiles(files []string) error {
	if len(files) == 0 {
		return nil
	}
	return godotenv.Load(files...)
}
