// Package config loads flacmeta command-line defaults from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Output formats understood by the CLI.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config represents the CLI configuration file.
type Config struct {
	Defaults struct {
		Format          string `yaml:"format"`
		NoColor         bool   `yaml:"no_color"`
		FailFast        bool   `yaml:"fail_fast"`
		StreamInfoFirst bool   `yaml:"stream_info_first"`
		MetricsFile     string `yaml:"metrics_file"`
	} `yaml:"defaults"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.Defaults.Format = FormatText
	return cfg
}

// Load reads the config file at path on top of the defaults.
//
// An empty path returns Default(). A missing, unreadable or malformed file
// is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that every setting has a usable value.
func (c *Config) Validate() error {
	switch c.Defaults.Format {
	case FormatText, FormatYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", c.Defaults.Format, FormatText, FormatYAML)
	}
}
