// Package config loads the CLI configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all analysis-model CLI configuration.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Filter  FilterConfig  `yaml:"filter"`
	History HistoryConfig `yaml:"history"`
}

// OutputConfig holds settings for rendered reports.
type OutputConfig struct {
	Dir    string `yaml:"dir"`    // directory for sarif files (default: ".analysis-model")
	Format string `yaml:"format"` // default output format: json, markdown or sarif
}

// FilterConfig holds issue filtering settings.
type FilterConfig struct {
	MinSeverity string `yaml:"min_severity"` // drop issues below this severity (e.g. "WARNING_NORMAL")
}

// HistoryConfig holds settings for the run history database.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"` // sqlite database path (default: ".analysis-model/history.db")
}

// Defaults returns a Config populated with sensible default values.
func Defaults() Config {
	return Config{
		Output: OutputConfig{
			Dir:    ".analysis-model",
			Format: "json",
		},
		Filter: FilterConfig{
			MinSeverity: "WARNING_LOW",
		},
		History: HistoryConfig{
			Enabled: false,
			Path:    ".analysis-model/history.db",
		},
	}
}

// Load reads the YAML config at path on top of the defaults. A missing
// file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}
