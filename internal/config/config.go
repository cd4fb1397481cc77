// Package config loads the completion helper's own configuration file
// (~/.pyker/completion.yaml). pyker itself never reads this file; it only
// tunes how completion behaves.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds completion helper settings.
type Config struct {
	// ScriptExtensions lists the file extensions offered when completing
	// the script argument of "pyker start".
	ScriptExtensions []string `yaml:"script_extensions"`

	// FuzzyProcessNames enables fuzzy matching of process names when
	// strict prefix matching finds nothing.
	FuzzyProcessNames bool `yaml:"fuzzy_process_names"`

	// StateFile overrides the location of pyker's process registry.
	StateFile string `yaml:"state_file"`

	// LogLevel sets the helper's log verbosity.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		ScriptExtensions: []string{".py"},
		LogLevel:         "warn",
	}
}

// LoadResult contains the result of loading a configuration file.
type LoadResult struct {
	Config *Config
	Errors []error
}

// LoadFromFile loads configuration from a yaml file. A missing file or a
// parse failure yields defaults with the problem recorded as a non-fatal
// error; completion has to keep working with a broken config.
func LoadFromFile(path string) *LoadResult {
	result := &LoadResult{Config: DefaultConfig()}

	content, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			result.Errors = append(result.Errors, fmt.Errorf("failed to read config file: %w", err))
		}
		return result
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(content, cfg); err != nil {
		result.Errors = append(result.Errors, fmt.Errorf("failed to parse config file: %w", err))
		return result
	}

	if len(cfg.ScriptExtensions) == 0 {
		cfg.ScriptExtensions = DefaultConfig().ScriptExtensions
	}

	result.Config = cfg
	return result
}
