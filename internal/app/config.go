package app

import (
	"errors"
	"fmt"
	"slices"
)

// Output formats accepted by Config.Output.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

var (
	outputFormats = []string{OutputText, OutputJSON, OutputYAML}
	logLevels     = []string{"debug", "info", "warn", "error"}
	logFormats    = []string{"text", "json"}
)

// ErrNoPaths is returned by file-based operations run without any path.
var ErrNoPaths = errors.New("at least one definition path is required")

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Paths   []string // hcl files or directories
	Pathway string   // selected pathway, empty means all

	Output    string
	LogFormat string
	LogLevel  string
}

// NewConfig fills defaults and validates cfg.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Output == "" {
		cfg.Output = OutputText
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if !slices.Contains(outputFormats, cfg.Output) {
		return nil, fmt.Errorf("invalid output %q: must be one of %v", cfg.Output, outputFormats)
	}
	if !slices.Contains(logLevels, cfg.LogLevel) {
		return nil, fmt.Errorf("invalid log-level %q: must be one of %v", cfg.LogLevel, logLevels)
	}
	if !slices.Contains(logFormats, cfg.LogFormat) {
		return nil, fmt.Errorf("invalid log-format %q: must be one of %v", cfg.LogFormat, logFormats)
	}

	return &cfg, nil
}

// RequirePaths reports ErrNoPaths when no definition path is configured.
func (c *Config) RequirePaths() error {
	if len(c.Paths) == 0 {
		return ErrNoPaths
	}
	return nil
}
