package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/gridkata/internal/report"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	PuzzlePath   string // .hcl file or directory
	OutputFormat string

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
	WorkerCount     int
}

// NewConfig validates cfg and returns a copy with defaults applied.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.PuzzlePath == "" {
		return nil, errors.New("PuzzlePath is a required configuration field and cannot be empty")
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = report.FormatText
	}
	if cfg.OutputFormat != report.FormatText && cfg.OutputFormat != report.FormatJSON {
		return nil, fmt.Errorf("invalid output format %q: must be %q or %q", cfg.OutputFormat, report.FormatText, report.FormatJSON)
	}
	if cfg.HealthcheckPort < 0 || cfg.HealthcheckPort > 65535 {
		return nil, fmt.Errorf("invalid healthcheck port %d", cfg.HealthcheckPort)
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 1
	}
	return &cfg, nil
}
