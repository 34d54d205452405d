// Package config handles objreplay configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("invalid config")

// Unknown material policies.
const (
	OnUnknownAbort = "abort"
	OnUnknownSkip  = "skip"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config holds all replay settings.
type Config struct {
	Replay  ReplayConfig  `yaml:"replay"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// ReplayConfig controls how an event stream is applied.
type ReplayConfig struct {
	OnUnknownMaterial string `yaml:"on_unknown_material"` // abort or skip
}

// OutputConfig controls how the resulting scene is printed.
type OutputConfig struct {
	Format          string `yaml:"format"` // text or yaml
	ShowEmptyGroups bool   `yaml:"show_empty_groups"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Replay: ReplayConfig{
			OnUnknownMaterial: OnUnknownAbort,
		},
		Output: OutputConfig{
			Format:          FormatText,
			ShowEmptyGroups: true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Replay.OnUnknownMaterial {
	case OnUnknownAbort, OnUnknownSkip:
	default:
		return fmt.Errorf("%w: replay.on_unknown_material %q", ErrInvalidConfig, c.Replay.OnUnknownMaterial)
	}
	switch c.Output.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("%w: output.format %q", ErrInvalidConfig, c.Output.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level %q", ErrInvalidConfig, c.Logging.Level)
	}
	return nil
}
