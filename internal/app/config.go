package app

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultOutputPath is where the document is written when no output is given.
const DefaultOutputPath = "karabiner.json"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	LayersPath  string // .hcl file or directory
	OutputPath  string // karabiner.json destination
	ProfileName string
	DryRun      bool // print the document instead of writing it
	Merge       bool // splice rules into the existing output document
	Watch       bool // recompile whenever the layer files change

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LayersPath == "" {
		return nil, errors.New("LayersPath is a required configuration field and cannot be empty")
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = DefaultOutputPath
	}
	cfg.ProfileName = strings.TrimSpace(cfg.ProfileName)

	switch cfg.LogFormat {
	case "":
		cfg.LogFormat = "text"
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	switch cfg.LogLevel {
	case "":
		cfg.LogLevel = "info"
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	return &cfg, nil
}
