// Package config provides loading and validation of the elfinspect
// configuration file. It supports TOML format; every field is optional
// and falls back to a default.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/Idesmi/rpmlint/internal/readelf"
)

// Output format names accepted in configuration and on the command line.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Error definitions for the config package
var (
	// ErrUnknownFormat is returned for an output format name outside the
	// accepted set.
	ErrUnknownFormat = errors.New("unknown output format")
)

// Config is the top-level configuration for elfinspect.
type Config struct {
	// ReadelfPath overrides the readelf binary to invoke.
	ReadelfPath string `toml:"readelf_path"`

	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
}

// OutputConfig controls how inspection results are printed.
type OutputConfig struct {
	Format string `toml:"format"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		ReadelfPath: readelf.DefaultToolPath,
		Output:      OutputConfig{Format: FormatText},
		Log:         LogConfig{Level: "info"},
	}
}

// Load reads and validates a TOML configuration file. Omitted fields
// keep their defaults.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path) // #nosec G304 - path is operator-supplied configuration
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks fields that have a closed set of accepted values.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatJSON:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Output.Format)
	}
}
