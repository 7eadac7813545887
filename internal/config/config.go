// Package config defines the domain configuration for gatebind: logging
// options, static actor declarations, and an optional script block that
// produces declarations at runtime. Configs load from TOML.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gatesim/gatebind/internal/config/errz"
	"github.com/gatesim/gatebind/internal/config/version"
	gotoml "github.com/pelletier/go-toml/v2"
)

// Config is the root domain configuration.
type Config struct {
	Version string        `toml:"version"`
	Logging LoggingConfig `toml:"logging"`
	Actors  ActorDefs     `toml:"actors"`
	Script  *ScriptConfig `toml:"script"`

	sourcePath string
}

// NewConfig loads configuration from a TOML file
func NewConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errz.ErrFailedToLoadConfig, err)
	}

	cfg, err := NewConfigFromBytes(data)
	if err != nil {
		return nil, err
	}
	cfg.sourcePath = filePath
	return cfg, nil
}

// NewConfigFromBytes loads configuration from TOML bytes
func NewConfigFromBytes(data []byte) (*Config, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty config source", errz.ErrFailedToLoadConfig)
	}

	cfg := &Config{}
	if err := gotoml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", errz.ErrFailedToLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errz.ErrFailedToValidateConfig, err)
	}

	return cfg, nil
}

// NewConfigFromReader loads configuration from an io.Reader providing TOML data
func NewConfigFromReader(reader io.Reader) (*Config, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errz.ErrFailedToLoadConfig, err)
	}
	return NewConfigFromBytes(data)
}

// SourcePath returns the file path the config was loaded from, if any.
func (c *Config) SourcePath() string {
	return c.sourcePath
}

// Validate performs comprehensive validation of the configuration
func (c *Config) Validate() error {
	if c.Version == "" {
		c.Version = version.Version
	}
	if c.Version != version.Version {
		return fmt.Errorf("%w: %s", errz.ErrUnsupportedConfigVer, c.Version)
	}

	errs := []error{}

	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, err)
	}

	if err := c.Actors.Validate(); err != nil {
		errs = append(errs, err)
	}

	if c.Script.Enabled() {
		if err := c.Script.Validate(); err != nil {
			errs = append(errs, err)
		}
	}

	if len(c.Actors) == 0 && !c.Script.Enabled() {
		errs = append(errs, fmt.Errorf(
			"%w: config declares no actors and no script",
			errz.ErrMissingRequiredField,
		))
	}

	return errors.Join(errs...)
}
