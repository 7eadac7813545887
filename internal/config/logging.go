package config

import (
	"fmt"
)

// LoggingConfig contains logging-related configuration options
type LoggingConfig struct {
	Format LogFormat `toml:"format"`
	Level  LogLevel  `toml:"level"`
}

// LogFormat represents the logging output format
type LogFormat string

// LogLevel represents the logging verbosity level
type LogLevel string

// Constants for LogFormat
const (
	LogFormatUnspecified LogFormat = ""
	LogFormatText        LogFormat = "text"
	LogFormatJSON        LogFormat = "json"
)

// Constants for LogLevel
const (
	LogLevelUnspecified LogLevel = ""
	LogLevelDebug       LogLevel = "debug"
	LogLevelInfo        LogLevel = "info"
	LogLevelWarn        LogLevel = "warn"
	LogLevelError       LogLevel = "error"
)

// String returns the string representation of LogFormat
func (f LogFormat) String() string {
	return string(f)
}

// String returns the string representation of LogLevel
func (l LogLevel) String() string {
	return string(l)
}

// IsValid checks if the LogFormat is valid
func (f LogFormat) IsValid() bool {
	switch f {
	case LogFormatUnspecified, LogFormatText, LogFormatJSON:
		return true
	default:
		return false
	}
}

// IsValid checks if the LogLevel is valid
func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelUnspecified, LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true
	default:
		return false
	}
}

// Validate checks the logging configuration
func (lc LoggingConfig) Validate() error {
	if !lc.Format.IsValid() {
		return fmt.Errorf("unknown log format: %s", lc.Format)
	}
	if !lc.Level.IsValid() {
		return fmt.Errorf("unknown log level: %s", lc.Level)
	}
	return nil
}
