package config

import (
	"time"
)

// Duration wraps time.Duration for configuration purposes, accepting
// duration strings like "30s" in TOML.
type Duration time.Duration

// String returns the string representation of Duration
func (d Duration) String() string {
	return time.Duration(d).String()
}

// FromDuration creates a config.Duration from a time.Duration
func FromDuration(d time.Duration) Duration {
	return Duration(d)
}

// AsDuration converts a config.Duration to a time.Duration
func (d Duration) AsDuration() time.Duration {
	return time.Duration(d)
}

// UnmarshalText parses a duration string during config decoding
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalText renders the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// ParseDuration parses a duration string and returns a config.Duration
func ParseDuration(s string) (Duration, error) {
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	return Duration(parsed), nil
}
