package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid marks configuration that failed validation.
var ErrInvalid = errors.New("invalid configuration")

var (
	outputFormats = []string{"text", "json", "yaml"}
	logFormats    = []string{"console", "json"}
	logLevels     = []string{"debug", "info", "warn", "error"}
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateHistory(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateOutput() error {
	return oneOf("output.format", c.Output.Format, outputFormats)
}

func (c *Config) validateHistory() error {
	if c.History.KeepRuns < 0 {
		return fmt.Errorf("%w: history.keep_runs must be zero or positive", ErrInvalid)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if err := oneOf("logging.format", c.Logging.Format, logFormats); err != nil {
		return err
	}
	if err := oneOf("logging.level", c.Logging.Level, logLevels); err != nil {
		return err
	}
	if c.Logging.RetentionDays < 0 {
		return fmt.Errorf("%w: logging.retention_days must be zero or positive", ErrInvalid)
	}
	return nil
}

func oneOf(key, value string, allowed []string) error {
	for _, candidate := range allowed {
		if value == candidate {
			return nil
		}
	}
	return fmt.Errorf("%w: %s must be one of %s, got %q", ErrInvalid, key, strings.Join(allowed, ", "), value)
}
