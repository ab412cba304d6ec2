package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateLatency(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (expected console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q (expected debug, info, warn, or error)", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateLatency() error {
	if !c.Latency.Enabled {
		return nil
	}
	if c.Latency.MinMS < 0 {
		return errors.New("latency.min_ms must be zero or positive")
	}
	if c.Latency.MaxMS < c.Latency.MinMS {
		return errors.New("latency.max_ms must be greater than or equal to latency.min_ms")
	}
	if c.Latency.MaxMS > maxLatencyMS {
		return fmt.Errorf("latency.max_ms must not exceed %d", maxLatencyMS)
	}
	return nil
}
