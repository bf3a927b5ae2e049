package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateFFmpeg(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateStore(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateFFmpeg() error {
	if c.FFmpeg.FFprobeBinary == "" {
		return errors.New("ffmpeg.ffprobe_binary must be set")
	}
	if c.FFmpeg.ProbeTimeoutSeconds <= 0 {
		return errors.New("ffmpeg.probe_timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateStore() error {
	if c.Store.Enabled && c.Store.Path == "" {
		return errors.New("store.path must be set when store.enabled is true")
	}
	return nil
}
