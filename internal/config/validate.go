package config

import (
	"errors"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/klauspost/compress/flate"

	"mcpackr/internal/revision"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePort(); err != nil {
		return err
	}
	if err := c.validateLedger(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePort() error {
	for _, t := range c.Port.Targets {
		if !revision.ID(t).Known() {
			return fmt.Errorf("port.targets: unknown pack format %d", t)
		}
	}
	for _, pattern := range c.Port.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("port.exclude: invalid pattern %q", pattern)
		}
	}
	if c.Port.Parallelism < 1 {
		return errors.New("port.parallelism must be >= 1")
	}
	if c.Port.ParticlesCrop <= 0 {
		return errors.New("port.particles_crop must be positive")
	}
	if c.Port.CompressionLevel < flate.HuffmanOnly || c.Port.CompressionLevel > flate.BestCompression {
		return fmt.Errorf("port.compression_level must be between %d and %d", flate.HuffmanOnly, flate.BestCompression)
	}
	return nil
}

func (c *Config) validateLedger() error {
	if c.Ledger.Enabled && c.Ledger.Path == "" {
		return errors.New("ledger.path must be set when ledger.enabled is true")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported level %q", c.Logging.Level)
	}
}
