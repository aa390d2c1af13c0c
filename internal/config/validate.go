// If you are AI: This file validates configuration values and returns descriptive errors.

package config

import (
	"fmt"
	"os"

	"flvkit/internal/logging"
)

// Validate checks that all configuration values are within acceptable ranges.
// Returns an error describing the first validation failure found.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config: %w", err)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log config: %w", err)
	}
	return nil
}

// Validate checks server configuration values.
func (s *ServerConfig) Validate() error {
	if s.HTTPPort <= 0 || s.HTTPPort > 65535 {
		return fmt.Errorf("http_port must be between 1 and 65535, got %d", s.HTTPPort)
	}
	if s.ShutdownTimeout < 0 {
		return fmt.Errorf("shutdown_timeout must not be negative, got %s", s.ShutdownTimeout)
	}
	st, err := os.Stat(s.RootDir)
	if err != nil {
		return fmt.Errorf("root_dir: %w", err)
	}
	if !st.IsDir() {
		return fmt.Errorf("root_dir %s is not a directory", s.RootDir)
	}
	return nil
}

// Validate checks the log level and format names.
func (l *LogConfig) Validate() error {
	if _, err := logging.ParseLevel(l.Level); err != nil {
		return err
	}
	if l.Format != "text" && l.Format != "json" {
		return fmt.Errorf("format must be text or json, got %q", l.Format)
	}
	return nil
}
