// If you are AI: This file defines the configuration structure for flvkit.
// It uses strict YAML decoding and explicit defaults.

package config

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the complete configuration.
// All fields must have explicit defaults or be required.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Source   SourceConfig   `yaml:"source"`
	MetaData MetaDataConfig `yaml:"metadata"`
	Cache    CacheConfig    `yaml:"cache"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig defines HTTP server settings.
type ServerConfig struct {
	HTTPPort        int           `yaml:"http_port"`        // Port for HTTP-FLV, WS-FLV, API and health
	WSEnabled       *bool         `yaml:"ws_enabled"`       // Serve /ws/ (default true)
	APIEnabled      *bool         `yaml:"api_enabled"`      // Serve /api/ (default true)
	RootDir         string        `yaml:"root_dir"`         // Directory holding the served .flv files
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"` // Grace period for in-flight requests
}

// SourceConfig selects how files are opened.
type SourceConfig struct {
	Mmap bool `yaml:"mmap"`
}

// MetaDataConfig tunes onMetaData decoding.
type MetaDataConfig struct {
	TruncateKeyframes bool `yaml:"truncate_keyframes"` // Zip mismatched keyframe arrays instead of failing
}

// CacheConfig controls the per-file index cache.
type CacheConfig struct {
	Enabled *bool `yaml:"enabled"` // Default true
}

// LogConfig selects log verbosity and encoding.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// Load reads configuration from a YAML file.
// Returns an error if the file cannot be read or decoded.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes configuration from YAML bytes and applies defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields

	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.setDefaults()
	return &cfg, nil
}

// Default returns a configuration with every default applied.
func Default() *Config {
	var cfg Config
	cfg.setDefaults()
	return &cfg
}

// setDefaults applies explicit default values to unset fields.
func (c *Config) setDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8081
	}
	if c.Server.WSEnabled == nil {
		c.Server.WSEnabled = boolPtr(true)
	}
	if c.Server.APIEnabled == nil {
		c.Server.APIEnabled = boolPtr(true)
	}
	if c.Server.RootDir == "" {
		c.Server.RootDir = "."
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 5 * time.Second
	}
	if c.Cache.Enabled == nil {
		c.Cache.Enabled = boolPtr(true)
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// boolPtr returns a pointer to b.
func boolPtr(b bool) *bool {
	return &b
}
