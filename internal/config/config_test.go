// If you are AI: This file contains unit tests for configuration loading and validation.

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte("{}"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Server.HTTPPort != 8081 {
		t.Errorf("Expected default http_port 8081, got %d", cfg.Server.HTTPPort)
	}
	if !*cfg.Server.WSEnabled || !*cfg.Server.APIEnabled || !*cfg.Cache.Enabled {
		t.Error("Services and cache should default to enabled")
	}
	if cfg.Server.ShutdownTimeout != 5*time.Second {
		t.Errorf("Expected 5s shutdown timeout, got %s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("Unexpected log defaults %+v", cfg.Log)
	}
	if cfg.MetaData.TruncateKeyframes || cfg.Source.Mmap {
		t.Error("Opt-in flags should default to false")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	body := `
server:
  http_port: 9000
  ws_enabled: false
  root_dir: ` + dir + `
  shutdown_timeout: 2s
source:
  mmap: true
metadata:
  truncate_keyframes: true
cache:
  enabled: false
log:
  level: debug
  format: json
`
	path := filepath.Join(dir, "flvkit.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.HTTPPort != 9000 || *cfg.Server.WSEnabled || !*cfg.Server.APIEnabled {
		t.Errorf("Unexpected server config %+v", cfg.Server)
	}
	if cfg.Server.ShutdownTimeout != 2*time.Second {
		t.Errorf("Expected 2s, got %s", cfg.Server.ShutdownTimeout)
	}
	if !cfg.Source.Mmap || !cfg.MetaData.TruncateKeyframes || *cfg.Cache.Enabled {
		t.Errorf("Flags not decoded: %+v %+v %+v", cfg.Source, cfg.MetaData, cfg.Cache)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("server:\n  rtmp_port: 1935\n"))
	if err == nil || !strings.Contains(err.Error(), "decode config") {
		t.Errorf("Expected decode error, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.flv")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"port too large", func(c *Config) { c.Server.HTTPPort = 70000 }, "http_port"},
		{"negative timeout", func(c *Config) { c.Server.ShutdownTimeout = -time.Second }, "shutdown_timeout"},
		{"missing root", func(c *Config) { c.Server.RootDir = filepath.Join(dir, "missing") }, "root_dir"},
		{"root is file", func(c *Config) { c.Server.RootDir = file }, "not a directory"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Server.RootDir = dir
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestExampleConfigMatchesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "configs", "flvkit.example.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	def := Default()
	if cfg.Server.HTTPPort != def.Server.HTTPPort || cfg.Server.RootDir != def.Server.RootDir ||
		cfg.Server.ShutdownTimeout != def.Server.ShutdownTimeout {
		t.Errorf("Server section %+v differs from defaults %+v", cfg.Server, def.Server)
	}
	if cfg.Log != def.Log || cfg.Source != def.Source || cfg.MetaData != def.MetaData {
		t.Error("Example sections differ from defaults")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}
