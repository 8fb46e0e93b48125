package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server.port: got %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 10*time.Second {
		t.Errorf("server.read_timeout: got %v, want 10s", cfg.Server.ReadTimeout)
	}
	if cfg.Storage.Path != "./data" {
		t.Errorf("storage.path: got %q, want ./data", cfg.Storage.Path)
	}
	if cfg.Storage.InMemory {
		t.Error("storage.in_memory should default to false")
	}
	if cfg.Store.StrictTitles {
		t.Error("store.strict_titles should default to false")
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("log defaults: got %q/%q", cfg.Log.Level, cfg.Log.Format)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORAGE_IN_MEMORY", "true")
	t.Setenv("STORE_STRICT_TITLES", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("server.port: got %d, want 9090", cfg.Server.Port)
	}
	if !cfg.Storage.InMemory {
		t.Error("expected storage.in_memory true")
	}
	if !cfg.Store.StrictTitles {
		t.Error("expected store.strict_titles true")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level: got %q, want debug", cfg.Log.Level)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := "server:\n  port: 9999\nlog:\n  level: warn\n  format: text\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 9999 {
		t.Errorf("server.port: got %d, want 9999", cfg.Server.Port)
	}
	if cfg.Log.Level != "warn" || cfg.Log.Format != "text" {
		t.Errorf("log: got %q/%q", cfg.Log.Level, cfg.Log.Format)
	}
	// Fields absent from the file still pick up defaults.
	if cfg.Storage.Path != "./data" {
		t.Errorf("storage.path: got %q, want ./data", cfg.Storage.Path)
	}
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:  ServerConfig{Port: 8080},
			Storage: StorageConfig{Path: "./data"},
			Log:     LogConfig{Level: "info", Format: "json"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "port zero", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: true},
		{name: "port too high", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: true},
		{name: "empty path on disk", mutate: func(c *Config) { c.Storage.Path = " " }, wantErr: true},
		{name: "empty path in memory", mutate: func(c *Config) {
			c.Storage.Path = ""
			c.Storage.InMemory = true
		}},
		{name: "bad log level", mutate: func(c *Config) { c.Log.Level = "verbose" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
