package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("expected :8080, got %s", cfg.Addr())
	}
	if cfg.Timeline.ProximityThreshold != 5 {
		t.Errorf("expected threshold 5, got %v", cfg.Timeline.ProximityThreshold)
	}
	if !cfg.Metrics.Enabled {
		t.Error("expected metrics enabled by default")
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
  shutdown_timeout: 3s
database:
  path: /tmp/events.db
timeline:
  location: Europe/Lisbon
  proximity_threshold: 2.5
metrics:
  enabled: false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Server.ShutdownTimeout != 3*time.Second {
		t.Errorf("expected 3s shutdown timeout, got %v", cfg.Server.ShutdownTimeout)
	}
	if cfg.Database.Path != "/tmp/events.db" {
		t.Errorf("expected db path from file, got %s", cfg.Database.Path)
	}
	if cfg.Timeline.ProximityThreshold != 2.5 {
		t.Errorf("expected threshold 2.5, got %v", cfg.Timeline.ProximityThreshold)
	}
	if cfg.Metrics.Enabled {
		t.Error("expected metrics disabled")
	}
	// Unset keys keep their defaults.
	if cfg.Log.Level != "info" {
		t.Errorf("expected default log level, got %s", cfg.Log.Level)
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\nlog:\n  level: warn\n")
	t.Setenv("PORT", "7070")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("TIMELINE_PROXIMITY_THRESHOLD", "7")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("expected env port 7070, got %d", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected env log level debug, got %s", cfg.Log.Level)
	}
	if cfg.Timeline.ProximityThreshold != 7 {
		t.Errorf("expected env threshold 7, got %v", cfg.Timeline.ProximityThreshold)
	}
	if cfg.Metrics.Enabled {
		t.Error("expected env to disable metrics")
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("bad yaml", func(t *testing.T) {
		if _, err := Load(writeConfig(t, "server: [1, 2")); err == nil {
			t.Error("expected error for malformed yaml")
		}
	})

	t.Run("bad env", func(t *testing.T) {
		t.Setenv("PORT", "eighty")
		if _, err := Load(""); err == nil {
			t.Error("expected error for non-numeric PORT")
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, true},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, true},
		{"empty db path", func(c *Config) { c.Database.Path = " " }, true},
		{"unknown level", func(c *Config) { c.Log.Level = "verbose" }, true},
		{"upper-case level", func(c *Config) { c.Log.Level = "DEBUG" }, false},
		{"zero threshold", func(c *Config) { c.Timeline.ProximityThreshold = 0 }, true},
		{"unknown location", func(c *Config) { c.Timeline.Location = "Mars/Olympus" }, true},
		{"zero shutdown timeout", func(c *Config) { c.Server.ShutdownTimeout = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
