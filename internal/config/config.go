// Package config loads server configuration from defaults, an optional YAML
// file, a .env file and the environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the server configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Timeline TimelineConfig `yaml:"timeline"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Port            int           `yaml:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DatabaseConfig configures the SQLite store.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// TimelineConfig configures expense positioning.
type TimelineConfig struct {
	// Location is an IANA zone name used for dates without an offset.
	Location           string  `yaml:"location"`
	ProximityThreshold float64 `yaml:"proximity_threshold"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{Path: "./data/justsplit.db"},
		Log:      LogConfig{Level: "info"},
		Timeline: TimelineConfig{
			Location:           "UTC",
			ProximityThreshold: 5,
		},
		Metrics: MetricsConfig{Enabled: true},
	}
}

// Load builds the configuration. yamlPath may be empty. A .env file in the
// current directory is loaded if present; variables already set in the
// environment win over it.
func Load(yamlPath string) (*Config, error) {
	cfg := Default()

	if yamlPath != "" {
		data, err := os.ReadFile(yamlPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", yamlPath, err)
		}
	}

	// Try to load .env from current directory (ignore error if not found)
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT: %w", err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
		}
		c.Server.ShutdownTimeout = d
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("TIMELINE_LOCATION"); v != "" {
		c.Timeline.Location = v
	}
	if v := os.Getenv("TIMELINE_PROXIMITY_THRESHOLD"); v != "" {
		threshold, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid TIMELINE_PROXIMITY_THRESHOLD: %w", err)
		}
		c.Timeline.ProximityThreshold = threshold
	}
	if v := os.Getenv("METRICS_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid METRICS_ENABLED: %w", err)
		}
		c.Metrics.Enabled = enabled
	}
	return nil
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Server.Port))
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("shutdown timeout must be positive"))
	}
	if strings.TrimSpace(c.Database.Path) == "" {
		errs = append(errs, fmt.Errorf("database path is required"))
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.Log.Level))
	}
	if c.Timeline.ProximityThreshold <= 0 {
		errs = append(errs, fmt.Errorf("proximity threshold must be positive"))
	}
	if _, err := c.Location(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Addr returns the listen address, e.g. ":8080".
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// Location resolves the timeline location.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timeline.Location)
	if err != nil {
		return nil, fmt.Errorf("invalid timeline location %q: %w", c.Timeline.Location, err)
	}
	return loc, nil
}
