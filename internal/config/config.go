package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"praetordesk/internal/store"
)

// Config is the runtime configuration of the service.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type DatabaseConfig struct {
	Driver       string `yaml:"driver"`
	Path         string `yaml:"path"`
	MaxOpenConns int    `yaml:"max_open_conns"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	// File, when set, receives a rotated copy of the log.
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{Addr: "127.0.0.1:8080"},
		Database: DatabaseConfig{
			Driver:       store.DriverCGO,
			Path:         "./data/praetordesk.db",
			MaxOpenConns: store.DefaultMaxOpenConns,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load builds the configuration from defaults, then the YAML file at path (if
// path is non-empty), then PRAETOR_* environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.Server.Addr = getEnv("PRAETOR_ADDR", c.Server.Addr)
	c.Database.Path = getEnv("PRAETOR_DB_PATH", c.Database.Path)
	c.Database.Driver = getEnv("PRAETOR_DB_DRIVER", c.Database.Driver)
	c.Log.Level = getEnv("PRAETOR_LOG_LEVEL", c.Log.Level)
	c.Log.File = getEnv("PRAETOR_LOG_FILE", c.Log.File)

	if v := os.Getenv("PRAETOR_DB_MAX_CONNS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PRAETOR_DB_MAX_CONNS %q: %w", v, err)
		}
		c.Database.MaxOpenConns = n
	}
	return nil
}

// Validate checks that the configuration can be used to start the service.
func (c Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Server.Addr) == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}

	switch c.Database.Driver {
	case store.DriverCGO, store.DriverPure:
	default:
		errs = append(errs, fmt.Errorf("database.driver must be %q or %q, got %q", store.DriverCGO, store.DriverPure, c.Database.Driver))
	}
	if strings.TrimSpace(c.Database.Path) == "" {
		errs = append(errs, errors.New("database.path is required"))
	}
	if c.Database.MaxOpenConns < 1 {
		errs = append(errs, fmt.Errorf("database.max_open_conns must be at least 1, got %d", c.Database.MaxOpenConns))
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level))
	}

	return errors.Join(errs...)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
