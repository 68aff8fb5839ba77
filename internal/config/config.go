// Package config loads server settings from an optional YAML file with
// environment variable overrides on top.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks when no config file is given.
const DefaultPath = "taskdeck.yaml"

type Config struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	DataDir  string `yaml:"data_dir"`
	LogLevel string `yaml:"log_level"`
	// Weather cache TTL in seconds.
	WeatherCacheTTL int `yaml:"weather_cache_ttl"`
	// Backups kept by cleanup.
	BackupKeep int `yaml:"backup_keep"`
}

// Load reads path (if it exists), applies env overrides, and validates.
// A missing file is not an error; defaults plus env apply.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Host:            "0.0.0.0",
		Port:            5000,
		DataDir:         "data",
		LogLevel:        "info",
		WeatherCacheTTL: 300,
		BackupKeep:      5,
	}

	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.Host = envStr("HOST", cfg.Host)
	cfg.Port = envInt("PORT", cfg.Port)
	cfg.DataDir = envStr("DATA_DIR", cfg.DataDir)
	cfg.LogLevel = envStr("LOG_LEVEL", cfg.LogLevel)
	cfg.WeatherCacheTTL = envInt("WEATHER_CACHE_TTL", cfg.WeatherCacheTTL)
	cfg.BackupKeep = envInt("BACKUP_KEEP", cfg.BackupKeep)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir must not be empty")
	}
	if c.WeatherCacheTTL < 0 {
		return fmt.Errorf("weather_cache_ttl must not be negative, got %d", c.WeatherCacheTTL)
	}
	if c.BackupKeep < 0 {
		return fmt.Errorf("backup_keep must not be negative, got %d", c.BackupKeep)
	}
	return nil
}

// WeatherTTL returns the weather cache TTL as a duration.
func (c *Config) WeatherTTL() time.Duration {
	return time.Duration(c.WeatherCacheTTL) * time.Second
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
