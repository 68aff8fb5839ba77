package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Host != "0.0.0.0" || cfg.Port != 5000 {
		t.Errorf("addr = %s:%d, want 0.0.0.0:5000", cfg.Host, cfg.Port)
	}
	if cfg.DataDir != "data" {
		t.Errorf("DataDir = %q, want data", cfg.DataDir)
	}
	if cfg.WeatherCacheTTL != 300 {
		t.Errorf("WeatherCacheTTL = %d, want 300", cfg.WeatherCacheTTL)
	}
	if cfg.BackupKeep != 5 {
		t.Errorf("BackupKeep = %d, want 5", cfg.BackupKeep)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskdeck.yaml")
	content := "host: 127.0.0.1\nport: 8080\ndata_dir: /tmp/td\nweather_cache_ttl: 60\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Host != "127.0.0.1" || cfg.Port != 8080 {
		t.Errorf("addr = %s:%d, want 127.0.0.1:8080", cfg.Host, cfg.Port)
	}
	if cfg.DataDir != "/tmp/td" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if got, want := cfg.WeatherTTL(), time.Minute; got != want {
		t.Errorf("WeatherTTL = %v, want %v", got, want)
	}
	// Unset fields keep their defaults.
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskdeck.yaml")
	if err := os.WriteFile(path, []byte("port: 8080\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 9090 {
		t.Errorf("Port = %d, want 9090 from env", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug from env", cfg.LogLevel)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskdeck.yaml")
	if err := os.WriteFile(path, []byte("port: [not a number\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error, got nil")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{"port too high", map[string]string{"PORT": "70000"}},
		{"port zero", map[string]string{"PORT": "0"}},
		{"negative ttl", map[string]string{"WEATHER_CACHE_TTL": "-1"}},
		{"negative backup keep", map[string]string{"BACKUP_KEEP": "-3"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
