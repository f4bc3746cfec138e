// Podium - Paralympics Data API and Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Database.Driver != "duckdb" {
		t.Errorf("Database.Driver = %q, want duckdb", cfg.Database.Driver)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("Server.Port = %d, want 8000", cfg.Server.Port)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
	if cfg.Dashboard.APIBaseURL != "http://127.0.0.1:8000" {
		t.Errorf("Dashboard.APIBaseURL = %q", cfg.Dashboard.APIBaseURL)
	}
	if cfg.Dashboard.FetchTimeout != 10*time.Second {
		t.Errorf("Dashboard.FetchTimeout = %v, want 10s", cfg.Dashboard.FetchTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadWithKoanf_EnvOverrides(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("HTTP_PORT", "9100")
	t.Setenv("DB_DRIVER", "sqlite3")
	t.Setenv("DB_PATH", "/tmp/podium.sqlite")
	t.Setenv("API_BASE_URL", "http://backend:9100")
	t.Setenv("CORS_ORIGINS", "http://localhost:8501, https://podium.example.org")
	t.Setenv("DASHBOARD_FETCH_TIMEOUT", "3s")
	t.Setenv("SEED_DATA", "true")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9100 {
		t.Errorf("Server.Port = %d, want 9100", cfg.Server.Port)
	}
	if cfg.Database.Driver != "sqlite3" || cfg.Database.Path != "/tmp/podium.sqlite" {
		t.Errorf("Database = %+v", cfg.Database)
	}
	if !cfg.Database.SeedData {
		t.Error("Database.SeedData should be true")
	}
	if cfg.Dashboard.DataEndpointURL() != "http://backend:9100/api/paralympics/all" {
		t.Errorf("DataEndpointURL() = %q", cfg.Dashboard.DataEndpointURL())
	}
	if cfg.Dashboard.FetchTimeout != 3*time.Second {
		t.Errorf("Dashboard.FetchTimeout = %v, want 3s", cfg.Dashboard.FetchTimeout)
	}
	want := []string{"http://localhost:8501", "https://podium.example.org"}
	if strings.Join(cfg.Security.CORSOrigins, "|") != strings.Join(want, "|") {
		t.Errorf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
}

func TestLoadWithKoanf_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 8080
dashboard:
  api_base_url: "https://api.podium.example.org"
logging:
  level: debug
  format: console
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080 from file", cfg.Server.Port)
	}
	if cfg.Dashboard.APIBaseURL != "https://api.podium.example.org" {
		t.Errorf("Dashboard.APIBaseURL = %q", cfg.Dashboard.APIBaseURL)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, env should override file", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q, want console", cfg.Logging.Format)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := map[string]string{
		"HTTP_PORT":    "server.port",
		"DUCKDB_PATH":  "database.path",
		"API_BASE_URL": "dashboard.api_base_url",
		"HOME":         "",
		"PATH":         "",
	}
	for in, want := range tests {
		if got := envTransformFunc(in); got != want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid defaults", func(*Config) {}, ""},
		{"bad driver", func(c *Config) { c.Database.Driver = "postgres" }, "DB_DRIVER"},
		{"empty path", func(c *Config) { c.Database.Path = "" }, "DUCKDB_PATH"},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, "HTTP_PORT"},
		{"no origins", func(c *Config) { c.Security.CORSOrigins = nil }, "CORS_ORIGINS"},
		{"rate limit zero", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQUESTS"},
		{"rate limit disabled skips bounds", func(c *Config) {
			c.Security.RateLimitReqs = 0
			c.Security.RateLimitDisabled = true
		}, ""},
		{"window too long", func(c *Config) { c.Security.RateLimitWindow = 2 * time.Hour }, "RATE_LIMIT_WINDOW"},
		{"dashboard url scheme", func(c *Config) { c.Dashboard.APIBaseURL = "ftp://backend" }, "API_BASE_URL"},
		{"dashboard url query", func(c *Config) { c.Dashboard.APIBaseURL = "http://backend?x=1" }, "API_BASE_URL"},
		{"dashboard url prefix allowed", func(c *Config) { c.Dashboard.APIBaseURL = "http://proxy/podium/" }, ""},
		{"log level", func(c *Config) { c.Logging.Level = "verbose" }, "LOG_LEVEL"},
		{"log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestDataEndpointURL_TrimsSlash(t *testing.T) {
	d := DashboardConfig{APIBaseURL: "http://proxy/podium/"}
	if got := d.DataEndpointURL(); got != "http://proxy/podium/api/paralympics/all" {
		t.Errorf("DataEndpointURL() = %q", got)
	}
}
