// Podium - Paralympics Data API and Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

// Package config loads the settings shared by the API server, the dashboard
// and podiumctl.
//
// Sources are layered with Koanf v2, later layers winning:
//
//  1. Built-in defaults (defaultConfig)
//  2. Optional YAML file (CONFIG_PATH, ./config.yaml, /etc/podium/config.yaml)
//  3. Environment variables (HTTP_PORT, DUCKDB_PATH, API_BASE_URL, ...)
//
// The result is validated before it is returned.
package config

import "time"

// Config holds all application configuration.
type Config struct {
	Database  DatabaseConfig  `koanf:"database"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Dashboard DashboardConfig `koanf:"dashboard"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// DatabaseConfig holds record store settings
type DatabaseConfig struct {
	Driver                 string `koanf:"driver"` // "duckdb" or "sqlite3"
	Path                   string `koanf:"path"`
	MaxMemory              string `koanf:"max_memory"`               // DuckDB only
	Threads                int    `koanf:"threads"`                  // DuckDB only (0 = use NumCPU)
	PreserveInsertionOrder bool   `koanf:"preserve_insertion_order"` // DuckDB only
	SeedData               bool   `koanf:"seed_data"`                // Load the bundled editions when the store is empty
}

// ServerConfig holds API HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // "development", "staging", "production"
}

// SecurityConfig holds cross-origin and rate limiting settings for both servers
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// DashboardConfig holds dashboard server and backend client settings
type DashboardConfig struct {
	Port         int           `koanf:"port"`
	Host         string        `koanf:"host"`
	APIBaseURL   string        `koanf:"api_base_url"`
	FetchTimeout time.Duration `koanf:"fetch_timeout"`
	Title        string        `koanf:"title"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from defaults, an optional config file and the
// environment. See LoadWithKoanf.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// IsProduction reports whether ENVIRONMENT=production.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
