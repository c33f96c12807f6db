// Marquee - Movie Catalog Query and Title Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
//
// Thread Safety:
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Catalog   CatalogConfig   `koanf:"catalog"`
	Database  DatabaseConfig  `koanf:"database"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Recommend RecommendConfig `koanf:"recommend"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// CatalogConfig describes where the movie snapshot lives and how often it is
// re-read.
//
// Environment Variables:
//   - CATALOG_SNAPSHOT_PATH: parquet snapshot (default: data/movies_dataset.parquet)
//   - CATALOG_RELOAD_INTERVAL: rebuild period, 0 disables (default: 0)
type CatalogConfig struct {
	SnapshotPath   string        `koanf:"snapshot_path"`
	ReloadInterval time.Duration `koanf:"reload_interval"`
}

// DatabaseConfig holds the DuckDB settings used to read the snapshot.
// The database itself is in-memory; nothing is written to disk.
type DatabaseConfig struct {
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"` // 0 = use NumCPU
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SecurityConfig holds CORS and rate limiting settings.
// The catalog is public and read-only, so there is no authentication.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// RecommendConfig tunes the title recommendation service.
//
// Environment Variables:
//   - RECOMMEND_DEFAULT_K: results when no k is requested (default: 5)
//   - RECOMMEND_MAX_K: upper bound for k (default: 50)
//   - RECOMMEND_CACHE_SIZE: cached result lists (default: 1024)
//   - RECOMMEND_CACHE_TTL: lifetime of a cached list (default: 10m)
//   - RECOMMEND_MIN_VOTES: vote floor for the votes-by-title query (default: 2000)
type RecommendConfig struct {
	DefaultK  int           `koanf:"default_k"`
	MaxK      int           `koanf:"max_k"`
	CacheSize int           `koanf:"cache_size"`
	CacheTTL  time.Duration `koanf:"cache_ttl"`
	MinVotes  int64         `koanf:"min_votes"`
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level.
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// Load reads configuration with the following precedence (highest wins):
//
//  1. Built-in defaults
//  2. Config file (config.yaml if present, or the path in CONFIG_PATH)
//  3. Environment variables
//
// See LoadWithKoanf for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
