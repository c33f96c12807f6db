// Marquee - Movie Catalog Query and Title Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package config provides centralized configuration management for Marquee.

Configuration is layered with Koanf v2. Later sources override earlier ones:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: CONFIG_PATH, else config.yaml / config.yml in the
    working directory, else /etc/marquee/config.yaml
 3. Environment variables

# Environment Variables

Catalog:
  - CATALOG_SNAPSHOT_PATH: parquet snapshot to load (default: data/movies_dataset.parquet)
  - CATALOG_RELOAD_INTERVAL: periodic rebuild, 0 disables (default: 0)

Database (DuckDB, in-memory):
  - DUCKDB_MAX_MEMORY: memory limit (default: 1GB)
  - DUCKDB_THREADS: worker threads, 0 = NumCPU (default: 0)

HTTP Server:
  - HTTP_HOST: bind address (default: 0.0.0.0)
  - HTTP_PORT: listen port (default: 8000)
  - HTTP_TIMEOUT: read/write timeout (default: 30s)
  - HTTP_SHUTDOWN_TIMEOUT: graceful shutdown budget (default: 10s)

Security:
  - CORS_ORIGINS: comma-separated allowed origins (default: none)
  - RATE_LIMIT_REQUESTS / RATE_LIMIT_WINDOW: per-IP limit (default: 100 per 1m)
  - DISABLE_RATE_LIMIT: turn the limiter off (default: false)

Recommendations:
  - RECOMMEND_DEFAULT_K, RECOMMEND_MAX_K, RECOMMEND_CACHE_SIZE,
    RECOMMEND_CACHE_TTL, RECOMMEND_MIN_VOTES

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Usage

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

Validate is called by Load; an invalid configuration never reaches the caller.
*/
package config
