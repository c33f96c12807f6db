// Marquee - Movie Catalog Query and Title Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"fmt"
	"strings"
	"time"
)

// Rate limit bounds
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// maxRecommendK caps RECOMMEND_MAX_K; larger lists are not useful for a title lookup.
const maxRecommendK = 1000

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateCatalog(); err != nil {
		return err
	}

	if err := c.validateDatabase(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateCatalog() error {
	if strings.TrimSpace(c.Catalog.SnapshotPath) == "" {
		return fmt.Errorf("CATALOG_SNAPSHOT_PATH is required")
	}
	if c.Catalog.ReloadInterval < 0 {
		return fmt.Errorf("CATALOG_RELOAD_INTERVAL must not be negative")
	}
	if c.Catalog.ReloadInterval > 0 && c.Catalog.ReloadInterval < time.Second {
		return fmt.Errorf("CATALOG_RELOAD_INTERVAL must be at least 1s when set")
	}
	return nil
}

func (c *Config) validateDatabase() error {
	if c.Database.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must not be negative")
	}
	return nil
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

// validateSecurity validates CORS origins and rate limiting bounds
func (c *Config) validateSecurity() error {
	for _, origin := range c.Security.CORSOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("CORS_ORIGINS entry %q must be * or an http(s) origin", origin)
		}
	}
	return c.validateRateLimits()
}

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validateRecommend checks k bounds and cache sizing
func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.MaxK < 1 || r.MaxK > maxRecommendK {
		return fmt.Errorf("RECOMMEND_MAX_K must be between 1 and %d", maxRecommendK)
	}
	if r.DefaultK < 1 || r.DefaultK > r.MaxK {
		return fmt.Errorf("RECOMMEND_DEFAULT_K must be between 1 and RECOMMEND_MAX_K (%d)", r.MaxK)
	}
	if r.CacheSize < 0 {
		return fmt.Errorf("RECOMMEND_CACHE_SIZE must not be negative")
	}
	if r.CacheSize > 0 && r.CacheTTL <= 0 {
		return fmt.Errorf("RECOMMEND_CACHE_TTL must be positive when the cache is enabled")
	}
	if r.MinVotes < 0 {
		return fmt.Errorf("RECOMMEND_MIN_VOTES must not be negative")
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format == "" {
		return nil
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
