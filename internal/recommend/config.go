// Marquee - Movie Catalog Query and Title Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"time"

	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/similarity"
)

// Config tunes the Service.
type Config struct {
	// DefaultK is used when a caller asks for k <= 0.
	DefaultK int

	// MaxK caps k; larger requests are clamped.
	MaxK int

	// CacheSize is the number of cached result lists. 0 disables the cache.
	CacheSize int

	// CacheTTL bounds the age of a cached result list.
	CacheTTL time.Duration
}

// DefaultConfig returns the built-in service settings.
func DefaultConfig() Config {
	return Config{
		DefaultK:  similarity.DefaultK,
		MaxK:      50,
		CacheSize: 1024,
		CacheTTL:  10 * time.Minute,
	}
}

// ConfigFrom maps the application recommend settings onto a service Config.
func ConfigFrom(rc config.RecommendConfig) Config {
	return Config{
		DefaultK:  rc.DefaultK,
		MaxK:      rc.MaxK,
		CacheSize: rc.CacheSize,
		CacheTTL:  rc.CacheTTL,
	}
}

// normalize fills unset fields with defaults.
func (c Config) normalize() Config {
	def := DefaultConfig()
	if c.DefaultK <= 0 {
		c.DefaultK = def.DefaultK
	}
	if c.MaxK <= 0 {
		c.MaxK = def.MaxK
	}
	if c.DefaultK > c.MaxK {
		c.DefaultK = c.MaxK
	}
	if c.CacheSize < 0 {
		c.CacheSize = 0
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = def.CacheTTL
	}
	return c
}

// ClampK applies the default and the upper bound to a requested k.
func (c Config) ClampK(k int) int {
	if k <= 0 {
		return c.DefaultK
	}
	if k > c.MaxK {
		return c.MaxK
	}
	return k
}
