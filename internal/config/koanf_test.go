// Marquee - Movie Catalog Query and Title Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolateConfigSources points CONFIG_PATH at a file that does not exist and
// runs the test from an empty directory so no stray config.yaml is picked up.
func isolateConfigSources(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(ConfigPathEnvVar, filepath.Join(dir, "missing.yaml"))
	for env := range envMappings {
		t.Setenv(strings.ToUpper(env), "")
		os.Unsetenv(strings.ToUpper(env))
	}
}

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Catalog.SnapshotPath != "data/movies_dataset.parquet" {
		t.Errorf("Catalog.SnapshotPath = %q, want data/movies_dataset.parquet", cfg.Catalog.SnapshotPath)
	}
	if cfg.Catalog.ReloadInterval != 0 {
		t.Errorf("Catalog.ReloadInterval = %v, want 0", cfg.Catalog.ReloadInterval)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("Server.Port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Recommend.DefaultK != 5 {
		t.Errorf("Recommend.DefaultK = %d, want 5", cfg.Recommend.DefaultK)
	}
	if cfg.Recommend.MinVotes != 2000 {
		t.Errorf("Recommend.MinVotes = %d, want 2000", cfg.Recommend.MinVotes)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env  string
		want string
	}{
		{"CATALOG_SNAPSHOT_PATH", "catalog.snapshot_path"},
		{"HTTP_PORT", "server.port"},
		{"DUCKDB_THREADS", "database.threads"},
		{"RECOMMEND_MAX_K", "recommend.max_k"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"LOG_LEVEL", "logging.level"},
		{"HOME", ""},
		{"PATH", ""},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Parallel()
			if got := envTransformFunc(tt.env); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
			}
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	t.Run("no config file", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "")
		if got := findConfigFile(); got != "" {
			t.Errorf("findConfigFile() = %q, want empty", got)
		}
	})

	t.Run("config.yaml in working directory", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "")
		if err := os.WriteFile("config.yaml", []byte("server: {}\n"), 0o600); err != nil {
			t.Fatalf("write config: %v", err)
		}
		t.Cleanup(func() { os.Remove("config.yaml") })

		if got := findConfigFile(); got != "config.yaml" {
			t.Errorf("findConfigFile() = %q, want config.yaml", got)
		}
	})

	t.Run("CONFIG_PATH takes precedence", func(t *testing.T) {
		custom := filepath.Join(dir, "custom.yaml")
		if err := os.WriteFile(custom, []byte("server: {}\n"), 0o600); err != nil {
			t.Fatalf("write config: %v", err)
		}
		t.Setenv(ConfigPathEnvVar, custom)

		if got := findConfigFile(); got != custom {
			t.Errorf("findConfigFile() = %q, want %q", got, custom)
		}
	})
}

func TestLoadWithKoanfEnvVars(t *testing.T) {
	isolateConfigSources(t)
	t.Setenv("CATALOG_SNAPSHOT_PATH", "/srv/movies.parquet")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("RECOMMEND_CACHE_TTL", "30s")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Catalog.SnapshotPath != "/srv/movies.parquet" {
		t.Errorf("Catalog.SnapshotPath = %q", cfg.Catalog.SnapshotPath)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Recommend.CacheTTL != 30*time.Second {
		t.Errorf("Recommend.CacheTTL = %v, want 30s", cfg.Recommend.CacheTTL)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://b.example" {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadWithKoanfConfigFile(t *testing.T) {
	isolateConfigSources(t)

	configContent := `
catalog:
  snapshot_path: "/data/from-file.parquet"
  reload_interval: 15m

server:
  port: 8888
  host: "127.0.0.1"

recommend:
  default_k: 8
  max_k: 20

logging:
  level: "warn"
`
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o600); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, configPath)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Catalog.SnapshotPath != "/data/from-file.parquet" {
		t.Errorf("Catalog.SnapshotPath = %q", cfg.Catalog.SnapshotPath)
	}
	if cfg.Catalog.ReloadInterval != 15*time.Minute {
		t.Errorf("Catalog.ReloadInterval = %v, want 15m", cfg.Catalog.ReloadInterval)
	}
	if cfg.Server.Addr() != "127.0.0.1:8888" {
		t.Errorf("Server.Addr() = %q, want 127.0.0.1:8888", cfg.Server.Addr())
	}
	if cfg.Recommend.DefaultK != 8 || cfg.Recommend.MaxK != 20 {
		t.Errorf("Recommend = %+v", cfg.Recommend)
	}

	// Defaults survive for keys the file does not set
	if cfg.Recommend.CacheSize != 1024 {
		t.Errorf("Recommend.CacheSize = %d, want 1024 (default)", cfg.Recommend.CacheSize)
	}
}

func TestLoadWithKoanfEnvOverridesFile(t *testing.T) {
	isolateConfigSources(t)

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("server:\n  port: 8888\n"), 0o600); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, configPath)
	t.Setenv("HTTP_PORT", "7777")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 7777 {
		t.Errorf("Server.Port = %d, want 7777 (env wins)", cfg.Server.Port)
	}
}

func TestLoadWithKoanfValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"port out of range", map[string]string{"HTTP_PORT": "70000"}, "HTTP_PORT"},
		{"default k above max", map[string]string{"RECOMMEND_DEFAULT_K": "60"}, "RECOMMEND_DEFAULT_K"},
		{"max k zero", map[string]string{"RECOMMEND_MAX_K": "0"}, "RECOMMEND_MAX_K"},
		{"bad log level", map[string]string{"LOG_LEVEL": "verbose"}, "LOG_LEVEL"},
		{"empty snapshot path", map[string]string{"CATALOG_SNAPSHOT_PATH": " "}, "CATALOG_SNAPSHOT_PATH"},
		{"rate limit window too small", map[string]string{"RATE_LIMIT_WINDOW": "10ms"}, "RATE_LIMIT_WINDOW"},
		{"bad cors origin", map[string]string{"CORS_ORIGINS": "example.com"}, "CORS_ORIGINS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateConfigSources(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadWithKoanf()
			if err == nil {
				t.Fatalf("LoadWithKoanf() expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to mention %s", err, tt.wantErr)
			}
		})
	}
}

func TestRateLimitDisabledSkipsBounds(t *testing.T) {
	cfg := defaultConfig()
	cfg.Security.RateLimitDisabled = true
	cfg.Security.RateLimitReqs = 0

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() with rate limiting disabled = %v, want nil", err)
	}
}
