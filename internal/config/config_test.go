package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENVIRONMENT", "LOG_LEVEL", "LOG_FORMAT", "CATALOG_DIR", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "RATE_LIMIT_CLEANUP_INTERVAL", "TRUST_PROXY_HEADERS", "REMINDER_INTERVAL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, 20.0, cfg.RateLimitRPS)
	assert.Equal(t, 40, cfg.RateLimitBurst)
	assert.Equal(t, 10*time.Second, cfg.ReadTimeout)
	assert.Equal(t, time.Minute, cfg.ReminderInterval)
	assert.Equal(t, 5*time.Minute, cfg.RateLimitCleanupInterval)
	assert.False(t, cfg.TrustProxyHeaders)
	assert.True(t, cfg.EnableMetrics)
	require.NoError(t, cfg.Validate())
}

func TestLoad_ProductionDefaultsToJSON(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_FORMAT", "")

	cfg := Load()
	assert.Equal(t, "json", cfg.LogFormat)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_BURST", "lots")
	t.Setenv("READ_TIMEOUT", "soon")

	cfg := Load()
	assert.Equal(t, 40, cfg.RateLimitBurst)
	assert.Equal(t, 10*time.Second, cfg.ReadTimeout)
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "movies.json")
	require.NoError(t, os.WriteFile(file, []byte("{}"), 0o600))

	valid := func() *Config {
		return &Config{
			Port:           "8080",
			Environment:    "development",
			LogLevel:       "info",
			LogFormat:      "json",
			RateLimitRPS:   1,
			RateLimitBurst: 1,

			RateLimitCleanupInterval: time.Minute,
			ReadTimeout:              time.Second,
			WriteTimeout:             time.Second,
			ShutdownTimeout:          time.Second,

			ReminderInterval: time.Minute,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "catalog dir", mutate: func(c *Config) { c.CatalogDir = dir }},
		{name: "catalog dir is a file", mutate: func(c *Config) { c.CatalogDir = file }, wantErr: true},
		{name: "missing catalog dir", mutate: func(c *Config) { c.CatalogDir = filepath.Join(dir, "nope") }, wantErr: true},
		{name: "bad environment", mutate: func(c *Config) { c.Environment = "qa" }, wantErr: true},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: true},
		{name: "bad log format", mutate: func(c *Config) { c.LogFormat = "xml" }, wantErr: true},
		{name: "zero rps", mutate: func(c *Config) { c.RateLimitRPS = 0 }, wantErr: true},
		{name: "zero cleanup interval", mutate: func(c *Config) { c.RateLimitCleanupInterval = 0 }, wantErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.WriteTimeout = 0 }, wantErr: true},
		{name: "reminder interval too short", mutate: func(c *Config) { c.ReminderInterval = time.Millisecond }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
