// internal/config/config.go
// Centralized configuration management
// Loads from environment variables with sensible defaults

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server
	Port            string
	Environment     string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// Logging
	LogLevel  string
	LogFormat string // "json" or "console"

	// Catalogs
	CatalogDir string // empty means the embedded seed catalogs

	// Rate Limiting
	RateLimitRPS             float64
	RateLimitBurst           int
	RateLimitCleanupInterval time.Duration
	TrustProxyHeaders        bool // key clients by X-Forwarded-For / X-Real-IP

	// Background jobs
	ReminderInterval time.Duration

	// Feature Flags
	EnableMetrics bool
}

// Load reads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Server
		Port:            getEnv("PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		ReadTimeout:     getEnvDuration("READ_TIMEOUT", "10s"),
		WriteTimeout:    getEnvDuration("WRITE_TIMEOUT", "10s"),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", "15s"),

		// Logging
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", ""),

		// Catalogs
		CatalogDir: getEnv("CATALOG_DIR", ""),

		// Rate Limiting
		RateLimitRPS:             getEnvFloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst:           getEnvInt("RATE_LIMIT_BURST", 40),
		RateLimitCleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", "5m"),
		TrustProxyHeaders:        getEnvBool("TRUST_PROXY_HEADERS", false),

		// Background jobs
		ReminderInterval: getEnvDuration("REMINDER_INTERVAL", "1m"),

		// Feature Flags
		EnableMetrics: getEnvBool("ENABLE_METRICS", true),
	}

	// Console output is easier to read locally
	if cfg.LogFormat == "" {
		if cfg.IsDevelopment() {
			cfg.LogFormat = "console"
		} else {
			cfg.LogFormat = "json"
		}
	}

	return cfg
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Environment {
	case "development", "staging", "production", "test":
	default:
		return fmt.Errorf("invalid environment: %s", c.Environment)
	}

	if c.Port == "" {
		return fmt.Errorf("port is required")
	}

	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format: %s", c.LogFormat)
	}

	if c.CatalogDir != "" {
		info, err := os.Stat(c.CatalogDir)
		if err != nil {
			return fmt.Errorf("catalog directory: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("catalog directory %s is not a directory", c.CatalogDir)
		}
	}

	// Rate limiting validation
	if c.RateLimitRPS <= 0 || c.RateLimitBurst < 1 || c.RateLimitCleanupInterval <= 0 {
		return fmt.Errorf("rate limiting values must be positive")
	}

	if c.ReadTimeout <= 0 || c.WriteTimeout <= 0 || c.ShutdownTimeout <= 0 {
		return fmt.Errorf("server timeouts must be positive")
	}

	if c.ReminderInterval < time.Second {
		return fmt.Errorf("reminder interval must be at least 1s")
	}

	return nil
}

// IsProduction returns true if running in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// IsDevelopment returns true if running in development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Helper functions

// getEnv gets a string value from environment with a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer value from environment with a default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvFloat gets a float value from environment with a default
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

// getEnvDuration gets a duration value from environment with a default
func getEnvDuration(key string, defaultValue string) time.Duration {
	value := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(value)
	if err != nil {
		// If parsing fails, try to parse the default
		duration, _ = time.ParseDuration(defaultValue)
	}
	return duration
}

// getEnvBool gets a boolean value from environment with a default
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
