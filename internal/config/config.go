// Package config handles application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
// Fields are populated from environment variables.
type Config struct {
	// Custom days
	CustomDaysPath string // Path to the custom days file, empty disables scanning
	MaxResults     int    // Cap on custom day results per query

	// Output
	Locale   string // en, he
	TextForm string // long, short

	// Logging
	LogLevel  string // debug, info, warn, error
	LogFormat string // json, text
}

// Text form constants
const (
	TextFormLong  = "long"
	TextFormShort = "short"
)

// Load reads configuration from environment variables.
// It first loads from a .env file if one is present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.CustomDaysPath = getEnv("CUSTOM_DAYS_PATH", "")
	cfg.MaxResults = getEnvInt("MAX_RESULTS", 1000)

	cfg.Locale = getEnv("LOCALE", "en")
	cfg.TextForm = getEnv("TEXT_FORM", TextFormLong)

	cfg.LogLevel = getEnv("LOG_LEVEL", "warn")
	cfg.LogFormat = getEnv("LOG_FORMAT", "text")

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all configuration values are valid.
func (c *Config) Validate() error {
	var errs []error

	if c.MaxResults < 1 {
		errs = append(errs, fmt.Errorf("MAX_RESULTS must be positive, got %d", c.MaxResults))
	}

	if c.Locale == "" {
		errs = append(errs, errors.New("LOCALE must not be empty"))
	}

	switch c.TextForm {
	case TextFormLong, TextFormShort:
		// Valid
	default:
		errs = append(errs, fmt.Errorf("TEXT_FORM must be one of: long, short; got %q", c.TextForm))
	}

	// Validate log level
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		// Valid
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", c.LogLevel))
	}

	// Validate log format
	switch c.LogFormat {
	case "json", "text":
		// Valid
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be one of: json, text; got %q", c.LogFormat))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// ShortForm returns true when names should use their abbreviated form.
func (c *Config) ShortForm() bool {
	return c.TextForm == TextFormShort
}

// getEnv reads an environment variable with a default fallback.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads an environment variable as an integer with a default fallback.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
