package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	// Clear any existing env vars that might interfere
	clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with defaults failed: %v", err)
	}

	// Check defaults are applied
	if cfg.CustomDaysPath != "" {
		t.Errorf("CustomDaysPath = %q, want empty", cfg.CustomDaysPath)
	}
	if cfg.MaxResults != 1000 {
		t.Errorf("MaxResults = %d, want 1000", cfg.MaxResults)
	}
	if cfg.Locale != "en" {
		t.Errorf("Locale = %q, want %q", cfg.Locale, "en")
	}
	if cfg.TextForm != TextFormLong {
		t.Errorf("TextForm = %q, want %q", cfg.TextForm, TextFormLong)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "warn")
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "text")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv()

	// Set custom values
	os.Setenv("CUSTOM_DAYS_PATH", "/data/custom_days")
	os.Setenv("MAX_RESULTS", "50")
	os.Setenv("LOCALE", "he")
	os.Setenv("TEXT_FORM", "short")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	defer clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.CustomDaysPath != "/data/custom_days" {
		t.Errorf("CustomDaysPath = %q, want %q", cfg.CustomDaysPath, "/data/custom_days")
	}
	if cfg.MaxResults != 50 {
		t.Errorf("MaxResults = %d, want 50", cfg.MaxResults)
	}
	if cfg.Locale != "he" {
		t.Errorf("Locale = %q, want %q", cfg.Locale, "he")
	}
	if cfg.TextForm != TextFormShort {
		t.Errorf("TextForm = %q, want %q", cfg.TextForm, TextFormShort)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "json")
	}
}

func TestConfig_Validate(t *testing.T) {
	// Table-driven tests for validation
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				MaxResults: 1000,
				Locale:     "en",
				TextForm:   TextFormLong,
				LogLevel:   "info",
				LogFormat:  "text",
			},
			wantErr: false,
		},
		{
			name: "valid short form hebrew config",
			config: Config{
				CustomDaysPath: "/data/custom_days",
				MaxResults:     25,
				Locale:         "he",
				TextForm:       TextFormShort,
				LogLevel:       "debug",
				LogFormat:      "json",
			},
			wantErr: false,
		},
		{
			name: "invalid max results",
			config: Config{
				MaxResults: 0,
				Locale:     "en",
				TextForm:   TextFormLong,
				LogLevel:   "info",
				LogFormat:  "text",
			},
			wantErr: true,
		},
		{
			name: "empty locale",
			config: Config{
				MaxResults: 1000,
				Locale:     "",
				TextForm:   TextFormLong,
				LogLevel:   "info",
				LogFormat:  "text",
			},
			wantErr: true,
		},
		{
			name: "invalid text form",
			config: Config{
				MaxResults: 1000,
				Locale:     "en",
				TextForm:   "medium", // Not valid
				LogLevel:   "info",
				LogFormat:  "text",
			},
			wantErr: true,
		},
		{
			name: "invalid log level",
			config: Config{
				MaxResults: 1000,
				Locale:     "en",
				TextForm:   TextFormLong,
				LogLevel:   "verbose", // Not valid
				LogFormat:  "text",
			},
			wantErr: true,
		},
		{
			name: "invalid log format",
			config: Config{
				MaxResults: 1000,
				Locale:     "en",
				TextForm:   TextFormLong,
				LogLevel:   "info",
				LogFormat:  "xml", // Not valid
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_ShortForm(t *testing.T) {
	cfg := &Config{TextForm: TextFormShort}
	if !cfg.ShortForm() {
		t.Error("ShortForm() = false, want true")
	}

	cfg.TextForm = TextFormLong
	if cfg.ShortForm() {
		t.Error("ShortForm() = true, want false")
	}
}

// clearEnv removes all config-related environment variables
func clearEnv() {
	vars := []string{
		"CUSTOM_DAYS_PATH", "MAX_RESULTS", "LOCALE", "TEXT_FORM",
		"LOG_LEVEL", "LOG_FORMAT",
	}
	for _, v := range vars {
		os.Unsetenv(v)
	}
}
