// Package logger provides structured logging using log/slog.
package logger

import (
	"log/slog"
	"os"

	"github.com/baruchs/hebdate/internal/config"
)

// Setup initializes the global logger based on configuration.
// Call this once at application startup. Logs go to stderr so command
// output on stdout stays clean.
func Setup(cfg *config.Config) *slog.Logger {
	var handler slog.Handler

	// Set log level
	level := parseLevel(cfg.LogLevel)
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug, // Add source file info in debug mode
	}

	// Choose handler based on format
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	// Create logger and set as default
	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
