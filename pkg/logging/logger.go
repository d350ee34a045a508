// Package logging is the structured logger used across the API. Output is
// JSON on stdout, one event per line.
package logging

import (
	"log/slog"
	"os"
)

// Logger embeds slog.Logger so call sites get the full structured API.
type Logger struct {
	*slog.Logger
}

// New builds a JSON logger at the given level. Unrecognized levels fall
// back to info.
func New(level string) *Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(level),
	})

	return &Logger{Logger: slog.New(handler)}
}

// Default is the info-level logger components fall back to when none is
// injected.
func Default() *Logger {
	return New("info")
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
