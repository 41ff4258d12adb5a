// Package log provides structured logging for go-facemesh.
// It builds slog loggers with a fixed text format on a caller-chosen writer,
// so stdout stays reserved for results.
package log

import (
	"io"
	"log/slog"
)

// New builds a text logger at level writing to w.
// Valid levels: "debug", "info", "warn", "error"
func New(level string, w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
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
