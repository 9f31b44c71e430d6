// Package logging builds the slog logger used on stderr.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// LevelEnv selects the log level
const LevelEnv = "MGREP_LOG_LEVEL"

// New creates a text logger writing to w at the given level name.
// Unknown or empty names fall back to warn so a normal run stays quiet.
func New(w io.Writer, level string) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	return slog.New(handler)
}

// parseLevel converts string level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
