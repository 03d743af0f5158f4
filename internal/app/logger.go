package app

import (
	"io"
	"log/slog"
)

// newLogger builds the logger for one App. It never replaces slog's default
// logger, so several apps (as in tests) keep separate outputs. Unknown levels
// fall back to info; debug also records the source position of each call.
func newLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level, AddSource: level <= slog.LevelDebug}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
