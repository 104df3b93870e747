// Package logging builds the slog loggers used across rlink.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// New returns a JSON logger writing to w at the given level name.
func New(w io.Writer, rawLevel string) *slog.Logger {
	levelVar := &slog.LevelVar{}
	levelVar.Set(ParseLevel(rawLevel))

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     levelVar,
		AddSource: false,
	})
	return slog.New(handler)
}

// NewText is like New with the human readable text handler,
// for terminals.
func NewText(w io.Writer, rawLevel string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(rawLevel)}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// ParseLevel maps a level name to a slog.Level. Unknown names give Info.
func ParseLevel(rawLevel string) slog.Level {
	level, _ := LookupLevel(rawLevel)
	return level
}

// LookupLevel is ParseLevel that also reports whether the name is known.
// An empty name is Info.
func LookupLevel(rawLevel string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(rawLevel)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
