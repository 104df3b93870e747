package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rlink/internal/logging"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, logging.ParseLevel(tt.raw), tt.want)
		})
	}
}

func TestLookupLevel(t *testing.T) {
	level, ok := logging.LookupLevel("Warning")
	assert.True(t, ok)
	assert.Equal(t, level, slog.LevelWarn)

	_, ok = logging.LookupLevel("")
	assert.True(t, ok)

	level, ok = logging.LookupLevel("verbose")
	assert.False(t, ok)
	assert.Equal(t, level, slog.LevelInfo)
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, "warn")

	logger.Info("hidden")
	assert.Equal(t, buf.Len(), 0)

	logger.Warn("shown", "path", "profile/1")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"path":"profile/1"`)
}

func TestDiscard(t *testing.T) {
	logger := logging.Discard()
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
}
