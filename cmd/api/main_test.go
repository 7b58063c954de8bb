package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"outings/internal/config"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		level   string
		enabled slog.Level
		muted   slog.Level
	}{
		{"debug", slog.LevelDebug, slog.LevelDebug - 4},
		{"info", slog.LevelInfo, slog.LevelDebug},
		{"warn", slog.LevelWarn, slog.LevelInfo},
		{"error", slog.LevelError, slog.LevelWarn},
		{"WARN", slog.LevelWarn, slog.LevelInfo},
		{"bogus", slog.LevelInfo, slog.LevelDebug},
		{"", slog.LevelInfo, slog.LevelDebug},
	}
	for _, tc := range tests {
		t.Run("level_"+tc.level, func(t *testing.T) {
			logger := newLogger(tc.level)
			ctx := context.Background()
			assert.True(t, logger.Enabled(ctx, tc.enabled))
			assert.False(t, logger.Enabled(ctx, tc.muted))
		})
	}
}

func TestNewDBPoolRejectsBadURL(t *testing.T) {
	_, err := newDBPool(context.Background(), config.DatabaseConfig{URL: "://not-a-url"})
	assert.Error(t, err)
}
