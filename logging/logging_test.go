package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"Warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"", slog.LevelInfo},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewLogger_Attributes(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "recipetext", "v1.2.3", slog.LevelInfo)

	logger.Info("parsed", "count", 2)
	logger.Debug("hidden")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "INFO", record["level"])
	assert.Equal(t, "parsed", record["msg"])
	assert.Equal(t, "recipetext", record["module"])
	assert.Equal(t, "v1.2.3", record["version"])
	assert.InDelta(t, 2, record["count"], 0)
	assert.NotContains(t, record, "source")
}

func TestNewLogger_DebugSource(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "recipetext", "dev", slog.LevelDebug)

	logger.Debug("block", "index", 0)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "DEBUG", record["level"])
	assert.Contains(t, record, "source")
}

func TestSetDefaultStructuredLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	t.Setenv(EnvLevel, "error")
	SetDefaultStructuredLogger("recipetext", "v0")
	ctx := context.Background()
	assert.False(t, slog.Default().Enabled(ctx, slog.LevelWarn))
	assert.True(t, slog.Default().Enabled(ctx, slog.LevelError))

	SetDefaultStructuredLoggerWithLevel("recipetext", "v0", "debug")
	assert.True(t, slog.Default().Enabled(ctx, slog.LevelDebug))
	assert.NotNil(t, NewLogLogger(slog.LevelInfo))
}

func TestDiscard(t *testing.T) {
	assert.False(t, Discard().Enabled(context.Background(), slog.LevelError))
}
