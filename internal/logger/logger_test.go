package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWithWriter(t *testing.T) {
	t.Run("json format", func(t *testing.T) {
		var buf bytes.Buffer
		InitWithWriter(NewConfig("info", "json", "barodex", "test", "test", false), &buf)

		slog.Info("hello", "key", "value")

		out := buf.String()
		assert.Contains(t, out, `"msg":"hello"`)
		assert.Contains(t, out, `"service":"barodex"`)
	})

	t.Run("level filtering", func(t *testing.T) {
		var buf bytes.Buffer
		InitWithWriter(NewConfig("warn", "text", "barodex", "test", "test", false), &buf)

		slog.Info("dropped")
		slog.Warn("kept")

		out := buf.String()
		assert.NotContains(t, out, "dropped")
		assert.Contains(t, out, "kept")
	})
}

func TestRequestIDPlumbing(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		id := GenerateRequestID()
		require.NotEmpty(t, id)

		ctx := WithRequestID(context.Background(), id)
		got, ok := RequestIDFromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, id, got)
	})

	t.Run("absent from bare context", func(t *testing.T) {
		_, ok := RequestIDFromContext(context.Background())
		assert.False(t, ok)
	})

	t.Run("FromContext attaches request_id", func(t *testing.T) {
		var buf bytes.Buffer
		InitWithWriter(NewConfig("info", "json", "barodex", "test", "test", false), &buf)

		ctx := WithRequestID(context.Background(), "req-123")
		FromContext(ctx).Info("traced")

		assert.True(t, strings.Contains(buf.String(), "req-123"))
	})
}

func TestConfigLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, Config{Level: "debug"}.LogLevel())
	assert.Equal(t, slog.LevelWarn, Config{Level: "WARNING"}.LogLevel())
	assert.Equal(t, slog.LevelInfo, Config{Level: "bogus"}.LogLevel())
	assert.True(t, Config{Format: "JSON"}.IsJSON())
	assert.False(t, DefaultConfig().IsJSON())
}
