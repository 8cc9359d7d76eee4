package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"textstats/internal/handler/http/requestid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected slog.Level
		wantErr  bool
	}{
		{name: "empty defaults to info", input: "", expected: slog.LevelInfo},
		{name: "info", input: "info", expected: slog.LevelInfo},
		{name: "debug", input: "debug", expected: slog.LevelDebug},
		{name: "upper case warn", input: "WARN", expected: slog.LevelWarn},
		{name: "warning alias", input: "warning", expected: slog.LevelWarn},
		{name: "error with spaces", input: " error ", expected: slog.LevelError},
		{name: "unknown level", input: "verbose", expected: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo, FormatJSON)

	logger.Info("analysis done", slog.Int("words", 2))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "analysis done", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, float64(2), entry["words"])
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo, FormatText)

	logger.Info("analysis done", slog.Int("words", 2))

	out := buf.String()
	assert.Contains(t, out, "msg=\"analysis done\"")
	assert.Contains(t, out, "words=2")
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn, FormatJSON)

	logger.Info("dropped")
	logger.Warn("kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "kept")
}

func TestNew_UnknownFormatFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo, "xml")

	logger.Info("hello")

	assert.True(t, strings.HasPrefix(strings.TrimSpace(buf.String()), "{"))
}

func TestNewLogger(t *testing.T) {
	assert.NotNil(t, NewLogger("debug", FormatText))
	assert.NotNil(t, NewLogger("nonsense", FormatJSON))
}

func TestWithRequestID(t *testing.T) {
	tests := []struct {
		name      string
		requestID string
		expectKey bool
	}{
		{name: "with request ID", requestID: "req-123", expectKey: true},
		{name: "without request ID", requestID: "", expectKey: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := New(&buf, slog.LevelInfo, FormatJSON)

			ctx := context.Background()
			if tt.requestID != "" {
				ctx = requestid.WithRequestID(ctx, tt.requestID)
			}

			WithRequestID(ctx, base).Info("test")

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			if tt.expectKey {
				assert.Equal(t, tt.requestID, entry["request_id"])
			} else {
				assert.NotContains(t, entry, "request_id")
			}
		})
	}
}

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo, FormatJSON)

	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}
