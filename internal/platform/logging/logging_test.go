package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/m-mizutani/masq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{ReplaceAttr: NewReplaceAttr()}))
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	return entry
}

func TestFromContext(t *testing.T) {
	assert.Same(t, defaultLogger, FromContext(nil)) //nolint:staticcheck // nil guard
	assert.Same(t, defaultLogger, FromContext(context.Background()))

	custom := slog.New(slog.NewTextHandler(io.Discard, nil))
	assert.Same(t, custom, FromContext(WithContext(context.Background(), custom)))
}

func TestHasLogger(t *testing.T) {
	assert.False(t, HasLogger(nil)) //nolint:staticcheck // nil guard
	assert.False(t, HasLogger(context.Background()))
	assert.False(t, HasLogger(WithContext(context.Background(), nil)))

	ctx := WithContext(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.True(t, HasLogger(ctx))
	assert.True(t, HasLogger(WithRequestID(ctx, "req-1")))
}

func TestContextIDs(t *testing.T) {
	var buf bytes.Buffer

	ctx := WithContext(context.Background(), jsonLogger(&buf))
	ctx = WithRequestID(ctx, "req-123")
	ctx = WithTraceID(ctx, "trace-456")
	ctx = WithCorrelationID(ctx, "corr-789")

	FromContext(ctx).InfoContext(ctx, "analyzed molecule", slog.String("formula", "H2O"))

	entry := decodeLine(t, &buf)
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, "trace-456", entry["trace_id"])
	assert.Equal(t, "corr-789", entry["correlation_id"])
	assert.Equal(t, "H2O", entry["formula"])
}

func TestContextIDs_WithoutStoredLogger(t *testing.T) {
	original := defaultLogger
	t.Cleanup(func() { SetDefault(original) })

	var buf bytes.Buffer
	SetDefault(jsonLogger(&buf))

	ctx := WithRequestID(context.Background(), "req-1")
	require.True(t, HasLogger(ctx))

	FromContext(ctx).Info("hello")
	assert.Equal(t, "req-1", decodeLine(t, &buf)["request_id"])
}

func TestSetDefault(t *testing.T) {
	original := defaultLogger
	t.Cleanup(func() { SetDefault(original) })

	custom := slog.New(slog.NewTextHandler(io.Discard, nil))
	SetDefault(custom)

	assert.Same(t, custom, FromContext(context.Background()))
	assert.Same(t, custom, slog.Default())
}

func TestNewWithWriter_Formats(t *testing.T) {
	tests := []struct {
		format string
		check  func(t *testing.T, out string)
	}{
		{
			format: "json",
			check: func(t *testing.T, out string) {
				var entry map[string]any
				require.NoError(t, json.Unmarshal([]byte(out), &entry))
				assert.Equal(t, "chembond-tutor", entry["service_name"])
				assert.Equal(t, "1.2.3", entry["service_version"])
			},
		},
		{
			format: "text",
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, "service_name=chembond-tutor")
			},
		},
		{
			format: "pretty",
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, "catalog loaded")
			},
		},
		{
			format: "unknown-falls-back-to-json",
			check: func(t *testing.T, out string) {
				assert.True(t, json.Valid([]byte(out)))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer

			logger := NewWithWriter(&Config{
				Level: "info", Format: tt.format, Service: "chembond-tutor", Version: "1.2.3",
			}, &buf)

			logger.Info("catalog loaded", slog.Int("molecules", 9))
			tt.check(t, buf.String())
		})
	}
}

func TestNewWithWriter_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tutor.log")

	var buf bytes.Buffer
	logger := NewWithWriter(&Config{
		Level:  "info",
		Format: "pretty",
		File:   FileConfig{Enabled: true, Path: path, MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1},
	}, &buf)

	logger.Info("quiz generated", slog.String("topic", "VSEPR Theory"))

	assert.Contains(t, buf.String(), "quiz generated")

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(content), &entry))
	assert.Equal(t, "VSEPR Theory", entry["topic"])
}

func TestNewWithWriter_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&Config{Level: "warn", Format: "json"}, &buf)

	logger.Info("hidden")
	assert.Zero(t, buf.Len())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	logger = NewWithWriter(&Config{Level: "trace", Format: "json"}, &buf)
	logger.Log(context.Background(), LevelTrace, "step detail")
	assert.Contains(t, buf.String(), "step detail")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"trace":   LevelTrace,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, parseLevel(in))
		})
	}
}

func TestSlogToCharmLevel(t *testing.T) {
	assert.Equal(t, log.DebugLevel, slogToCharmLevel(LevelTrace))
	assert.Equal(t, log.DebugLevel, slogToCharmLevel(slog.LevelDebug))
	assert.Equal(t, log.InfoLevel, slogToCharmLevel(slog.LevelInfo))
	assert.Equal(t, log.WarnLevel, slogToCharmLevel(slog.LevelWarn))
	assert.Equal(t, log.ErrorLevel, slogToCharmLevel(slog.LevelError))
}

type failingHandler struct{ slog.Handler }

func (failingHandler) Handle(context.Context, slog.Record) error { //nolint:gocritic // slog.Handler signature
	return errors.New("disk full")
}

func TestMultiHandler(t *testing.T) {
	var info, debug bytes.Buffer

	h := NewMultiHandler(
		slog.NewJSONHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)

	assert.True(t, h.Enabled(context.Background(), slog.LevelDebug))
	assert.False(t, h.Enabled(context.Background(), LevelTrace))

	logger := slog.New(h).With(slog.String("component", "catalog")).WithGroup("lookup")
	logger.Debug("miss", slog.String("formula", "XE"))

	assert.Zero(t, info.Len())

	entry := decodeLine(t, &debug)
	assert.Equal(t, "catalog", entry["component"])
	assert.Equal(t, map[string]any{"formula": "XE"}, entry["lookup"])

	var ok bytes.Buffer
	failing := NewMultiHandler(failingHandler{slog.NewJSONHandler(io.Discard, nil)}, slog.NewJSONHandler(&ok, nil))

	err := failing.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelInfo, "x", 0))
	require.EqualError(t, err, "disk full")
	assert.Contains(t, ok.String(), `"msg":"x"`)
}

func TestNewReplaceAttr(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		value  string
		redact bool
	}{
		{name: "password", key: "password", value: "hunter2", redact: true},
		{name: "token", key: "token", value: "tok-123", redact: true},
		{name: "api key", key: "api_key", value: "k-123", redact: true},
		{name: "secret prefix", key: "secret_config", value: "s-123", redact: true},
		{name: "database url field", key: "database_url", value: "postgres://me:pw@db/tutor", redact: true},
		{name: "dsn value under any key", key: "target", value: "postgres://me:pw@db/tutor", redact: true},
		{name: "bearer value", key: "auth_header", value: "Bearer abc123xyz", redact: true},
		{name: "jwt value", key: "header", value: "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxIn0.sig", redact: true},
		{name: "formula", key: "formula", value: "H2O", redact: false},
		{name: "plain url", key: "endpoint", value: "http://localhost:4317", redact: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			jsonLogger(&buf).Info("event", slog.String(tt.key, tt.value))

			entry := decodeLine(t, &buf)
			require.Contains(t, entry, tt.key)

			if tt.redact {
				assert.NotEqual(t, tt.value, entry[tt.key])
				assert.NotContains(t, buf.String(), tt.value)
			} else {
				assert.Equal(t, tt.value, entry[tt.key])
			}
		})
	}
}

func TestNewReplaceAttr_ExtraOptions(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		ReplaceAttr: NewReplaceAttr(masq.WithFieldName("student_email")),
	}))

	logger.Info("chat", slog.String("student_email", "ada@example.org"))

	assert.NotContains(t, buf.String(), "ada@example.org")
}
