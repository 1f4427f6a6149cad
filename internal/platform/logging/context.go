package logging

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

var defaultLogger = slog.Default()

// FromContext returns the request-scoped logger, or the process default
// when ctx is nil or carries none.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := loggerFrom(ctx); ok {
		return logger
	}

	return defaultLogger
}

// HasLogger reports whether ctx carries a request-scoped logger.
func HasLogger(ctx context.Context) bool {
	_, ok := loggerFrom(ctx)
	return ok
}

// WithContext stores a logger in the context.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// WithRequestID attaches request_id to the context logger.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return withAttr(ctx, "request_id", requestID)
}

// WithTraceID attaches trace_id to the context logger.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return withAttr(ctx, "trace_id", traceID)
}

// WithCorrelationID attaches correlation_id to the context logger.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return withAttr(ctx, "correlation_id", correlationID)
}

// SetDefault sets the logger used when no logger is in context, and the
// slog package default.
func SetDefault(logger *slog.Logger) {
	defaultLogger = logger
	slog.SetDefault(logger)
}

func loggerFrom(ctx context.Context) (*slog.Logger, bool) {
	if ctx == nil {
		return nil, false
	}

	logger, ok := ctx.Value(ctxKey{}).(*slog.Logger)

	return logger, ok && logger != nil
}

func withAttr(ctx context.Context, key, value string) context.Context {
	return WithContext(ctx, FromContext(ctx).With(slog.String(key, value)))
}
