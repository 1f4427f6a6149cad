package logging

import (
	"context"
	"errors"
	"log/slog"
)

// teeHandler fans each record out to several handlers, such as the console
// handler and the rolling file handler.
type teeHandler []slog.Handler

// NewMultiHandler returns a handler writing every record to all of handlers.
func NewMultiHandler(handlers ...slog.Handler) slog.Handler {
	return teeHandler(handlers)
}

func (t teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range t {
		if h.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

//nolint:gocritic // slog.Handler passes records by value
func (t teeHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error

	for _, h := range t {
		if !h.Enabled(ctx, r.Level) {
			continue
		}

		if err := h.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (t teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return t.derive(func(h slog.Handler) slog.Handler { return h.WithAttrs(attrs) })
}

func (t teeHandler) WithGroup(name string) slog.Handler {
	return t.derive(func(h slog.Handler) slog.Handler { return h.WithGroup(name) })
}

func (t teeHandler) derive(fn func(slog.Handler) slog.Handler) teeHandler {
	out := make(teeHandler, len(t))
	for i, h := range t {
		out[i] = fn(h)
	}

	return out
}
