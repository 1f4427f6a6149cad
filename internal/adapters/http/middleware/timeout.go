package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/chembond-tutor/internal/adapters/http/dto"
	"github.com/jsamuelsen/chembond-tutor/internal/platform/logging"
)

// SimpleTimeout returns middleware that gives each request a deadline.
// Handlers run on the request goroutine and must honor ctx.Done(); if the
// deadline passed and nothing was written, the standard 504 envelope is sent.
func SimpleTimeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if !errors.Is(ctx.Err(), context.DeadlineExceeded) || c.Writer.Written() {
			return
		}

		logging.FromContext(ctx).WarnContext(ctx, "request timeout",
			slog.String("path", c.Request.URL.Path),
			slog.String("method", c.Request.Method),
			slog.Duration("timeout", timeout),
		)

		dto.HandleError(c, ctx.Err())
	}
}
