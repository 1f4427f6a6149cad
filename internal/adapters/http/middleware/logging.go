package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/chembond-tutor/internal/platform/logging"
)

// operationalPrefix marks probe and metrics routes, which are never logged.
const operationalPrefix = "/-/"

// Logging returns middleware that logs one line per completed request with
// method, path, status, latency and size. Paths under /-/ and any exact
// match in skipPaths are not logged. The request-scoped logger (carrying
// request_id, correlation_id, trace_id) is used when present; logger otherwise.
func Logging(logger *slog.Logger, skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path

		if _, ok := skip[path]; ok || strings.HasPrefix(path, operationalPrefix) {
			c.Next()
			return
		}

		if c.Request.URL.RawQuery != "" {
			path += "?" + c.Request.URL.RawQuery
		}

		start := time.Now()

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		} else if status >= http.StatusBadRequest {
			level = slog.LevelWarn
		}

		ctx := c.Request.Context()

		reqLogger := logger
		if logging.HasLogger(ctx) {
			reqLogger = logging.FromContext(ctx)
		}

		reqLogger.Log(ctx, level, "request completed",
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.String("route", c.FullPath()),
			slog.Int("status", status),
			slog.Duration("latency", latency),
			slog.Int64("latency_ms", latency.Milliseconds()),
			slog.Int("bytes", c.Writer.Size()),
			slog.String("client_ip", c.ClientIP()),
		)
	}
}
