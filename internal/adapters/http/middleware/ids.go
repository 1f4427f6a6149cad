// Package middleware provides the gin middleware chain of the tutor API.
package middleware

import (
	"context"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsamuelsen/chembond-tutor/internal/platform/logging"
)

// Request and correlation ID headers, and the gin keys they are stored under.
// A request ID names one request; a correlation ID spans a client session.
const (
	HeaderRequestID         = "X-Request-ID"
	ContextKeyRequestID     = "request_id"
	HeaderCorrelationID     = "X-Correlation-ID"
	ContextKeyCorrelationID = "correlation_id"

	// maxIDLength bounds inbound IDs echoed into headers and logs.
	maxIDLength = 128
)

// RequestID accepts a well-formed inbound X-Request-ID or mints a UUID, then
// echoes it and attaches it to the request logger.
func RequestID() gin.HandlerFunc {
	return propagateID(HeaderRequestID, ContextKeyRequestID, logging.WithRequestID)
}

// CorrelationID does for X-Correlation-ID what RequestID does for X-Request-ID.
func CorrelationID() gin.HandlerFunc {
	return propagateID(HeaderCorrelationID, ContextKeyCorrelationID, logging.WithCorrelationID)
}

// GetRequestID returns the request ID, or "" when RequestID did not run.
func GetRequestID(c *gin.Context) string {
	return c.GetString(ContextKeyRequestID)
}

// GetCorrelationID returns the correlation ID, or "" when CorrelationID did not run.
func GetCorrelationID(c *gin.Context) string {
	return c.GetString(ContextKeyCorrelationID)
}

func propagateID(header, key string, enrich func(context.Context, string) context.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(header)
		if !acceptableID(id) {
			id = uuid.NewString()
		}

		c.Set(key, id)
		c.Header(header, id)
		c.Request = c.Request.WithContext(enrich(c.Request.Context(), id))

		c.Next()
	}
}

func acceptableID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}

	for _, r := range id {
		if !unicode.IsPrint(r) {
			return false
		}
	}

	return true
}
