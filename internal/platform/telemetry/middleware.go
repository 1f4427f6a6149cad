package telemetry

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/chembond-tutor/internal/platform/logging"
)

const (
	instrumentationName = "github.com/jsamuelsen/chembond-tutor/telemetry"

	// TraceIDHeader carries the active trace ID back to the client.
	TraceIDHeader = "X-Trace-ID"
)

// httpInstruments are exported through the OTLP meter provider.
type httpInstruments struct {
	duration metric.Float64Histogram
	total    metric.Int64Counter
	inFlight metric.Int64UpDownCounter
}

func newHTTPInstruments(meter metric.Meter) (*httpInstruments, error) {
	duration, errDuration := meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("HTTP request duration in seconds"), metric.WithUnit("s"))
	total, errTotal := meter.Int64Counter("http.server.request.total",
		metric.WithDescription("Total number of HTTP requests"))
	inFlight, errInFlight := meter.Int64UpDownCounter("http.server.active_requests",
		metric.WithDescription("Number of active HTTP requests"))

	if err := errors.Join(errDuration, errTotal, errInFlight); err != nil {
		return nil, err
	}

	return &httpInstruments{duration: duration, total: total, inFlight: inFlight}, nil
}

func (m *httpInstruments) begin(ctx context.Context, attrs attribute.Set) func(status int) {
	start := time.Now()
	m.inFlight.Add(ctx, 1, metric.WithAttributeSet(attrs))

	return func(status int) {
		m.inFlight.Add(ctx, -1, metric.WithAttributeSet(attrs))

		done := metric.WithAttributes(append(attrs.ToSlice(), attribute.Int("http.status_code", status))...)
		m.duration.Record(ctx, time.Since(start).Seconds(), done)
		m.total.Add(ctx, 1, done)
	}
}

// Middleware records OTel HTTP metrics and echoes the trace ID in
// TraceIDHeader and the request logger. TracingMiddleware must run first.
func Middleware() gin.HandlerFunc {
	instruments, err := newHTTPInstruments(otel.Meter(instrumentationName))
	if err != nil {
		otel.Handle(err)
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if sc := trace.SpanFromContext(ctx).SpanContext(); sc.HasTraceID() {
			traceID := sc.TraceID().String()
			c.Header(TraceIDHeader, traceID)
			c.Request = c.Request.WithContext(logging.WithTraceID(ctx, traceID))
		}

		if instruments == nil {
			c.Next()
			return
		}

		end := instruments.begin(ctx, attribute.NewSet(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.route", route(c)),
		))

		c.Next()
		end(c.Writer.Status())
	}
}

// TracingMiddleware starts a server span per request.
func TracingMiddleware(serviceName string) gin.HandlerFunc {
	return otelgin.Middleware(serviceName)
}

func route(c *gin.Context) string {
	if p := c.FullPath(); p != "" {
		return p
	}

	return "unmatched"
}
