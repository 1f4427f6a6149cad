// Package handlers provides the HTTP handlers for the tutor API and the
// operational /-/ endpoints.
package handlers

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jsamuelsen/chembond-tutor/internal/ports"
)

// readinessTimeout bounds one readiness evaluation.
const readinessTimeout = 2 * time.Second

// BuildInfo is injected at link time with -ldflags.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
}

// NewBuildInfo fills GoVersion from the running toolchain.
func NewBuildInfo(version, commit, buildTime string) BuildInfo {
	return BuildInfo{
		Version:   version,
		Commit:    commit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}
}

// HealthHandler serves the probes, build info and Prometheus metrics.
type HealthHandler struct {
	registry  ports.HealthRegistry
	buildInfo BuildInfo
	metrics   http.Handler
}

// NewHealthHandler creates a health handler. Metrics are served from
// gatherer; nil selects the Prometheus default registry.
func NewHealthHandler(registry ports.HealthRegistry, buildInfo BuildInfo, gatherer prometheus.Gatherer) *HealthHandler {
	return &HealthHandler{
		registry:  registry,
		buildInfo: buildInfo,
		metrics:   MetricsHandler(gatherer),
	}
}

type livenessResponse struct {
	Status string `json:"status"`
}

// Liveness always answers 200 while the process runs. It checks nothing.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, livenessResponse{Status: "ok"})
}

type readinessResponse struct {
	Status string                        `json:"status"`
	Checks map[string]*ports.CheckResult `json:"checks,omitempty"`
}

// Readiness answers 200 when every registered check passes and 503 otherwise.
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	result := h.registry.CheckAll(ctx)

	status := http.StatusOK
	if !result.Healthy() {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, readinessResponse{Status: string(result.Status), Checks: result.Checks})
}

// BuildInfoHandler serves the build metadata.
func (h *HealthHandler) BuildInfoHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.buildInfo)
}

// MetricsHandler exposes the metrics of g in the Prometheus text format.
// A failing collector does not hide the others.
func MetricsHandler(g prometheus.Gatherer) http.Handler {
	if g == nil {
		g = prometheus.DefaultGatherer
	}

	return promhttp.HandlerFor(g, promhttp.HandlerOpts{ErrorHandling: promhttp.ContinueOnError})
}

// RegisterHealthRoutes registers live, ready, build and metrics on rg.
func (h *HealthHandler) RegisterHealthRoutes(rg *gin.RouterGroup) {
	rg.GET("/live", h.Liveness)
	rg.HEAD("/live", h.Liveness)
	rg.GET("/ready", h.Readiness)
	rg.GET("/build", h.BuildInfoHandler)
	rg.GET("/metrics", gin.WrapH(h.metrics))
}

// RegisterHealthRoutesOnEngine registers the health routes under /-/.
func (h *HealthHandler) RegisterHealthRoutesOnEngine(engine *gin.Engine) {
	h.RegisterHealthRoutes(engine.Group("/-"))
}
