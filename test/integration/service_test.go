//go:build integration

package integration

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/chembond-tutor/internal/adapters/catalog"
	chttp "github.com/jsamuelsen/chembond-tutor/internal/adapters/http"
	"github.com/jsamuelsen/chembond-tutor/internal/adapters/http/handlers"
	"github.com/jsamuelsen/chembond-tutor/internal/adapters/render"
	"github.com/jsamuelsen/chembond-tutor/internal/app"
	"github.com/jsamuelsen/chembond-tutor/internal/platform/config"
	"github.com/jsamuelsen/chembond-tutor/internal/platform/metrics"
	"github.com/jsamuelsen/chembond-tutor/internal/ports"
)

// loadConfig loads and validates the test profile.
func loadConfig(t testing.TB) *config.Config {
	t.Helper()

	cfg, err := config.Load("test")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	return cfg
}

// newService assembles the full HTTP stack in-process, the same way the
// service binary does.
func newService(t testing.TB, cfg *config.Config) (http.Handler, *prometheus.Registry) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	reg := prometheus.NewRegistry()
	recorder, err := metrics.New(reg)
	require.NoError(t, err)

	kb, err := catalog.Load()
	require.NoError(t, err)

	healthRegistry := ports.NewHealthRegistry()
	require.NoError(t, healthRegistry.Register(kb))

	rc := chttp.NewDefaultRouterConfig(logger, cfg,
		handlers.NewHealthHandler(healthRegistry, handlers.NewBuildInfo("test", "none", "now"), reg))
	rc.ChatHandler = handlers.NewChatHandler(app.NewChatService(app.ChatServiceConfig{
		Molecules: kb, Glossary: kb, Metrics: recorder, Logger: logger,
	}))
	rc.QuizHandler = handlers.NewQuizHandler(app.NewQuizService(app.QuizServiceConfig{
		Bank: kb, Shuffler: app.ShufflerForSeed(cfg.Quiz.Seed), Metrics: recorder, Logger: logger,
	}), cfg.Quiz.DefaultCount)
	rc.MoleculeHandler = handlers.NewMoleculeHandler(app.NewMoleculeService(app.MoleculeServiceConfig{
		Catalog: kb, Renderer: render.NewSVGRenderer(), Metrics: recorder, Logger: logger,
	}), kb, kb)

	engine := gin.New()
	chttp.SetupRouter(engine, rc)

	return engine, reg
}
