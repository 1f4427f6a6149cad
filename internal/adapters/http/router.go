package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/chembond-tutor/internal/adapters/http/handlers"
	"github.com/jsamuelsen/chembond-tutor/internal/adapters/http/middleware"
	"github.com/jsamuelsen/chembond-tutor/internal/platform/config"
	"github.com/jsamuelsen/chembond-tutor/internal/platform/telemetry"
)

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// AppConfig contains application configuration.
	AppConfig *config.AppConfig

	// CORS is the cross-origin policy. Nil disables CORS handling.
	CORS *config.CORSConfig

	// HealthHandler handles the /-/ operational endpoints.
	HealthHandler *handlers.HealthHandler

	// StatusHandler serves / and /test.
	StatusHandler *handlers.StatusHandler

	// ChatHandler, QuizHandler and MoleculeHandler serve the tutor API.
	ChatHandler     *handlers.ChatHandler
	QuizHandler     *handlers.QuizHandler
	MoleculeHandler *handlers.MoleculeHandler

	// Timeout is the per-request deadline on /api/v1. Zero disables it.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID - generate/extract request ID
//  3. Correlation ID - handle distributed tracing correlation
//  4. CORS - answer preflights before any handler work
//  5. OpenTelemetry - tracing and metrics
//  6. Logging - request logging (skips health endpoints)
//  7. Timeout - request deadline on /api/v1
//
// Route groups:
//   - / and /test: status banner and legacy report
//   - /-/ (internal): health, build info, metrics
//   - /api/v1/: chat, quiz and molecule endpoints
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	chain := []gin.HandlerFunc{
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
	}

	if cfg.CORS != nil {
		chain = append(chain, middleware.CORS(cfg.CORS))
	}

	serviceName := "chembond-tutor"
	if cfg.AppConfig != nil {
		serviceName = cfg.AppConfig.Name
	}

	chain = append(chain,
		telemetry.TracingMiddleware(serviceName),
		telemetry.Middleware(),
		middleware.Logging(cfg.Logger),
	)

	engine.Use(chain...)

	if cfg.StatusHandler != nil {
		cfg.StatusHandler.RegisterStatusRoutesOnEngine(engine)
	}

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	apiV1 := engine.Group("/api/v1")
	if cfg.Timeout > 0 {
		apiV1.Use(middleware.SimpleTimeout(cfg.Timeout))
	}

	setupAPIRoutes(apiV1, cfg)
}

// setupAPIRoutes registers the tutor API routes.
func setupAPIRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.ChatHandler != nil {
		cfg.ChatHandler.RegisterChatRoutes(rg)
	}

	if cfg.QuizHandler != nil {
		cfg.QuizHandler.RegisterQuizRoutes(rg)
	}

	if cfg.MoleculeHandler != nil {
		cfg.MoleculeHandler.RegisterMoleculeRoutes(rg)
	}
}

// NewDefaultRouterConfig creates a RouterConfig from the loaded configuration.
// Handlers are left for the caller to fill in.
func NewDefaultRouterConfig(logger *slog.Logger, cfg *config.Config, healthHandler *handlers.HealthHandler) RouterConfig {
	return RouterConfig{
		Logger:        logger,
		AppConfig:     &cfg.App,
		CORS:          &cfg.CORS,
		HealthHandler: healthHandler,
		StatusHandler: handlers.NewStatusHandler(cfg.Database),
		Timeout:       cfg.Server.RequestTimeout,
	}
}
