// Package main is the entry point for the ChemBond Tutor API.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen/chembond-tutor/internal/adapters/catalog"
	"github.com/jsamuelsen/chembond-tutor/internal/adapters/http"
	"github.com/jsamuelsen/chembond-tutor/internal/adapters/http/handlers"
	"github.com/jsamuelsen/chembond-tutor/internal/adapters/render"
	"github.com/jsamuelsen/chembond-tutor/internal/app"
	"github.com/jsamuelsen/chembond-tutor/internal/platform/config"
	"github.com/jsamuelsen/chembond-tutor/internal/platform/logging"
	"github.com/jsamuelsen/chembond-tutor/internal/platform/metrics"
	"github.com/jsamuelsen/chembond-tutor/internal/platform/telemetry"
	"github.com/jsamuelsen/chembond-tutor/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Determine profile from environment
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
		slog.Bool("database_configured", cfg.Database.URL != ""),
	)

	// 4. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		Insecure:     cfg.Telemetry.Insecure,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		// The signal context is already done here; give exporters their own budget.
		flushCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if shutdownErr := telProvider.Shutdown(flushCtx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Domain metrics on a dedicated registry
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	recorder, err := metrics.New(registry)
	if err != nil {
		return fmt.Errorf("registering metrics: %w", err)
	}

	// 6. Load the knowledge base
	kb, err := loadCatalog(&cfg.Catalog)
	if err != nil {
		return err
	}

	logger.Info("catalog loaded",
		slog.Int("molecules", len(kb.Molecules())),
		slog.Int("concepts", len(kb.Concepts())),
		slog.Int("topics", len(kb.Topics())),
		slog.String("source", catalogSource(&cfg.Catalog)),
	)

	healthRegistry := ports.NewHealthRegistry()
	if err := healthRegistry.Register(kb); err != nil {
		return fmt.Errorf("registering catalog health check: %w", err)
	}

	// 7. Application services
	chatService := app.NewChatService(app.ChatServiceConfig{
		Molecules: kb,
		Glossary:  kb,
		Metrics:   recorder,
		Logger:    logger,
	})

	quizService := app.NewQuizService(app.QuizServiceConfig{
		Bank:     kb,
		Shuffler: app.ShufflerForSeed(cfg.Quiz.Seed),
		Metrics:  recorder,
		Logger:   logger,
	})

	moleculeService := app.NewMoleculeService(app.MoleculeServiceConfig{
		Catalog:  kb,
		Renderer: render.NewSVGRenderer(),
		Metrics:  recorder,
		Logger:   logger,
	})

	// 8. Handlers and router
	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)

	routerCfg := http.NewDefaultRouterConfig(logger, cfg,
		handlers.NewHealthHandler(healthRegistry, buildInfo, registry))
	routerCfg.ChatHandler = handlers.NewChatHandler(chatService)
	routerCfg.QuizHandler = handlers.NewQuizHandler(quizService, cfg.Quiz.DefaultCount)
	routerCfg.MoleculeHandler = handlers.NewMoleculeHandler(moleculeService, kb, kb)

	server := http.New(&cfg.Server, logger)
	http.SetupRouter(server.Engine(), routerCfg)

	// 9. Serve until a signal arrives or the listener fails
	return serve(ctx, logger, server, cfg.Server.ShutdownTimeout)
}

// loadCatalog reads the configured catalog file, or the embedded one when no
// path is set.
func loadCatalog(cfg *config.CatalogConfig) (*catalog.Catalog, error) {
	if cfg.Path == "" {
		kb, err := catalog.Load()
		if err != nil {
			return nil, fmt.Errorf("loading embedded catalog: %w", err)
		}

		return kb, nil
	}

	kb, err := catalog.LoadFile(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	return kb, nil
}

func catalogSource(cfg *config.CatalogConfig) string {
	if cfg.Path == "" {
		return "embedded"
	}

	return cfg.Path
}

// serve runs the HTTP server and shuts it down gracefully once ctx is done.
func serve(ctx context.Context, logger *slog.Logger, server *http.Server, shutdownTimeout time.Duration) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err, failed := <-server.Start(); failed {
			return err
		}

		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		if ctx.Err() != nil {
			logger.Info("received shutdown signal")
		}

		// Create shutdown context with timeout
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		logger.Info("initiating graceful shutdown",
			slog.Duration("timeout", shutdownTimeout),
		)

		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	logger.Info("shutdown complete")

	return nil
}
