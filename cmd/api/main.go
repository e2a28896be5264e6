package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/aquacatalog/pkg/app"
	"github.com/ghuser/aquacatalog/pkg/assethost"
	"github.com/ghuser/aquacatalog/pkg/auth"
	"github.com/ghuser/aquacatalog/pkg/config"
	"github.com/ghuser/aquacatalog/pkg/database"
	"github.com/ghuser/aquacatalog/pkg/httpx"
	"github.com/ghuser/aquacatalog/pkg/logger"
	"github.com/ghuser/aquacatalog/pkg/telemetry"
	catalogApi "github.com/ghuser/aquacatalog/services/catalog/application/api"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	// Metrics: dedicated Prometheus registry + HTTP instruments
	metrics, metricsHandler := telemetry.Setup(cfg)

	// Crash reporting: Sentry (optional — log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	ctx := context.Background()
	db, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase, log)
	if err != nil {
		log.Error("failed to connect to mongodb", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}
	defer db.Close(ctx) //nolint:errcheck

	assets, err := assethost.New(cfg)
	if err != nil {
		log.Error("failed to setup cloudinary client", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	authService := auth.New(cfg)

	appConfig := &app.Application{
		Db:     db,
		Assets: assets,
		Auth:   authService,
		Logger: log,
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		metrics.Middleware(),
	)

	r.Get("/health", httpx.HealthHandler(httpx.HealthChecks{
		Database:  db,
		AssetHost: assets,
	}))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Route("/api", func(r chi.Router) {
		registerRoutes(r, appConfig)
	})

	srv := httpx.NewServer(cfg.ListenAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// registerRoutes mounts all service routes under /api.
// Add each new service's route function here.
func registerRoutes(r chi.Router, a *app.Application) {
	catalogApi.CatalogRoutes(r, a)
}
