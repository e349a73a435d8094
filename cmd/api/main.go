// cmd/api/main.go
// Main entry point: loads configuration and catalogs, then serves the
// recommendation API until interrupted

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/imadgeboyega/twogether-backend/internal/catalog"
	"github.com/imadgeboyega/twogether-backend/internal/common/middleware"
	"github.com/imadgeboyega/twogether-backend/internal/config"
	"github.com/imadgeboyega/twogether-backend/internal/logging"
	"github.com/imadgeboyega/twogether-backend/internal/virtual"
)

func main() {
	// 1. Environment
	envErr := godotenv.Load()

	// 2. Configuration and logging
	cfg := config.Load()
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	if envErr != nil {
		logging.Warn().Err(envErr).Msg("no .env file found, using environment variables")
	}
	if err := cfg.Validate(); err != nil {
		logging.Fatal().Err(err).Msg("invalid configuration")
	}

	// 3. Catalogs
	catalogs, err := catalog.Load(cfg.CatalogDir)
	if err != nil {
		logging.Fatal().Err(err).Str("catalog_dir", cfg.CatalogDir).Msg("failed to load catalogs")
	}

	// 4. Services and routes
	services := NewServices(catalogs)
	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      NewRouter(cfg, services, limiter),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 5. Background jobs
	reminders := virtual.NewReminderScheduler(services.Virtual, cfg.ReminderInterval)
	go reminders.Start(ctx)
	go limiter.StartCleanup(ctx, cfg.RateLimitCleanupInterval)

	go func() {
		logging.Info().
			Str("addr", srv.Addr).
			Str("environment", cfg.Environment).
			Bool("metrics", cfg.EnableMetrics).
			Msg("server starting")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	logging.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Fatal().Err(err).Msg("server forced to shutdown")
	}
	logging.Info().Msg("server exited gracefully")
}
