package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/satstreet/pricing-service/internal/config"
	"github.com/satstreet/pricing-service/internal/logger"
	"github.com/satstreet/pricing-service/internal/scheduler"
	"github.com/satstreet/pricing-service/internal/services"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("failed to run server")
	}
}

func run() error {
	ctx := context.Background()

	// 1. Load configuration from environment variables
	cfg := config.Load()
	logger.Init(cfg.Env)

	log.Info().
		Str("spanner_db", cfg.SpannerDB).
		Str("http_port", cfg.HTTPPort).
		Msg("starting pricing service")

	// 2. Initialize service dependencies (DI container)
	serviceOpts, err := services.NewServiceOptions(ctx, cfg.SpannerDB)
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer serviceOpts.Close()

	// 3. Optionally start the scheduled pricing cycle
	var sched *scheduler.Scheduler
	if cfg.PricingSchedule != "" {
		sched, err = scheduler.New(cfg.PricingSchedule, serviceOpts.BatchUpdater)
		if err != nil {
			return fmt.Errorf("invalid pricing schedule %q: %w", cfg.PricingSchedule, err)
		}
		sched.Start()
		log.Info().Str("schedule", cfg.PricingSchedule).Msg("pricing scheduler started")
	}

	// 4. Start HTTP server
	httpServer := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: serviceOpts.Router.Handler(),
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("HTTP server error")
		}
	}()

	// 5. Graceful shutdown handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutting down gracefully")

	if sched != nil {
		sched.Stop()
	}

	if err := httpServer.Shutdown(context.Background()); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	return nil
}
