// Command update_prices triggers one pricing cycle from the command line,
// useful for cron-less environments and manual admin runs.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/satstreet/pricing-service/internal/config"
	"github.com/satstreet/pricing-service/internal/logger"
	"github.com/satstreet/pricing-service/internal/services"
)

func main() {
	spannerDB := flag.String("database", "", "Spanner database (defaults to SPANNER_DATABASE)")
	flag.Parse()

	cfg := config.Load()
	logger.Init(cfg.Env)

	db := *spannerDB
	if db == "" {
		db = cfg.SpannerDB
	}

	ctx := context.Background()

	serviceOpts, err := services.NewServiceOptions(ctx, db)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize service")
	}
	defer serviceOpts.Close()

	result, err := serviceOpts.BatchUpdater.Execute(ctx)
	if err != nil {
		log.Error().Err(err).Msg("pricing cycle failed")
		os.Exit(1)
	}

	log.Info().
		Int("updated", result.UpdatedCount).
		Time("timestamp", result.Timestamp).
		Msg("pricing cycle completed")
}
