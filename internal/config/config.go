package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Env             string
	SpannerDB       string
	HTTPPort        string
	PricingSchedule string // cron expression; empty disables the scheduler
}

// Load reads configuration from the environment, with an optional .env
// file for local development. Missing .env is not an error.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Env:             getEnv("ENV", "development"),
		SpannerDB:       getEnv("SPANNER_DATABASE", "projects/test-project/instances/dev-instance/databases/pricing-db"),
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		PricingSchedule: os.Getenv("PRICING_SCHEDULE"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
