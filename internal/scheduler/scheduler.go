package scheduler

import (
	"context"
	"errors"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/satstreet/pricing-service/internal/app/pricing/domain"
	"github.com/satstreet/pricing-service/internal/app/pricing/usecases/update_all_prices"
)

// BatchUpdater runs one pricing cycle.
type BatchUpdater interface {
	Execute(ctx context.Context) (*update_all_prices.Result, error)
}

// Scheduler drives periodic pricing cycles. An admin trigger arriving
// while a scheduled cycle runs loses to the single-flight guard, which
// is logged and dropped, not retried.
type Scheduler struct {
	cron    *cron.Cron
	updater BatchUpdater
}

// New creates a Scheduler running the given cron schedule.
func New(schedule string, updater BatchUpdater) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:    c,
		updater: updater,
	}

	if _, err := c.AddFunc(schedule, s.runCycle); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Scheduler) runCycle() {
	result, err := s.updater.Execute(context.Background())
	if err != nil {
		if errors.Is(err, domain.ErrBatchInFlight) {
			log.Warn().Msg("scheduled pricing cycle skipped, batch already in flight")
			return
		}
		log.Error().Err(err).Msg("scheduled pricing cycle failed")
		return
	}

	log.Info().
		Int("updated", result.UpdatedCount).
		Time("timestamp", result.Timestamp).
		Msg("scheduled pricing cycle completed")
}

// Start begins running scheduled cycles in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling and waits for a running cycle to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
