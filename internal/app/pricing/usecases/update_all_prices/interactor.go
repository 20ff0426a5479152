package update_all_prices

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"

	"github.com/satstreet/pricing-service/internal/app/pricing/contracts"
	"github.com/satstreet/pricing-service/internal/app/pricing/domain"
	"github.com/satstreet/pricing-service/internal/pkg/clock"
	"github.com/satstreet/pricing-service/internal/pkg/committer"
)

// ChangedBy value recorded on history rows written by the batch cycle.
const batchActor = "pricing-batch"

// Result summarizes a completed pricing cycle.
type Result struct {
	UpdatedCount int
	Timestamp    time.Time
}

// Interactor handles the batch price update use case. One execution
// reprices every product against a single market snapshot and commits
// all resulting rows atomically.
type Interactor struct {
	repo        contracts.ProductRepository
	historyRepo contracts.PriceHistoryRepository
	outboxRepo  contracts.OutboxRepository
	applier     contracts.PlanApplier
	simulator   *domain.Simulator
	calculator  *domain.PriceCalculator
	clock       clock.Clock

	// Single-flight guard. Concurrent triggers get ErrBatchInFlight
	// instead of racing each other's commits.
	inFlight atomic.Bool
}

// NewInteractor creates a new batch price update interactor.
func NewInteractor(
	repo contracts.ProductRepository,
	historyRepo contracts.PriceHistoryRepository,
	outboxRepo contracts.OutboxRepository,
	applier contracts.PlanApplier,
	simulator *domain.Simulator,
	calculator *domain.PriceCalculator,
	clk clock.Clock,
) *Interactor {
	return &Interactor{
		repo:        repo,
		historyRepo: historyRepo,
		outboxRepo:  outboxRepo,
		applier:     applier,
		simulator:   simulator,
		calculator:  calculator,
		clock:       clk,
	}
}

// Execute runs one pricing cycle following the Golden Mutation Pattern.
// Either every product update and history row lands, or none do.
func (i *Interactor) Execute(ctx context.Context) (*Result, error) {
	if !i.inFlight.CompareAndSwap(false, true) {
		return nil, domain.ErrBatchInFlight
	}
	defer i.inFlight.Store(false)

	// 1. Load all products
	products, err := i.repo.ListForPricing(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	now := i.clock.Now().UTC()

	if len(products) == 0 {
		return &Result{UpdatedCount: 0, Timestamp: now}, nil
	}

	// 2. One snapshot per cycle. Every product is priced against the
	// same market conditions.
	snap := i.simulator.Snapshot()

	plan := committer.NewPlan()
	updated := 0

	for _, product := range products {
		quote := i.calculator.Compute(product.Price(), product.StockCount(), snap)

		oldPrice := product.Price()

		if err := product.ApplyQuote(quote, now); err != nil {
			return nil, fmt.Errorf("failed to apply quote to product %s: %w", product.ID(), err)
		}

		// A stable quote produces no product update (Add skips the nil
		// mutation), but the cycle still records a history row for every
		// product it visited.
		plan.Add(i.repo.UpdateMut(product))

		plan.Add(i.historyRepo.InsertMut(
			uuid.New().String(),
			product.ID(),
			&oldPrice,
			quote,
			batchActor,
			now,
		))

		for _, event := range product.DomainEvents() {
			outboxMut, err := i.outboxMut(event)
			if err != nil {
				return nil, err
			}
			plan.Add(outboxMut)
		}
		product.ClearEvents()

		updated++
	}

	// 3. Record the cycle itself
	cycleEvent := &domain.PricingCycleCompletedEvent{
		UpdatedCount: updated,
		BitcoinPrice: snap.BitcoinPriceUSD,
		Change24h:    snap.Change24h,
		CompletedAt:  now,
	}
	cycleMut, err := i.outboxMut(cycleEvent)
	if err != nil {
		return nil, err
	}
	plan.Add(cycleMut)

	// 4. Apply the whole cycle in a single commit
	if err := i.applier.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit pricing cycle: %w", err)
	}

	return &Result{UpdatedCount: updated, Timestamp: now}, nil
}

func (i *Interactor) outboxMut(event domain.DomainEvent) (*spanner.Mutation, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize event: %w", err)
	}
	outboxEvent := i.outboxRepo.EnrichEvent(event, string(payload))
	return i.outboxRepo.InsertMut(outboxEvent), nil
}
