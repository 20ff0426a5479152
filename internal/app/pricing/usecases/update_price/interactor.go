package update_price

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/satstreet/pricing-service/internal/app/pricing/contracts"
	"github.com/satstreet/pricing-service/internal/app/pricing/domain"
	"github.com/satstreet/pricing-service/internal/pkg/clock"
	"github.com/satstreet/pricing-service/internal/pkg/committer"
)

// ChangedBy value recorded on history rows written by a manual trigger.
const manualActor = "manual"

// Result summarizes a single-product price update.
type Result struct {
	ProductID     string
	OldPrice      domain.Satoshis
	NewPrice      domain.Satoshis
	ChangePercent float64
	Explanation   string
	Timestamp     time.Time
}

// Interactor handles the single-product price update use case. It draws
// its own market snapshot; only the batch cycle shares one across
// products.
type Interactor struct {
	repo        contracts.ProductRepository
	historyRepo contracts.PriceHistoryRepository
	outboxRepo  contracts.OutboxRepository
	applier     contracts.PlanApplier
	simulator   *domain.Simulator
	calculator  *domain.PriceCalculator
	clock       clock.Clock
}

// NewInteractor creates a new single-product price update interactor.
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

// Execute reprices one product following the Golden Mutation Pattern.
func (i *Interactor) Execute(ctx context.Context, productID string) (*Result, error) {
	// 1. Load aggregate
	product, err := i.repo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	defer product.ClearEvents()

	now := i.clock.Now().UTC()
	snap := i.simulator.Snapshot()

	// 2. Call domain methods
	oldPrice := product.Price()
	quote := i.calculator.Compute(product.Price(), product.StockCount(), snap)

	if err := product.ApplyQuote(quote, now); err != nil {
		return nil, err
	}

	result := &Result{
		ProductID:     productID,
		OldPrice:      oldPrice,
		NewPrice:      quote.NewPrice,
		ChangePercent: quote.ChangePercent,
		Explanation:   quote.Explanation,
		Timestamp:     now,
	}

	// 3. Create commit plan
	plan := committer.NewPlan()

	// A stable quote produces no product update (Add skips the nil
	// mutation); the history row is written regardless, so every trigger
	// leaves a trace.
	plan.Add(i.repo.UpdateMut(product))

	plan.Add(i.historyRepo.InsertMut(
		uuid.New().String(),
		productID,
		&oldPrice,
		quote,
		manualActor,
		now,
	))

	// 4. Add outbox events
	for _, event := range product.DomainEvents() {
		payload, err := json.Marshal(event)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize event: %w", err)
		}
		outboxEvent := i.outboxRepo.EnrichEvent(event, string(payload))
		plan.Add(i.outboxRepo.InsertMut(outboxEvent))
	}

	// 5. Apply plan
	if err := i.applier.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return result, nil
}
