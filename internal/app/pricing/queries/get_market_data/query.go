package get_market_data

import (
	"sync"

	"github.com/satstreet/pricing-service/internal/app/pricing/domain"
)

// Query handles the market data query use case. It serves raw snapshots
// and keeps the most recently derived factors cached for the breakdown
// view, which must never trigger a simulation of its own.
type Query struct {
	simulator *domain.Simulator

	mu      sync.RWMutex
	factors domain.MarketFactors
	primed  bool
}

// NewQuery creates a new market data query.
func NewQuery(simulator *domain.Simulator) *Query {
	return &Query{
		simulator: simulator,
	}
}

// Execute samples current market conditions and refreshes the cached
// factors as a side effect.
func (q *Query) Execute() domain.MarketSnapshot {
	snap := q.simulator.Snapshot()

	q.mu.Lock()
	q.factors = domain.FactorsFromSnapshot(snap)
	q.primed = true
	q.mu.Unlock()

	return snap
}

// Factors samples current market conditions and returns the condensed
// factor view the storefront caches client-side.
func (q *Query) Factors() domain.MarketFactors {
	snap := q.simulator.Snapshot()
	factors := domain.FactorsFromSnapshot(snap)

	q.mu.Lock()
	q.factors = factors
	q.primed = true
	q.mu.Unlock()

	return factors
}

// CurrentFactors returns the last derived factors without sampling, or the
// defaults when no market data has been requested yet.
func (q *Query) CurrentFactors() domain.MarketFactors {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if !q.primed {
		return domain.DefaultMarketFactors()
	}
	return q.factors
}
