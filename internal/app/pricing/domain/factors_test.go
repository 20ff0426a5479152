package domain

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/satstreet/pricing-service/internal/pkg/clock"
)

func TestDefaultMarketFactors(t *testing.T) {
	factors := DefaultMarketFactors()

	assert.Equal(t, 30000.0, factors.BitcoinPrice)
	assert.Equal(t, 0.3, factors.BitcoinVolatility)
	assert.Equal(t, 0.5, factors.NetworkDemand)
	assert.Equal(t, 0.0, factors.MarketSentiment)
	assert.Equal(t, 1.0, factors.SeasonalFactor)
	assert.Equal(t, 50.0, factors.InventoryLevel)
	assert.False(t, factors.PromotionActive)
}

func TestFactorsFromSnapshot(t *testing.T) {
	snap := MarketSnapshot{
		BitcoinPriceUSD: 40000,
		Change24h:       -2.5,
		Sentiment:       0.4,
		Volume24h:       32500,
		LiquidityIndex:  75,
	}

	factors := FactorsFromSnapshot(snap)

	assert.Equal(t, 40000.0, factors.BitcoinPrice)
	assert.InDelta(t, 0.5, factors.BitcoinVolatility, 1e-9) // |−2.5|/5
	assert.InDelta(t, 0.5, factors.NetworkDemand, 1e-9)     // (32500−25000)/15000
	assert.InDelta(t, 0.4, factors.MarketSentiment, 1e-9)
	assert.InDelta(t, 1.0, factors.SeasonalFactor, 1e-9) // liquidity midpoint
	assert.InDelta(t, 60.0, factors.InventoryLevel, 1e-9)
	assert.False(t, factors.PromotionActive)
}

func TestFactorsFromSnapshot_RangesHold(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	sim := NewSimulator(rand.New(rand.NewSource(3)), clock.NewMockClock(now))

	for i := 0; i < 500; i++ {
		factors := FactorsFromSnapshot(sim.Snapshot())

		assert.GreaterOrEqual(t, factors.BitcoinVolatility, 0.0)
		assert.LessOrEqual(t, factors.BitcoinVolatility, 1.0)
		assert.GreaterOrEqual(t, factors.NetworkDemand, 0.0)
		assert.LessOrEqual(t, factors.NetworkDemand, 1.0)
		assert.GreaterOrEqual(t, factors.SeasonalFactor, 0.8)
		assert.LessOrEqual(t, factors.SeasonalFactor, 1.2)
		assert.GreaterOrEqual(t, factors.InventoryLevel, 25.0)
		assert.LessOrEqual(t, factors.InventoryLevel, 75.0)
	}
}
