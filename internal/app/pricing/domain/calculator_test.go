package domain

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotWith(change24h, sentiment float64) MarketSnapshot {
	return MarketSnapshot{
		BitcoinPriceUSD: 40000,
		Change24h:       change24h,
		SatoshiRate:     SatoshiRate,
		Sentiment:       sentiment,
		Volume24h:       30000,
		LiquidityIndex:  75,
		Timestamp:       time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

// TestCompute_WorkedExample pins the whole pipeline: with sensitivity 0.5
// and zero noise, a 3% BTC rise, 0.5 sentiment and scarce stock push the
// change to 0.015 + 0.01 + 0.03 = 0.055, clamped to 0.05, so 10000 sats
// become 10500.
func TestCompute_WorkedExample(t *testing.T) {
	rng := &scriptedRand{
		// sensitivity draw 0.5 -> 0.5; noise draw 0.5 -> 0; count draw
		// 0.3 -> one reason
		floats: []float64{0.5, 0.5, 0.3},
		ints:   []int{0},
	}
	calc := NewPriceCalculator(rng)

	quote := calc.Compute(10000, 2, snapshotWith(3.0, 0.5))

	assert.Equal(t, Satoshis(10500), quote.NewPrice)
	assert.InDelta(t, 5.0, quote.ChangePercent, 1e-9)
	assert.Equal(t, "Price increased by 5.0%. Bitcoin price rising by 3.0% in the last 24 hours driving prices up.", quote.Explanation)
	assert.Equal(t, ReasonMarket, quote.Reason)
}

func TestCompute_ChangeAlwaysWithinVolatilityBand(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	calc := NewPriceCalculator(rng)

	for i := 0; i < 1000; i++ {
		snap := snapshotWith(rng.Float64()*10-5, rng.Float64()*2-1)
		price := Satoshis(rng.Intn(1_000_000) + 1)

		quote := calc.Compute(price, int64(rng.Intn(20)), snap)

		assert.LessOrEqual(t, quote.ChangePercent, 5.0)
		assert.GreaterOrEqual(t, quote.ChangePercent, -5.0)
		assert.GreaterOrEqual(t, quote.NewPrice, price.HalfFloor())
		assert.True(t, quote.NewPrice.IsPositive())
	}
}

func TestCompute_FloorAtHalfPrice(t *testing.T) {
	// Worst case draws: minimum sensitivity, maximum negative noise
	rng := &scriptedRand{floats: []float64{0.0}, ints: []int{0}}
	calc := NewPriceCalculator(rng)

	quote := calc.Compute(3, 10, snapshotWith(-5.0, -1.0))

	// floor(3 * 0.5) = 1, so the price can never hit zero
	assert.GreaterOrEqual(t, quote.NewPrice, Satoshis(1))
	assert.True(t, quote.NewPrice.IsPositive())
}

func TestCompute_ScarcityPremium(t *testing.T) {
	// Neutral market, zero noise: scarce stock is the only driver
	scarce := &scriptedRand{floats: []float64{0.5, 0.5, 0.3}, ints: []int{0}}
	plentiful := &scriptedRand{floats: []float64{0.5, 0.5, 0.3}, ints: []int{0}}
	snap := snapshotWith(0, 0)

	scarceQuote := NewPriceCalculator(scarce).Compute(10000, 4, snap)
	plentifulQuote := NewPriceCalculator(plentiful).Compute(10000, 5, snap)

	assert.Equal(t, Satoshis(10300), scarceQuote.NewPrice)
	assert.Equal(t, Satoshis(10000), plentifulQuote.NewPrice)
}

func TestCompute_StableExplanation(t *testing.T) {
	rng := &scriptedRand{floats: []float64{0.5}, ints: []int{0}}
	calc := NewPriceCalculator(rng)

	quote := calc.Compute(10000, 10, snapshotWith(0, 0))

	assert.Equal(t, Satoshis(10000), quote.NewPrice)
	assert.Equal(t, "Price stable at 10000 sats. Market conditions remain consistent.", quote.Explanation)
	assert.Equal(t, ReasonNone, quote.Reason)
}

func TestCompute_TwoReasonsJoinedWithAnd(t *testing.T) {
	rng := &scriptedRand{
		// sensitivity 0.5, noise 0, count draw 0.9 -> two reasons
		floats: []float64{0.5, 0.5, 0.9},
		ints:   []int{0, 0},
	}
	calc := NewPriceCalculator(rng)

	quote := calc.Compute(10000, 2, snapshotWith(3.0, 0.5))

	require.Contains(t, quote.Explanation, " and ")
	// Second Intn(4) draw lands on what remains after removing the first
	assert.Equal(t, "Price increased by 5.0%. Bitcoin price rising by 3.0% in the last 24 hours and Increased demand from buyers driving prices up.", quote.Explanation)
}

func TestCompute_DecreaseExplanation(t *testing.T) {
	rng := &scriptedRand{
		floats: []float64{0.5, 0.5, 0.3},
		ints:   []int{0},
	}
	calc := NewPriceCalculator(rng)

	quote := calc.Compute(10000, 10, snapshotWith(-4.0, -0.5))

	// change = -4*0.5/100 + -0.5*0.02 = -0.03
	assert.Equal(t, Satoshis(9700), quote.NewPrice)
	assert.True(t, strings.HasPrefix(quote.Explanation, "Price decreased by 3.0%. "))
	assert.Contains(t, quote.Explanation, "Bitcoin price falling by 4.0% in the last 24 hours")
	assert.True(t, strings.HasSuffix(quote.Explanation, "influencing price."))
	assert.Equal(t, ReasonMarket, quote.Reason)
}

func TestCompute_PrimaryReasonCategory(t *testing.T) {
	tests := []struct {
		name string
		idx  int
		want ReasonCategory
	}{
		{"btc move is market", 0, ReasonMarket},
		{"buyer demand", 1, ReasonDemand},
		{"limited stock is inventory", 2, ReasonInventory},
		{"sentiment is market", 3, ReasonMarket},
		{"seasonal patterns", 4, ReasonSeasonal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := &scriptedRand{
				floats: []float64{0.5, 0.5, 0.3},
				ints:   []int{tt.idx},
			}
			quote := NewPriceCalculator(rng).Compute(10000, 2, snapshotWith(3.0, 0.5))
			assert.Equal(t, tt.want, quote.Reason)
		})
	}
}
