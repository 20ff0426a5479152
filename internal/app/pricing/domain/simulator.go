package domain

import (
	"github.com/satstreet/pricing-service/internal/pkg/clock"
)

// Rand is the subset of math/rand.Rand the pricing engine draws from.
// Injecting it keeps the simulator and calculator deterministic under test
// without changing the observable distribution in production.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Simulator produces synthetic market snapshots. It performs no I/O and
// keeps no state between invocations; every call is an independent sample.
type Simulator struct {
	rng   Rand
	clock clock.Clock
}

// NewSimulator creates a Simulator over the given randomness source.
func NewSimulator(rng Rand, clk clock.Clock) *Simulator {
	return &Simulator{rng: rng, clock: clk}
}

// Snapshot samples current market conditions.
//
// Output ranges by construction:
//   - reference price: [35000, 45000)
//   - 24h change: [-5, 5) percent
//   - sentiment: [-1, 1)
//   - volume: [25000, 40000)
//   - exchange quotes: reference price * [0.995, 1.005), volume * [0.9, 1.1)
func (s *Simulator) Snapshot() MarketSnapshot {
	price := 35000 + s.rng.Float64()*10000
	change24h := s.rng.Float64()*10 - 5
	sentiment := s.rng.Float64()*2 - 1
	volume := 25000 + s.rng.Float64()*15000

	exchanges := make(map[string]ExchangeQuote, 3)
	for _, name := range []string{ExchangeBinance, ExchangeKraken, ExchangeCoinbase} {
		exchanges[name] = ExchangeQuote{
			Price:  price * (1 + (s.rng.Float64()*0.01 - 0.005)),
			Volume: volume * (1 + (s.rng.Float64()*0.2 - 0.1)),
		}
	}

	label := "bearish"
	if sentiment > 0 {
		label = "bullish"
	}

	return MarketSnapshot{
		BitcoinPriceUSD: price,
		Change24h:       change24h,
		SatoshiRate:     SatoshiRate,
		SentimentLabel:  label,
		Sentiment:       sentiment,
		Volume24h:       volume,
		LiquidityIndex:  65 + s.rng.Float64()*20,
		Exchanges:       exchanges,
		Timestamp:       s.clock.Now().UTC(),
	}
}
