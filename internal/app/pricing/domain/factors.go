package domain

import "math"

// MarketFactors is the condensed market view the storefront caches for the
// price breakdown display. Field names mirror the client's JSON contract.
type MarketFactors struct {
	BitcoinPrice      float64 `json:"bitcoinPrice"`
	BitcoinVolatility float64 `json:"bitcoinVolatility"`
	NetworkDemand     float64 `json:"networkDemand"`
	MarketSentiment   float64 `json:"marketSentiment"`
	SeasonalFactor    float64 `json:"seasonalFactor"`
	InventoryLevel    float64 `json:"inventoryLevel"`
	PromotionActive   bool    `json:"promotionActive"`
}

// DefaultMarketFactors is the placeholder used before real factors load.
// The breakdown renders plausible-but-generic numbers from it rather than
// failing when market data is unavailable.
func DefaultMarketFactors() MarketFactors {
	return MarketFactors{
		BitcoinPrice:      30000,
		BitcoinVolatility: 0.3,
		NetworkDemand:     0.5,
		MarketSentiment:   0,
		SeasonalFactor:    1.0,
		InventoryLevel:    50,
		PromotionActive:   false,
	}
}

// FactorsFromSnapshot condenses a market snapshot into breakdown factors.
//
// NetworkDemand normalizes volume over the simulator's [25000, 40000) band,
// SeasonalFactor maps the liquidity index (65-85) into [0.8, 1.2], and
// InventoryLevel leans on sentiment around the 50% midpoint. Promotions are
// not part of the simulated market and stay off.
func FactorsFromSnapshot(snap MarketSnapshot) MarketFactors {
	return MarketFactors{
		BitcoinPrice:      snap.BitcoinPriceUSD,
		BitcoinVolatility: clamp01(math.Abs(snap.Change24h) / 5),
		NetworkDemand:     clamp01((snap.Volume24h - 25000) / 15000),
		MarketSentiment:   snap.Sentiment,
		SeasonalFactor:    0.8 + (snap.LiquidityIndex-65)/20*0.4,
		InventoryLevel:    50 + snap.Sentiment*25,
		PromotionActive:   false,
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
