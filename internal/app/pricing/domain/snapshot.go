package domain

import "time"

// SatoshiRate is the constant satoshi-per-bitcoin conversion rate.
const SatoshiRate int64 = 100_000_000

// Exchange names quoted in a snapshot.
const (
	ExchangeBinance  = "binance"
	ExchangeKraken   = "kraken"
	ExchangeCoinbase = "coinbase"
)

// ExchangeQuote is one exchange's view of the reference asset.
type ExchangeQuote struct {
	Price  float64 `json:"price"`
	Volume float64 `json:"volume"`
}

// MarketSnapshot is one immutable sample of simulated market conditions.
// A snapshot is generated exactly once per pricing cycle and shared,
// read-only, by every product priced in that cycle; this keeps the
// generated explanations internally consistent (every product that cites
// the 24h change cites the same number).
type MarketSnapshot struct {
	BitcoinPriceUSD float64                  `json:"bitcoin_price_usd"`
	Change24h       float64                  `json:"bitcoin_24h_change"`
	SatoshiRate     int64                    `json:"bitcoin_satoshi_rate"`
	SentimentLabel  string                   `json:"market_sentiment"`
	Sentiment       float64                  `json:"sentiment"`
	Volume24h       float64                  `json:"volume_24h"`
	LiquidityIndex  float64                  `json:"liquidity_index"`
	Exchanges       map[string]ExchangeQuote `json:"exchange_data"`
	Timestamp       time.Time                `json:"timestamp"`
}

// Bullish returns true if overall sentiment is positive.
func (s MarketSnapshot) Bullish() bool {
	return s.Sentiment > 0
}
