package domain

import (
	"fmt"
	"math"
	"strings"
)

// Volatility band and effect weights for a single pricing cycle.
const (
	baseVolatility    = 0.05 // hard cap on one cycle's change, either direction
	sentimentWeight   = 0.02
	scarcityPremium   = 0.03 // applied when stock drops below the scarcity threshold
	scarcityThreshold = 5
	noiseAmplitude    = 0.02
	minSensitivity    = 0.3
	maxSensitivity    = 0.7
)

// ReasonCategory tags the dominant driver behind a price change. The tag is
// persisted alongside the free-text explanation so the breakdown view can
// emphasize the right component without parsing prose.
type ReasonCategory string

const (
	ReasonNone      ReasonCategory = ""
	ReasonMarket    ReasonCategory = "market"
	ReasonDemand    ReasonCategory = "demand"
	ReasonInventory ReasonCategory = "inventory"
	ReasonSeasonal  ReasonCategory = "seasonal"
)

// PriceQuote is the calculator's verdict for one product in one cycle.
type PriceQuote struct {
	NewPrice      Satoshis
	ChangePercent float64 // applied change after clamping, in percent
	Explanation   string
	Reason        ReasonCategory
}

// PriceCalculator derives a product's next price from one market snapshot.
// It is a pure function of its inputs plus the injected randomness source;
// it never touches storage.
type PriceCalculator struct {
	rng Rand
}

// NewPriceCalculator creates a PriceCalculator over the given randomness source.
func NewPriceCalculator(rng Rand) *PriceCalculator {
	return &PriceCalculator{rng: rng}
}

// Compute derives the next price for a product.
//
// The change is a weighted sum of the snapshot's 24h move (scaled by a
// per-call sensitivity in [0.3, 0.7)), sentiment, a low-stock scarcity
// premium, and noise, clamped to the ±5% volatility band. The result never
// drops below half the previous price in a single cycle regardless of
// inputs. Malformed inputs produce nonsensical but non-crashing output.
func (c *PriceCalculator) Compute(price Satoshis, stockCount int64, snap MarketSnapshot) PriceQuote {
	sensitivity := minSensitivity + c.rng.Float64()*(maxSensitivity-minSensitivity)

	btcEffect := snap.Change24h * sensitivity / 100
	sentimentEffect := snap.Sentiment * sentimentWeight

	stockEffect := 0.0
	if stockCount < scarcityThreshold {
		stockEffect = scarcityPremium
	}

	noise := (c.rng.Float64()*2 - 1) * noiseAmplitude

	change := btcEffect + sentimentEffect + stockEffect + noise
	change = math.Max(math.Min(change, baseVolatility), -baseVolatility)

	delta := Satoshis(math.Round(price.Float64() * change))
	newPrice := (price + delta).Max(price.HalfFloor())

	quote := PriceQuote{
		NewPrice:      newPrice,
		ChangePercent: change * 100,
	}

	switch {
	case delta > 0:
		quote.Explanation, quote.Reason = c.increaseExplanation(change, snap)
	case delta < 0:
		quote.Explanation, quote.Reason = c.decreaseExplanation(change, snap)
	default:
		quote.Explanation = fmt.Sprintf("Price stable at %d sats. Market conditions remain consistent.", newPrice)
		quote.Reason = ReasonNone
	}

	return quote
}

// reason pairs a display sentence fragment with its category tag.
type reason struct {
	text     string
	category ReasonCategory
}

func (c *PriceCalculator) increaseExplanation(change float64, snap MarketSnapshot) (string, ReasonCategory) {
	candidates := []reason{
		{fmt.Sprintf("Bitcoin price rising by %.1f%% in the last 24 hours", snap.Change24h), ReasonMarket},
		{"Increased demand from buyers", ReasonDemand},
		{"Limited stock availability", ReasonInventory},
		{fmt.Sprintf("Positive market sentiment (%.2f)", snap.Sentiment), ReasonMarket},
		{"Seasonal demand patterns", ReasonSeasonal},
	}
	selected := c.pickReasons(candidates)
	sentence := fmt.Sprintf("Price increased by %.1f%%. %s driving prices up.",
		math.Abs(change*100), joinReasons(selected))
	return sentence, selected[0].category
}

func (c *PriceCalculator) decreaseExplanation(change float64, snap MarketSnapshot) (string, ReasonCategory) {
	candidates := []reason{
		{fmt.Sprintf("Bitcoin price falling by %.1f%% in the last 24 hours", math.Abs(snap.Change24h)), ReasonMarket},
		{"Decreased market demand", ReasonDemand},
		{"New competitors entering the market", ReasonMarket},
		{fmt.Sprintf("Market sentiment turning bearish (%.2f)", snap.Sentiment), ReasonMarket},
		{"Off-season pricing adjustments", ReasonSeasonal},
	}
	selected := c.pickReasons(candidates)
	sentence := fmt.Sprintf("Price decreased by %.1f%%. %s influencing price.",
		math.Abs(change*100), joinReasons(selected))
	return sentence, selected[0].category
}

// pickReasons draws 1-2 reasons at random, without replacement.
func (c *PriceCalculator) pickReasons(candidates []reason) []reason {
	count := 1
	if c.rng.Float64() > 0.5 {
		count = 2
	}

	selected := make([]reason, 0, count)
	for i := 0; i < count && len(candidates) > 0; i++ {
		idx := c.rng.Intn(len(candidates))
		selected = append(selected, candidates[idx])
		candidates = append(candidates[:idx], candidates[idx+1:]...)
	}
	return selected
}

func joinReasons(selected []reason) string {
	texts := make([]string, len(selected))
	for i, r := range selected {
		texts[i] = r.text
	}
	return strings.Join(texts, " and ")
}
