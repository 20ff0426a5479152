package domain

import "strings"

// Component weights for the displayed price breakdown. The breakdown is a
// presentation-layer reconstruction: it explains a price, it never sets one.
const (
	baseShare        = 0.7
	lightningShare   = 0.35
	inventoryShare   = 0.25
	seasonalShare    = 0.15
	promoDiscount    = 0.05
	standingDiscount = 0.02

	// emphasisBonus is added to the component the explanation singles out.
	emphasisBonus Satoshis = 300
)

// PriceComponents is an additive decomposition of a displayed price.
// The identity
//
//	BasePrice + LightningDemand + InventoryFactor + TimeEvent - LoyaltyDiscount == currentPrice
//
// holds exactly: after the four weighted terms are floored, the rounding
// remainder is folded into LightningDemand.
type PriceComponents struct {
	BasePrice       Satoshis `json:"basePrice"`
	LightningDemand Satoshis `json:"lightningDemand"`
	InventoryFactor Satoshis `json:"inventoryFactor"`
	TimeEvent       Satoshis `json:"timeEvent"`
	LoyaltyDiscount Satoshis `json:"loyaltyDiscount"`
}

// Total reconstructs the price the components describe.
func (pc PriceComponents) Total() Satoshis {
	return pc.BasePrice + pc.LightningDemand + pc.InventoryFactor + pc.TimeEvent - pc.LoyaltyDiscount
}

// ClassifyExplanation maps free-text price explanations onto the component
// they emphasize. Rules are ordered and mutually exclusive; the first match
// wins. Unrecognized text gets no emphasis.
func ClassifyExplanation(text string) ReasonCategory {
	switch {
	case strings.Contains(text, "demand") || strings.Contains(text, "Lightning"):
		return ReasonDemand
	case strings.Contains(text, "inventory") || strings.Contains(text, "supply"):
		return ReasonInventory
	case strings.Contains(text, "event") || strings.Contains(text, "season"):
		return ReasonSeasonal
	default:
		return ReasonNone
	}
}

// Decompose derives a plausible additive breakdown of currentPrice from the
// cached market factors, biased toward whichever component the most recent
// explanation emphasizes.
func Decompose(currentPrice Satoshis, factors MarketFactors, explanation string) PriceComponents {
	base := currentPrice.MulFloor(baseShare)

	lightning := base.MulFloor(lightningShare * factors.NetworkDemand)
	inventory := base.MulFloor(inventoryShare * (1 - factors.InventoryLevel/100))
	timeEvent := base.MulFloor(seasonalShare * (factors.SeasonalFactor - 0.8) / 0.4)

	discountShare := standingDiscount
	if factors.PromotionActive {
		discountShare = promoDiscount
	}
	loyalty := base.MulFloor(discountShare)

	switch ClassifyExplanation(explanation) {
	case ReasonDemand:
		lightning += emphasisBonus
	case ReasonInventory:
		inventory += emphasisBonus
	case ReasonSeasonal:
		timeEvent += emphasisBonus
	}

	components := PriceComponents{
		BasePrice:       base,
		LightningDemand: lightning,
		InventoryFactor: inventory,
		TimeEvent:       timeEvent,
		LoyaltyDiscount: loyalty,
	}

	// Fold the rounding remainder into the demand term so the breakdown
	// always reconstructs the displayed price exactly.
	components.LightningDemand += currentPrice - components.Total()

	return components
}
