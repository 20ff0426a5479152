package domain

import "time"

// DomainEvent is the base interface for all domain events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// ProductCreatedEvent is emitted when a product is first listed.
type ProductCreatedEvent struct {
	ProductID  string
	Name       string
	Category   string
	Price      Satoshis
	StockCount int64
	CreatedAt  time.Time
}

func (e *ProductCreatedEvent) EventType() string {
	return "product.created"
}

func (e *ProductCreatedEvent) AggregateID() string {
	return e.ProductID
}

// ProductPriceChangedEvent is emitted when a pricing cycle moves a price.
type ProductPriceChangedEvent struct {
	ProductID     string
	OldPrice      Satoshis
	NewPrice      Satoshis
	ChangePercent float64
	Explanation   string
	Reason        ReasonCategory
	ChangedAt     time.Time
}

func (e *ProductPriceChangedEvent) EventType() string {
	return "product.price.changed"
}

func (e *ProductPriceChangedEvent) AggregateID() string {
	return e.ProductID
}

// PricingCycleCompletedEvent is emitted once per completed batch cycle.
type PricingCycleCompletedEvent struct {
	UpdatedCount int
	BitcoinPrice float64
	Change24h    float64
	CompletedAt  time.Time
}

func (e *PricingCycleCompletedEvent) EventType() string {
	return "pricing.cycle.completed"
}

func (e *PricingCycleCompletedEvent) AggregateID() string {
	return "pricing-batch"
}
