package domain

import (
	"time"

	"github.com/satstreet/pricing-service/internal/pkg/clock"
)

// Field names for change tracking
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldPrice       = "price"
	FieldStockCount  = "stock_count"
	FieldStatus      = "status"
)

// ProductStatus represents the listing status of a product.
type ProductStatus string

const (
	StatusListed   ProductStatus = "listed"
	StatusUnlisted ProductStatus = "unlisted"
)

// Product is the aggregate the pricing engine mutates. Products are created
// by the seller flow outside this service; here they are loaded, repriced
// once per cycle, and never deleted.
type Product struct {
	id          string
	name        string
	description string
	category    string
	price       Satoshis
	stockCount  int64
	status      ProductStatus
	version     int64
	createdAt   time.Time
	updatedAt   time.Time

	clock clock.Clock

	// Change tracking for optimized repository updates
	changes *ChangeTracker

	// Domain events to be published
	events []DomainEvent
}

// NewProduct creates a new Product aggregate (used by seeding and tests).
func NewProduct(id, name, description, category string, price Satoshis, stockCount int64, now time.Time, clk clock.Clock) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if !price.IsPositive() {
		return nil, ErrInvalidPrice
	}
	if stockCount < 0 {
		return nil, ErrInvalidStockCount
	}

	p := &Product{
		id:          id,
		name:        name,
		description: description,
		category:    category,
		price:       price,
		stockCount:  stockCount,
		status:      StatusListed,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
		clock:       clk,
		changes:     NewChangeTracker(),
		events:      make([]DomainEvent, 0),
	}

	p.changes.MarkDirty(FieldName)
	p.changes.MarkDirty(FieldDescription)
	p.changes.MarkDirty(FieldCategory)
	p.changes.MarkDirty(FieldPrice)
	p.changes.MarkDirty(FieldStockCount)
	p.changes.MarkDirty(FieldStatus)

	p.recordEvent(&ProductCreatedEvent{
		ProductID:  p.id,
		Name:       p.name,
		Category:   p.category,
		Price:      p.price,
		StockCount: p.stockCount,
		CreatedAt:  p.createdAt,
	})

	return p, nil
}

// ReconstructProduct reconstitutes a Product from the database.
func ReconstructProduct(
	id, name, description, category string,
	price Satoshis,
	stockCount int64,
	status ProductStatus,
	version int64,
	createdAt, updatedAt time.Time,
	clk clock.Clock,
) *Product {
	return &Product{
		id:          id,
		name:        name,
		description: description,
		category:    category,
		price:       price,
		stockCount:  stockCount,
		status:      status,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		clock:       clk,
		changes:     NewChangeTracker(), // Start with clean slate
		events:      make([]DomainEvent, 0),
	}
}

// Getters
func (p *Product) ID() string                  { return p.id }
func (p *Product) Name() string                { return p.name }
func (p *Product) Description() string         { return p.description }
func (p *Product) Category() string            { return p.category }
func (p *Product) Price() Satoshis             { return p.price }
func (p *Product) StockCount() int64           { return p.stockCount }
func (p *Product) Status() ProductStatus       { return p.status }
func (p *Product) Version() int64              { return p.version }
func (p *Product) CreatedAt() time.Time        { return p.createdAt }
func (p *Product) UpdatedAt() time.Time        { return p.updatedAt }
func (p *Product) Changes() *ChangeTracker     { return p.changes }
func (p *Product) DomainEvents() []DomainEvent { return p.events }

// ApplyQuote applies one pricing cycle's verdict to the product. A quote
// whose price would be non-positive is rejected; a quote equal to the
// current price records nothing and marks nothing dirty.
func (p *Product) ApplyQuote(quote PriceQuote, now time.Time) error {
	if !quote.NewPrice.IsPositive() {
		return ErrInvalidPrice
	}

	if quote.NewPrice == p.price {
		return nil
	}

	oldPrice := p.price
	p.price = quote.NewPrice
	p.changes.MarkDirty(FieldPrice)

	p.recordEvent(&ProductPriceChangedEvent{
		ProductID:     p.id,
		OldPrice:      oldPrice,
		NewPrice:      quote.NewPrice,
		ChangePercent: quote.ChangePercent,
		Explanation:   quote.Explanation,
		Reason:        quote.Reason,
		ChangedAt:     now,
	})

	return nil
}

// SetStockCount updates the stock level (used by the order flow).
func (p *Product) SetStockCount(count int64) error {
	if count < 0 {
		return ErrInvalidStockCount
	}
	p.stockCount = count
	p.changes.MarkDirty(FieldStockCount)
	return nil
}

// IsScarce returns true when low stock triggers the scarcity premium.
func (p *Product) IsScarce() bool {
	return p.stockCount < scarcityThreshold
}

// recordEvent adds a domain event to the list of events.
func (p *Product) recordEvent(event DomainEvent) {
	p.events = append(p.events, event)
}

// ClearEvents clears all recorded domain events (called after publishing).
func (p *Product) ClearEvents() {
	p.events = make([]DomainEvent, 0)
}
