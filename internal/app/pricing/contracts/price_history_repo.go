package contracts

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/satstreet/pricing-service/internal/app/pricing/domain"
)

// PriceHistoryRecord represents one append-only price change row.
type PriceHistoryRecord struct {
	HistoryID     string
	ProductID     string
	OldPrice      *domain.Satoshis // nil for the initial listing price
	NewPrice      domain.Satoshis
	ChangePercent float64
	Explanation   string
	Reason        domain.ReasonCategory
	ChangedBy     string
	ChangedAt     time.Time
}

// PriceHistoryRepository defines the interface for price history persistence.
type PriceHistoryRepository interface {
	// InsertMut creates a mutation for appending a price change record.
	// oldPrice can be nil for a product's initial listing.
	InsertMut(
		historyID string,
		productID string,
		oldPrice *domain.Satoshis,
		quote domain.PriceQuote,
		changedBy string,
		changedAt time.Time,
	) *spanner.Mutation

	// ListByProduct retrieves price history for a product ordered by time
	// ascending, oldest first, ready for charting.
	ListByProduct(ctx context.Context, productID string, limit int) ([]PriceHistoryRecord, error)

	// Latest retrieves the most recent entry for a product, or nil when the
	// product has no history yet.
	Latest(ctx context.Context, productID string) (*PriceHistoryRecord, error)
}
