package get_price_history

import (
	"context"

	"github.com/satstreet/pricing-service/internal/app/pricing/contracts"
)

// Request contains the product whose history to retrieve.
type Request struct {
	ProductID string
	Limit     int // Max number of entries (default: 50)
}

// Query handles the price history query use case.
type Query struct {
	readModel   contracts.ReadModel
	historyRepo contracts.PriceHistoryRepository
}

// NewQuery creates a new price history query.
func NewQuery(readModel contracts.ReadModel, historyRepo contracts.PriceHistoryRepository) *Query {
	return &Query{
		readModel:   readModel,
		historyRepo: historyRepo,
	}
}

// Execute retrieves a product's price history, oldest first. The product
// must exist; an empty history for an existing product is a valid result.
func (q *Query) Execute(ctx context.Context, req *Request) ([]contracts.PriceHistoryRecord, error) {
	if _, err := q.readModel.GetProductByID(ctx, req.ProductID); err != nil {
		return nil, err
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 50 // Default limit
	}
	if limit > 500 {
		limit = 500 // Max limit
	}

	return q.historyRepo.ListByProduct(ctx, req.ProductID, limit)
}
