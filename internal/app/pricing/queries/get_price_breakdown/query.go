package get_price_breakdown

import (
	"context"

	"github.com/satstreet/pricing-service/internal/app/pricing/contracts"
	"github.com/satstreet/pricing-service/internal/app/pricing/domain"
)

// Request contains the product whose price to decompose.
type Request struct {
	ProductID string
}

// Response carries the breakdown plus the inputs it was derived from.
type Response struct {
	ProductID   string                 `json:"productId"`
	Price       int64                  `json:"price"`
	Components  domain.PriceComponents `json:"components"`
	Explanation string                 `json:"explanation,omitempty"`
	Factors     domain.MarketFactors   `json:"factors"`
}

// FactorsProvider supplies the cached market factors. The breakdown never
// samples the market itself.
type FactorsProvider interface {
	CurrentFactors() domain.MarketFactors
}

// Query handles the price breakdown query use case.
type Query struct {
	readModel   contracts.ReadModel
	historyRepo contracts.PriceHistoryRepository
	factors     FactorsProvider
}

// NewQuery creates a new price breakdown query.
func NewQuery(readModel contracts.ReadModel, historyRepo contracts.PriceHistoryRepository, factors FactorsProvider) *Query {
	return &Query{
		readModel:   readModel,
		historyRepo: historyRepo,
		factors:     factors,
	}
}

// Execute decomposes a product's displayed price into additive components.
// A product with no price history decomposes without an explanation bias.
func (q *Query) Execute(ctx context.Context, req *Request) (*Response, error) {
	product, err := q.readModel.GetProductByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	explanation := ""
	latest, err := q.historyRepo.Latest(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if latest != nil {
		explanation = latest.Explanation
	}

	price := domain.Satoshis(product.PriceSats)
	components := domain.Decompose(price, q.factors.CurrentFactors(), explanation)

	return &Response{
		ProductID:   product.ProductID,
		Price:       product.PriceSats,
		Components:  components,
		Explanation: explanation,
		Factors:     q.factors.CurrentFactors(),
	}, nil
}
