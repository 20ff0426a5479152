package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/satstreet/pricing-service/internal/app/pricing/domain"
)

// ProductRepository defines the interface for product persistence.
// Repositories return mutations, they don't apply them; usecases collect
// mutations into a commit plan and apply the plan atomically.
type ProductRepository interface {
	// InsertMut creates a mutation for inserting a new product
	InsertMut(product *domain.Product) *spanner.Mutation

	// UpdateMut creates a mutation for updating a product (only dirty fields)
	UpdateMut(product *domain.Product) *spanner.Mutation

	// GetByID retrieves a product by ID, reconstructing the domain aggregate
	GetByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListForPricing retrieves every product a pricing cycle must reprice
	ListForPricing(ctx context.Context) ([]*domain.Product, error)
}
