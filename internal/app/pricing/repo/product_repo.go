package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/satstreet/pricing-service/internal/app/pricing/contracts"
	"github.com/satstreet/pricing-service/internal/app/pricing/domain"
	"github.com/satstreet/pricing-service/internal/models/m_product"
	"github.com/satstreet/pricing-service/internal/pkg/clock"
)

// ProductRepo implements ProductRepository for Spanner.
type ProductRepo struct {
	client *spanner.Client
	model  *m_product.Model
	clock  clock.Clock
}

// NewProductRepo creates a new ProductRepo.
func NewProductRepo(client *spanner.Client, clk clock.Clock) contracts.ProductRepository {
	return &ProductRepo{
		client: client,
		model:  m_product.NewModel(),
		clock:  clk,
	}
}

// InsertMut creates a mutation for inserting a new product.
func (r *ProductRepo) InsertMut(product *domain.Product) *spanner.Mutation {
	return r.model.InsertMut(r.domainToData(product))
}

// UpdateMut creates a mutation for updating a product (only dirty fields).
func (r *ProductRepo) UpdateMut(product *domain.Product) *spanner.Mutation {
	changes := product.Changes()
	if !changes.HasChanges() {
		return nil
	}

	updates := make(map[string]interface{})

	if changes.Dirty(domain.FieldName) {
		updates[m_product.Name] = product.Name()
	}

	if changes.Dirty(domain.FieldDescription) {
		updates[m_product.Description] = product.Description()
	}

	if changes.Dirty(domain.FieldCategory) {
		updates[m_product.Category] = product.Category()
	}

	if changes.Dirty(domain.FieldPrice) {
		updates[m_product.PriceSats] = product.Price().Int64()
	}

	if changes.Dirty(domain.FieldStockCount) {
		updates[m_product.StockCount] = product.StockCount()
	}

	if changes.Dirty(domain.FieldStatus) {
		updates[m_product.Status] = string(product.Status())
	}

	if len(updates) == 0 {
		return nil
	}

	// Increment version for optimistic locking
	updates[m_product.Version] = product.Version() + 1

	return r.model.UpdateMut(product.ID(), updates)
}

// GetByID retrieves a product by ID, reconstructing the domain aggregate.
func (r *ProductRepo) GetByID(ctx context.Context, productID string) (*domain.Product, error) {
	row, err := r.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, productColumns())
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to read product: %w", err)
	}

	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse product: %w", err)
	}

	return r.dataToDomain(&data), nil
}

// ListForPricing retrieves all products in listing order. The whole set is
// loaded up front; a cycle reprices every product against one snapshot.
func (r *ProductRepo) ListForPricing(ctx context.Context) ([]*domain.Product, error) {
	stmt := spanner.Statement{
		SQL: fmt.Sprintf(`SELECT %s FROM %s ORDER BY created_at`, columnList(), m_product.TableName),
	}

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var products []*domain.Product
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate products: %w", err)
		}

		var data m_product.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse product: %w", err)
		}

		products = append(products, r.dataToDomain(&data))
	}

	return products, nil
}

func productColumns() []string {
	return []string{
		m_product.ProductID,
		m_product.Name,
		m_product.Description,
		m_product.Category,
		m_product.PriceSats,
		m_product.StockCount,
		m_product.Status,
		m_product.Version,
		m_product.CreatedAt,
		m_product.UpdatedAt,
	}
}

func columnList() string {
	return "product_id, name, description, category, price_sats, stock_count, status, version, created_at, updated_at"
}

// domainToData converts a domain Product to database Data.
func (r *ProductRepo) domainToData(product *domain.Product) *m_product.Data {
	return &m_product.Data{
		ProductID:   product.ID(),
		Name:        product.Name(),
		Description: product.Description(),
		Category:    product.Category(),
		PriceSats:   product.Price().Int64(),
		StockCount:  product.StockCount(),
		Status:      string(product.Status()),
		Version:     product.Version(),
		CreatedAt:   product.CreatedAt(),
		UpdatedAt:   product.UpdatedAt(),
	}
}

// dataToDomain converts database Data to a domain Product.
func (r *ProductRepo) dataToDomain(data *m_product.Data) *domain.Product {
	return domain.ReconstructProduct(
		data.ProductID,
		data.Name,
		data.Description,
		data.Category,
		domain.Satoshis(data.PriceSats),
		data.StockCount,
		domain.ProductStatus(data.Status),
		data.Version,
		data.CreatedAt,
		data.UpdatedAt,
		r.clock,
	)
}
