package repo

import (
	"context"
	"fmt"
	"strconv"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/satstreet/pricing-service/internal/app/pricing/contracts"
	"github.com/satstreet/pricing-service/internal/app/pricing/domain"
	"github.com/satstreet/pricing-service/internal/models/m_product"
)

// ReadModelImpl implements ReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModelImpl{
		client: client,
	}
}

// GetProductByID retrieves a product DTO by ID.
func (rm *ReadModelImpl) GetProductByID(ctx context.Context, productID string) (*contracts.ProductDTO, error) {
	row, err := rm.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, productColumns())
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

	return dataToDTO(&data), nil
}

// ListProducts retrieves a paginated list of products with filtering.
func (rm *ReadModelImpl) ListProducts(ctx context.Context, filter *contracts.ListFilter) (*contracts.ListResult, error) {
	query := "SELECT " + columnList() + " FROM products WHERE 1=1"
	params := make(map[string]interface{})

	if filter.Category != "" {
		query += " AND category = @category"
		params["category"] = filter.Category
	}

	if filter.Status != "" {
		query += " AND status = @status"
		params["status"] = filter.Status
	}

	query += " ORDER BY created_at DESC"

	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 50 // Default page size
	}
	if pageSize > 100 {
		pageSize = 100 // Max page size
	}

	offset := int64(0)
	if filter.PageToken != "" {
		parsed, err := strconv.ParseInt(filter.PageToken, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid page token: %w", err)
		}
		offset = parsed
	}

	query += " LIMIT @limit OFFSET @offset"
	params["limit"] = int64(pageSize) + 1 // fetch one extra to detect another page
	params["offset"] = offset

	stmt := spanner.Statement{SQL: query, Params: params}

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var products []*contracts.ProductDTO
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

		products = append(products, dataToDTO(&data))
	}

	result := &contracts.ListResult{
		Products:   products,
		TotalCount: int64(len(products)),
	}

	if len(products) > pageSize {
		result.Products = products[:pageSize]
		result.TotalCount = int64(pageSize)
		result.NextPageToken = strconv.FormatInt(offset+int64(pageSize), 10)
	}

	return result, nil
}

// dataToDTO converts database Data to a ProductDTO.
func dataToDTO(data *m_product.Data) *contracts.ProductDTO {
	return &contracts.ProductDTO{
		ProductID:   data.ProductID,
		Name:        data.Name,
		Description: data.Description,
		Category:    data.Category,
		PriceSats:   data.PriceSats,
		StockCount:  data.StockCount,
		Status:      data.Status,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
