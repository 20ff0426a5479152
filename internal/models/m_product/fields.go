package m_product

// Field name constants for the products table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "products"

	ProductID   = "product_id"
	Name        = "name"
	Description = "description"
	Category    = "category"
	PriceSats   = "price_sats"
	StockCount  = "stock_count"
	Status      = "status"
	Version     = "version"
	CreatedAt   = "created_at"
	UpdatedAt   = "updated_at"
)
