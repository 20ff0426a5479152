package m_product

import "time"

// Data represents the database model for the products table.
type Data struct {
	ProductID   string
	Name        string
	Description string
	Category    string
	PriceSats   int64
	StockCount  int64
	Status      string
	Version     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
