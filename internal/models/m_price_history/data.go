package m_price_history

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the price_history table.
// Rows are append-only; one row is created per product per pricing cycle.
type Data struct {
	HistoryID     string
	ProductID     string
	OldPriceSats  spanner.NullInt64 // null for a product's initial listing price
	NewPriceSats  int64
	ChangePercent float64
	Explanation   string
	Reason        spanner.NullString
	ChangedBy     spanner.NullString
	ChangedAt     time.Time
}
