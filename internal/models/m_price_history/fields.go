package m_price_history

// Field name constants for the price_history table.
const (
	TableName = "price_history"

	HistoryID     = "history_id"
	ProductID     = "product_id"
	OldPriceSats  = "old_price_sats"
	NewPriceSats  = "new_price_sats"
	ChangePercent = "change_percent"
	Explanation   = "explanation"
	Reason        = "reason"
	ChangedBy     = "changed_by"
	ChangedAt     = "changed_at"
)
