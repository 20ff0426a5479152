package m_price_history

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the price_history table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a price history row.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		[]string{
			HistoryID,
			ProductID,
			OldPriceSats,
			NewPriceSats,
			ChangePercent,
			Explanation,
			Reason,
			ChangedBy,
			ChangedAt,
		},
		[]interface{}{
			data.HistoryID,
			data.ProductID,
			data.OldPriceSats,
			data.NewPriceSats,
			data.ChangePercent,
			data.Explanation,
			data.Reason,
			data.ChangedBy,
			data.ChangedAt,
		},
	)
}
