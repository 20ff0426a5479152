package m_btc_transaction

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the bitcoin_transactions table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a ledger row.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		[]string{
			TxID,
			ProfileID,
			ProductID,
			AmountSats,
			TxHash,
			Status,
			Type,
			RecipientAddress,
			CreatedAt,
		},
		[]interface{}{
			data.TxID,
			data.ProfileID,
			data.ProductID,
			data.AmountSats,
			data.TxHash,
			data.Status,
			data.Type,
			data.RecipientAddress,
			spanner.CommitTimestamp,
		},
	)
}
