package m_btc_transaction

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the bitcoin_transactions table.
// This is the purchase ledger: one row per simulated on-chain transaction.
type Data struct {
	TxID             string
	ProfileID        string
	ProductID        spanner.NullString
	AmountSats       int64
	TxHash           string
	Status           string
	Type             string
	RecipientAddress spanner.NullString
	CreatedAt        time.Time
}
