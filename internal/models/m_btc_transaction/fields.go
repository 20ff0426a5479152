package m_btc_transaction

// Field name constants for the bitcoin_transactions table.
const (
	TableName = "bitcoin_transactions"

	TxID             = "tx_id"
	ProfileID        = "profile_id"
	ProductID        = "product_id"
	AmountSats       = "amount_sats"
	TxHash           = "tx_hash"
	Status           = "status"
	Type             = "type"
	RecipientAddress = "recipient_address"
	CreatedAt        = "created_at"
)

// Transaction status constants
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusFailed    = "failed"
)

// Transaction type constants
const (
	TypePurchase = "purchase"
	TypeFaucet   = "faucet"
)
