package m_profile

// Field name constants for the profiles table.
const (
	TableName = "profiles"

	ProfileID         = "profile_id"
	Username          = "username"
	BitcoinAddress    = "bitcoin_address"
	WalletBalanceSats = "wallet_balance_sats"
	CreatedAt         = "created_at"
	UpdatedAt         = "updated_at"
)
