package m_profile

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the profiles table.
type Data struct {
	ProfileID         string
	Username          string
	BitcoinAddress    spanner.NullString // assigned lazily on first wallet access
	WalletBalanceSats int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
