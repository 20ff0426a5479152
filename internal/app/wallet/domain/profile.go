package domain

import "time"

// Profile is a storefront user's wallet view. Balances are integer
// satoshis; authentication and the rest of the user record live outside
// this service.
type Profile struct {
	ProfileID      string
	Username       string
	BitcoinAddress string // empty until first wallet access
	BalanceSats    int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasAddress reports whether the profile has been assigned an address yet.
func (p *Profile) HasAddress() bool {
	return p.BitcoinAddress != ""
}

// CanSpend reports whether the balance covers the given amount.
func (p *Profile) CanSpend(amountSats int64) bool {
	return p.BalanceSats >= amountSats
}
