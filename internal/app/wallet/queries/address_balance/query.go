package address_balance

import (
	"github.com/satstreet/pricing-service/internal/app/wallet/domain"
)

// Query handles the address balance query use case. Balances for
// arbitrary addresses are simulated; only profile balances are ledgered.
type Query struct {
	rng domain.Rand
}

// NewQuery creates a new address balance query.
func NewQuery(rng domain.Rand) *Query {
	return &Query{rng: rng}
}

// Execute reports a simulated balance for the given address.
func (q *Query) Execute(address string) (*domain.AddressBalance, error) {
	if address == "" {
		return nil, domain.ErrEmptyAddress
	}

	balance := domain.SimulateAddressBalance(address, q.rng)
	return &balance, nil
}
