package faucet

import (
	"github.com/satstreet/pricing-service/internal/app/wallet/domain"
)

// Response mimics a testnet faucet acknowledgement. Nothing is persisted;
// the faucet is pure simulation, same as the upstream testnet service.
type Response struct {
	Success    bool   `json:"success"`
	TxHash     string `json:"txHash"`
	AmountSats int64  `json:"amount"`
	Message    string `json:"message"`
}

// Query handles the testnet faucet query use case.
type Query struct {
	rng domain.Rand
}

// NewQuery creates a new faucet query.
func NewQuery(rng domain.Rand) *Query {
	return &Query{rng: rng}
}

// Execute simulates a faucet payout to the given address.
func (q *Query) Execute(address string) (*Response, error) {
	if address == "" {
		return nil, domain.ErrEmptyAddress
	}

	return &Response{
		Success:    true,
		TxHash:     domain.NewTxHash(q.rng),
		AmountSats: domain.FaucetAmount,
		Message:    "Testnet bitcoin has been sent to your address",
	}, nil
}
