package verify_transaction

import (
	"context"

	"github.com/satstreet/pricing-service/internal/app/wallet/contracts"
	"github.com/satstreet/pricing-service/internal/app/wallet/domain"
	"github.com/satstreet/pricing-service/internal/models/m_btc_transaction"
	"github.com/satstreet/pricing-service/internal/pkg/clock"
)

// Query handles the verify transaction query use case. Ledgered
// transactions report their real status; unknown hashes get a simulated
// blockchain lookup, matching how a testnet explorer would answer.
type Query struct {
	txRepo contracts.TransactionRepository
	rng    domain.Rand
	clock  clock.Clock
}

// NewQuery creates a new verify transaction query.
func NewQuery(txRepo contracts.TransactionRepository, rng domain.Rand, clk clock.Clock) *Query {
	return &Query{
		txRepo: txRepo,
		rng:    rng,
		clock:  clk,
	}
}

// Execute resolves the confirmation status of a transaction hash.
func (q *Query) Execute(ctx context.Context, txHash string) (*domain.VerificationResult, error) {
	now := q.clock.Now().UTC()

	entry, err := q.txRepo.GetByHash(ctx, txHash)
	if err != nil {
		return nil, err
	}

	if entry == nil {
		result := domain.SimulateVerification(q.rng, now)
		return &result, nil
	}

	confirmed := entry.Status == m_btc_transaction.StatusConfirmed
	result := domain.VerifyLedgered(confirmed, entry.CreatedAt, q.rng, now)
	return &result, nil
}
