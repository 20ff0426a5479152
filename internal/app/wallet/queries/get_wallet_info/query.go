package get_wallet_info

import (
	"context"
	"fmt"

	"github.com/satstreet/pricing-service/internal/app/wallet/contracts"
	"github.com/satstreet/pricing-service/internal/app/wallet/domain"
	"github.com/satstreet/pricing-service/internal/pkg/clock"
	"github.com/satstreet/pricing-service/internal/pkg/committer"
)

const recentTransactionCount = 5

// Response is the wallet summary shown in the storefront.
type Response struct {
	Address      string                     `json:"address"`
	BalanceSats  int64                      `json:"balance"`
	BalanceBTC   string                     `json:"balanceBTC"`
	Transactions []domain.WalletTransaction `json:"transactions"`
	Network      string                     `json:"network"`
}

// Query handles the wallet info query use case. First access assigns the
// profile its address, so this query can write.
type Query struct {
	profileRepo contracts.ProfileRepository
	applier     contracts.PlanApplier
	rng         domain.Rand
	clock       clock.Clock
}

// NewQuery creates a new wallet info query.
func NewQuery(
	profileRepo contracts.ProfileRepository,
	applier contracts.PlanApplier,
	rng domain.Rand,
	clk clock.Clock,
) *Query {
	return &Query{
		profileRepo: profileRepo,
		applier:     applier,
		rng:         rng,
		clock:       clk,
	}
}

// Execute retrieves the wallet summary, lazily assigning an address on a
// profile's first wallet access.
func (q *Query) Execute(ctx context.Context, profileID string) (*Response, error) {
	profile, err := q.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	address := profile.BitcoinAddress
	if !profile.HasAddress() {
		address = domain.NewTestnetAddress(q.rng)

		plan := committer.NewPlan()
		plan.Add(q.profileRepo.UpdateAddressMut(profileID, address))
		if err := q.applier.Apply(ctx, plan); err != nil {
			return nil, fmt.Errorf("failed to assign address: %w", err)
		}
	}

	return &Response{
		Address:      address,
		BalanceSats:  profile.BalanceSats,
		BalanceBTC:   formatBTC(profile.BalanceSats),
		Transactions: domain.MockTransactions(q.rng, q.clock.Now().UTC(), recentTransactionCount),
		Network:      "testnet",
	}, nil
}

func formatBTC(sats int64) string {
	return fmt.Sprintf("%.8f", float64(sats)/1e8)
}
