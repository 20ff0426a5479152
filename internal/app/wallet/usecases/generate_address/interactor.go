package generate_address

import (
	"context"
	"fmt"

	"github.com/satstreet/pricing-service/internal/app/wallet/contracts"
	"github.com/satstreet/pricing-service/internal/app/wallet/domain"
	"github.com/satstreet/pricing-service/internal/pkg/committer"
)

// Result carries the freshly assigned address.
type Result struct {
	Address string
}

// Interactor handles the generate address use case. Each call replaces
// the profile's address, mimicking fresh-address-per-request wallets.
type Interactor struct {
	profileRepo contracts.ProfileRepository
	applier     contracts.PlanApplier
	rng         domain.Rand
}

// NewInteractor creates a new generate address interactor.
func NewInteractor(
	profileRepo contracts.ProfileRepository,
	applier contracts.PlanApplier,
	rng domain.Rand,
) *Interactor {
	return &Interactor{
		profileRepo: profileRepo,
		applier:     applier,
		rng:         rng,
	}
}

// Execute assigns a new simulated testnet address to the profile.
func (i *Interactor) Execute(ctx context.Context, profileID string) (*Result, error) {
	// Existence check; writing an address for a missing profile would
	// otherwise surface as an opaque commit error.
	if _, err := i.profileRepo.GetByID(ctx, profileID); err != nil {
		return nil, err
	}

	address := domain.NewTestnetAddress(i.rng)

	plan := committer.NewPlan()
	plan.Add(i.profileRepo.UpdateAddressMut(profileID, address))

	if err := i.applier.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit address: %w", err)
	}

	return &Result{Address: address}, nil
}
