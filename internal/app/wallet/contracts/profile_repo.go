package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/satstreet/pricing-service/internal/app/wallet/domain"
)

// ProfileRepository defines the interface for wallet profile persistence.
// Mutations join a commit plan; they are never applied in place.
type ProfileRepository interface {
	// GetByID retrieves a profile by ID
	GetByID(ctx context.Context, profileID string) (*domain.Profile, error)

	// UpdateAddressMut creates a mutation assigning a bitcoin address
	UpdateAddressMut(profileID, address string) *spanner.Mutation

	// UpdateBalanceMut creates a mutation setting the wallet balance
	UpdateBalanceMut(profileID string, balanceSats int64) *spanner.Mutation
}
