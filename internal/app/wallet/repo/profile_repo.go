package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/satstreet/pricing-service/internal/app/wallet/contracts"
	"github.com/satstreet/pricing-service/internal/app/wallet/domain"
	"github.com/satstreet/pricing-service/internal/models/m_profile"
)

// ProfileRepo implements ProfileRepository for Spanner.
type ProfileRepo struct {
	client *spanner.Client
	model  *m_profile.Model
}

// NewProfileRepo creates a new ProfileRepo.
func NewProfileRepo(client *spanner.Client) contracts.ProfileRepository {
	return &ProfileRepo{
		client: client,
		model:  m_profile.NewModel(),
	}
}

// GetByID retrieves a profile by ID.
func (r *ProfileRepo) GetByID(ctx context.Context, profileID string) (*domain.Profile, error) {
	row, err := r.client.Single().ReadRow(ctx, m_profile.TableName, spanner.Key{profileID}, profileColumns())
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var data m_profile.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}

	return dataToProfile(&data), nil
}

// UpdateAddressMut creates a mutation assigning a bitcoin address.
func (r *ProfileRepo) UpdateAddressMut(profileID, address string) *spanner.Mutation {
	return r.model.UpdateMut(profileID, map[string]interface{}{
		m_profile.BitcoinAddress: spanner.NullString{StringVal: address, Valid: true},
	})
}

// UpdateBalanceMut creates a mutation setting the wallet balance.
func (r *ProfileRepo) UpdateBalanceMut(profileID string, balanceSats int64) *spanner.Mutation {
	return r.model.UpdateMut(profileID, map[string]interface{}{
		m_profile.WalletBalanceSats: balanceSats,
	})
}

func profileColumns() []string {
	return []string{
		m_profile.ProfileID,
		m_profile.Username,
		m_profile.BitcoinAddress,
		m_profile.WalletBalanceSats,
		m_profile.CreatedAt,
		m_profile.UpdatedAt,
	}
}

// dataToProfile converts database Data to a domain Profile.
func dataToProfile(data *m_profile.Data) *domain.Profile {
	profile := &domain.Profile{
		ProfileID:   data.ProfileID,
		Username:    data.Username,
		BalanceSats: data.WalletBalanceSats,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	if data.BitcoinAddress.Valid {
		profile.BitcoinAddress = data.BitcoinAddress.StringVal
	}

	return profile
}
