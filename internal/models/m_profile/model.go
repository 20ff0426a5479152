package m_profile

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the profiles table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a profile.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{
			ProfileID,
			Username,
			BitcoinAddress,
			WalletBalanceSats,
			CreatedAt,
			UpdatedAt,
		},
		[]interface{}{
			data.ProfileID,
			data.Username,
			data.BitcoinAddress,
			data.WalletBalanceSats,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
		},
	)
}

// UpdateMut creates a Spanner mutation for updating specific profile fields.
func (m *Model) UpdateMut(profileID string, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}

	updates[UpdatedAt] = spanner.CommitTimestamp

	columns := make([]string, 0, len(updates)+1)
	values := make([]interface{}, 0, len(updates)+1)

	columns = append(columns, ProfileID)
	values = append(values, profileID)

	for col, val := range updates {
		columns = append(columns, col)
		values = append(values, val)
	}

	return spanner.Update(TableName, columns, values)
}
