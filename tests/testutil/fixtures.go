package testutil

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/satstreet/pricing-service/internal/models/m_product"
	"github.com/satstreet/pricing-service/internal/models/m_profile"
)

// CreateTestProduct creates a listed product directly in the database and
// returns its ID.
func CreateTestProduct(t *testing.T, client *spanner.Client, name string, priceSats int64) string {
	t.Helper()
	return CreateTestProductWithStock(t, client, name, priceSats, 10)
}

// CreateTestProductWithStock creates a listed product with a specific stock
// count. Stock below five puts the product in scarcity-premium territory.
func CreateTestProductWithStock(t *testing.T, client *spanner.Client, name string, priceSats, stockCount int64) string {
	t.Helper()

	ctx := context.Background()
	productID := uuid.New().String()

	model := m_product.NewModel()
	data := &m_product.Data{
		ProductID:   productID,
		Name:        name,
		Description: "Test product description",
		Category:    "electronics",
		PriceSats:   priceSats,
		StockCount:  stockCount,
		Status:      "listed",
		Version:     1,
	}

	mutation := model.InsertMut(data)
	_, err := client.Apply(ctx, []*spanner.Mutation{mutation})
	require.NoError(t, err, "failed to create test product")

	return productID
}

// CreateTestProfile creates a profile with the given wallet balance and
// returns its ID. The bitcoin address starts unassigned.
func CreateTestProfile(t *testing.T, client *spanner.Client, username string, balanceSats int64) string {
	t.Helper()

	ctx := context.Background()
	profileID := uuid.New().String()

	model := m_profile.NewModel()
	data := &m_profile.Data{
		ProfileID:         profileID,
		Username:          username,
		WalletBalanceSats: balanceSats,
	}

	mutation := model.InsertMut(data)
	_, err := client.Apply(ctx, []*spanner.Mutation{mutation})
	require.NoError(t, err, "failed to create test profile")

	return profileID
}

// GetProductPrice reads a product's current price straight from the table.
func GetProductPrice(t *testing.T, client *spanner.Client, productID string) int64 {
	t.Helper()

	ctx := context.Background()
	row, err := client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, []string{m_product.PriceSats})
	require.NoError(t, err, "failed to read product price")

	var price int64
	err = row.Columns(&price)
	require.NoError(t, err, "failed to parse product price")

	return price
}

// AssertOutboxEvent verifies an outbox event exists with the given event type.
func AssertOutboxEvent(t *testing.T, client *spanner.Client, eventType string) {
	t.Helper()

	ctx := context.Background()
	stmt := spanner.Statement{
		SQL:    "SELECT event_id FROM outbox_events WHERE event_type = @eventType",
		Params: map[string]interface{}{"eventType": eventType},
	}

	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	require.NoError(t, err, "outbox event not found for type: %s", eventType)
	require.NotNil(t, row, "outbox event not found for type: %s", eventType)
}

// CountOutboxEvents returns the number of outbox events with the given type.
func CountOutboxEvents(t *testing.T, client *spanner.Client, eventType string) int64 {
	t.Helper()

	ctx := context.Background()
	stmt := spanner.Statement{
		SQL:    "SELECT COUNT(*) FROM outbox_events WHERE event_type = @eventType",
		Params: map[string]interface{}{"eventType": eventType},
	}

	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	require.NoError(t, err, "failed to query outbox event count")

	var count int64
	err = row.Columns(&count)
	require.NoError(t, err, "failed to parse count")

	return count
}
