//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satstreet/pricing-service/internal/app/pricing/domain"
	"github.com/satstreet/pricing-service/internal/app/pricing/repo"
	"github.com/satstreet/pricing-service/internal/pkg/clock"
	"github.com/satstreet/pricing-service/tests/testutil"
)

func TestProductRepository_InsertMut(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	now := time.Now()
	clk := clock.NewMockClock(now)
	repository := repo.NewProductRepo(client, clk)

	product, err := domain.NewProduct("test-id-1", "Mining Rig", "A rig", "hardware", domain.Satoshis(150_000), 10, now, clk)
	require.NoError(t, err)

	mutation := repository.InsertMut(product)
	require.NotNil(t, mutation)

	_, err = client.Apply(ctx, []*spanner.Mutation{mutation})
	require.NoError(t, err)

	testutil.AssertRowCount(t, client, "products", 1)

	retrieved, err := repository.GetByID(ctx, "test-id-1")
	require.NoError(t, err)
	assert.Equal(t, "Mining Rig", retrieved.Name())
	assert.Equal(t, "hardware", retrieved.Category())
	assert.Equal(t, domain.Satoshis(150_000), retrieved.Price())
	assert.Equal(t, domain.StatusListed, retrieved.Status())
}

func TestProductRepository_UpdateMut_PriceChangeOnly(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	now := time.Now()
	clk := clock.NewMockClock(now)
	repository := repo.NewProductRepo(client, clk)

	productID := testutil.CreateTestProduct(t, client, "Hardware Wallet", 50_000)

	retrieved, err := repository.GetByID(ctx, productID)
	require.NoError(t, err)
	require.False(t, retrieved.Changes().HasChanges(), "retrieved product should have no dirty fields")

	quote := domain.PriceQuote{
		NewPrice:      domain.Satoshis(52_500),
		ChangePercent: 5.0,
		Explanation:   "Price increased by 5.0%. Increased demand from buyers driving prices up.",
		Reason:        domain.ReasonDemand,
	}
	require.NoError(t, retrieved.ApplyQuote(quote, now))

	updateMut := repository.UpdateMut(retrieved)
	require.NotNil(t, updateMut)

	_, err = client.Apply(ctx, []*spanner.Mutation{updateMut})
	require.NoError(t, err)

	final, err := repository.GetByID(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, domain.Satoshis(52_500), final.Price())
	assert.Equal(t, "Hardware Wallet", final.Name()) // Unchanged
	assert.Equal(t, int64(2), final.Version(), "version should increment on update")
}

func TestProductRepository_UpdateMut_NoChanges(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	repository := repo.NewProductRepo(client, clock.NewRealClock())

	productID := testutil.CreateTestProduct(t, client, "Node Kit", 80_000)

	retrieved, err := repository.GetByID(ctx, productID)
	require.NoError(t, err)

	updateMut := repository.UpdateMut(retrieved)
	assert.Nil(t, updateMut, "expected nil mutation when no fields are dirty")
}

func TestProductRepository_GetByID_NotFound(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	repository := repo.NewProductRepo(client, clock.NewRealClock())

	_, err := repository.GetByID(ctx, "non-existent-id")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProductRepository_ListForPricing(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	repository := repo.NewProductRepo(client, clock.NewRealClock())

	first := testutil.CreateTestProduct(t, client, "First", 10_000)
	second := testutil.CreateTestProduct(t, client, "Second", 20_000)
	third := testutil.CreateTestProduct(t, client, "Third", 30_000)

	products, err := repository.ListForPricing(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)

	// Listing order follows insertion order
	assert.Equal(t, first, products[0].ID())
	assert.Equal(t, second, products[1].ID())
	assert.Equal(t, third, products[2].ID())
}
