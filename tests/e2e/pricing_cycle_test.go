package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satstreet/pricing-service/internal/app/pricing/queries/get_price_breakdown"
	"github.com/satstreet/pricing-service/internal/app/pricing/queries/get_price_history"
	"github.com/satstreet/pricing-service/internal/app/pricing/queries/get_product"
	"github.com/satstreet/pricing-service/tests/testutil"
)

func TestPricingCycle(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	ctx := context.Background()

	// 1. Seed the catalog
	rigID := testutil.CreateTestProduct(t, services.Client, "Mining Rig", 150_000)
	walletID := testutil.CreateTestProduct(t, services.Client, "Hardware Wallet", 50_000)
	scarceID := testutil.CreateTestProductWithStock(t, services.Client, "Node Kit", 80_000, 2)

	// 2. Run one cycle
	result, err := services.UpdateAllPrices.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, result.UpdatedCount)

	// 3. Every product stays inside the per-cycle volatility band
	for id, before := range map[string]int64{rigID: 150_000, walletID: 50_000, scarceID: 80_000} {
		after := testutil.GetProductPrice(t, services.Client, id)
		assert.NotEqual(t, before, after, "price should move")
		assert.GreaterOrEqual(t, after, before*95/100-1, "drop exceeds volatility band")
		assert.LessOrEqual(t, after, before*105/100+1, "rise exceeds volatility band")
	}

	// 4. One history row per product, one outbox event per change plus the
	// cycle completion marker
	testutil.AssertRowCount(t, services.Client, "price_history", 3)
	assert.Equal(t, int64(3), testutil.CountOutboxEvents(t, services.Client, "product.price.changed"))
	assert.Equal(t, int64(1), testutil.CountOutboxEvents(t, services.Client, "pricing.cycle.completed"))
}

func TestPricingCycle_HistoryAccumulatesAcrossCycles(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	ctx := context.Background()
	productID := testutil.CreateTestProduct(t, services.Client, "Mining Rig", 150_000)

	_, err := services.UpdateAllPrices.Execute(ctx)
	require.NoError(t, err)

	services.Clock.Advance(time.Hour)

	_, err = services.UpdateAllPrices.Execute(ctx)
	require.NoError(t, err)

	history, err := services.GetPriceHistory.Execute(ctx, &get_price_history.Request{ProductID: productID})
	require.NoError(t, err)
	require.Len(t, history, 2)

	// Oldest first, and each row's old price chains to the previous new price
	assert.True(t, history[0].ChangedAt.Before(history[1].ChangedAt))
	require.NotNil(t, history[1].OldPrice)
	assert.Equal(t, history[0].NewPrice, *history[1].OldPrice)
	assert.Equal(t, "pricing-batch", history[0].ChangedBy)
}

func TestSingleProductUpdate(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	ctx := context.Background()
	productID := testutil.CreateTestProduct(t, services.Client, "Hardware Wallet", 50_000)
	otherID := testutil.CreateTestProduct(t, services.Client, "Mining Rig", 150_000)

	result, err := services.UpdatePrice.Execute(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, productID, result.ProductID)
	assert.NotEmpty(t, result.Explanation)

	// The repriced product is persisted; the other is untouched
	dto, err := services.GetProduct.Execute(ctx, &get_product.Request{ProductID: productID})
	require.NoError(t, err)
	assert.Equal(t, result.NewPrice.Int64(), dto.PriceSats)

	assert.Equal(t, int64(150_000), testutil.GetProductPrice(t, services.Client, otherID))
	testutil.AssertRowCount(t, services.Client, "price_history", 1)
	assert.Equal(t, int64(1), testutil.CountOutboxEvents(t, services.Client, "product.price.changed"))
}

func TestPriceBreakdown_ComponentsSumToPrice(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	ctx := context.Background()
	productID := testutil.CreateTestProduct(t, services.Client, "Mining Rig", 150_000)

	_, err := services.UpdateAllPrices.Execute(ctx)
	require.NoError(t, err)

	// Prime the factor cache the way a storefront session would
	services.GetMarketData.Execute()

	breakdown, err := services.GetPriceBreakdown.Execute(ctx, &get_price_breakdown.Request{ProductID: productID})
	require.NoError(t, err)

	price := testutil.GetProductPrice(t, services.Client, productID)
	assert.Equal(t, price, breakdown.Price)
	assert.Equal(t, price, breakdown.Components.Total().Int64(), "components must sum to the displayed price")
	assert.NotEmpty(t, breakdown.Explanation, "explanation comes from the latest history row")
}

func TestPricingCycle_EmptyCatalog(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	result, err := services.UpdateAllPrices.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, result.UpdatedCount)

	testutil.AssertRowCount(t, services.Client, "price_history", 0)
	testutil.AssertRowCount(t, services.Client, "outbox_events", 0)
}
