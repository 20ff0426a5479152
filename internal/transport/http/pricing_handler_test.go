package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pricingdomain "github.com/satstreet/pricing-service/internal/app/pricing/domain"
	"github.com/satstreet/pricing-service/internal/app/pricing/usecases/update_all_prices"
	"github.com/satstreet/pricing-service/internal/app/pricing/usecases/update_price"
)

type stubBatch struct {
	result *update_all_prices.Result
	err    error
}

func (s *stubBatch) Execute(_ context.Context) (*update_all_prices.Result, error) {
	return s.result, s.err
}

type stubSingle struct {
	result *update_price.Result
	err    error
}

func (s *stubSingle) Execute(_ context.Context, _ string) (*update_price.Result, error) {
	return s.result, s.err
}

type stubMarket struct {
	snap    pricingdomain.MarketSnapshot
	factors pricingdomain.MarketFactors
}

func (s *stubMarket) Execute() pricingdomain.MarketSnapshot { return s.snap }
func (s *stubMarket) Factors() pricingdomain.MarketFactors  { return s.factors }

func postAction(t *testing.T, handler http.Handler, action string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(map[string]interface{}{
		"action":  action,
		"payload": payload,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/functions/price-engine", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestPricingHandler_UpdateAllPrices(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	handler := NewPricingHandler(
		&stubBatch{result: &update_all_prices.Result{UpdatedCount: 7, Timestamp: now}},
		&stubSingle{},
		&stubMarket{},
	)

	for _, action := range []string{"updatePrices", "updateAllPrices"} {
		rec := postAction(t, handler, action, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, true, resp["success"])
		assert.Equal(t, float64(7), resp["updatedProducts"])
	}
}

func TestPricingHandler_BusyReturnsConflict(t *testing.T) {
	handler := NewPricingHandler(
		&stubBatch{err: pricingdomain.ErrBatchInFlight},
		&stubSingle{},
		&stubMarket{},
	)

	rec := postAction(t, handler, "updatePrices", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "already in flight")
}

func TestPricingHandler_UpdateProductPrice(t *testing.T) {
	handler := NewPricingHandler(
		&stubBatch{},
		&stubSingle{result: &update_price.Result{
			ProductID:     "p-1",
			OldPrice:      10000,
			NewPrice:      10500,
			ChangePercent: 5.0,
			Explanation:   "Price increased by 5.0%. Increased demand from buyers driving prices up.",
		}},
		&stubMarket{},
	)

	rec := postAction(t, handler, "updateProductPrice", map[string]string{"productId": "p-1"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "p-1", resp["productId"])
	assert.Equal(t, float64(10500), resp["newPrice"])
}

func TestPricingHandler_UpdateProductPriceValidation(t *testing.T) {
	handler := NewPricingHandler(&stubBatch{}, &stubSingle{}, &stubMarket{})

	rec := postAction(t, handler, "updateProductPrice", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPricingHandler_ProductNotFound(t *testing.T) {
	handler := NewPricingHandler(
		&stubBatch{},
		&stubSingle{err: pricingdomain.ErrProductNotFound},
		&stubMarket{},
	)

	rec := postAction(t, handler, "updateProductPrice", map[string]string{"productId": "missing"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPricingHandler_GetMarketData(t *testing.T) {
	snap := pricingdomain.MarketSnapshot{
		BitcoinPriceUSD: 40000,
		Change24h:       2.5,
		SatoshiRate:     pricingdomain.SatoshiRate,
		SentimentLabel:  "bullish",
	}
	handler := NewPricingHandler(&stubBatch{}, &stubSingle{}, &stubMarket{snap: snap})

	rec := postAction(t, handler, "getMarketData", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(40000), resp["bitcoin_price_usd"])
	assert.Equal(t, "bullish", resp["market_sentiment"])
}

func TestPricingHandler_GetMarketFactors(t *testing.T) {
	handler := NewPricingHandler(&stubBatch{}, &stubSingle{}, &stubMarket{
		factors: pricingdomain.DefaultMarketFactors(),
	})

	rec := postAction(t, handler, "getMarketFactors", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(30000), resp["bitcoinPrice"])
	assert.Equal(t, float64(0.5), resp["networkDemand"])
}

func TestPricingHandler_InvalidAction(t *testing.T) {
	handler := NewPricingHandler(&stubBatch{}, &stubSingle{}, &stubMarket{})

	rec := postAction(t, handler, "unknownAction", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid action", resp["error"])
}

func TestRouter_CORSPreflight(t *testing.T) {
	rt := &Router{
		Pricing: NewPricingHandler(&stubBatch{}, &stubSingle{}, &stubMarket{}),
	}

	mux := http.NewServeMux()
	mux.Handle("POST /functions/price-engine", rt.Pricing)
	handler := withCORS(mux)

	req := httptest.NewRequest(http.MethodOptions, "/functions/price-engine", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "x-client-info")
}
