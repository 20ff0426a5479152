package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	pricingdomain "github.com/satstreet/pricing-service/internal/app/pricing/domain"
	"github.com/satstreet/pricing-service/internal/app/pricing/usecases/update_all_prices"
	"github.com/satstreet/pricing-service/internal/app/pricing/usecases/update_price"
)

// actionRequest is the function-style envelope browser clients send.
type actionRequest struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload"`
}

// BatchUpdater runs one full pricing cycle.
type BatchUpdater interface {
	Execute(ctx context.Context) (*update_all_prices.Result, error)
}

// PriceUpdater reprices a single product.
type PriceUpdater interface {
	Execute(ctx context.Context, productID string) (*update_price.Result, error)
}

// MarketData serves snapshots and derived factors.
type MarketData interface {
	Execute() pricingdomain.MarketSnapshot
	Factors() pricingdomain.MarketFactors
}

// PricingHandler serves the price-engine function endpoint.
type PricingHandler struct {
	batch  BatchUpdater
	single PriceUpdater
	market MarketData
}

// NewPricingHandler creates a new PricingHandler.
func NewPricingHandler(batch BatchUpdater, single PriceUpdater, market MarketData) *PricingHandler {
	return &PricingHandler{
		batch:  batch,
		single: single,
		market: market,
	}
}

func (h *PricingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req actionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	switch req.Action {
	case "updatePrices", "updateAllPrices":
		h.handleUpdateAll(w, r)
	case "updateProductPrice":
		h.handleUpdateOne(w, r, req.Payload)
	case "getMarketData":
		writeJSON(w, http.StatusOK, h.market.Execute())
	case "getMarketFactors":
		writeJSON(w, http.StatusOK, h.market.Factors())
	default:
		writeError(w, http.StatusBadRequest, "Invalid action")
	}
}

func (h *PricingHandler) handleUpdateAll(w http.ResponseWriter, r *http.Request) {
	result, err := h.batch.Execute(r.Context())
	if err != nil {
		if errors.Is(err, pricingdomain.ErrBatchInFlight) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"updatedProducts": result.UpdatedCount,
		"timestamp":       result.Timestamp,
	})
}

func (h *PricingHandler) handleUpdateOne(w http.ResponseWriter, r *http.Request, payload json.RawMessage) {
	var body struct {
		ProductID string `json:"productId"`
	}
	if err := json.Unmarshal(payload, &body); err != nil || body.ProductID == "" {
		writeError(w, http.StatusBadRequest, "productId is required")
		return
	}

	result, err := h.single.Execute(r.Context(), body.ProductID)
	if err != nil {
		if errors.Is(err, pricingdomain.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":       true,
		"productId":     result.ProductID,
		"oldPrice":      result.OldPrice.Int64(),
		"newPrice":      result.NewPrice.Int64(),
		"changePercent": result.ChangePercent,
		"explanation":   result.Explanation,
		"timestamp":     result.Timestamp,
	})
}
