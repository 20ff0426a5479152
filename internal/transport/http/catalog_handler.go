package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/satstreet/pricing-service/internal/app/pricing/contracts"
	pricingdomain "github.com/satstreet/pricing-service/internal/app/pricing/domain"
	"github.com/satstreet/pricing-service/internal/app/pricing/queries/get_price_breakdown"
	"github.com/satstreet/pricing-service/internal/app/pricing/queries/get_price_history"
	"github.com/satstreet/pricing-service/internal/app/pricing/queries/get_product"
	"github.com/satstreet/pricing-service/internal/app/pricing/queries/list_products"
)

// ProductGetter serves single-product reads.
type ProductGetter interface {
	Execute(ctx context.Context, req *get_product.Request) (*contracts.ProductDTO, error)
}

// ProductLister serves paginated catalog reads.
type ProductLister interface {
	Execute(ctx context.Context, req *list_products.Request) (*contracts.ListResult, error)
}

// HistoryGetter serves the price history chart data.
type HistoryGetter interface {
	Execute(ctx context.Context, req *get_price_history.Request) ([]contracts.PriceHistoryRecord, error)
}

// BreakdownGetter serves the price decomposition view.
type BreakdownGetter interface {
	Execute(ctx context.Context, req *get_price_breakdown.Request) (*get_price_breakdown.Response, error)
}

// CatalogHandler serves the storefront's REST reads.
type CatalogHandler struct {
	get       ProductGetter
	list      ProductLister
	history   HistoryGetter
	breakdown BreakdownGetter
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(get ProductGetter, list ProductLister, history HistoryGetter, breakdown BreakdownGetter) *CatalogHandler {
	return &CatalogHandler{
		get:       get,
		list:      list,
		history:   history,
		breakdown: breakdown,
	}
}

// productJSON mirrors the storefront's product shape.
type productJSON struct {
	ProductID   string `json:"productId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	PriceSats   int64  `json:"priceSats"`
	StockCount  int64  `json:"stockCount"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

func toProductJSON(dto *contracts.ProductDTO) productJSON {
	return productJSON{
		ProductID:   dto.ProductID,
		Name:        dto.Name,
		Description: dto.Description,
		Category:    dto.Category,
		PriceSats:   dto.PriceSats,
		StockCount:  dto.StockCount,
		Status:      dto.Status,
		CreatedAt:   dto.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   dto.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// HandleList serves GET /api/v1/products.
func (h *CatalogHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	pageSize := 0
	if raw := q.Get("pageSize"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid pageSize")
			return
		}
		pageSize = parsed
	}

	result, err := h.list.Execute(r.Context(), &list_products.Request{
		Category:  q.Get("category"),
		Status:    q.Get("status"),
		PageSize:  pageSize,
		PageToken: q.Get("pageToken"),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	products := make([]productJSON, 0, len(result.Products))
	for _, dto := range result.Products {
		products = append(products, toProductJSON(dto))
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"products":      products,
		"nextPageToken": result.NextPageToken,
		"totalCount":    result.TotalCount,
	})
}

// HandleGet serves GET /api/v1/products/{id}.
func (h *CatalogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	dto, err := h.get.Execute(r.Context(), &get_product.Request{ProductID: r.PathValue("id")})
	if err != nil {
		h.writeCatalogError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toProductJSON(dto))
}

// HandleHistory serves GET /api/v1/products/{id}/history.
func (h *CatalogHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	records, err := h.history.Execute(r.Context(), &get_price_history.Request{
		ProductID: r.PathValue("id"),
		Limit:     limit,
	})
	if err != nil {
		h.writeCatalogError(w, err)
		return
	}

	entries := make([]map[string]interface{}, 0, len(records))
	for _, rec := range records {
		entry := map[string]interface{}{
			"newPrice":      rec.NewPrice.Int64(),
			"changePercent": rec.ChangePercent,
			"explanation":   rec.Explanation,
			"changedAt":     rec.ChangedAt,
		}
		if rec.OldPrice != nil {
			entry["oldPrice"] = rec.OldPrice.Int64()
		}
		if rec.Reason != pricingdomain.ReasonNone {
			entry["reason"] = string(rec.Reason)
		}
		entries = append(entries, entry)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"history": entries})
}

// HandleBreakdown serves GET /api/v1/products/{id}/breakdown.
func (h *CatalogHandler) HandleBreakdown(w http.ResponseWriter, r *http.Request) {
	resp, err := h.breakdown.Execute(r.Context(), &get_price_breakdown.Request{ProductID: r.PathValue("id")})
	if err != nil {
		h.writeCatalogError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *CatalogHandler) writeCatalogError(w http.ResponseWriter, err error) {
	if errors.Is(err, pricingdomain.ErrProductNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}
