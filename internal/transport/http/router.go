package http

import "net/http"

// Router bundles the handlers behind one mux.
type Router struct {
	Pricing *PricingHandler
	Wallet  *WalletHandler
	Catalog *CatalogHandler
	Events  *EventsHandler
}

// Handler builds the HTTP routing table with CORS and request logging
// applied to every route. The /functions/ endpoints keep the original
// storefront's action-envelope contract; /api/v1/ is plain REST.
func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("POST /functions/price-engine", rt.Pricing)
	mux.Handle("POST /functions/bitcoin-service", rt.Wallet)

	mux.HandleFunc("GET /api/v1/products", rt.Catalog.HandleList)
	mux.HandleFunc("GET /api/v1/products/{id}", rt.Catalog.HandleGet)
	mux.HandleFunc("GET /api/v1/products/{id}/history", rt.Catalog.HandleHistory)
	mux.HandleFunc("GET /api/v1/products/{id}/breakdown", rt.Catalog.HandleBreakdown)

	mux.Handle("GET /api/v1/events", rt.Events)

	return withLogging(withCORS(mux))
}
