package services

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"

	pricingdomain "github.com/satstreet/pricing-service/internal/app/pricing/domain"
	"github.com/satstreet/pricing-service/internal/app/pricing/queries/get_market_data"
	"github.com/satstreet/pricing-service/internal/app/pricing/queries/get_price_breakdown"
	"github.com/satstreet/pricing-service/internal/app/pricing/queries/get_price_history"
	"github.com/satstreet/pricing-service/internal/app/pricing/queries/get_product"
	"github.com/satstreet/pricing-service/internal/app/pricing/queries/list_events"
	"github.com/satstreet/pricing-service/internal/app/pricing/queries/list_products"
	pricingrepo "github.com/satstreet/pricing-service/internal/app/pricing/repo"
	"github.com/satstreet/pricing-service/internal/app/pricing/usecases/update_all_prices"
	"github.com/satstreet/pricing-service/internal/app/pricing/usecases/update_price"

	walletdomain "github.com/satstreet/pricing-service/internal/app/wallet/domain"
	"github.com/satstreet/pricing-service/internal/app/wallet/queries/address_balance"
	"github.com/satstreet/pricing-service/internal/app/wallet/queries/faucet"
	"github.com/satstreet/pricing-service/internal/app/wallet/queries/get_wallet_info"
	"github.com/satstreet/pricing-service/internal/app/wallet/queries/verify_transaction"
	walletrepo "github.com/satstreet/pricing-service/internal/app/wallet/repo"
	"github.com/satstreet/pricing-service/internal/app/wallet/usecases/create_transaction"
	"github.com/satstreet/pricing-service/internal/app/wallet/usecases/generate_address"

	"github.com/satstreet/pricing-service/internal/pkg/clock"
	"github.com/satstreet/pricing-service/internal/pkg/committer"
	"github.com/satstreet/pricing-service/internal/pkg/random"
	transport "github.com/satstreet/pricing-service/internal/transport/http"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	Router        *transport.Router
	BatchUpdater  *update_all_prices.Interactor
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, spannerDB string) (*ServiceOptions, error) {
	// 1. Initialize Spanner client
	spannerClient, err := spanner.NewClient(ctx, spannerDB)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	// 2. Create infrastructure components. The generator is shared by the
	// scheduler goroutine and the HTTP handlers, so it must be the locked one.
	clk := clock.NewRealClock()
	comm := committer.NewCommitter(spannerClient)
	rng := random.NewLocked(time.Now().UnixNano())

	// 3. Create pricing repositories and domain services
	productRepo := pricingrepo.NewProductRepo(spannerClient, clk)
	historyRepo := pricingrepo.NewPriceHistoryRepo(spannerClient)
	outboxRepo := pricingrepo.NewOutboxRepo(spannerClient)
	readModel := pricingrepo.NewReadModel(spannerClient)
	eventsReadModel := pricingrepo.NewEventsReadModel(spannerClient)

	simulator := pricingdomain.NewSimulator(rng, clk)
	calculator := pricingdomain.NewPriceCalculator(rng)

	// 4. Create pricing use cases and queries
	batchUpdater := update_all_prices.NewInteractor(productRepo, historyRepo, outboxRepo, comm, simulator, calculator, clk)
	priceUpdater := update_price.NewInteractor(productRepo, historyRepo, outboxRepo, comm, simulator, calculator, clk)

	getProductQuery := get_product.NewQuery(readModel)
	listProductsQuery := list_products.NewQuery(readModel)
	historyQuery := get_price_history.NewQuery(readModel, historyRepo)
	marketQuery := get_market_data.NewQuery(simulator)
	breakdownQuery := get_price_breakdown.NewQuery(readModel, historyRepo, marketQuery)
	eventsQuery := list_events.NewQuery(eventsReadModel)

	// 5. Create wallet repositories, use cases and queries
	profileRepo := walletrepo.NewProfileRepo(spannerClient)
	txRepo := walletrepo.NewTransactionRepo(spannerClient)

	var walletRng walletdomain.Rand = rng

	createTx := create_transaction.NewInteractor(profileRepo, txRepo, comm, walletRng)
	genAddress := generate_address.NewInteractor(profileRepo, comm, walletRng)
	walletInfo := get_wallet_info.NewQuery(profileRepo, comm, walletRng, clk)
	verifyTx := verify_transaction.NewQuery(txRepo, walletRng, clk)
	faucetQuery := faucet.NewQuery(walletRng)
	balanceQuery := address_balance.NewQuery(walletRng)

	// 6. Create HTTP handlers
	router := &transport.Router{
		Pricing: transport.NewPricingHandler(batchUpdater, priceUpdater, marketQuery),
		Wallet:  transport.NewWalletHandler(walletInfo, genAddress, createTx, verifyTx, faucetQuery, balanceQuery),
		Catalog: transport.NewCatalogHandler(getProductQuery, listProductsQuery, historyQuery, breakdownQuery),
		Events:  transport.NewEventsHandler(eventsQuery),
	}

	return &ServiceOptions{
		SpannerClient: spannerClient,
		Router:        router,
		BatchUpdater:  batchUpdater,
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
