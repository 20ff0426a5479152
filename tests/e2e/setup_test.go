package e2e

import (
	"math/rand"
	"testing"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/satstreet/pricing-service/internal/app/pricing/domain"
	"github.com/satstreet/pricing-service/internal/app/pricing/queries/get_market_data"
	"github.com/satstreet/pricing-service/internal/app/pricing/queries/get_price_breakdown"
	"github.com/satstreet/pricing-service/internal/app/pricing/queries/get_price_history"
	"github.com/satstreet/pricing-service/internal/app/pricing/queries/get_product"
	"github.com/satstreet/pricing-service/internal/app/pricing/queries/list_products"
	"github.com/satstreet/pricing-service/internal/app/pricing/repo"
	"github.com/satstreet/pricing-service/internal/app/pricing/usecases/update_all_prices"
	"github.com/satstreet/pricing-service/internal/app/pricing/usecases/update_price"
	walletdomain "github.com/satstreet/pricing-service/internal/app/wallet/domain"
	"github.com/satstreet/pricing-service/internal/app/wallet/queries/get_wallet_info"
	"github.com/satstreet/pricing-service/internal/app/wallet/queries/verify_transaction"
	walletrepo "github.com/satstreet/pricing-service/internal/app/wallet/repo"
	"github.com/satstreet/pricing-service/internal/app/wallet/usecases/create_transaction"
	"github.com/satstreet/pricing-service/internal/app/wallet/usecases/generate_address"
	"github.com/satstreet/pricing-service/internal/pkg/clock"
	"github.com/satstreet/pricing-service/internal/pkg/committer"
	"github.com/satstreet/pricing-service/tests/testutil"
)

// Services holds all use cases and queries for E2E tests.
type Services struct {
	// Commands
	UpdateAllPrices   *update_all_prices.Interactor
	UpdatePrice       *update_price.Interactor
	CreateTransaction *create_transaction.Interactor
	GenerateAddress   *generate_address.Interactor

	// Queries
	GetProduct        *get_product.Query
	ListProducts      *list_products.Query
	GetPriceHistory   *get_price_history.Query
	GetPriceBreakdown *get_price_breakdown.Query
	GetMarketData     *get_market_data.Query
	GetWalletInfo     *get_wallet_info.Query
	VerifyTransaction *verify_transaction.Query

	// Infrastructure
	Clock  *clock.MockClock
	Client *spanner.Client
}

// setupTest initializes all dependencies for E2E testing. Randomness is
// seeded so failures reproduce; the clock starts fixed and can be advanced.
func setupTest(t *testing.T) (*Services, func()) {
	t.Helper()

	client, cleanup := testutil.SetupSpannerTest(t)

	mockClock := clock.NewMockClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	comm := committer.NewCommitter(client)
	rng := rand.New(rand.NewSource(42))
	var walletRng walletdomain.Rand = rng

	productRepo := repo.NewProductRepo(client, mockClock)
	historyRepo := repo.NewPriceHistoryRepo(client)
	outboxRepo := repo.NewOutboxRepo(client)
	readModel := repo.NewReadModel(client)

	simulator := domain.NewSimulator(rng, mockClock)
	calculator := domain.NewPriceCalculator(rng)

	profileRepo := walletrepo.NewProfileRepo(client)
	txRepo := walletrepo.NewTransactionRepo(client)

	marketQuery := get_market_data.NewQuery(simulator)

	services := &Services{
		UpdateAllPrices:   update_all_prices.NewInteractor(productRepo, historyRepo, outboxRepo, comm, simulator, calculator, mockClock),
		UpdatePrice:       update_price.NewInteractor(productRepo, historyRepo, outboxRepo, comm, simulator, calculator, mockClock),
		CreateTransaction: create_transaction.NewInteractor(profileRepo, txRepo, comm, walletRng),
		GenerateAddress:   generate_address.NewInteractor(profileRepo, comm, walletRng),

		GetProduct:        get_product.NewQuery(readModel),
		ListProducts:      list_products.NewQuery(readModel),
		GetPriceHistory:   get_price_history.NewQuery(readModel, historyRepo),
		GetPriceBreakdown: get_price_breakdown.NewQuery(readModel, historyRepo, marketQuery),
		GetMarketData:     marketQuery,
		GetWalletInfo:     get_wallet_info.NewQuery(profileRepo, comm, walletRng, mockClock),
		VerifyTransaction: verify_transaction.NewQuery(txRepo, walletRng, mockClock),

		Clock:  mockClock,
		Client: client,
	}

	return services, cleanup
}
