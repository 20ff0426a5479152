package create_transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/satstreet/pricing-service/internal/app/wallet/contracts"
	"github.com/satstreet/pricing-service/internal/app/wallet/domain"
	"github.com/satstreet/pricing-service/internal/models/m_btc_transaction"
	"github.com/satstreet/pricing-service/internal/pkg/committer"
)

// Request describes a simulated purchase payment.
type Request struct {
	ProfileID        string
	ProductID        string
	AmountSats       int64
	RecipientAddress string
}

// Result reports the committed payment.
type Result struct {
	TxHash       string
	AmountSats   int64
	BalanceAfter int64
}

// Interactor handles the create transaction use case. The balance debit
// and the ledger row commit together; there is no window where the debit
// exists without its ledger entry.
type Interactor struct {
	profileRepo contracts.ProfileRepository
	txRepo      contracts.TransactionRepository
	applier     contracts.PlanApplier
	rng         domain.Rand
}

// NewInteractor creates a new create transaction interactor.
func NewInteractor(
	profileRepo contracts.ProfileRepository,
	txRepo contracts.TransactionRepository,
	applier contracts.PlanApplier,
	rng domain.Rand,
) *Interactor {
	return &Interactor{
		profileRepo: profileRepo,
		txRepo:      txRepo,
		applier:     applier,
		rng:         rng,
	}
}

// Execute debits the wallet and appends the ledger row atomically.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	if req.AmountSats <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	profile, err := i.profileRepo.GetByID(ctx, req.ProfileID)
	if err != nil {
		return nil, err
	}

	if !profile.CanSpend(req.AmountSats) {
		return nil, domain.ErrInsufficientFunds
	}

	txHash := domain.NewTxHash(i.rng)
	balanceAfter := profile.BalanceSats - req.AmountSats

	plan := committer.NewPlan()
	plan.Add(i.profileRepo.UpdateBalanceMut(req.ProfileID, balanceAfter))
	plan.Add(i.txRepo.InsertMut(&contracts.LedgerEntry{
		TxID:             uuid.New().String(),
		ProfileID:        req.ProfileID,
		ProductID:        req.ProductID,
		AmountSats:       req.AmountSats,
		TxHash:           txHash,
		Status:           m_btc_transaction.StatusConfirmed,
		Type:             m_btc_transaction.TypePurchase,
		RecipientAddress: req.RecipientAddress,
	}))

	if err := i.applier.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &Result{
		TxHash:       txHash,
		AmountSats:   req.AmountSats,
		BalanceAfter: balanceAfter,
	}, nil
}
