package contracts

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"
)

// LedgerEntry is one row of the storefront's simulated transaction ledger.
type LedgerEntry struct {
	TxID             string
	ProfileID        string
	ProductID        string // empty for faucet payouts
	AmountSats       int64
	TxHash           string
	Status           string
	Type             string
	RecipientAddress string
	CreatedAt        time.Time
}

// TransactionRepository defines the interface for the ledger.
type TransactionRepository interface {
	// InsertMut creates a mutation appending a ledger entry
	InsertMut(entry *LedgerEntry) *spanner.Mutation

	// GetByHash retrieves a ledger entry by transaction hash, or nil when
	// no entry matches
	GetByHash(ctx context.Context, txHash string) (*LedgerEntry, error)

	// ListByProfile retrieves a profile's most recent ledger entries
	ListByProfile(ctx context.Context, profileID string, limit int) ([]*LedgerEntry, error)
}
