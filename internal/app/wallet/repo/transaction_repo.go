package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/satstreet/pricing-service/internal/app/wallet/contracts"
	"github.com/satstreet/pricing-service/internal/models/m_btc_transaction"
)

// TransactionRepo implements TransactionRepository for Spanner.
type TransactionRepo struct {
	client *spanner.Client
	model  *m_btc_transaction.Model
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(client *spanner.Client) contracts.TransactionRepository {
	return &TransactionRepo{
		client: client,
		model:  m_btc_transaction.NewModel(),
	}
}

// InsertMut creates a mutation appending a ledger entry.
func (r *TransactionRepo) InsertMut(entry *contracts.LedgerEntry) *spanner.Mutation {
	data := &m_btc_transaction.Data{
		TxID:       entry.TxID,
		ProfileID:  entry.ProfileID,
		AmountSats: entry.AmountSats,
		TxHash:     entry.TxHash,
		Status:     entry.Status,
		Type:       entry.Type,
	}

	if entry.ProductID != "" {
		data.ProductID = spanner.NullString{StringVal: entry.ProductID, Valid: true}
	}

	if entry.RecipientAddress != "" {
		data.RecipientAddress = spanner.NullString{StringVal: entry.RecipientAddress, Valid: true}
	}

	return r.model.InsertMut(data)
}

// GetByHash retrieves a ledger entry by transaction hash, or nil when no
// entry matches.
func (r *TransactionRepo) GetByHash(ctx context.Context, txHash string) (*contracts.LedgerEntry, error) {
	stmt := spanner.Statement{
		SQL: fmt.Sprintf(`SELECT %s FROM %s WHERE tx_hash = @txHash LIMIT 1`,
			transactionColumnList(), m_btc_transaction.TableName),
		Params: map[string]interface{}{"txHash": txHash},
	}

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read transaction: %w", err)
	}

	var data m_btc_transaction.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse transaction: %w", err)
	}

	return dataToEntry(&data), nil
}

// ListByProfile retrieves a profile's most recent ledger entries.
func (r *TransactionRepo) ListByProfile(ctx context.Context, profileID string, limit int) ([]*contracts.LedgerEntry, error) {
	stmt := spanner.Statement{
		SQL: fmt.Sprintf(`
			SELECT %s
			FROM %s
			WHERE profile_id = @profileID
			ORDER BY created_at DESC
			LIMIT @limit
		`, transactionColumnList(), m_btc_transaction.TableName),
		Params: map[string]interface{}{
			"profileID": profileID,
			"limit":     limit,
		},
	}

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var entries []*contracts.LedgerEntry
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate transactions: %w", err)
		}

		var data m_btc_transaction.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse transaction: %w", err)
		}

		entries = append(entries, dataToEntry(&data))
	}

	return entries, nil
}

func transactionColumnList() string {
	return "tx_id, profile_id, product_id, amount_sats, tx_hash, status, type, recipient_address, created_at"
}

// dataToEntry converts database Data to a LedgerEntry.
func dataToEntry(data *m_btc_transaction.Data) *contracts.LedgerEntry {
	entry := &contracts.LedgerEntry{
		TxID:       data.TxID,
		ProfileID:  data.ProfileID,
		AmountSats: data.AmountSats,
		TxHash:     data.TxHash,
		Status:     data.Status,
		Type:       data.Type,
		CreatedAt:  data.CreatedAt,
	}

	if data.ProductID.Valid {
		entry.ProductID = data.ProductID.StringVal
	}

	if data.RecipientAddress.Valid {
		entry.RecipientAddress = data.RecipientAddress.StringVal
	}

	return entry
}
