package repo

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/satstreet/pricing-service/internal/app/pricing/contracts"
	"github.com/satstreet/pricing-service/internal/app/pricing/domain"
	"github.com/satstreet/pricing-service/internal/models/m_price_history"
)

// PriceHistoryRepo implements PriceHistoryRepository for Spanner.
type PriceHistoryRepo struct {
	client *spanner.Client
	model  *m_price_history.Model
}

// NewPriceHistoryRepo creates a new PriceHistoryRepo.
func NewPriceHistoryRepo(client *spanner.Client) contracts.PriceHistoryRepository {
	return &PriceHistoryRepo{
		client: client,
		model:  m_price_history.NewModel(),
	}
}

// InsertMut creates a mutation for appending a price change record.
func (r *PriceHistoryRepo) InsertMut(
	historyID string,
	productID string,
	oldPrice *domain.Satoshis,
	quote domain.PriceQuote,
	changedBy string,
	changedAt time.Time,
) *spanner.Mutation {
	data := &m_price_history.Data{
		HistoryID:     historyID,
		ProductID:     productID,
		NewPriceSats:  quote.NewPrice.Int64(),
		ChangePercent: quote.ChangePercent,
		Explanation:   quote.Explanation,
		ChangedAt:     changedAt,
	}

	// oldPrice is nil for the initial listing price
	if oldPrice != nil {
		data.OldPriceSats = spanner.NullInt64{Int64: oldPrice.Int64(), Valid: true}
	}

	if quote.Reason != domain.ReasonNone {
		data.Reason = spanner.NullString{StringVal: string(quote.Reason), Valid: true}
	}

	if changedBy != "" {
		data.ChangedBy = spanner.NullString{StringVal: changedBy, Valid: true}
	}

	return r.model.InsertMut(data)
}

// ListByProduct retrieves price history for a product, oldest first. The
// ascending order is what the storefront chart consumes directly.
func (r *PriceHistoryRepo) ListByProduct(ctx context.Context, productID string, limit int) ([]contracts.PriceHistoryRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE product_id = @productID
		ORDER BY changed_at ASC
		LIMIT @limit
	`, historyColumnList(), m_price_history.TableName)

	stmt := spanner.Statement{
		SQL: query,
		Params: map[string]interface{}{
			"productID": productID,
			"limit":     limit,
		},
	}

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var records []contracts.PriceHistoryRecord
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate price history: %w", err)
		}

		var data m_price_history.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse price history: %w", err)
		}

		records = append(records, dataToRecord(&data))
	}

	return records, nil
}

// Latest retrieves the most recent entry for a product, or nil if none exists.
func (r *PriceHistoryRepo) Latest(ctx context.Context, productID string) (*contracts.PriceHistoryRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE product_id = @productID
		ORDER BY changed_at DESC
		LIMIT 1
	`, historyColumnList(), m_price_history.TableName)

	stmt := spanner.Statement{
		SQL:    query,
		Params: map[string]interface{}{"productID": productID},
	}

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read latest price history: %w", err)
	}

	var data m_price_history.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse price history: %w", err)
	}

	record := dataToRecord(&data)
	return &record, nil
}

// historyColumnList returns comma-separated column names for SELECT queries.
func historyColumnList() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s",
		m_price_history.HistoryID,
		m_price_history.ProductID,
		m_price_history.OldPriceSats,
		m_price_history.NewPriceSats,
		m_price_history.ChangePercent,
		m_price_history.Explanation,
		m_price_history.Reason,
		m_price_history.ChangedBy,
		m_price_history.ChangedAt,
	)
}

// dataToRecord converts database Data to a PriceHistoryRecord.
func dataToRecord(data *m_price_history.Data) contracts.PriceHistoryRecord {
	record := contracts.PriceHistoryRecord{
		HistoryID:     data.HistoryID,
		ProductID:     data.ProductID,
		NewPrice:      domain.Satoshis(data.NewPriceSats),
		ChangePercent: data.ChangePercent,
		Explanation:   data.Explanation,
		ChangedAt:     data.ChangedAt,
	}

	if data.OldPriceSats.Valid {
		old := domain.Satoshis(data.OldPriceSats.Int64)
		record.OldPrice = &old
	}

	if data.Reason.Valid {
		record.Reason = domain.ReasonCategory(data.Reason.StringVal)
	}

	if data.ChangedBy.Valid {
		record.ChangedBy = data.ChangedBy.StringVal
	}

	return record
}
