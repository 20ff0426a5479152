// Command cleanup_outbox prunes drained outbox events and, optionally,
// old price history rows. Pricing cycles append rows forever; this job is
// the retention policy.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
)

// Config for the retention job.
type Config struct {
	SpannerDB              string
	CompletedRetentionDays int
	FailedRetentionDays    int
	HistoryRetentionDays   int // 0 keeps price history forever
	DryRun                 bool
}

func main() {
	config := Config{}
	flag.StringVar(&config.SpannerDB, "database", "", "Spanner database (required, format: projects/PROJECT/instances/INSTANCE/databases/DATABASE)")
	flag.IntVar(&config.CompletedRetentionDays, "completed-retention", 30, "Retention days for completed events")
	flag.IntVar(&config.FailedRetentionDays, "failed-retention", 90, "Retention days for failed events")
	flag.IntVar(&config.HistoryRetentionDays, "history-retention", 0, "Retention days for price history rows (0 = keep forever)")
	flag.BoolVar(&config.DryRun, "dry-run", false, "Show what would be deleted without actually deleting")
	flag.Parse()

	if config.SpannerDB == "" {
		log.Fatal("Error: -database flag is required")
	}

	ctx := context.Background()

	if err := cleanup(ctx, config); err != nil {
		log.Fatalf("Cleanup failed: %v", err)
	}

	log.Println("Cleanup completed successfully")
}

func cleanup(ctx context.Context, config Config) error {
	client, err := spanner.NewClient(ctx, config.SpannerDB)
	if err != nil {
		return fmt.Errorf("failed to create Spanner client: %w", err)
	}
	defer client.Close()

	now := time.Now().UTC()
	completedCutoff := now.AddDate(0, 0, -config.CompletedRetentionDays)
	failedCutoff := now.AddDate(0, 0, -config.FailedRetentionDays)

	log.Printf("Starting retention cleanup...")
	log.Printf("  Completed events cutoff: %s (retention: %d days)", completedCutoff.Format(time.RFC3339), config.CompletedRetentionDays)
	log.Printf("  Failed events cutoff: %s (retention: %d days)", failedCutoff.Format(time.RFC3339), config.FailedRetentionDays)
	log.Printf("  Dry run: %v", config.DryRun)

	if err := cleanupOutbox(ctx, client, completedCutoff, failedCutoff, config.DryRun); err != nil {
		return err
	}

	if config.HistoryRetentionDays > 0 {
		historyCutoff := now.AddDate(0, 0, -config.HistoryRetentionDays)
		log.Printf("  Price history cutoff: %s (retention: %d days)", historyCutoff.Format(time.RFC3339), config.HistoryRetentionDays)
		if err := cleanupHistory(ctx, client, historyCutoff, config.DryRun); err != nil {
			return err
		}
	}

	return nil
}

func cleanupOutbox(ctx context.Context, client *spanner.Client, completedCutoff, failedCutoff time.Time, dryRun bool) error {
	where := `(status = 'completed' AND processed_at < @completedCutoff)
	   OR (status = 'failed' AND processed_at < @failedCutoff)`
	params := map[string]interface{}{
		"completedCutoff": completedCutoff,
		"failedCutoff":    failedCutoff,
	}

	if dryRun {
		count, err := countRows(ctx, client, "outbox_events", where, params)
		if err != nil {
			return err
		}
		log.Printf("DRY RUN: would delete %d outbox events", count)
		return nil
	}

	return deleteRows(ctx, client, "outbox_events", where, params)
}

func cleanupHistory(ctx context.Context, client *spanner.Client, cutoff time.Time, dryRun bool) error {
	where := `changed_at < @cutoff`
	params := map[string]interface{}{"cutoff": cutoff}

	if dryRun {
		count, err := countRows(ctx, client, "price_history", where, params)
		if err != nil {
			return err
		}
		log.Printf("DRY RUN: would delete %d price history rows", count)
		return nil
	}

	return deleteRows(ctx, client, "price_history", where, params)
}

func countRows(ctx context.Context, client *spanner.Client, table, where string, params map[string]interface{}) (int64, error) {
	stmt := spanner.Statement{
		SQL:    fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", table, where),
		Params: params,
	}

	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", table, err)
	}

	var count int64
	if err := row.Columns(&count); err != nil {
		return 0, fmt.Errorf("failed to parse count: %w", err)
	}

	return count, nil
}

func deleteRows(ctx context.Context, client *spanner.Client, table, where string, params map[string]interface{}) error {
	stmt := spanner.Statement{
		SQL:    fmt.Sprintf("DELETE FROM %s WHERE %s", table, where),
		Params: params,
	}

	_, err := client.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		rowCount, err := txn.Update(ctx, stmt)
		if err != nil {
			return fmt.Errorf("failed to delete from %s: %w", table, err)
		}

		log.Printf("Deleted %d rows from %s", rowCount, table)
		return nil
	})
	if err != nil {
		return fmt.Errorf("cleanup transaction failed: %w", err)
	}

	return nil
}
