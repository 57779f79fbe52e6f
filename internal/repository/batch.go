package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"mlbstats/ingestion/internal/identity"
)

// insertBatch pipelines one INSERT per row and returns how many actually
// landed. With a DO NOTHING conflict clause the difference between queued and
// inserted is the number of rows storage already had.
func (db *Database) insertBatch(ctx context.Context, query string, rows [][]any) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, row := range rows {
		batch.Queue(query, row...)
	}

	results := db.Pool.SendBatch(ctx, batch)
	defer results.Close()

	inserted := 0
	for range rows {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("batch insert failed: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}

// uidSnapshot runs a single-column key query and collects the result set
func (db *Database) uidSnapshot(ctx context.Context, query string, args ...any) (identity.KeySet, error) {
	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot keys: %w", err)
	}
	defer rows.Close()

	keys := identity.KeySet{}
	for rows.Next() {
		var uid string
		if err := rows.Scan(&uid); err != nil {
			return nil, fmt.Errorf("failed to scan key: %w", err)
		}
		keys.Add(uid)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("key snapshot failed: %w", err)
	}
	return keys, nil
}
