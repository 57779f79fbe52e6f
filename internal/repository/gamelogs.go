package repository

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"mlbstats/ingestion/internal/models"
)

// GameLogRepository handles game log database operations
type GameLogRepository struct {
	db *Database
}

// InsertBatch inserts game log rows. The table is append-only with a serial
// key; per-game dedup lives in the lineup table, which is derived from the
// same rows.
func (r *GameLogRepository) InsertBatch(ctx context.Context, logs []*models.GameLog) (int, error) {
	query := insertSQL("game_logs", models.GameLogColumns, "")

	rows := make([][]any, len(logs))
	for i, g := range logs {
		rows[i] = g.Values()
	}

	inserted, err := r.db.insertBatch(ctx, query, rows)
	if err != nil {
		return inserted, fmt.Errorf("failed to insert game logs: %w", err)
	}

	log.Debug().
		Int("inserted", inserted).
		Msg("Game logs inserted")

	return inserted, nil
}

// Count returns the number of stored game log rows
func (r *GameLogRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM game_logs").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count game logs: %w", err)
	}
	return n, nil
}
