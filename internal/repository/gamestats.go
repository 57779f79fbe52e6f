package repository

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"mlbstats/ingestion/internal/identity"
	"mlbstats/ingestion/internal/models"
)

// GameStatsRepository handles per-player single-game stat database operations
type GameStatsRepository struct {
	db *Database
}

// InsertBatch inserts player game stat rows, skipping any already present
func (r *GameStatsRepository) InsertBatch(ctx context.Context, stats []*models.PlayerGameStats) (int, error) {
	query := insertSQL("player_game_stats", models.PlayerGameStatsColumns, "uid")

	rows := make([][]any, len(stats))
	for i, s := range stats {
		rows[i] = s.Values()
	}

	inserted, err := r.db.insertBatch(ctx, query, rows)
	if err != nil {
		return inserted, fmt.Errorf("failed to insert player game stats: %w", err)
	}

	log.Debug().
		Int("inserted", inserted).
		Int("skipped", len(stats)-inserted).
		Msg("Player game stats inserted")

	return inserted, nil
}

// UIDs snapshots the stored player game stat keys
func (r *GameStatsRepository) UIDs(ctx context.Context) (identity.KeySet, error) {
	return r.db.uidSnapshot(ctx, "SELECT uid FROM player_game_stats")
}
