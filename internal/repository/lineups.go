package repository

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"mlbstats/ingestion/internal/identity"
	"mlbstats/ingestion/internal/models"
)

// LineupRepository handles team lineup database operations
type LineupRepository struct {
	db *Database
}

// InsertBatch inserts lineup rows, skipping any already present
func (r *LineupRepository) InsertBatch(ctx context.Context, lineups []*models.TeamLineup) (int, error) {
	query := insertSQL("team_lineups", models.TeamLineupColumns, "uid")

	rows := make([][]any, len(lineups))
	for i, lu := range lineups {
		rows[i] = lu.Values()
	}

	inserted, err := r.db.insertBatch(ctx, query, rows)
	if err != nil {
		return inserted, fmt.Errorf("failed to insert lineups: %w", err)
	}

	log.Debug().
		Int("inserted", inserted).
		Int("skipped", len(lineups)-inserted).
		Msg("Lineups inserted")

	return inserted, nil
}

// UIDs snapshots the stored lineup keys
func (r *LineupRepository) UIDs(ctx context.Context) (identity.KeySet, error) {
	return r.db.uidSnapshot(ctx, "SELECT uid FROM team_lineups")
}
