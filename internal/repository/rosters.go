package repository

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"mlbstats/ingestion/internal/identity"
	"mlbstats/ingestion/internal/models"
)

// RosterRepository handles team roster database operations
type RosterRepository struct {
	db *Database
}

// InsertBatch inserts roster rows, skipping any already present
func (r *RosterRepository) InsertBatch(ctx context.Context, rosters []*models.TeamRoster) (int, error) {
	query := insertSQL("team_rosters", models.TeamRosterColumns, "uid")

	rows := make([][]any, len(rosters))
	for i, entry := range rosters {
		rows[i] = entry.Values()
	}

	inserted, err := r.db.insertBatch(ctx, query, rows)
	if err != nil {
		return inserted, fmt.Errorf("failed to insert rosters: %w", err)
	}

	log.Debug().
		Int("inserted", inserted).
		Int("skipped", len(rosters)-inserted).
		Msg("Rosters inserted")

	return inserted, nil
}

// UIDs snapshots the stored roster keys
func (r *RosterRepository) UIDs(ctx context.Context) (identity.KeySet, error) {
	return r.db.uidSnapshot(ctx, "SELECT uid FROM team_rosters")
}
