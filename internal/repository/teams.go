package repository

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"mlbstats/ingestion/internal/identity"
	"mlbstats/ingestion/internal/models"
)

// TeamRepository handles franchise database operations
type TeamRepository struct {
	db *Database
}

// InsertBatch inserts franchise rows, skipping any already present
func (r *TeamRepository) InsertBatch(ctx context.Context, teams []*models.Team) (int, error) {
	query := insertSQL("teams", models.TeamColumns, "uid")

	rows := make([][]any, len(teams))
	for i, t := range teams {
		rows[i] = t.Values()
	}

	inserted, err := r.db.insertBatch(ctx, query, rows)
	if err != nil {
		return inserted, fmt.Errorf("failed to insert teams: %w", err)
	}

	log.Debug().
		Int("inserted", inserted).
		Int("skipped", len(teams)-inserted).
		Msg("Teams inserted")

	return inserted, nil
}

// UIDs snapshots the stored franchise keys
func (r *TeamRepository) UIDs(ctx context.Context) (identity.KeySet, error) {
	return r.db.uidSnapshot(ctx, "SELECT uid FROM teams")
}

// GetByRSAbbrev looks a franchise up by its retrosheet abbreviation
func (r *TeamRepository) GetByRSAbbrev(ctx context.Context, abbrev string) (*models.Team, error) {
	query := `
		SELECT uid, name, league, division, rs_abbrev, mlbam_abbrev
		FROM teams
		WHERE rs_abbrev = $1
	`

	var t models.Team
	err := r.db.Pool.QueryRow(ctx, query, abbrev).Scan(
		&t.UID, &t.Name, &t.League, &t.Division, &t.RSAbbrev, &t.MLBAMAbbrev,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get team %s: %w", abbrev, err)
	}
	return &t, nil
}
