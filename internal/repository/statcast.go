package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"mlbstats/ingestion/internal/identity"
	"mlbstats/ingestion/internal/models"
)

// StatcastRepository handles pitch-level statcast database operations
type StatcastRepository struct {
	db *Database
}

// InsertBatch inserts pitch rows, skipping any already present
func (r *StatcastRepository) InsertBatch(ctx context.Context, pitches []*models.StatcastPitch) (int, error) {
	query := insertSQL("statcast_pitches", models.StatcastColumns, "uid")

	rows := make([][]any, len(pitches))
	for i, p := range pitches {
		rows[i] = p.Values()
	}

	inserted, err := r.db.insertBatch(ctx, query, rows)
	if err != nil {
		return inserted, fmt.Errorf("failed to insert statcast pitches: %w", err)
	}

	log.Debug().
		Int("inserted", inserted).
		Int("skipped", len(pitches)-inserted).
		Msg("Statcast pitches inserted")

	return inserted, nil
}

// UIDsBetween snapshots the stored pitch keys for a game-date window. Full
// snapshots are too large to be useful; loads always work a bounded range.
func (r *StatcastRepository) UIDsBetween(ctx context.Context, start, end time.Time) (identity.KeySet, error) {
	return r.db.uidSnapshot(
		ctx,
		"SELECT uid FROM statcast_pitches WHERE game_date >= $1 AND game_date <= $2",
		start, end,
	)
}

// DateRange returns the earliest and latest stored game dates. The ok result
// is false when the table is empty.
func (r *StatcastRepository) DateRange(ctx context.Context) (start, end time.Time, ok bool, err error) {
	var minDate, maxDate *time.Time
	row := r.db.Pool.QueryRow(ctx, "SELECT MIN(game_date), MAX(game_date) FROM statcast_pitches")
	if err := row.Scan(&minDate, &maxDate); err != nil {
		return time.Time{}, time.Time{}, false, fmt.Errorf("failed to read statcast date range: %w", err)
	}
	if minDate == nil || maxDate == nil {
		return time.Time{}, time.Time{}, false, nil
	}
	return *minDate, *maxDate, true, nil
}
