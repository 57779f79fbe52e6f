package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	"mlbstats/ingestion/internal/models"
)

// PlayerLookupRepository handles player id mapping database operations
type PlayerLookupRepository struct {
	db *Database
}

// InsertBatch inserts lookup rows, skipping players already present. The
// natural key is the MLBAM id.
func (r *PlayerLookupRepository) InsertBatch(ctx context.Context, players []*models.PlayerLookup) (int, error) {
	query := insertSQL("player_lookup", models.PlayerLookupColumns, "key_mlbam")

	rows := make([][]any, len(players))
	for i, p := range players {
		rows[i] = p.Values()
	}

	inserted, err := r.db.insertBatch(ctx, query, rows)
	if err != nil {
		return inserted, fmt.Errorf("failed to insert player lookup: %w", err)
	}

	log.Debug().
		Int("inserted", inserted).
		Int("skipped", len(players)-inserted).
		Msg("Player lookup inserted")

	return inserted, nil
}

// MLBAMKeys snapshots the stored MLBAM ids
func (r *PlayerLookupRepository) MLBAMKeys(ctx context.Context) (map[int64]struct{}, error) {
	rows, err := r.db.Pool.Query(ctx, "SELECT key_mlbam FROM player_lookup")
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot player keys: %w", err)
	}
	defer rows.Close()

	keys := make(map[int64]struct{})
	for rows.Next() {
		var key int64
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan player key: %w", err)
		}
		keys[key] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("player key snapshot failed: %w", err)
	}
	return keys, nil
}

// GetByRetroID looks a player up by retrosheet id
func (r *PlayerLookupRepository) GetByRetroID(ctx context.Context, retroID string) (*models.PlayerLookup, error) {
	query := `
		SELECT name_last, name_first, key_mlbam, key_retro, key_bbref,
		       key_fangraphs, mlb_played_first, mlb_played_last
		FROM player_lookup
		WHERE key_retro = $1
	`

	var p models.PlayerLookup
	err := r.db.Pool.QueryRow(ctx, query, retroID).Scan(
		&p.NameLast, &p.NameFirst, &p.KeyMLBAM, &p.KeyRetro, &p.KeyBBRef,
		&p.KeyFangraphs, &p.MLBPlayedFirst, &p.MLBPlayedLast,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player %s: %w", retroID, err)
	}
	return &p, nil
}
