package loader

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"mlbstats/ingestion/internal/metrics"
	"mlbstats/ingestion/internal/models"
	"mlbstats/ingestion/internal/normalize"
)

var rosterSchema = normalize.SchemaFor(models.TeamRoster{})

// LoadRosters ingests every club's roster for a season
func (l *Loader) LoadRosters(ctx context.Context, year int) error {
	start := time.Now()

	table, err := l.src.FetchRosters(ctx, year)
	if err != nil {
		return fmt.Errorf("rosters %d: %w", year, err)
	}

	normalize.CastDeclaredInts(table, rosterSchema)

	seen, err := l.store.RosterUIDs(ctx)
	if err != nil {
		return fmt.Errorf("rosters %d: %w", year, err)
	}

	var staged []*models.TeamRoster
	for i := 0; i < table.Len(); i++ {
		entry, err := models.NewTeamRoster(table.RowMap(i))
		if err != nil {
			return fmt.Errorf("rosters %d row %d: %w", year, i, err)
		}
		if seen.Contains(entry.UID) {
			continue
		}
		seen.Add(entry.UID)
		staged = append(staged, entry)
	}

	inserted, err := l.store.InsertRosters(ctx, staged)
	if err != nil {
		return fmt.Errorf("rosters %d: %w", year, err)
	}

	metrics.RecordLoad("team_rosters", inserted, table.Len()-inserted, time.Since(start).Seconds())

	log.Info().
		Int("year", year).
		Int("fetched", table.Len()).
		Int("inserted", inserted).
		Dur("elapsed", time.Since(start)).
		Msg("Rosters loaded")

	return nil
}
