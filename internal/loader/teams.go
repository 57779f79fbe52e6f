package loader

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"mlbstats/ingestion/internal/metrics"
	"mlbstats/ingestion/internal/models"
)

// LoadTeams seeds the static franchise table. The seed ships with the binary;
// no network is involved.
func (l *Loader) LoadTeams(ctx context.Context) error {
	start := time.Now()

	seed := models.FranchiseSeed()

	seen, err := l.store.TeamUIDs(ctx)
	if err != nil {
		return fmt.Errorf("teams: %w", err)
	}

	var staged []*models.Team
	for _, team := range seed {
		if seen.Contains(team.UID) {
			continue
		}
		seen.Add(team.UID)
		staged = append(staged, team)
	}

	inserted, err := l.store.InsertTeams(ctx, staged)
	if err != nil {
		return fmt.Errorf("teams: %w", err)
	}

	metrics.RecordLoad("teams", inserted, len(seed)-inserted, time.Since(start).Seconds())

	log.Info().
		Int("inserted", inserted).
		Dur("elapsed", time.Since(start)).
		Msg("Teams loaded")

	return nil
}
