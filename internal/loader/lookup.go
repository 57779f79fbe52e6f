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

// playerLookupSchema drives integer casting for the register columns the
// ingestion keeps. The career season columns arrive empty for players who
// never reached the majors and become 0.
var playerLookupSchema = normalize.SchemaFor(models.PlayerLookup{})

// LoadPlayerLookup ingests the full chadwick register. The register has no
// incremental endpoint, so every load fetches it wholesale and dedups against
// the stored MLBAM keys. Players without an MLBAM id carry the -1 sentinel and
// are dropped: no advanced data can ever join to them.
func (l *Loader) LoadPlayerLookup(ctx context.Context) error {
	start := time.Now()

	table, err := l.src.FetchPlayerLookup(ctx)
	if err != nil {
		return fmt.Errorf("player lookup: %w", err)
	}

	normalize.CleanColumns(table, nil)
	normalize.CastDeclaredInts(table, playerLookupSchema)
	table = table.Project(models.PlayerLookupColumns)

	seen, err := l.store.PlayerKeys(ctx)
	if err != nil {
		return fmt.Errorf("player lookup: %w", err)
	}

	var staged []*models.PlayerLookup
	for i := 0; i < table.Len(); i++ {
		player, err := models.NewPlayerLookup(table.RowMap(i))
		if err != nil {
			return fmt.Errorf("player lookup row %d: %w", i, err)
		}
		if player.KeyMLBAM == -1 {
			continue
		}
		if _, ok := seen[player.KeyMLBAM]; ok {
			continue
		}
		seen[player.KeyMLBAM] = struct{}{}
		staged = append(staged, player)
	}

	inserted, err := l.store.InsertPlayers(ctx, staged)
	if err != nil {
		return fmt.Errorf("player lookup: %w", err)
	}

	metrics.RecordLoad("player_lookup", inserted, table.Len()-inserted, time.Since(start).Seconds())

	log.Info().
		Int("fetched", table.Len()).
		Int("inserted", inserted).
		Dur("elapsed", time.Since(start)).
		Msg("Player lookup loaded")

	return nil
}
