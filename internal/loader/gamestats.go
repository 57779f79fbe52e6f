package loader

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"mlbstats/ingestion/internal/client"
	"mlbstats/ingestion/internal/metrics"
	"mlbstats/ingestion/internal/models"
	"mlbstats/ingestion/internal/normalize"
)

var gameStatsSchema = normalize.SchemaFor(models.PlayerGameStats{})

// LoadPlayerGameStats ingests retrosplits per-player single-game stat lines
// for the inclusive season range. Unlike statcast days, seasons are not
// independent: a season missing upstream fails the whole range, because a
// silent gap in a multi-season window poisons anything computed over it.
func (l *Loader) LoadPlayerGameStats(ctx context.Context, startSeason, endSeason int) error {
	start := time.Now()

	seen, err := l.store.GameStatsUIDs(ctx)
	if err != nil {
		return fmt.Errorf("player game stats: %w", err)
	}

	var staged []*models.PlayerGameStats
	totalInserted := 0
	totalFetched := 0

	for season := startSeason; season <= endSeason; season++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		table, err := l.src.FetchDayByDay(ctx, season, client.AggPlaying)
		if err != nil {
			return fmt.Errorf("player game stats %d: %w", season, err)
		}

		normalize.CleanColumns(table, nil)
		normalize.CastDeclaredInts(table, gameStatsSchema)
		table = table.Project(models.PlayerGameStatsColumns[1:])

		totalFetched += table.Len()
		for i := 0; i < table.Len(); i++ {
			stat, err := models.NewPlayerGameStats(table.RowMap(i))
			if err != nil {
				return fmt.Errorf("player game stats %d row %d: %w", season, i, err)
			}
			if seen.Contains(stat.UID) {
				continue
			}
			seen.Add(stat.UID)
			staged = append(staged, stat)
		}

		if l.opts.CommitEachUnit {
			inserted, err := l.store.InsertGameStats(ctx, staged)
			if err != nil {
				return fmt.Errorf("player game stats %d: %w", season, err)
			}
			totalInserted += inserted
			staged = staged[:0]
		}

		log.Debug().
			Int("season", season).
			Int("rows", table.Len()).
			Msg("Retrosplits season processed")
	}

	if len(staged) > 0 {
		inserted, err := l.store.InsertGameStats(ctx, staged)
		if err != nil {
			return fmt.Errorf("player game stats: %w", err)
		}
		totalInserted += inserted
	}

	metrics.RecordLoad("player_game_stats", totalInserted, totalFetched-totalInserted, time.Since(start).Seconds())

	log.Info().
		Int("start_season", startSeason).
		Int("end_season", endSeason).
		Int("fetched", totalFetched).
		Int("inserted", totalInserted).
		Dur("elapsed", time.Since(start)).
		Msg("Player game stats loaded")

	return nil
}
