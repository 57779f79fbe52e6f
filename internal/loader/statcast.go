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

var statcastSchema = normalize.SchemaFor(models.StatcastPitch{})

// statcastRenames maps source column names that collide with reserved or
// ambiguous identifiers
var statcastRenames = map[string]string{"type": "result_type"}

// LoadStatcast ingests pitch-level data one day at a time over the inclusive
// date range. A day that fails to fetch or parse is logged and skipped; days
// are independent and a lost day never blocks the rest of the window. The
// dedup snapshot covers only the requested window, so long histories do not
// pin the full key set in memory.
func (l *Loader) LoadStatcast(ctx context.Context, start, end time.Time) error {
	loadStart := time.Now()

	seen, err := l.store.StatcastUIDsBetween(ctx, start, end)
	if err != nil {
		return fmt.Errorf("statcast: %w", err)
	}

	var staged []*models.StatcastPitch
	totalInserted := 0
	totalFetched := 0

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if err := ctx.Err(); err != nil {
			return err
		}

		table, err := l.src.FetchStatcastDay(ctx, day)
		if err != nil {
			log.Warn().
				Err(err).
				Str("day", day.Format("2006-01-02")).
				Msg("Skipping statcast day after fetch failure")
			metrics.RecordDaySkipped()
			continue
		}

		normalize.CleanColumns(table, statcastRenames)
		normalize.CastDeclaredInts(table, statcastSchema)
		table = table.Project(models.StatcastColumns[1:])

		totalFetched += table.Len()
		for i := 0; i < table.Len(); i++ {
			pitch, err := models.NewStatcastPitch(table.RowMap(i))
			if err != nil {
				return fmt.Errorf("statcast %s row %d: %w", day.Format("2006-01-02"), i, err)
			}
			if seen.Contains(pitch.UID) {
				continue
			}
			seen.Add(pitch.UID)
			staged = append(staged, pitch)
		}

		if l.opts.CommitEachUnit {
			inserted, err := l.store.InsertStatcast(ctx, staged)
			if err != nil {
				return fmt.Errorf("statcast %s: %w", day.Format("2006-01-02"), err)
			}
			totalInserted += inserted
			staged = staged[:0]
		}

		log.Debug().
			Str("day", day.Format("2006-01-02")).
			Int("rows", table.Len()).
			Msg("Statcast day processed")
	}

	if len(staged) > 0 {
		inserted, err := l.store.InsertStatcast(ctx, staged)
		if err != nil {
			return fmt.Errorf("statcast: %w", err)
		}
		totalInserted += inserted
	}

	metrics.RecordLoad("statcast_pitches", totalInserted, totalFetched-totalInserted, time.Since(loadStart).Seconds())

	log.Info().
		Str("start", start.Format("2006-01-02")).
		Str("end", end.Format("2006-01-02")).
		Int("fetched", totalFetched).
		Int("inserted", totalInserted).
		Dur("elapsed", time.Since(loadStart)).
		Msg("Statcast loaded")

	return nil
}
