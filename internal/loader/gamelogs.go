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

var gameLogSchema = normalize.SchemaFor(models.GameLog{})

// GameTypeRegularSeason is the only game-log archive family currently wired
const GameTypeRegularSeason = "rs"

// LoadGameLogs ingests the retrosheet game logs for a season and derives both
// starting lineups from every game. Game type is validated before any network
// traffic; only regular-season archives are wired.
//
// Game log rows themselves are append-only. Idempotency for re-runs comes
// from the lineup keys: a game whose lineups are both present is already
// loaded, and its lineups are not staged again.
func (l *Loader) LoadGameLogs(ctx context.Context, year int, gameType string) error {
	if gameType != GameTypeRegularSeason {
		return fmt.Errorf("game type %q: %w", gameType, models.ErrUnsupportedGameType)
	}

	start := time.Now()

	table, err := l.src.FetchGameLog(ctx, year)
	if err != nil {
		return fmt.Errorf("game logs %d: %w", year, err)
	}

	normalize.CastDeclaredInts(table, gameLogSchema)

	seen, err := l.store.LineupUIDs(ctx)
	if err != nil {
		return fmt.Errorf("game logs %d: %w", year, err)
	}

	var games []*models.GameLog
	var lineups []*models.TeamLineup

	for i := 0; i < table.Len(); i++ {
		game, err := models.NewGameLog(table.RowMap(i))
		if err != nil {
			return fmt.Errorf("game log %d row %d: %w", year, i, err)
		}

		var gameLineups []*models.TeamLineup
		newGame := false
		for _, side := range []string{models.SideHome, models.SideVisiting} {
			lu, err := models.NewTeamLineup(game, side)
			if err != nil {
				return fmt.Errorf("game log %d row %d: %w", year, i, err)
			}
			if !seen.Contains(lu.UID) {
				seen.Add(lu.UID)
				gameLineups = append(gameLineups, lu)
				newGame = true
			}
		}
		if newGame {
			games = append(games, game)
			lineups = append(lineups, gameLineups...)
		}
	}

	insertedGames, err := l.store.InsertGameLogs(ctx, games)
	if err != nil {
		return fmt.Errorf("game logs %d: %w", year, err)
	}
	insertedLineups, err := l.store.InsertLineups(ctx, lineups)
	if err != nil {
		return fmt.Errorf("game logs %d: %w", year, err)
	}

	metrics.RecordLoad("game_logs", insertedGames, table.Len()-insertedGames, time.Since(start).Seconds())
	metrics.RecordLoad("team_lineups", insertedLineups, len(lineups)-insertedLineups, time.Since(start).Seconds())

	log.Info().
		Int("year", year).
		Int("games", table.Len()).
		Int("inserted_games", insertedGames).
		Int("inserted_lineups", insertedLineups).
		Dur("elapsed", time.Since(start)).
		Msg("Game logs loaded")

	return nil
}
