package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"mlbstats/ingestion/internal/models"
	"mlbstats/ingestion/internal/normalize"
)

// tableSpec describes one table to bootstrap. Column types come from the
// model's field declarations, so the DDL cannot drift from the structs.
type tableSpec struct {
	name       string
	model      any
	columns    []string
	primaryKey string
	serialID   bool
	indexes    []string
}

var tableSpecs = []tableSpec{
	{
		name:     "game_logs",
		model:    models.GameLog{},
		columns:  models.GameLogColumns,
		serialID: true,
		indexes:  []string{"date", "home_team", "visiting_team"},
	},
	{
		name:       "team_lineups",
		model:      models.TeamLineup{},
		columns:    models.TeamLineupColumns,
		primaryKey: "uid",
	},
	{
		name:       "statcast_pitches",
		model:      models.StatcastPitch{},
		columns:    models.StatcastColumns,
		primaryKey: "uid",
		indexes:    []string{"game_date", "pitcher", "batter"},
	},
	{
		name:       "player_game_stats",
		model:      models.PlayerGameStats{},
		columns:    models.PlayerGameStatsColumns,
		primaryKey: "uid",
		indexes:    []string{"game_date", "person_key"},
	},
	{
		name:       "team_rosters",
		model:      models.TeamRoster{},
		columns:    models.TeamRosterColumns,
		primaryKey: "uid",
		indexes:    []string{"team", "year"},
	},
	{
		name:       "teams",
		model:      models.Team{},
		columns:    models.TeamColumns,
		primaryKey: "uid",
	},
	{
		name:       "player_lookup",
		model:      models.PlayerLookup{},
		columns:    models.PlayerLookupColumns,
		primaryKey: "key_mlbam",
		indexes:    []string{"key_retro"},
	},
}

// EnsureSchema creates every table and index the loaders write to. All
// statements are IF NOT EXISTS, so the call is safe on a live database.
func (db *Database) EnsureSchema(ctx context.Context) error {
	for _, spec := range tableSpecs {
		if _, err := db.Pool.Exec(ctx, createTableSQL(spec)); err != nil {
			return fmt.Errorf("failed to create table %s: %w", spec.name, err)
		}
		for _, column := range spec.indexes {
			stmt := fmt.Sprintf(
				"CREATE INDEX IF NOT EXISTS idx_%s_%s ON %s (%s)",
				spec.name, strings.ReplaceAll(column, ".", "_"), spec.name, column,
			)
			if _, err := db.Pool.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("failed to create index on %s.%s: %w", spec.name, column, err)
			}
		}
	}

	log.Info().Int("tables", len(tableSpecs)).Msg("Schema ensured")
	return nil
}

func createTableSQL(spec tableSpec) string {
	schema := normalize.SchemaFor(spec.model)

	var defs []string
	if spec.serialID {
		defs = append(defs, "id BIGSERIAL PRIMARY KEY")
	}
	for _, column := range spec.columns {
		def := fmt.Sprintf("%s %s", column, sqlType(schema[column]))
		if column == spec.primaryKey {
			def += " PRIMARY KEY"
		}
		defs = append(defs, def)
	}

	return fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s (\n\t%s\n)",
		spec.name,
		strings.Join(defs, ",\n\t"),
	)
}

func sqlType(kind normalize.Kind) string {
	switch kind {
	case normalize.KindInt:
		return "BIGINT"
	case normalize.KindFloat:
		return "DOUBLE PRECISION"
	case normalize.KindDate:
		return "DATE"
	default:
		return "TEXT"
	}
}
