package repository

import (
	"context"
	"time"

	"mlbstats/ingestion/internal/identity"
	"mlbstats/ingestion/internal/models"
)

// Thin delegation methods so a Database can be handed to the loader directly

func (db *Database) InsertPlayers(ctx context.Context, players []*models.PlayerLookup) (int, error) {
	return db.Players.InsertBatch(ctx, players)
}

func (db *Database) PlayerKeys(ctx context.Context) (map[int64]struct{}, error) {
	return db.Players.MLBAMKeys(ctx)
}

func (db *Database) InsertStatcast(ctx context.Context, pitches []*models.StatcastPitch) (int, error) {
	return db.Statcast.InsertBatch(ctx, pitches)
}

func (db *Database) StatcastUIDsBetween(ctx context.Context, start, end time.Time) (identity.KeySet, error) {
	return db.Statcast.UIDsBetween(ctx, start, end)
}

func (db *Database) InsertGameLogs(ctx context.Context, logs []*models.GameLog) (int, error) {
	return db.GameLogs.InsertBatch(ctx, logs)
}

func (db *Database) InsertLineups(ctx context.Context, lineups []*models.TeamLineup) (int, error) {
	return db.Lineups.InsertBatch(ctx, lineups)
}

func (db *Database) LineupUIDs(ctx context.Context) (identity.KeySet, error) {
	return db.Lineups.UIDs(ctx)
}

func (db *Database) InsertGameStats(ctx context.Context, stats []*models.PlayerGameStats) (int, error) {
	return db.GameStats.InsertBatch(ctx, stats)
}

func (db *Database) GameStatsUIDs(ctx context.Context) (identity.KeySet, error) {
	return db.GameStats.UIDs(ctx)
}

func (db *Database) InsertRosters(ctx context.Context, rosters []*models.TeamRoster) (int, error) {
	return db.Rosters.InsertBatch(ctx, rosters)
}

func (db *Database) RosterUIDs(ctx context.Context) (identity.KeySet, error) {
	return db.Rosters.UIDs(ctx)
}

func (db *Database) InsertTeams(ctx context.Context, teams []*models.Team) (int, error) {
	return db.Teams.InsertBatch(ctx, teams)
}

func (db *Database) TeamUIDs(ctx context.Context) (identity.KeySet, error) {
	return db.Teams.UIDs(ctx)
}
