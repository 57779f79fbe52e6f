// Package loader orchestrates fetch, normalize, and idempotent insert for
// each data source. Every load snapshots the relevant stored keys once, stages
// only rows whose keys are new, and relies on the storage conflict clause as
// the final guard against concurrent writers.
package loader

import (
	"context"
	"time"

	"mlbstats/ingestion/internal/identity"
	"mlbstats/ingestion/internal/models"
	"mlbstats/ingestion/internal/normalize"
)

// Source fetches and parses upstream data
type Source interface {
	FetchPlayerLookup(ctx context.Context) (*normalize.Table, error)
	FetchStatcastDay(ctx context.Context, day time.Time) (*normalize.Table, error)
	FetchGameLog(ctx context.Context, year int) (*normalize.Table, error)
	FetchDayByDay(ctx context.Context, season int, aggType string) (*normalize.Table, error)
	FetchRosters(ctx context.Context, year int) (*normalize.Table, error)
}

// Store persists normalized records and answers key snapshots
type Store interface {
	InsertPlayers(ctx context.Context, players []*models.PlayerLookup) (int, error)
	PlayerKeys(ctx context.Context) (map[int64]struct{}, error)

	InsertStatcast(ctx context.Context, pitches []*models.StatcastPitch) (int, error)
	StatcastUIDsBetween(ctx context.Context, start, end time.Time) (identity.KeySet, error)

	InsertGameLogs(ctx context.Context, logs []*models.GameLog) (int, error)
	InsertLineups(ctx context.Context, lineups []*models.TeamLineup) (int, error)
	LineupUIDs(ctx context.Context) (identity.KeySet, error)

	InsertGameStats(ctx context.Context, stats []*models.PlayerGameStats) (int, error)
	GameStatsUIDs(ctx context.Context) (identity.KeySet, error)

	InsertRosters(ctx context.Context, rosters []*models.TeamRoster) (int, error)
	RosterUIDs(ctx context.Context) (identity.KeySet, error)

	InsertTeams(ctx context.Context, teams []*models.Team) (int, error)
	TeamUIDs(ctx context.Context) (identity.KeySet, error)
}

// Options tunes load behavior
type Options struct {
	// CommitEachUnit flushes staged rows after every unit of work (a day of
	// statcast, a season of splits) instead of once at the end. Multi-season
	// loads stage gigabytes otherwise.
	CommitEachUnit bool
}

// Loader runs the load operations against a source and a store
type Loader struct {
	src   Source
	store Store
	opts  Options
}

// New creates a loader
func New(src Source, store Store, opts Options) *Loader {
	return &Loader{src: src, store: store, opts: opts}
}
