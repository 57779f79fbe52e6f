package loader

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mlbstats/ingestion/internal/identity"
	"mlbstats/ingestion/internal/models"
	"mlbstats/ingestion/internal/normalize"
)

// fakeSource serves canned tables and records what was fetched
type fakeSource struct {
	lookup      *normalize.Table
	statcast    map[string]*normalize.Table
	statcastErr map[string]error
	gameLogs    map[int]*normalize.Table
	dayByDay    map[int]*normalize.Table
	rosters     map[int]*normalize.Table

	fetchCalls int
}

func (f *fakeSource) FetchPlayerLookup(ctx context.Context) (*normalize.Table, error) {
	f.fetchCalls++
	return f.lookup, nil
}

func (f *fakeSource) FetchStatcastDay(ctx context.Context, day time.Time) (*normalize.Table, error) {
	f.fetchCalls++
	key := day.Format("2006-01-02")
	if err, ok := f.statcastErr[key]; ok {
		return nil, err
	}
	if t, ok := f.statcast[key]; ok {
		return t, nil
	}
	return normalize.NewTable([]string{"pitch_type"}), nil
}

func (f *fakeSource) FetchGameLog(ctx context.Context, year int) (*normalize.Table, error) {
	f.fetchCalls++
	if t, ok := f.gameLogs[year]; ok {
		return t, nil
	}
	return nil, errors.New("no such season")
}

func (f *fakeSource) FetchDayByDay(ctx context.Context, season int, aggType string) (*normalize.Table, error) {
	f.fetchCalls++
	if t, ok := f.dayByDay[season]; ok {
		return t, nil
	}
	return nil, errors.New("no such season")
}

func (f *fakeSource) FetchRosters(ctx context.Context, year int) (*normalize.Table, error) {
	f.fetchCalls++
	if t, ok := f.rosters[year]; ok {
		return t, nil
	}
	return nil, errors.New("no such season")
}

// fakeStore keeps everything in maps keyed the same way storage would be
type fakeStore struct {
	players   map[int64]*models.PlayerLookup
	statcast  map[string]*models.StatcastPitch
	gameLogs  []*models.GameLog
	lineups   map[string]*models.TeamLineup
	gameStats map[string]*models.PlayerGameStats
	rosters   map[string]*models.TeamRoster
	teams     map[string]*models.Team

	insertCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		players:   map[int64]*models.PlayerLookup{},
		statcast:  map[string]*models.StatcastPitch{},
		lineups:   map[string]*models.TeamLineup{},
		gameStats: map[string]*models.PlayerGameStats{},
		rosters:   map[string]*models.TeamRoster{},
		teams:     map[string]*models.Team{},
	}
}

func (s *fakeStore) InsertPlayers(ctx context.Context, players []*models.PlayerLookup) (int, error) {
	s.insertCalls++
	n := 0
	for _, p := range players {
		if _, ok := s.players[p.KeyMLBAM]; !ok {
			s.players[p.KeyMLBAM] = p
			n++
		}
	}
	return n, nil
}

func (s *fakeStore) PlayerKeys(ctx context.Context) (map[int64]struct{}, error) {
	keys := make(map[int64]struct{}, len(s.players))
	for k := range s.players {
		keys[k] = struct{}{}
	}
	return keys, nil
}

func (s *fakeStore) InsertStatcast(ctx context.Context, pitches []*models.StatcastPitch) (int, error) {
	s.insertCalls++
	n := 0
	for _, p := range pitches {
		if _, ok := s.statcast[p.UID]; !ok {
			s.statcast[p.UID] = p
			n++
		}
	}
	return n, nil
}

func (s *fakeStore) StatcastUIDsBetween(ctx context.Context, start, end time.Time) (identity.KeySet, error) {
	keys := identity.KeySet{}
	for uid, p := range s.statcast {
		if !p.GameDate.Before(start) && !p.GameDate.After(end) {
			keys.Add(uid)
		}
	}
	return keys, nil
}

func (s *fakeStore) InsertGameLogs(ctx context.Context, logs []*models.GameLog) (int, error) {
	s.insertCalls++
	s.gameLogs = append(s.gameLogs, logs...)
	return len(logs), nil
}

func (s *fakeStore) InsertLineups(ctx context.Context, lineups []*models.TeamLineup) (int, error) {
	s.insertCalls++
	n := 0
	for _, lu := range lineups {
		if _, ok := s.lineups[lu.UID]; !ok {
			s.lineups[lu.UID] = lu
			n++
		}
	}
	return n, nil
}

func (s *fakeStore) LineupUIDs(ctx context.Context) (identity.KeySet, error) {
	keys := identity.KeySet{}
	for uid := range s.lineups {
		keys.Add(uid)
	}
	return keys, nil
}

func (s *fakeStore) InsertGameStats(ctx context.Context, stats []*models.PlayerGameStats) (int, error) {
	s.insertCalls++
	n := 0
	for _, st := range stats {
		if _, ok := s.gameStats[st.UID]; !ok {
			s.gameStats[st.UID] = st
			n++
		}
	}
	return n, nil
}

func (s *fakeStore) GameStatsUIDs(ctx context.Context) (identity.KeySet, error) {
	keys := identity.KeySet{}
	for uid := range s.gameStats {
		keys.Add(uid)
	}
	return keys, nil
}

func (s *fakeStore) InsertRosters(ctx context.Context, rosters []*models.TeamRoster) (int, error) {
	s.insertCalls++
	n := 0
	for _, r := range rosters {
		if _, ok := s.rosters[r.UID]; !ok {
			s.rosters[r.UID] = r
			n++
		}
	}
	return n, nil
}

func (s *fakeStore) RosterUIDs(ctx context.Context) (identity.KeySet, error) {
	keys := identity.KeySet{}
	for uid := range s.rosters {
		keys.Add(uid)
	}
	return keys, nil
}

func (s *fakeStore) InsertTeams(ctx context.Context, teams []*models.Team) (int, error) {
	s.insertCalls++
	n := 0
	for _, team := range teams {
		if _, ok := s.teams[team.UID]; !ok {
			s.teams[team.UID] = team
			n++
		}
	}
	return n, nil
}

func (s *fakeStore) TeamUIDs(ctx context.Context) (identity.KeySet, error) {
	keys := identity.KeySet{}
	for uid := range s.teams {
		keys.Add(uid)
	}
	return keys, nil
}

// statcastDay builds a one-pitch table in raw source shape, before column
// cleaning. The game pk keeps each day's pitch distinct.
func statcastDay(t *testing.T, day string, gamePK int64) *normalize.Table {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", day)
	require.NoError(t, err)

	table := normalize.NewTable([]string{
		"pitch_type", "game_date", "release_speed", "game_pk",
		"pitcher", "at_bat_number", "pitch_number", "type",
	})
	require.NoError(t, table.AppendRow([]any{
		"FF", parsed, 92.5, gamePK,
		int64(425844), int64(1), int64(1), "S",
	}))
	return table
}

func TestLoadStatcastSkipsFailedDays(t *testing.T) {
	src := &fakeSource{
		statcast:    map[string]*normalize.Table{},
		statcastErr: map[string]error{"2019-06-03": errors.New("boom")},
	}
	for i, day := range []string{"2019-06-01", "2019-06-02", "2019-06-04", "2019-06-05"} {
		src.statcast[day] = statcastDay(t, day, int64(565932+i))
	}

	store := newFakeStore()
	l := New(src, store, Options{CommitEachUnit: true})

	start := time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2019, 6, 5, 0, 0, 0, 0, time.UTC)

	err := l.LoadStatcast(context.Background(), start, end)
	require.NoError(t, err, "one bad day must not fail the window")
	assert.Len(t, store.statcast, 4)
	assert.Equal(t, 5, src.fetchCalls, "every day is attempted")
}

func TestLoadStatcastIdempotent(t *testing.T) {
	day := "2019-06-01"
	src := &fakeSource{statcast: map[string]*normalize.Table{day: statcastDay(t, day, 565932)}}
	store := newFakeStore()
	l := New(src, store, Options{CommitEachUnit: true})

	start := time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, l.LoadStatcast(context.Background(), start, start))
	require.Len(t, store.statcast, 1)

	require.NoError(t, l.LoadStatcast(context.Background(), start, start))
	assert.Len(t, store.statcast, 1, "re-running the same window adds nothing")
}

func TestLoadStatcastRenamesTypeColumn(t *testing.T) {
	day := "2019-06-01"
	src := &fakeSource{statcast: map[string]*normalize.Table{day: statcastDay(t, day, 565932)}}
	store := newFakeStore()
	l := New(src, store, Options{CommitEachUnit: true})

	start := time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, l.LoadStatcast(context.Background(), start, start))

	for _, p := range store.statcast {
		assert.Equal(t, "S", p.ResultType)
	}
}

func TestLoadGameLogsRejectsUnsupportedType(t *testing.T) {
	src := &fakeSource{}
	store := newFakeStore()
	l := New(src, store, Options{})

	err := l.LoadGameLogs(context.Background(), 2019, "playoffs")
	assert.ErrorIs(t, err, models.ErrUnsupportedGameType)
	assert.Zero(t, src.fetchCalls, "validation happens before any fetch")
}

// gameLogTable builds a one-game table on the full game log contract
func gameLogTable(t *testing.T, date time.Time, home, visiting string) *normalize.Table {
	t.Helper()
	table := normalize.NewTable(models.GameLogColumns)
	row := make([]any, len(models.GameLogColumns))
	set := func(col string, v any) {
		idx := table.ColumnIndex(col)
		require.GreaterOrEqual(t, idx, 0, col)
		row[idx] = v
	}
	set("date", date)
	set("home_team", home)
	set("visiting_team", visiting)
	set("game_series_number", int64(0))
	set("park_id", "STL10")
	set("home_starting_p_id", "wainwa001")
	set("visiting_starting_p_id", "lestej001")
	require.NoError(t, table.AppendRow(row))
	return table
}

func TestLoadGameLogs(t *testing.T) {
	date := time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC)
	src := &fakeSource{gameLogs: map[int]*normalize.Table{
		2019: gameLogTable(t, date, "SLN", "CHN"),
	}}
	store := newFakeStore()
	l := New(src, store, Options{})

	require.NoError(t, l.LoadGameLogs(context.Background(), 2019, GameTypeRegularSeason))

	require.Len(t, store.gameLogs, 1)
	assert.Len(t, store.lineups, 2, "both sides' lineups are derived")

	sides := map[string]bool{}
	for _, lu := range store.lineups {
		sides[lu.Side] = true
	}
	assert.True(t, sides[models.SideHome])
	assert.True(t, sides[models.SideVisiting])
}

func TestLoadGameLogsIdempotent(t *testing.T) {
	date := time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC)
	src := &fakeSource{gameLogs: map[int]*normalize.Table{
		2019: gameLogTable(t, date, "SLN", "CHN"),
	}}
	store := newFakeStore()
	l := New(src, store, Options{})

	require.NoError(t, l.LoadGameLogs(context.Background(), 2019, GameTypeRegularSeason))
	require.NoError(t, l.LoadGameLogs(context.Background(), 2019, GameTypeRegularSeason))

	assert.Len(t, store.gameLogs, 1, "a game with known lineups is not re-staged")
	assert.Len(t, store.lineups, 2)
}

func TestLoadPlayerLookup(t *testing.T) {
	table := normalize.NewTable([]string{
		"name_last", "name_first", "key_mlbam", "key_retro", "key_bbref",
		"key_fangraphs", "mlb_played_first", "mlb_played_last", "key_uuid",
	})
	require.NoError(t, table.AppendRow([]any{
		"Trout", "Mike", int64(545361), "troum001", "troutmi01",
		int64(10155), int64(2011), int64(2019), "some-uuid",
	}))
	require.NoError(t, table.AppendRow([]any{
		"Obscure", "Amateur", int64(-1), "", "",
		int64(0), nil, nil, "other-uuid",
	}))

	src := &fakeSource{lookup: table}
	store := newFakeStore()
	l := New(src, store, Options{})

	require.NoError(t, l.LoadPlayerLookup(context.Background()))

	require.Len(t, store.players, 1, "the -1 sentinel row is dropped")
	p := store.players[545361]
	require.NotNil(t, p)
	assert.Equal(t, "Trout", p.NameLast)
	assert.Equal(t, int64(2011), p.MLBPlayedFirst)
}

func TestLoadPlayerGameStatsFailsOnMissingSeason(t *testing.T) {
	src := &fakeSource{dayByDay: map[int]*normalize.Table{}}
	store := newFakeStore()
	l := New(src, store, Options{})

	err := l.LoadPlayerGameStats(context.Background(), 2018, 2019)
	assert.Error(t, err, "a missing season fails the whole range")
	assert.Empty(t, store.gameStats)
}

func TestLoadPlayerGameStats(t *testing.T) {
	table := normalize.NewTable([]string{"game.key", "person.key", "game.date", "appear.date", "B_HR"})
	date := time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, table.AppendRow([]any{"SLN201906010", "molly001", date, date, int64(1)}))

	src := &fakeSource{dayByDay: map[int]*normalize.Table{2019: table}}
	store := newFakeStore()
	l := New(src, store, Options{CommitEachUnit: true})

	require.NoError(t, l.LoadPlayerGameStats(context.Background(), 2019, 2019))

	require.Len(t, store.gameStats, 1)
	stat := store.gameStats["SLN201906010_molly001"]
	require.NotNil(t, stat)
	assert.Equal(t, int64(1), stat.BHR)
}

func TestLoadRosters(t *testing.T) {
	table := normalize.NewTable(models.RosterColumns)
	require.NoError(t, table.AppendRow([]any{
		"molly001", "Yadier", "Molina", "R", "R", "SLN", "C", int64(2019),
	}))

	src := &fakeSource{rosters: map[int]*normalize.Table{2019: table}}
	store := newFakeStore()
	l := New(src, store, Options{})

	require.NoError(t, l.LoadRosters(context.Background(), 2019))
	require.Len(t, store.rosters, 1)

	// A second season listing the same player on the same club and year is a
	// no-op
	require.NoError(t, l.LoadRosters(context.Background(), 2019))
	assert.Len(t, store.rosters, 1)
}

func TestLoadTeams(t *testing.T) {
	src := &fakeSource{}
	store := newFakeStore()
	l := New(src, store, Options{})

	require.NoError(t, l.LoadTeams(context.Background()))
	assert.Len(t, store.teams, 30)

	require.NoError(t, l.LoadTeams(context.Background()))
	assert.Len(t, store.teams, 30, "re-seeding adds nothing")
}
