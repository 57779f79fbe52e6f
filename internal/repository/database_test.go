package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mlbstats/ingestion/internal/models"
)

// Integration tests for database operations. They expect a local postgres
// with the mlbstats_test database created.

func setupTestDB(t *testing.T) (*Database, context.Context) {
	ctx := context.Background()

	cfg := Config{
		Host:     "localhost",
		Port:     "5432",
		Database: "mlbstats_test",
		User:     "mlbstats_user",
		Password: "mlbstats_password",
		SSLMode:  "disable",
	}

	db, err := NewDatabase(ctx, cfg)
	require.NoError(t, err, "Failed to connect to test database")

	require.NoError(t, db.EnsureSchema(ctx), "Failed to ensure schema")

	return db, ctx
}

func teardownTestDB(t *testing.T, db *Database) {
	db.Close()
}

func TestDatabaseConnection(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)

	err := db.Health(ctx)
	assert.NoError(t, err, "Database health check should pass")

	stats := db.PoolStats()
	assert.NotNil(t, stats, "Should return connection pool stats")
	assert.GreaterOrEqual(t, stats["max_conns"].(int32), int32(1), "Should have at least 1 max connection")
}

func TestDatabasePing(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := db.Pool.Ping(ctx)
	assert.NoError(t, err, "Should successfully ping database")
}

func TestEnsureSchemaIdempotent(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)

	// Running schema creation again must be a no-op
	err := db.EnsureSchema(ctx)
	assert.NoError(t, err, "Re-running schema creation should succeed")
}

func TestTeamRepository_InsertBatch(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)

	teams := []*models.Team{
		models.NewTeam("St. Louis Cardinals", "NL", "Central", "SLN", "STL"),
		models.NewTeam("Chicago Cubs", "NL", "Central", "CHN", "CHC"),
	}

	_, err := db.Teams.InsertBatch(ctx, teams)
	require.NoError(t, err, "Should insert teams")

	// The same batch inserts nothing the second time
	inserted, err := db.Teams.InsertBatch(ctx, teams)
	require.NoError(t, err, "Conflicting batch should not error")
	assert.Zero(t, inserted, "Duplicate teams should be skipped")

	retrieved, err := db.Teams.GetByRSAbbrev(ctx, "SLN")
	require.NoError(t, err, "Should retrieve team by retrosheet abbreviation")
	assert.Equal(t, "St. Louis Cardinals", retrieved.Name)
	assert.Equal(t, "STL", retrieved.MLBAMAbbrev)

	uids, err := db.Teams.UIDs(ctx)
	require.NoError(t, err, "Should snapshot team keys")
	assert.True(t, uids.Contains(teams[0].UID))
}

func TestPlayerLookupRepository_InsertBatch(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)

	player, err := models.NewPlayerLookup(map[string]any{
		"name_last":        "Molina",
		"name_first":       "Yadier",
		"key_mlbam":        int64(425877),
		"key_retro":        "molly001",
		"key_bbref":        "molinya01",
		"key_fangraphs":    int64(3044),
		"mlb_played_first": int64(2004),
		"mlb_played_last":  int64(2019),
	})
	require.NoError(t, err)

	_, err = db.Players.InsertBatch(ctx, []*models.PlayerLookup{player})
	require.NoError(t, err, "Should insert player lookup row")

	keys, err := db.Players.MLBAMKeys(ctx)
	require.NoError(t, err, "Should snapshot player keys")
	_, ok := keys[425877]
	assert.True(t, ok, "Inserted key should be in the snapshot")

	retrieved, err := db.Players.GetByRetroID(ctx, "molly001")
	require.NoError(t, err, "Should retrieve player by retrosheet id")
	require.NotNil(t, retrieved)
	assert.Equal(t, "Molina", retrieved.NameLast)

	missing, err := db.Players.GetByRetroID(ctx, "nobody99")
	require.NoError(t, err, "Missing players are not an error")
	assert.Nil(t, missing)
}
