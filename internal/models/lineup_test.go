package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleGameLog() *GameLog {
	g := &GameLog{
		Date:             time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC),
		GameSeriesNumber: 0,
		HomeTeam:         "SLN",
		VisitingTeam:     "CHN",
		ParkID:           "STL10",

		HomeStartingPID:     "wainwa001",
		VisitingStartingPID: "lestej001",
	}

	g.HomeBatter1ID, g.HomeBatter1Pos = "carpm002", 5
	g.HomeBatter2ID, g.HomeBatter2Pos = "goldp001", 3
	g.HomeBatter3ID, g.HomeBatter3Pos = "dejop001", 6
	g.HomeBatter4ID, g.HomeBatter4Pos = "ozunm001", 7
	g.HomeBatter5ID, g.HomeBatter5Pos = "molly001", 2
	g.HomeBatter6ID, g.HomeBatter6Pos = "fowld001", 9
	g.HomeBatter7ID, g.HomeBatter7Pos = "wongk001", 4
	g.HomeBatter8ID, g.HomeBatter8Pos = "baderh001", 8
	g.HomeBatter9ID, g.HomeBatter9Pos = "wainwa001", 1

	g.VisitingBatter1ID, g.VisitingBatter1Pos = "schwk001", 7
	g.VisitingBatter2ID, g.VisitingBatter2Pos = "bryak001", 5
	g.VisitingBatter3ID, g.VisitingBatter3Pos = "rizza001", 3
	g.VisitingBatter4ID, g.VisitingBatter4Pos = "contw001", 2
	g.VisitingBatter5ID, g.VisitingBatter5Pos = "baezj001", 6
	g.VisitingBatter6ID, g.VisitingBatter6Pos = "heywj001", 9
	g.VisitingBatter7ID, g.VisitingBatter7Pos = "almoa001", 8
	g.VisitingBatter8ID, g.VisitingBatter8Pos = "zobrb001", 4
	g.VisitingBatter9ID, g.VisitingBatter9Pos = "lestej001", 1

	return g
}

func TestNewTeamLineupHome(t *testing.T) {
	g := sampleGameLog()

	lu, err := NewTeamLineup(g, SideHome)
	require.NoError(t, err)

	assert.Equal(t, "SLN", lu.Team)
	assert.Equal(t, SideHome, lu.Side)
	assert.Equal(t, "STL10", lu.ParkID)
	assert.Equal(t, "wainwa001", lu.StartingP)

	// Every slot comes from the home side, none from the visitors
	assert.Equal(t, "carpm002", lu.Batter1ID)
	assert.Equal(t, int64(5), lu.Batter1Pos)
	assert.Equal(t, "dejop001", lu.Batter3ID)
	assert.Equal(t, int64(6), lu.Batter3Pos)
	assert.Equal(t, "fowld001", lu.Batter6ID)
	assert.Equal(t, int64(9), lu.Batter6Pos)
	assert.Equal(t, "wainwa001", lu.Batter9ID)
	assert.Equal(t, int64(1), lu.Batter9Pos)
}

func TestNewTeamLineupVisiting(t *testing.T) {
	g := sampleGameLog()

	lu, err := NewTeamLineup(g, SideVisiting)
	require.NoError(t, err)

	assert.Equal(t, "CHN", lu.Team)
	assert.Equal(t, "lestej001", lu.StartingP)
	assert.Equal(t, "schwk001", lu.Batter1ID)
	assert.Equal(t, "rizza001", lu.Batter3ID)
	assert.Equal(t, int64(3), lu.Batter3Pos)
	assert.Equal(t, "heywj001", lu.Batter6ID)
	assert.Equal(t, int64(9), lu.Batter6Pos)
	assert.Equal(t, "lestej001", lu.Batter9ID)
}

func TestNewTeamLineupInvalidSide(t *testing.T) {
	_, err := NewTeamLineup(sampleGameLog(), "Neutral")
	assert.ErrorIs(t, err, ErrInvalidSide)
}

func TestTeamLineupUIDPerTeam(t *testing.T) {
	g := sampleGameLog()

	home, err := NewTeamLineup(g, SideHome)
	require.NoError(t, err)
	visiting, err := NewTeamLineup(g, SideVisiting)
	require.NoError(t, err)

	assert.NotEqual(t, home.UID, visiting.UID, "the two sides of a game must key separately")

	// Re-deriving from the same game reproduces the same keys
	again, err := NewTeamLineup(g, SideHome)
	require.NoError(t, err)
	assert.Equal(t, home.UID, again.UID)
}

func TestTeamLineupValuesAligned(t *testing.T) {
	lu, err := NewTeamLineup(sampleGameLog(), SideHome)
	require.NoError(t, err)
	assert.Len(t, lu.Values(), len(TeamLineupColumns))
}
