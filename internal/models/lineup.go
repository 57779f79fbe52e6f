package models

import (
	"mlbstats/ingestion/internal/identity"
)

// Valid sides of a game
const (
	SideHome     = "Home"
	SideVisiting = "Visiting"
)

// TeamLineup is the starting lineup for one side of one game, derived from a
// GameLog at parse time and never mutated afterwards. The UID guarantees at
// most one lineup row per team per game no matter how many times the game log
// is re-ingested.
type TeamLineup struct {
	UID        string `db:"uid"`
	Team       string `db:"team"`
	Side       string `db:"side"`
	ParkID     string `db:"park_id"`
	StartingP  string `db:"starting_p_id"`
	Batter1ID  string `db:"batter1_id"`
	Batter1Pos int64  `db:"batter1_pos"`
	Batter2ID  string `db:"batter2_id"`
	Batter2Pos int64  `db:"batter2_pos"`
	Batter3ID  string `db:"batter3_id"`
	Batter3Pos int64  `db:"batter3_pos"`
	Batter4ID  string `db:"batter4_id"`
	Batter4Pos int64  `db:"batter4_pos"`
	Batter5ID  string `db:"batter5_id"`
	Batter5Pos int64  `db:"batter5_pos"`
	Batter6ID  string `db:"batter6_id"`
	Batter6Pos int64  `db:"batter6_pos"`
	Batter7ID  string `db:"batter7_id"`
	Batter7Pos int64  `db:"batter7_pos"`
	Batter8ID  string `db:"batter8_id"`
	Batter8Pos int64  `db:"batter8_pos"`
	Batter9ID  string `db:"batter9_id"`
	Batter9Pos int64  `db:"batter9_pos"`
}

// TeamLineupColumns is the insert column list for the team lineup table
var TeamLineupColumns = []string{
	"uid", "team", "side", "park_id", "starting_p_id",
	"batter1_id", "batter1_pos", "batter2_id", "batter2_pos",
	"batter3_id", "batter3_pos", "batter4_id", "batter4_pos",
	"batter5_id", "batter5_pos", "batter6_id", "batter6_pos",
	"batter7_id", "batter7_pos", "batter8_id", "batter8_pos",
	"batter9_id", "batter9_pos",
}

// NewTeamLineup derives the lineup for one side of a game. Each slot is copied
// from the side-specific field of the game log; the two sides never mix.
func NewTeamLineup(g *GameLog, side string) (*TeamLineup, error) {
	lu := &TeamLineup{Side: side, ParkID: g.ParkID}

	switch side {
	case SideHome:
		lu.Team = g.HomeTeam
		lu.StartingP = g.HomeStartingPID
		lu.Batter1ID, lu.Batter1Pos = g.HomeBatter1ID, g.HomeBatter1Pos
		lu.Batter2ID, lu.Batter2Pos = g.HomeBatter2ID, g.HomeBatter2Pos
		lu.Batter3ID, lu.Batter3Pos = g.HomeBatter3ID, g.HomeBatter3Pos
		lu.Batter4ID, lu.Batter4Pos = g.HomeBatter4ID, g.HomeBatter4Pos
		lu.Batter5ID, lu.Batter5Pos = g.HomeBatter5ID, g.HomeBatter5Pos
		lu.Batter6ID, lu.Batter6Pos = g.HomeBatter6ID, g.HomeBatter6Pos
		lu.Batter7ID, lu.Batter7Pos = g.HomeBatter7ID, g.HomeBatter7Pos
		lu.Batter8ID, lu.Batter8Pos = g.HomeBatter8ID, g.HomeBatter8Pos
		lu.Batter9ID, lu.Batter9Pos = g.HomeBatter9ID, g.HomeBatter9Pos
	case SideVisiting:
		lu.Team = g.VisitingTeam
		lu.StartingP = g.VisitingStartingPID
		lu.Batter1ID, lu.Batter1Pos = g.VisitingBatter1ID, g.VisitingBatter1Pos
		lu.Batter2ID, lu.Batter2Pos = g.VisitingBatter2ID, g.VisitingBatter2Pos
		lu.Batter3ID, lu.Batter3Pos = g.VisitingBatter3ID, g.VisitingBatter3Pos
		lu.Batter4ID, lu.Batter4Pos = g.VisitingBatter4ID, g.VisitingBatter4Pos
		lu.Batter5ID, lu.Batter5Pos = g.VisitingBatter5ID, g.VisitingBatter5Pos
		lu.Batter6ID, lu.Batter6Pos = g.VisitingBatter6ID, g.VisitingBatter6Pos
		lu.Batter7ID, lu.Batter7Pos = g.VisitingBatter7ID, g.VisitingBatter7Pos
		lu.Batter8ID, lu.Batter8Pos = g.VisitingBatter8ID, g.VisitingBatter8Pos
		lu.Batter9ID, lu.Batter9Pos = g.VisitingBatter9ID, g.VisitingBatter9Pos
	default:
		return nil, ErrInvalidSide
	}

	lu.UID = identity.Key(g.Date, g.GameSeriesNumber, lu.Team)
	return lu, nil
}

// Values returns the row values aligned with TeamLineupColumns
func (lu *TeamLineup) Values() []any {
	return []any{
		lu.UID, lu.Team, lu.Side, lu.ParkID, lu.StartingP,
		lu.Batter1ID, lu.Batter1Pos, lu.Batter2ID, lu.Batter2Pos,
		lu.Batter3ID, lu.Batter3Pos, lu.Batter4ID, lu.Batter4Pos,
		lu.Batter5ID, lu.Batter5Pos, lu.Batter6ID, lu.Batter6Pos,
		lu.Batter7ID, lu.Batter7Pos, lu.Batter8ID, lu.Batter8Pos,
		lu.Batter9ID, lu.Batter9Pos,
	}
}
