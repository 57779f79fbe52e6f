package models

import (
	"fmt"

	"mlbstats/ingestion/internal/identity"
)

// RosterColumns is the column contract of a retrosheet roster file, in file
// order, plus the year tag appended by the fetcher. The files themselves are
// headerless.
var RosterColumns = []string{
	"rs_id", "name_first", "name_last", "bats", "throws", "team", "position", "year",
}

// TeamRoster is one player-season entry on a club's roster.
//
// The UID deliberately excludes rs_id and position, so a player listed twice
// for the same club and year collapses to one row even when the positional
// listing differs between file revisions.
type TeamRoster struct {
	UID       string `db:"uid"`
	Team      string `db:"team"`
	Year      int64  `db:"year"`
	RSID      string `db:"rs_id"`
	NameFirst string `db:"name_first"`
	NameLast  string `db:"name_last"`
	Position  string `db:"position"`
	Bats      string `db:"bats"`
	Throws    string `db:"throws"`
}

// TeamRosterColumns is the insert column list for the roster table
var TeamRosterColumns = []string{
	"uid", "team", "year", "rs_id", "name_first", "name_last", "position", "bats", "throws",
}

// NewTeamRoster builds a roster entry from a normalized row keyed by
// RosterColumns names. Unknown keys indicate a wiring bug upstream and are
// rejected.
func NewTeamRoster(fields map[string]any) (*TeamRoster, error) {
	r := &TeamRoster{}
	for name, value := range fields {
		switch name {
		case "rs_id":
			r.RSID = asString(value)
		case "name_last":
			r.NameLast = asString(value)
		case "name_first":
			r.NameFirst = asString(value)
		case "bats":
			r.Bats = asString(value)
		case "throws":
			r.Throws = asString(value)
		case "team":
			r.Team = asString(value)
		case "position":
			r.Position = asString(value)
		case "year":
			r.Year = asInt(value)
		default:
			return nil, fmt.Errorf("team roster: unknown column %q", name)
		}
	}
	r.UID = identity.Key(r.Team, r.Year, r.NameFirst, r.NameLast, r.Bats, r.Throws)
	return r, nil
}

// Values returns the row values aligned with TeamRosterColumns
func (r *TeamRoster) Values() []any {
	return []any{
		r.UID, r.Team, r.Year, r.RSID, r.NameFirst, r.NameLast,
		r.Position, r.Bats, r.Throws,
	}
}
