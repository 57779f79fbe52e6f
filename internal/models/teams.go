package models

import (
	"mlbstats/ingestion/internal/identity"
)

// Team is one major-league franchise with the abbreviations used to join
// across sources. Retrosheet and the MLB advanced media feeds disagree on
// abbreviations for about a third of the clubs, so both are carried.
type Team struct {
	UID         string `db:"uid"`
	Name        string `db:"name"`
	League      string `db:"league"`
	Division    string `db:"division"`
	RSAbbrev    string `db:"rs_abbrev"`
	MLBAMAbbrev string `db:"mlbam_abbrev"`
}

// TeamColumns is the insert column list for the teams table
var TeamColumns = []string{"uid", "name", "league", "division", "rs_abbrev", "mlbam_abbrev"}

// NewTeam keys a franchise row on name and league
func NewTeam(name, league, division, rsAbbrev, mlbamAbbrev string) *Team {
	return &Team{
		UID:         identity.Key(name, league),
		Name:        name,
		League:      league,
		Division:    division,
		RSAbbrev:    rsAbbrev,
		MLBAMAbbrev: mlbamAbbrev,
	}
}

// Values returns the row values aligned with TeamColumns
func (t *Team) Values() []any {
	return []any{t.UID, t.Name, t.League, t.Division, t.RSAbbrev, t.MLBAMAbbrev}
}

// FranchiseSeed returns the static table of the thirty current franchises.
// There is no authoritative machine-readable source that carries both
// abbreviation schemes, so the mapping is maintained here.
func FranchiseSeed() []*Team {
	return []*Team{
		NewTeam("Arizona Diamondbacks", "NL", "NLW", "ARI", "ARI"),
		NewTeam("Atlanta Braves", "NL", "NLE", "ATL", "ATL"),
		NewTeam("Baltimore Orioles", "AL", "ALE", "BAL", "BAL"),
		NewTeam("Boston Red Sox", "AL", "ALE", "BOS", "BOS"),
		NewTeam("Chicago Cubs", "NL", "NLC", "CHN", "CHC"),
		NewTeam("Chicago White Sox", "AL", "ALC", "CHA", "CWS"),
		NewTeam("Cincinnati Reds", "NL", "NLC", "CIN", "CIN"),
		NewTeam("Cleveland Indians", "AL", "ALC", "CLE", "CLE"),
		NewTeam("Colorado Rockies", "NL", "NLW", "COL", "COL"),
		NewTeam("Detroit Tigers", "AL", "ALC", "DET", "DET"),
		NewTeam("Houston Astros", "AL", "ALW", "HOU", "HOU"),
		NewTeam("Kansas City Royals", "AL", "ALC", "KCA", "KC"),
		NewTeam("Los Angeles Angels", "AL", "ALW", "ANA", "LAA"),
		NewTeam("Los Angeles Dodgers", "NL", "NLW", "LAN", "LAD"),
		NewTeam("Miami Marlins", "NL", "NLE", "MIA", "MIA"),
		NewTeam("Milwaukee Brewers", "NL", "NLC", "MIL", "MIL"),
		NewTeam("Minnesota Twins", "AL", "ALC", "MIN", "MIN"),
		NewTeam("New York Mets", "NL", "NLE", "NYN", "NYM"),
		NewTeam("New York Yankees", "AL", "ALE", "NYA", "NYY"),
		NewTeam("Oakland Athletics", "AL", "ALW", "OAK", "OAK"),
		NewTeam("Philadelphia Phillies", "NL", "NLE", "PHI", "PHI"),
		NewTeam("Pittsburgh Pirates", "NL", "NLC", "PIT", "PIT"),
		NewTeam("San Diego Padres", "NL", "NLW", "SDN", "SD"),
		NewTeam("San Francisco Giants", "NL", "NLW", "SFN", "SF"),
		NewTeam("Seattle Mariners", "AL", "ALW", "SEA", "SEA"),
		NewTeam("St. Louis Cardinals", "NL", "NLC", "SLN", "STL"),
		NewTeam("Tampa Bay Rays", "AL", "ALE", "TBA", "TB"),
		NewTeam("Texas Rangers", "AL", "ALW", "TEX", "TEX"),
		NewTeam("Toronto Blue Jays", "AL", "ALE", "TOR", "TOR"),
		NewTeam("Washington Nationals", "NL", "NLE", "WAS", "WSH"),
	}
}
