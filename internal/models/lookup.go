package models

import "fmt"

// PlayerLookupColumns is the subset of the chadwick register columns the
// ingestion keeps, in insert order. key_mlbam is the natural key; rows where
// the register has no MLBAM id carry the -1 sentinel and are dropped before
// load.
var PlayerLookupColumns = []string{
	"name_last", "name_first", "key_mlbam", "key_retro", "key_bbref",
	"key_fangraphs", "mlb_played_first", "mlb_played_last",
}

// PlayerLookup maps one player across the id schemes of the upstream sources
type PlayerLookup struct {
	NameLast       string `db:"name_last"`
	NameFirst      string `db:"name_first"`
	KeyMLBAM       int64  `db:"key_mlbam"`
	KeyRetro       string `db:"key_retro"`
	KeyBBRef       string `db:"key_bbref"`
	KeyFangraphs   int64  `db:"key_fangraphs"`
	MLBPlayedFirst int64  `db:"mlb_played_first"`
	MLBPlayedLast  int64  `db:"mlb_played_last"`
}

// NewPlayerLookup builds a lookup entry from a normalized row keyed by
// PlayerLookupColumns names. Unknown keys are rejected; register columns the
// ingestion does not keep must be projected away by the caller.
func NewPlayerLookup(fields map[string]any) (*PlayerLookup, error) {
	p := &PlayerLookup{}
	for name, value := range fields {
		switch name {
		case "name_last":
			p.NameLast = asString(value)
		case "name_first":
			p.NameFirst = asString(value)
		case "key_mlbam":
			p.KeyMLBAM = asInt(value)
		case "key_retro":
			p.KeyRetro = asString(value)
		case "key_bbref":
			p.KeyBBRef = asString(value)
		case "key_fangraphs":
			p.KeyFangraphs = asInt(value)
		case "mlb_played_first":
			p.MLBPlayedFirst = asInt(value)
		case "mlb_played_last":
			p.MLBPlayedLast = asInt(value)
		default:
			return nil, fmt.Errorf("player lookup: unknown column %q", name)
		}
	}
	return p, nil
}

// Values returns the row values aligned with PlayerLookupColumns
func (p *PlayerLookup) Values() []any {
	return []any{
		p.NameLast, p.NameFirst, p.KeyMLBAM, p.KeyRetro, p.KeyBBRef,
		p.KeyFangraphs, p.MLBPlayedFirst, p.MLBPlayedLast,
	}
}
