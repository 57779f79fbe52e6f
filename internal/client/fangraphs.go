package client

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"mlbstats/ingestion/internal/normalize"
)

// LeaderboardQuery selects the slice of the fangraphs batting leaderboard to
// fetch. A zero PlayerID fetches all qualifying players.
type LeaderboardQuery struct {
	PlayerID    int
	StartSeason int
	EndSeason   int
	League      string
	Qual        int
	Ind         int
}

// statTypeCodes is the full custom-report column selection: the dashboard
// column plus every numbered stat the leaderboard exports.
var statTypeCodes = buildStatTypeCodes()

func buildStatTypeCodes() string {
	parts := []string{"c"}
	for i := 3; i <= 286; i++ {
		parts = append(parts, strconv.Itoa(i))
	}
	parts = append(parts, "-1")
	return strings.Join(parts, ",")
}

// percentColumns are the leaderboard columns published as percentage strings.
// They are rescaled to fractions so the table carries plain ratios.
var percentColumns = []string{
	"Zone% (pi)", "Contact% (pi)", "Z-Contact% (pi)", "O-Contact% (pi)",
	"Swing% (pi)", "Z-Swing% (pi)", "O-Swing% (pi)", "XX% (pi)", "SL% (pi)",
	"SI% (pi)", "SB% (pi)", "KN% (pi)", "FS% (pi)", "FC% (pi)", "FA% (pi)",
	"CU% (pi)", "CS% (pi)", "CH% (pi)",
	"TTO%", "Hard%", "Med%", "Soft%", "Oppo%", "Cent%", "Pull%",
	"Zone% (pfx)", "Contact% (pfx)", "Z-Contact% (pfx)", "O-Contact% (pfx)",
	"Swing% (pfx)", "Z-Swing% (pfx)", "O-Swing% (pfx)", "UN% (pfx)",
	"KN% (pfx)", "SC% (pfx)", "CH% (pfx)", "EP% (pfx)", "KC% (pfx)",
	"CU% (pfx)", "SL% (pfx)", "SI% (pfx)", "FO% (pfx)", "FS% (pfx)",
	"FC% (pfx)", "FT% (pfx)", "FA% (pfx)",
	"SwStr%", "F-Strike%", "Zone%", "Contact%", "Z-Contact%", "O-Contact%",
	"Swing%", "Z-Swing%", "O-Swing%", "PO%", "XX%", "KN%", "SF%", "CH%",
	"CB%", "CT%", "SL%", "FB%", "BUH%", "IFH%", "HR/FB", "IFFB%",
	"FB% (Pitch)", "GB%", "LD%", "GB/FB", "K%", "BB%",
}

// textColumns stay strings; everything else must parse as a number
var textColumns = map[string]bool{
	"Name": true, "Team": true, "Age Rng": true, "Dol": true,
}

// FetchLeaderboard fetches and normalizes a batting leaderboard slice. Rows
// come back sorted by WAR then OPS, descending, with percentage columns
// rescaled to fractions and empty cells carried as nil.
func (c *Client) FetchLeaderboard(ctx context.Context, q LeaderboardQuery) (*normalize.Table, error) {
	url := fmt.Sprintf(
		"%s?pos=all&stats=bat&lg=%s&qual=%d&type=%s&season=%d&month=0&season1=%d&ind=%d&team=0&rost=0&age=0&filter=&players=%d",
		c.cfg.FangraphsBaseURL, q.League, q.Qual, statTypeCodes,
		q.EndSeason, q.StartSeason, q.Ind, q.PlayerID,
	)

	body, err := c.get(ctx, "fangraphs", url)
	if err != nil {
		return nil, err
	}

	return parseLeaderboard(body)
}

func parseLeaderboard(body []byte) (*normalize.Table, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: leaderboard html: %v", ErrSchemaMismatch, err)
	}

	table := doc.Find("table.rgMasterTable").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("%w: leaderboard table not found", ErrSchemaMismatch)
	}

	// The first header cell is the rank column and carries no data
	var headings []string
	table.Find("th").Each(func(i int, s *goquery.Selection) {
		if i > 0 {
			headings = append(headings, strings.TrimSpace(s.Text()))
		}
	})
	if len(headings) == 0 {
		return nil, fmt.Errorf("%w: leaderboard has no column headings", ErrSchemaMismatch)
	}

	// The batted-ball FB% and the pitch-type FB% share a heading; the second
	// occurrence is renamed so both survive.
	renameSecondFBPercent(headings)

	out := normalize.NewTable(headings)
	var rowErr error
	table.Find("tbody tr").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		var cells []string
		tr.Find("td").Each(func(i int, td *goquery.Selection) {
			if i > 0 {
				cells = append(cells, strings.TrimSpace(td.Text()))
			}
		})
		if len(cells) != len(headings) {
			rowErr = fmt.Errorf("%w: leaderboard row has %d cells, want %d", ErrSchemaMismatch, len(cells), len(headings))
			return false
		}

		row := make([]any, len(cells))
		for i, cell := range cells {
			if cell == "" {
				continue
			}
			row[i] = cell
		}
		rowErr = out.AppendRow(row)
		return rowErr == nil
	})
	if rowErr != nil {
		return nil, rowErr
	}

	if err := rescalePercentages(out); err != nil {
		return nil, err
	}
	if err := coerceNumeric(out); err != nil {
		return nil, err
	}
	sortLeaderboard(out)
	return out, nil
}

func renameSecondFBPercent(headings []string) {
	seen := false
	for i, h := range headings {
		if h != "FB%" {
			continue
		}
		if seen {
			headings[i] = "FB% (Pitch)"
			return
		}
		seen = true
	}
}

// rescalePercentages strips the percent sign and divides by 100. Columns that
// are entirely empty are left alone; a non-empty cell that does not parse is a
// schema mismatch.
func rescalePercentages(t *normalize.Table) error {
	for _, name := range percentColumns {
		j := t.ColumnIndex(name)
		if j < 0 {
			continue
		}
		for i := range t.Rows {
			cell, ok := t.Rows[i][j].(string)
			if !ok {
				continue
			}
			trimmed := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(cell), "%"))
			f, err := strconv.ParseFloat(trimmed, 64)
			if err != nil {
				return fmt.Errorf("%w: column %q cell %q is not a percentage", ErrSchemaMismatch, name, cell)
			}
			t.Rows[i][j] = f / 100.0
		}
	}
	return nil
}

// coerceNumeric converts every non-text column to float64. Failures are loud:
// a stat column that stops parsing means the leaderboard changed shape.
func coerceNumeric(t *normalize.Table) error {
	for j, name := range t.Columns {
		if textColumns[name] {
			continue
		}
		for i := range t.Rows {
			switch cell := t.Rows[i][j].(type) {
			case nil, float64:
			case string:
				f, err := strconv.ParseFloat(cell, 64)
				if err != nil {
					return fmt.Errorf("%w: column %q cell %q is not numeric", ErrSchemaMismatch, name, cell)
				}
				t.Rows[i][j] = f
			}
		}
	}
	return nil
}

// sortLeaderboard orders rows by WAR then OPS, descending, with nils last
func sortLeaderboard(t *normalize.Table) {
	warIdx := t.ColumnIndex("WAR")
	opsIdx := t.ColumnIndex("OPS")

	cell := func(row []any, idx int) (float64, bool) {
		if idx < 0 || row[idx] == nil {
			return 0, false
		}
		f, ok := row[idx].(float64)
		return f, ok
	}

	sort.SliceStable(t.Rows, func(a, b int) bool {
		aw, aok := cell(t.Rows[a], warIdx)
		bw, bok := cell(t.Rows[b], warIdx)
		if aok != bok {
			return aok
		}
		if aw != bw {
			return aw > bw
		}
		ao, aok := cell(t.Rows[a], opsIdx)
		bo, bok := cell(t.Rows[b], opsIdx)
		if aok != bok {
			return aok
		}
		return ao > bo
	})
}
