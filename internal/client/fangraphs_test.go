package client

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// leaderboardHTML builds a minimal page in the leaderboard's table layout.
// Each row is (rank, cells...); the rank column is discarded by the parser.
func leaderboardHTML(headings []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString(`<html><body><table class="rgMasterTable"><thead><tr><th>#</th>`)
	for _, h := range headings {
		fmt.Fprintf(&b, "<th>%s</th>", h)
	}
	b.WriteString("</tr></thead><tbody>")
	for i, row := range rows {
		fmt.Fprintf(&b, "<tr><td>%d</td>", i+1)
		for _, cell := range row {
			fmt.Fprintf(&b, "<td>%s</td>", cell)
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table></body></html>")
	return b.String()
}

func TestParseLeaderboard(t *testing.T) {
	html := leaderboardHTML(
		[]string{"Name", "Team", "WAR", "OPS", "K%"},
		[][]string{
			{"Mike Trout", "LAA", "8.3", "1.083", "20.2 %"},
			{"Joe Bench", "SLN", "0.1", "0.550", ""},
			{"Big Bat", "NYA", "5.0", "0.980", "45.2%"},
		},
	)

	table, err := parseLeaderboard([]byte(html))
	require.NoError(t, err)
	require.Equal(t, 3, table.Len())

	// Percentage strings are rescaled to fractions
	kIdx := table.ColumnIndex("K%")
	assert.InDelta(t, 0.202, table.Rows[0][kIdx].(float64), 1e-9)
	assert.InDelta(t, 0.452, table.Rows[1][kIdx].(float64), 1e-9)

	// Empty cells stay nil through the percentage and numeric passes
	assert.Nil(t, table.Rows[2][kIdx])

	// Rows are sorted by WAR descending
	nameIdx := table.ColumnIndex("Name")
	assert.Equal(t, "Mike Trout", table.Rows[0][nameIdx])
	assert.Equal(t, "Big Bat", table.Rows[1][nameIdx])
	assert.Equal(t, "Joe Bench", table.Rows[2][nameIdx])

	// Stat columns are floats, text columns strings
	warIdx := table.ColumnIndex("WAR")
	assert.IsType(t, float64(0), table.Rows[0][warIdx])
}

func TestParseLeaderboardRenamesSecondFBPercent(t *testing.T) {
	html := leaderboardHTML(
		[]string{"Name", "Team", "WAR", "OPS", "FB%", "FB%"},
		[][]string{{"Mike Trout", "LAA", "8.3", "1.083", "30.0%", "55.0%"}},
	)

	table, err := parseLeaderboard([]byte(html))
	require.NoError(t, err)

	assert.GreaterOrEqual(t, table.ColumnIndex("FB%"), 0)
	pitchIdx := table.ColumnIndex("FB% (Pitch)")
	require.GreaterOrEqual(t, pitchIdx, 0, "second FB% column must be renamed")
	assert.InDelta(t, 0.55, table.Rows[0][pitchIdx].(float64), 1e-9)
}

func TestParseLeaderboardSortBreaksTiesOnOPS(t *testing.T) {
	html := leaderboardHTML(
		[]string{"Name", "Team", "WAR", "OPS"},
		[][]string{
			{"Lower OPS", "AAA", "3.0", "0.700"},
			{"Higher OPS", "BBB", "3.0", "0.900"},
		},
	)

	table, err := parseLeaderboard([]byte(html))
	require.NoError(t, err)

	nameIdx := table.ColumnIndex("Name")
	assert.Equal(t, "Higher OPS", table.Rows[0][nameIdx])
}

func TestParseLeaderboardMissingTable(t *testing.T) {
	_, err := parseLeaderboard([]byte("<html><body><p>maintenance</p></body></html>"))
	assert.True(t, errors.Is(err, ErrSchemaMismatch))
}

func TestParseLeaderboardBadNumericCell(t *testing.T) {
	html := leaderboardHTML(
		[]string{"Name", "Team", "WAR", "OPS"},
		[][]string{{"Mike Trout", "LAA", "not-a-number", "1.083"}},
	)

	_, err := parseLeaderboard([]byte(html))
	assert.True(t, errors.Is(err, ErrSchemaMismatch))
}
