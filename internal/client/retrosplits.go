package client

import (
	"context"
	"fmt"
	"time"

	"mlbstats/ingestion/internal/normalize"
)

// Day-by-day aggregation levels published by the retrosplits project
const (
	AggPlaying = "playing"
	AggTeam    = "team"
)

// FetchDayByDay fetches one season of retrosplits day-by-day data at the
// given aggregation level. The game.date and appear.date columns are decoded
// from their hyphenated form; a season missing upstream fails the call rather
// than being skipped.
func (c *Client) FetchDayByDay(ctx context.Context, season int, aggType string) (*normalize.Table, error) {
	if aggType != AggPlaying && aggType != AggTeam {
		return nil, fmt.Errorf("unrecognized aggregation type %q", aggType)
	}

	url := fmt.Sprintf("%s/daybyday/%s-%d.csv", c.cfg.RetrosplitsBaseURL, aggType, season)

	data, err := c.getArchive(ctx, "retrosplits", url)
	if err != nil {
		return nil, err
	}

	table, err := parseHeaderedCSV(data)
	if err != nil {
		return nil, fmt.Errorf("retrosplits %s %d: %w", aggType, season, err)
	}

	for _, col := range []string{"game.date", "appear.date"} {
		if err := fixHyphenatedDateColumn(table, col); err != nil {
			return nil, fmt.Errorf("retrosplits %s %d: %w", aggType, season, err)
		}
	}

	return table, nil
}

// fixHyphenatedDateColumn decodes a YYYY-MM-DD column in place
func fixHyphenatedDateColumn(t *normalize.Table, column string) error {
	j := t.ColumnIndex(column)
	if j < 0 {
		return fmt.Errorf("%w: no %s column", ErrSchemaMismatch, column)
	}

	for i := range t.Rows {
		cell := t.Rows[i][j]
		if cell == nil {
			continue
		}

		switch v := cell.(type) {
		case time.Time:
		case string:
			parsed, err := time.Parse("2006-01-02", v)
			if err != nil {
				return fmt.Errorf("%w: %q", ErrMalformedDate, v)
			}
			t.Rows[i][j] = parsed
		default:
			return fmt.Errorf("%w: %v", ErrMalformedDate, cell)
		}
	}
	return nil
}
