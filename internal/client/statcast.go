package client

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"mlbstats/ingestion/internal/normalize"
)

// FetchStatcastDay fetches every pitch tracked on a single day. The search
// endpoint degrades badly on multi-day windows, so callers walk a date range
// one day at a time.
//
// Off days and the off season return an empty table, not an error.
func (c *Client) FetchStatcastDay(ctx context.Context, day time.Time) (*normalize.Table, error) {
	date := day.Format("2006-01-02")

	params := url.Values{}
	params.Set("all", "true")
	params.Set("type", "details")
	params.Set("player_type", "pitcher")
	params.Set("game_date_gt", date)
	params.Set("game_date_lt", date)

	data, err := c.get(ctx, "statcast", c.cfg.StatcastBaseURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	table, err := parseHeaderedCSV(data)
	if err != nil {
		return nil, fmt.Errorf("statcast %s: %w", date, err)
	}

	return table, nil
}
