package client

import (
	"context"
	"fmt"

	"mlbstats/ingestion/internal/normalize"
)

// FetchPlayerLookup fetches the complete chadwick player register. The
// register is only published wholesale; there is no per-player endpoint.
func (c *Client) FetchPlayerLookup(ctx context.Context) (*normalize.Table, error) {
	data, err := c.getArchive(ctx, "chadwick_register", c.cfg.LookupTableURL)
	if err != nil {
		return nil, err
	}

	table, err := parseHeaderedCSV(data)
	if err != nil {
		return nil, fmt.Errorf("player register: %w", err)
	}

	return table, nil
}
