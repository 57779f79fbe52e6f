package client

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"mlbstats/ingestion/internal/models"
	"mlbstats/ingestion/internal/normalize"
)

// FetchGameLog fetches and parses the retrosheet game-log archive for a
// season. The archive holds one headerless CSV whose column order is the
// published game-log contract; the date column is decoded from its YYYYMMDD
// form before the table is returned.
func (c *Client) FetchGameLog(ctx context.Context, year int) (*normalize.Table, error) {
	url := fmt.Sprintf("%s/gamelogs/gl%d.zip", c.cfg.RetrosheetBaseURL, year)

	data, err := c.getArchive(ctx, "retrosheet_gamelog", url)
	if err != nil {
		return nil, err
	}

	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: game log archive for %d: %v", ErrSchemaMismatch, year, err)
	}
	if len(archive.File) == 0 {
		return nil, fmt.Errorf("%w: game log archive for %d is empty", ErrSchemaMismatch, year)
	}

	table, err := readHeaderlessCSV(archive.File[0], models.GameLogColumns)
	if err != nil {
		return nil, fmt.Errorf("game log %d: %w", year, err)
	}

	if err := fixYYYYMMDDColumn(table, "date"); err != nil {
		return nil, fmt.Errorf("game log %d: %w", year, err)
	}

	return table, nil
}

// FetchRosters fetches the retrosheet event archive for a season and parses
// every roster member file in it. Rows are tagged with the season year, which
// the files themselves do not carry.
func (c *Client) FetchRosters(ctx context.Context, year int) (*normalize.Table, error) {
	url := fmt.Sprintf("%s/events/%deve.zip", c.cfg.RetrosheetBaseURL, year)

	data, err := c.getArchive(ctx, "retrosheet_rosters", url)
	if err != nil {
		return nil, err
	}

	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: event archive for %d: %v", ErrSchemaMismatch, year, err)
	}

	out := normalize.NewTable(models.RosterColumns)
	found := false
	for _, f := range archive.File {
		if !strings.HasSuffix(f.Name, "ROS") {
			continue
		}
		found = true

		fileCols := models.RosterColumns[:len(models.RosterColumns)-1]
		table, err := readHeaderlessCSV(f, fileCols)
		if err != nil {
			return nil, fmt.Errorf("roster file %s: %w", f.Name, err)
		}
		for i := range table.Rows {
			row := append(table.Rows[i], int64(year))
			if err := out.AppendRow(row); err != nil {
				return nil, err
			}
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: event archive for %d has no roster files", ErrSchemaMismatch, year)
	}

	return out, nil
}

// readHeaderlessCSV reads one archive member onto the given column contract.
// A record with the wrong cell count is a schema mismatch, not a skip.
func readHeaderlessCSV(f *zip.File, columns []string) (*normalize.Table, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open archive member %s: %w", f.Name, err)
	}
	defer rc.Close()

	reader := csv.NewReader(rc)
	reader.FieldsPerRecord = -1

	table := normalize.NewTable(columns)
	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
		}
		if len(record) != len(columns) {
			return nil, fmt.Errorf("%w: record has %d cells, want %d", ErrSchemaMismatch, len(record), len(columns))
		}

		row := make([]any, len(record))
		for i, cell := range record {
			trimmed := strings.TrimSpace(cell)
			if trimmed == "" {
				continue
			}
			row[i] = normalize.NativeScalar(trimmed)
		}
		if err := table.AppendRow(row); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// fixYYYYMMDDColumn decodes a compact date column in place
func fixYYYYMMDDColumn(t *normalize.Table, column string) error {
	j := t.ColumnIndex(column)
	if j < 0 {
		return fmt.Errorf("%w: no %s column", ErrSchemaMismatch, column)
	}

	for i := range t.Rows {
		cell := t.Rows[i][j]
		if cell == nil {
			continue
		}

		var s string
		switch v := cell.(type) {
		case int64:
			s = fmt.Sprintf("%08d", v)
		case string:
			s = v
		case time.Time:
			continue
		default:
			return fmt.Errorf("%w: %v", ErrMalformedDate, cell)
		}

		parsed, err := time.Parse("20060102", s)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrMalformedDate, s)
		}
		t.Rows[i][j] = parsed
	}
	return nil
}
