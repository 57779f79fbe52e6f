package client

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"mlbstats/ingestion/internal/normalize"
)

// parseHeaderedCSV reads a CSV payload whose first record is the header row.
// Cells are coerced to native scalars; empty cells are carried as nil.
func parseHeaderedCSV(data []byte) (*normalize.Table, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: missing header row: %v", ErrSchemaMismatch, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	table := normalize.NewTable(header)
	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
		}
		if len(record) != len(header) {
			return nil, fmt.Errorf("%w: record has %d cells, header has %d", ErrSchemaMismatch, len(record), len(header))
		}

		row := make([]any, len(record))
		for i, cell := range record {
			trimmed := strings.TrimSpace(cell)
			if trimmed == "" || trimmed == "null" {
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
