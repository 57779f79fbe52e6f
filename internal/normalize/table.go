package normalize

import "fmt"

// Table is the row-oriented shape shared by all source adapters: an ordered
// set of column names plus rows of loosely typed cells. Empty source cells are
// carried as nil, never as a zero value, so that later schema-driven casting
// can distinguish "absent" from "0".
type Table struct {
	Columns []string
	Rows    [][]any
}

// NewTable creates an empty table with the given column order
func NewTable(columns []string) *Table {
	return &Table{Columns: columns}
}

// AppendRow appends a row, enforcing the column contract
func (t *Table) AppendRow(row []any) error {
	if len(row) != len(t.Columns) {
		return fmt.Errorf("row has %d cells, table has %d columns", len(row), len(t.Columns))
	}
	t.Rows = append(t.Rows, row)
	return nil
}

// ColumnIndex returns the index of the named column, or -1 if absent
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Len returns the number of rows
func (t *Table) Len() int {
	return len(t.Rows)
}

// Project returns a new table restricted to the declared columns, in declared
// order. Source columns outside the declaration are dropped; declared columns
// the source lacks are carried as all-nil. Rows share cell values with the
// receiver.
func (t *Table) Project(declared []string) *Table {
	indexes := make([]int, len(declared))
	for i, name := range declared {
		indexes[i] = t.ColumnIndex(name)
	}

	out := NewTable(declared)
	out.Rows = make([][]any, len(t.Rows))
	for i, row := range t.Rows {
		projected := make([]any, len(declared))
		for j, idx := range indexes {
			if idx >= 0 {
				projected[j] = row[idx]
			}
		}
		out.Rows[i] = projected
	}
	return out
}

// RowMap zips row i with the column names. Nil cells are omitted so that
// record constructors only see populated fields.
func (t *Table) RowMap(i int) map[string]any {
	m := make(map[string]any, len(t.Columns))
	for j, c := range t.Columns {
		if t.Rows[i][j] != nil {
			m[c] = t.Rows[i][j]
		}
	}
	return m
}
