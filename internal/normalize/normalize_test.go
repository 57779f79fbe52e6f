package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanColumnName(t *testing.T) {
	assert.Equal(t, "game_date", CleanColumnName("game.date", nil, nil))
	assert.Equal(t, "appear_date", CleanColumnName("appear.date", nil, nil))
	assert.Equal(t, "plain", CleanColumnName("plain", nil, nil))

	// Whole-word replacement runs before the substitution rules
	assert.Equal(t, "result_type", CleanColumnName("type", nil, map[string]string{"type": "result_type"}))

	// Replacement is exact match only, not substring
	assert.Equal(t, "pitch_type", CleanColumnName("pitch_type", nil, map[string]string{"type": "result_type"}))

	// Non-string input passes through untouched
	assert.Equal(t, 42, CleanColumnName(42, nil, nil))
}

func TestCleanColumns(t *testing.T) {
	table := NewTable([]string{"game.date", "Type", "B_HR"})
	CleanColumns(table, map[string]string{"Type": "result_type"})
	assert.Equal(t, []string{"game_date", "result_type", "b_hr"}, table.Columns)
}

func TestNativeScalar(t *testing.T) {
	assert.Equal(t, int64(7), NativeScalar("7"))
	assert.Equal(t, 1.5, NativeScalar("1.5"))
	assert.Equal(t, int64(3), NativeScalar(3))
	assert.Equal(t, 2.0, NativeScalar(float32(2.0)))
	assert.Nil(t, NativeScalar(nil))

	parsed := NativeScalar("2019-06-01")
	date, ok := parsed.(time.Time)
	require.True(t, ok, "date strings should parse to time.Time")
	assert.Equal(t, 2019, date.Year())
	assert.Equal(t, time.June, date.Month())

	// Anything unparseable stays a string
	assert.Equal(t, "anaheim", NativeScalar("anaheim"))
}

func TestCastDeclaredInts(t *testing.T) {
	type record struct {
		Count int64  `db:"count"`
		Label string `db:"label"`
	}
	schema := SchemaFor(record{})

	table := NewTable([]string{"count", "label"})
	require.NoError(t, table.AppendRow([]any{"12", "a"}))
	require.NoError(t, table.AppendRow([]any{nil, "b"}))
	require.NoError(t, table.AppendRow([]any{"junk", "c"}))
	require.NoError(t, table.AppendRow([]any{3.9, "d"}))

	CastDeclaredInts(table, schema)

	assert.Equal(t, int64(12), table.Rows[0][0])
	assert.Equal(t, int64(0), table.Rows[1][0], "absent cells become 0")
	assert.Equal(t, int64(0), table.Rows[2][0], "unparseable cells become 0")
	assert.Equal(t, int64(3), table.Rows[3][0])

	// Non-int columns are untouched
	assert.Equal(t, "a", table.Rows[0][1])
}

func TestCastDeclaredIntsMatchesCleanedNames(t *testing.T) {
	type record struct {
		GameNumber int64 `db:"game_number"`
	}
	schema := SchemaFor(record{})

	// Source column still carries its raw period-separated name
	table := NewTable([]string{"game.number"})
	require.NoError(t, table.AppendRow([]any{"2"}))

	CastDeclaredInts(table, schema)
	assert.Equal(t, int64(2), table.Rows[0][0])
}

func TestSchemaFor(t *testing.T) {
	type record struct {
		UID     string    `db:"uid"`
		Runs    int64     `db:"runs"`
		Avg     float64   `db:"avg"`
		Day     time.Time `db:"day"`
		skipped string
	}
	_ = record{}.skipped

	schema := SchemaFor(record{})
	assert.Equal(t, KindString, schema["uid"])
	assert.Equal(t, KindInt, schema["runs"])
	assert.Equal(t, KindFloat, schema["avg"])
	assert.Equal(t, KindDate, schema["day"])
	assert.Len(t, schema, 4, "untagged fields are not part of the schema")
}

func TestTableAppendRow(t *testing.T) {
	table := NewTable([]string{"a", "b"})
	require.NoError(t, table.AppendRow([]any{1, 2}))
	assert.Error(t, table.AppendRow([]any{1}), "short rows are rejected")
	assert.Equal(t, 1, table.Len())
}

func TestTableRowMapOmitsNil(t *testing.T) {
	table := NewTable([]string{"a", "b", "c"})
	require.NoError(t, table.AppendRow([]any{int64(1), nil, "x"}))

	m := table.RowMap(0)
	assert.Equal(t, int64(1), m["a"])
	assert.Equal(t, "x", m["c"])
	_, present := m["b"]
	assert.False(t, present, "nil cells must not appear in the row map")
}

func TestTableProject(t *testing.T) {
	table := NewTable([]string{"keep", "drop", "also_keep"})
	require.NoError(t, table.AppendRow([]any{int64(1), "noise", "x"}))

	projected := table.Project([]string{"keep", "also_keep", "missing"})
	assert.Equal(t, []string{"keep", "also_keep", "missing"}, projected.Columns)
	require.Equal(t, 1, projected.Len())
	assert.Equal(t, int64(1), projected.Rows[0][0])
	assert.Equal(t, "x", projected.Rows[0][1])
	assert.Nil(t, projected.Rows[0][2], "declared columns the source lacks are nil")
}
