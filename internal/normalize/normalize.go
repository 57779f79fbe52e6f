// Package normalize holds the pure transformation utilities shared by the
// source adapters: column-name cleaning, scalar coercion, and schema-driven
// integer casting.
package normalize

import (
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Kind classifies a schema field for casting purposes
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindDate
)

// defaultRules is applied by CleanColumnName when no rule set is given.
// Periods in source column names ("game.date") are invalid in storage
// identifiers.
var defaultRules = map[string]string{".": "_"}

// CleanColumnName cleans a source column name for storage compatibility.
// Whole-word replacements are applied first (exact match only), then the
// substring substitution rules. Non-string input is returned unchanged rather
// than treated as an error.
func CleanColumnName(name any, rules map[string]string, replace map[string]string) any {
	s, ok := name.(string)
	if !ok {
		return name
	}

	for key, value := range replace {
		if s == key {
			s = value
		}
	}

	if rules == nil {
		rules = defaultRules
	}

	// Map iteration order is randomized; sort keys so substitution order is
	// deterministic.
	keys := make([]string, 0, len(rules))
	for k := range rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		s = strings.ReplaceAll(s, k, rules[k])
	}

	return s
}

// CleanColumns rewrites every column name of the table in place: whole-word
// replacements, the default substitution rules, then lowercasing. After this
// the column names match the db-tag naming of the record structs.
func CleanColumns(t *Table, replace map[string]string) {
	for i, col := range t.Columns {
		cleaned, _ := CleanColumnName(col, nil, replace).(string)
		t.Columns[i] = strings.ToLower(cleaned)
	}
}

// dateLayouts accepted by NativeScalar, most specific first
var dateLayouts = []string{"2006-01-02", "2006-01-02 15:04:05", time.RFC3339}

// NativeScalar coerces a raw cell to a native scalar. It tries, in order:
// a numeric value, a calendar date, and finally the string form. It is total:
// any input produces some scalar.
func NativeScalar(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case int:
		return int64(val)
	case int32:
		return int64(val)
	case int64, float64:
		return val
	case float32:
		return float64(val)
	case time.Time:
		return val.Truncate(24 * time.Hour)
	case string:
		trimmed := strings.TrimSpace(val)
		if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return f
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, trimmed); err == nil {
				return t
			}
		}
		return val
	default:
		return reflect.ValueOf(v).String()
	}
}

// CastDeclaredInts coerces every table column whose schema field is declared
// integer-typed to int64. Unparseable or absent cells become 0. Columns with
// no matching schema field are left untouched. The schema is keyed by cleaned
// column names.
func CastDeclaredInts(t *Table, schema map[string]Kind) {
	for j, col := range t.Columns {
		cleaned, _ := CleanColumnName(col, nil, nil).(string)
		kind, ok := schema[strings.ToLower(cleaned)]
		if !ok || kind != KindInt {
			continue
		}
		for i := range t.Rows {
			t.Rows[i][j] = toInt64(t.Rows[i][j])
		}
	}
}

// toInt64 is the deliberately lossy integer coercion used at append time:
// anything that does not parse becomes 0, not null.
func toInt64(v any) int64 {
	switch val := v.(type) {
	case nil:
		return 0
	case int64:
		return val
	case int:
		return int64(val)
	case float64:
		return int64(val)
	case string:
		trimmed := strings.TrimSpace(val)
		if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return int64(f)
		}
		return 0
	default:
		return 0
	}
}

// SchemaFor derives a field-name -> Kind map from a model struct's db tags.
// int-kinded fields are int64, floats float64, dates time.Time; everything
// else is treated as a string field.
func SchemaFor(model any) map[string]Kind {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	schema := make(map[string]Kind, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}

		switch field.Type.Kind() {
		case reflect.Int, reflect.Int32, reflect.Int64:
			schema[tag] = KindInt
		case reflect.Float32, reflect.Float64:
			schema[tag] = KindFloat
		default:
			if field.Type == reflect.TypeOf(time.Time{}) {
				schema[tag] = KindDate
			} else {
				schema[tag] = KindString
			}
		}
	}
	return schema
}
