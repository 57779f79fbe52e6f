package models

import (
	"strconv"
	"strings"
	"time"
)

// Forgiving cell-to-field conversions used by the record constructors. The
// adapters hand constructors already-normalized scalars, but source rows mix
// types freely (a numeric id column may arrive as int64, float64, or string),
// so every destination field converts rather than type-asserts.

func asString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case time.Time:
		return val.Format("2006-01-02")
	default:
		return strings.TrimSpace(strconvQuoteFallback(v))
	}
}

func strconvQuoteFallback(v any) string {
	type stringer interface{ String() string }
	if s, ok := v.(stringer); ok {
		return s.String()
	}
	return ""
}

func asInt(v any) int64 {
	switch val := v.(type) {
	case int64:
		return val
	case int:
		return int64(val)
	case float64:
		return int64(val)
	case string:
		if n, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(val), 64); err == nil {
			return int64(f)
		}
	}
	return 0
}

func asFloat(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int64:
		return float64(val)
	case int:
		return float64(val)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(val), 64); err == nil {
			return f
		}
	}
	return 0
}

func asDate(v any) time.Time {
	switch val := v.(type) {
	case time.Time:
		return val
	case string:
		if t, err := time.Parse("2006-01-02", strings.TrimSpace(val)); err == nil {
			return t
		}
	}
	return time.Time{}
}
