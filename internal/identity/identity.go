// Package identity computes the deterministic content keys used to dedup rows
// across repeated or overlapping ingestion runs.
package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Key returns the stable content key for the given fields: each field is
// rendered to a deterministic string form, concatenated in argument order with
// literal periods removed, and digested. Period stripping keeps variants like
// "St. Louis" and "St Louis" from diverging into distinct keys.
//
// The rendering uses no locale-sensitive formatting, so keys are reproducible
// across runs and platforms.
func Key(fields ...any) string {
	var b strings.Builder
	for _, f := range fields {
		b.WriteString(render(f))
	}

	raw := strings.ReplaceAll(b.String(), ".", "")
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

func render(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case time.Time:
		return val.Format("2006-01-02")
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return fmt.Sprint(v)
	}
}

// KeySet is a one-time snapshot of the keys already present in storage for a
// scope. Absence is a valid, expected state; lookups never fail.
type KeySet map[string]struct{}

// Contains reports whether the key is in the snapshot
func (s KeySet) Contains(key string) bool {
	_, ok := s[key]
	return ok
}

// Add records a key, so rows staged within one load call also dedup against
// each other
func (s KeySet) Add(key string) {
	s[key] = struct{}{}
}
