package models

import (
	"fmt"
	"strconv"
)

// InningNotPlayed marks an inning the side never batted in, the trailing "x"
// of a line score where the home team skipped the bottom of the last inning.
const InningNotPlayed = -1

// ParseLineScore decodes a retrosheet line score string into per-inning runs.
// Single-digit innings appear as bare digits, innings with ten or more runs
// are wrapped in parentheses, and a skipped half inning is encoded as "x".
//
//	"010000(10)0x" -> [0 1 0 0 0 0 10 0 -1]
func ParseLineScore(encoded string) ([]int, error) {
	var runs []int
	for i := 0; i < len(encoded); i++ {
		c := encoded[i]
		switch {
		case c >= '0' && c <= '9':
			runs = append(runs, int(c-'0'))
		case c == 'x' || c == 'X':
			runs = append(runs, InningNotPlayed)
		case c == '(':
			end := i + 1
			for end < len(encoded) && encoded[end] != ')' {
				end++
			}
			if end == len(encoded) {
				return nil, fmt.Errorf("line score %q: unterminated inning group", encoded)
			}
			n, err := strconv.Atoi(encoded[i+1 : end])
			if err != nil {
				return nil, fmt.Errorf("line score %q: bad inning group %q", encoded, encoded[i+1:end])
			}
			runs = append(runs, n)
			i = end
		default:
			return nil, fmt.Errorf("line score %q: unexpected character %q", encoded, c)
		}
	}
	return runs, nil
}
