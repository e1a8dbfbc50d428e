package analytics

import (
	"math"
	"strings"
)

// ParseCount converts a user-supplied filter value into a count.
//
// The parse is deliberately lenient and never fails: surrounding whitespace
// is ignored, an optional leading '+' is accepted, and the leading run of
// ASCII digits is used ("12abc" is 12). Empty, non-numeric, and negative
// input all yield 0. Values that overflow an int are clamped to math.MaxInt.
func ParseCount(s string) int {
	s = strings.TrimSpace(s)
	if s == "" || s[0] == '-' {
		return 0
	}
	s = strings.TrimPrefix(s, "+")

	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		d := int(c - '0')
		if n > (math.MaxInt-d)/10 {
			return math.MaxInt
		}
		n = n*10 + d
	}
	return n
}
