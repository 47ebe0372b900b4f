// Package calc implements the 1031 exchange calculation engines: boot and
// tax estimation, exchange cost estimation, identification rule validation,
// and deadline/timeline derivation.
//
// Every engine is a pure function over plain structs. Engines never return
// errors: malformed numeric input is coerced to zero at the boundary, and
// "not enough input yet" is a nil result, distinct from a zero-valued one.
package calc

import (
	"strconv"
	"strings"
	"time"
)

// SanitizeAmount converts free-text numeric input to a non-negative amount.
// Every character except digits and the first decimal point is stripped,
// so "$1,234.56" and "1234.56 USD" both yield 1234.56. Anything that still
// fails to parse coerces to zero.
func SanitizeAmount(raw string) float64 {
	var b strings.Builder
	seenPoint := false
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !seenPoint:
			seenPoint = true
			b.WriteRune(r)
		}
	}

	value, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || value < 0 {
		return 0
	}
	return value
}

// ParseClosingDate parses an ISO calendar date (YYYY-MM-DD). The zero time
// is returned on failure, which downstream engines treat as "no input yet".
func ParseClosingDate(raw string) time.Time {
	parsed, err := time.Parse("2006-01-02", strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}
	}
	return parsed
}
