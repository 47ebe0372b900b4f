package repository

import (
	"fmt"
	"time"

	"github.com/keystone1031/exchange-tools/internal/apperrors"
)

// ParseTime parses a date string in "2006-01-02" or RFC3339 format.
// Seed data uses plain dates for article publication; RFC3339 is accepted
// for values that round-tripped through JSON with a time component.
func ParseTime(str string) (time.Time, error) {
	returnTime, err := time.Parse("2006-01-02", str)
	if err != nil {
		returnTime, err = time.Parse(time.RFC3339, str)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidDate, str)
		}
	}
	return returnTime.UTC(), nil
}
