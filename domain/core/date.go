package core

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used throughout stored records.
const DateLayout = "2006-01-02"

// ParseDate parses a stored calendar date. Callers that aggregate over
// records must treat a parse failure as an explicit skip branch, never a
// reason to abort the whole computation.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}
	return t, nil
}

// FormatDate renders a time as a stored calendar date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysBetween returns the whole days from a to b, truncating both to
// midnight UTC first so partial days never count.
func DaysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}
