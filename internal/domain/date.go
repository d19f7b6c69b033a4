package domain

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used for every date in a trip.
const DateLayout = "2006-01-02"

// ParseDate parses a "2006-01-02" calendar date into a UTC midnight time.
// The error wraps ErrValidation so callers can surface it as bad input.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, want YYYY-MM-DD", ErrValidation, s)
	}
	return t, nil
}

// FormatDate renders t as a calendar date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// AddDays returns the calendar date n days after date.
func AddDays(date string, n int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, n)), nil
}

// DaysBetween returns the number of whole days from start to end.
// It is negative when end is before start.
func DaysBetween(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}
