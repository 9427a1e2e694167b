package utils

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates (ISO 8601 date).
const DateLayout = "2006-01-02"

// ParseDate parses an ISO date string into a UTC midnight time.Time.
func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return date, nil
}

// FormatDate renders a date as ISO 8601.
func FormatDate(date time.Time) string {
	return date.Format(DateLayout)
}

// Today returns the current calendar date at UTC midnight.
func Today() time.Time {
	year, month, day := time.Now().UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
