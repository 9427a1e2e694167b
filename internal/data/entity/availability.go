package entity

import "time"

// AvailabilityConfig is a single-row table (id is always 1).
// MonthsAhead governs how far in the future guests may book.
type AvailabilityConfig struct {
	ID          int       `db:"id"`
	MonthsAhead int       `db:"months_ahead"`
	UpdatedAt   time.Time `db:"updated_at"`
}
