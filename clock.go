package fsrs

import (
	"fmt"
	"time"
)

// The core never reads a clock. It consumes exactly four operations on
// caller-supplied instants — this is the full datetime collaborator
// interface the engine depends on.

// validateUTC returns ErrInvalidInstant if t's location is not UTC.
func validateUTC(t time.Time) error {
	if t.Location() != time.UTC {
		return fmt.Errorf("%w: %v", ErrInvalidInstant, t)
	}
	return nil
}

// addMinutes returns t advanced by d minutes.
func addMinutes(t time.Time, d int) time.Time {
	return t.Add(time.Duration(d) * time.Minute)
}

// addDays returns t advanced by d whole days.
func addDays(t time.Time, d int) time.Time {
	return t.AddDate(0, 0, d)
}

// wholeDays returns the truncated whole-day count between a and b,
// using the absolute difference under UTC (no DST adjustment).
func wholeDays(a, b time.Time) int {
	d := b.Sub(a)
	if d < 0 {
		d = -d
	}
	return int(d.Hours() / 24)
}
