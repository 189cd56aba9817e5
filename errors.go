package fsrs

import "errors"

// Sentinel errors for the fsrs package.
// Use errors.Is to check: errors.Is(err, fsrs.ErrInvalidGrade)
var (
	ErrInvalidGrade      = errors.New("fsrs: invalid grade")
	ErrInvalidState      = errors.New("fsrs: invalid state")
	ErrInvalidParameters = errors.New("fsrs: parameters out of bounds")
	ErrInvalidInstant    = errors.New("fsrs: instant is not UTC")
)
