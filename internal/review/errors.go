package review

import "errors"

// Sentinel errors for the review package.
// Use errors.Is to check: errors.Is(err, review.ErrInvalidLevel)
var (
	ErrInvalidLevel     = errors.New("review: invalid level")
	ErrInvalidTimestamp = errors.New("review: invalid timestamp")
	ErrInvalidPeriods   = errors.New("review: invalid period table")
)
