package review

import (
	"fmt"
	"time"
)

// DueState is the derived due status of an item. It is computed per request
// and never persisted.
type DueState struct {
	DaysUntilDue int  `json:"days_until_due"`
	Due          bool `json:"due"`
}

// DaysBetween returns the whole calendar-day difference from one instant to
// another: the number of midnights crossed, with each instant read in its
// own location. 23 hours within the same calendar day is 0 days; one minute
// across midnight is 1. This single convention is used for both policies.
func DaysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f) / (24 * time.Hour))
}

// DaysUntilDue returns the signed number of days until the item is due:
// negative means overdue, zero means due today. since is the pivot the
// current interval runs from (the last review, or a caller-chosen fallback).
//
// A zero pivot or a pivot after now is a data error and returns
// ErrInvalidTimestamp rather than a silently wrong count.
func DaysUntilDue(p Policy, level int, since, now time.Time) (int, error) {
	if since.IsZero() {
		return 0, fmt.Errorf("%w: zero pivot", ErrInvalidTimestamp)
	}
	elapsed := DaysBetween(since, now)
	if elapsed < 0 {
		return 0, fmt.Errorf("%w: pivot %s is after %s", ErrInvalidTimestamp,
			since.Format(time.RFC3339), now.Format(time.RFC3339))
	}
	period, err := p.IntervalAtLevel(level)
	if err != nil {
		return 0, err
	}
	return period - elapsed, nil
}

// DueStateOf wraps DaysUntilDue into a DueState.
func DueStateOf(p Policy, level int, since, now time.Time) (DueState, error) {
	days, err := DaysUntilDue(p, level, since, now)
	if err != nil {
		return DueState{}, err
	}
	return DueState{DaysUntilDue: days, Due: days <= 0}, nil
}
