package review

import "time"

// Note scheduling runs on the table policy. A note that has never been
// reviewed measures its first interval from its creation time, so new notes
// surface after the level-0 period rather than immediately.

// NoteDaysUntilDue returns signed days until the note is due. The pivot is
// lastReviewedAt when present, otherwise createdAt.
func NoteDaysUntilDue(p Policy, level int, lastReviewedAt *time.Time, createdAt, now time.Time) (int, error) {
	since := createdAt
	if lastReviewedAt != nil {
		since = *lastReviewedAt
	}
	return DaysUntilDue(p, level, since, now)
}

// NoteNeedsReview reports whether the note is due today or overdue. Notes
// have no reviewability ceiling: at MaxLevel the table saturates and the
// note keeps coming back on the longest interval.
func NoteNeedsReview(p Policy, level int, lastReviewedAt *time.Time, createdAt, now time.Time) (bool, error) {
	days, err := NoteDaysUntilDue(p, level, lastReviewedAt, createdAt, now)
	if err != nil {
		return false, err
	}
	return days <= 0, nil
}
