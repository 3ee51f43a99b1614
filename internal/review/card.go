package review

import "time"

// Flashcard scheduling runs on the geometric policy. Unlike notes there is
// no creation-time fallback: a card that has never been reviewed is due
// immediately, by convention with days-until-due of exactly 0.

// CardDaysUntilDue returns signed days until the flashcard is due.
func CardDaysUntilDue(p Policy, level int, reviewedAt *time.Time, now time.Time) (int, error) {
	if reviewedAt == nil {
		return 0, nil
	}
	return DaysUntilDue(p, level, *reviewedAt, now)
}

// CardIsReviewable reports whether the flashcard belongs in the review
// queue: below the ceiling and due today or overdue. Cards at or above
// MaxLevel never come back.
func CardIsReviewable(p Policy, level int, reviewedAt *time.Time, now time.Time) (bool, error) {
	if level >= p.MaxLevel() {
		return false, nil
	}
	days, err := CardDaysUntilDue(p, level, reviewedAt, now)
	if err != nil {
		return false, err
	}
	return days <= 0, nil
}

// DaysTillReviewAfterCurrent returns the full length of the interval that
// will follow the card's next successful review: the wait between level+1
// and level+2. Shown in the UI next to the current countdown.
func DaysTillReviewAfterCurrent(p Policy, level int) (int, error) {
	if level < 0 {
		return 0, ErrInvalidLevel
	}
	return p.DaysForLevel(level + 2)
}
