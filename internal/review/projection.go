package review

import "time"

// Milestone is one projected future review point for display.
type Milestone struct {
	Level    int `json:"level"`
	DaysLeft int `json:"days_left"`
}

// NextReviewPoints projects the note's upcoming reviews, one milestone per
// remaining level. The first entry is the interval already in progress, so
// its DaysLeft is live (and can be negative when overdue); entries after
// that are the full interval lengths for each future level, relative spans
// rather than absolute dates. An item at or past MaxLevel gets an empty
// projection. Pure: identical inputs always produce identical output.
func NextReviewPoints(p Policy, level int, lastReviewedAt *time.Time, createdAt, now time.Time) ([]Milestone, error) {
	if level >= p.MaxLevel() {
		return []Milestone{}, nil
	}

	daysLeft, err := NoteDaysUntilDue(p, level, lastReviewedAt, createdAt, now)
	if err != nil {
		return nil, err
	}
	points := []Milestone{{Level: level + 1, DaysLeft: daysLeft}}

	for l := level + 2; l <= p.MaxLevel(); l++ {
		span, err := p.DaysForLevel(l - 1)
		if err != nil {
			return nil, err
		}
		points = append(points, Milestone{Level: l, DaysLeft: span})
	}
	return points, nil
}
