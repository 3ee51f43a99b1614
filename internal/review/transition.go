package review

import (
	"fmt"
	"time"
)

// Outcome is the user's verdict on a review.
type Outcome int

const (
	// OutcomeGood advances the item one level (clamped at the policy's
	// MaxLevel). The only outcome notes support.
	OutcomeGood Outcome = iota
	// OutcomeBad resets the item to level 0. Flashcards only; the failed
	// attempt still counts as "just reviewed", so the short level-0
	// interval restarts from now.
	OutcomeBad
)

func (o Outcome) String() string {
	switch o {
	case OutcomeGood:
		return "good"
	case OutcomeBad:
		return "bad"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Transition is the result of applying a review outcome.
type Transition struct {
	Level      int
	ReviewedAt time.Time
}

// Apply runs the level state machine for one review. It does not check
// whether the item was due: admission to the queue is the queue filter's
// job, and the transition is applied unconditionally when invoked. The
// returned level is always within [0, p.MaxLevel()].
func Apply(p Policy, level int, outcome Outcome, now time.Time) (Transition, error) {
	if level < 0 || level > p.MaxLevel() {
		return Transition{}, fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}
	next := 0
	switch outcome {
	case OutcomeGood:
		next = level + 1
		if next > p.MaxLevel() {
			next = p.MaxLevel()
		}
	case OutcomeBad:
		next = 0
	default:
		return Transition{}, fmt.Errorf("review: unknown outcome %d", int(outcome))
	}
	return Transition{Level: next, ReviewedAt: now}, nil
}
