package review

import (
	"errors"
	"testing"
)

func TestApplyGood(t *testing.T) {
	p := DefaultNotePolicy()

	cases := []struct {
		name  string
		level int
		want  int
	}{
		{name: "from_zero", level: 0, want: 1},
		{name: "mid_table", level: 4, want: 5},
		{name: "one_below_max", level: 9, want: 10},
		{name: "at_max_stays_at_max", level: 10, want: 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr, err := Apply(p, tc.level, OutcomeGood, testNow)
			if err != nil {
				t.Fatalf("Apply error: %v", err)
			}
			if tr.Level != tc.want {
				t.Fatalf("Apply(good, %d).Level=%d, want %d", tc.level, tr.Level, tc.want)
			}
			if !tr.ReviewedAt.Equal(testNow) {
				t.Fatalf("ReviewedAt=%v, want %v", tr.ReviewedAt, testNow)
			}
		})
	}
}

func TestApplyBadAlwaysResets(t *testing.T) {
	p := NewGeometricPolicy()

	for _, level := range []int{0, 1, 7, 14, 15} {
		tr, err := Apply(p, level, OutcomeBad, testNow)
		if err != nil {
			t.Fatalf("Apply(bad, %d) error: %v", level, err)
		}
		if tr.Level != 0 {
			t.Fatalf("Apply(bad, %d).Level=%d, want 0", level, tr.Level)
		}
		if !tr.ReviewedAt.Equal(testNow) {
			t.Fatalf("Apply(bad, %d).ReviewedAt=%v, want %v", level, tr.ReviewedAt, testNow)
		}
	}
}

func TestApplyInvalidLevel(t *testing.T) {
	p := DefaultNotePolicy()
	for _, level := range []int{-1, 11} {
		if _, err := Apply(p, level, OutcomeGood, testNow); !errors.Is(err, ErrInvalidLevel) {
			t.Fatalf("Apply(good, %d) err = %v, want ErrInvalidLevel", level, err)
		}
	}
}

func TestApplyIgnoresDueness(t *testing.T) {
	// The state machine applies the transition even for items that are not
	// yet due; admission is the queue filter's concern.
	p := DefaultNotePolicy()
	tr, err := Apply(p, 3, OutcomeGood, testNow)
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if tr.Level != 4 {
		t.Fatalf("Level=%d, want 4", tr.Level)
	}
}

func TestReviewGoodThenNotImmediatelyDue(t *testing.T) {
	// A note reviewed just now must not come back on the same day: every
	// table interval is positive.
	p := DefaultNotePolicy()
	for level := 0; level < p.MaxLevel(); level++ {
		tr, err := Apply(p, level, OutcomeGood, testNow)
		if err != nil {
			t.Fatalf("Apply error: %v", err)
		}
		due, err := NoteNeedsReview(p, tr.Level, &tr.ReviewedAt, daysAgo(400), testNow)
		if err != nil {
			t.Fatalf("NoteNeedsReview error: %v", err)
		}
		if due {
			t.Fatalf("note at level %d due immediately after review", tr.Level)
		}
	}
}

func TestReviewBadCardDueAgainImmediately(t *testing.T) {
	// The geometric level-0 interval is 0 days, so a failed card comes
	// straight back into the queue.
	p := NewGeometricPolicy()
	tr, err := Apply(p, 9, OutcomeBad, testNow)
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	ok, err := CardIsReviewable(p, tr.Level, &tr.ReviewedAt, testNow)
	if err != nil {
		t.Fatalf("CardIsReviewable error: %v", err)
	}
	if !ok {
		t.Fatal("reset card should be immediately reviewable")
	}
}

func TestReviewGoodCardNotImmediatelyDue(t *testing.T) {
	// From level 0 upward the next interval is at least one day.
	p := NewGeometricPolicy()
	for level := 0; level < p.MaxLevel()-1; level++ {
		tr, err := Apply(p, level, OutcomeGood, testNow)
		if err != nil {
			t.Fatalf("Apply error: %v", err)
		}
		ok, err := CardIsReviewable(p, tr.Level, &tr.ReviewedAt, testNow)
		if err != nil {
			t.Fatalf("CardIsReviewable error: %v", err)
		}
		if ok {
			t.Fatalf("card at level %d reviewable immediately after good review", tr.Level)
		}
	}
}
