package review

import (
	"reflect"
	"testing"
)

func TestNextReviewPointsFromLevelZero(t *testing.T) {
	p := DefaultNotePolicy()

	points, err := NextReviewPoints(p, 0, nil, daysAgo(0), testNow)
	if err != nil {
		t.Fatalf("NextReviewPoints error: %v", err)
	}
	if len(points) != 10 {
		t.Fatalf("len(points)=%d, want 10", len(points))
	}
	if points[0].Level != 1 || points[0].DaysLeft != 7 {
		t.Fatalf("points[0]=%+v, want {1 7}", points[0])
	}
	if points[9].Level != 10 || points[9].DaysLeft != 180 {
		t.Fatalf("points[9]=%+v, want {10 180}", points[9])
	}
}

func TestNextReviewPointsOverdueFirstEntry(t *testing.T) {
	p := DefaultNotePolicy()

	// Level 0 period is 7 days, created 10 days ago: 3 days overdue.
	points, err := NextReviewPoints(p, 0, nil, daysAgo(10), testNow)
	if err != nil {
		t.Fatalf("NextReviewPoints error: %v", err)
	}
	if points[0].Level != 1 || points[0].DaysLeft != -3 {
		t.Fatalf("points[0]=%+v, want {1 -3}", points[0])
	}
}

func TestNextReviewPointsLaterEntriesAreFullSpans(t *testing.T) {
	p := DefaultNotePolicy()

	// The entries past the first are the full interval for each future
	// level, not adjusted for elapsed time.
	points, err := NextReviewPoints(p, 2, daysAgoPtr(25), daysAgo(100), testNow)
	if err != nil {
		t.Fatalf("NextReviewPoints error: %v", err)
	}

	want := []Milestone{
		{Level: 3, DaysLeft: 5},   // period 30, 25 elapsed
		{Level: 4, DaysLeft: 30},  // full period for level 4 (table entry 3)
		{Level: 5, DaysLeft: 45},
		{Level: 6, DaysLeft: 45},
		{Level: 7, DaysLeft: 60},
		{Level: 8, DaysLeft: 60},
		{Level: 9, DaysLeft: 90},
		{Level: 10, DaysLeft: 180},
	}
	if !reflect.DeepEqual(points, want) {
		t.Fatalf("points=%v, want %v", points, want)
	}
}

func TestNextReviewPointsAtMaxLevel(t *testing.T) {
	p := DefaultNotePolicy()

	points, err := NextReviewPoints(p, 10, daysAgoPtr(1), daysAgo(300), testNow)
	if err != nil {
		t.Fatalf("NextReviewPoints error: %v", err)
	}
	if len(points) != 0 {
		t.Fatalf("len(points)=%d, want 0", len(points))
	}
}

func TestNextReviewPointsIdempotent(t *testing.T) {
	p := DefaultNotePolicy()

	first, err := NextReviewPoints(p, 3, daysAgoPtr(12), daysAgo(90), testNow)
	if err != nil {
		t.Fatalf("NextReviewPoints error: %v", err)
	}
	second, err := NextReviewPoints(p, 3, daysAgoPtr(12), daysAgo(90), testNow)
	if err != nil {
		t.Fatalf("NextReviewPoints error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("projection not idempotent: %v vs %v", first, second)
	}
}
