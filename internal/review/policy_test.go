package review

import (
	"errors"
	"testing"
)

func TestTablePolicyDaysForLevel(t *testing.T) {
	p := DefaultNotePolicy()

	cases := []struct {
		name  string
		level int
		want  int
	}{
		{name: "level_0_first_entry", level: 0, want: 7},
		{name: "level_1", level: 1, want: 15},
		{name: "level_2", level: 2, want: 30},
		{name: "level_8", level: 8, want: 90},
		{name: "level_9_last_entry", level: 9, want: 180},
		{name: "level_10_saturates", level: 10, want: 180},
		{name: "level_40_saturates", level: 40, want: 180},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := p.DaysForLevel(tc.level)
			if err != nil {
				t.Fatalf("DaysForLevel(%d) error: %v", tc.level, err)
			}
			if got != tc.want {
				t.Fatalf("DaysForLevel(%d)=%d, want %d", tc.level, got, tc.want)
			}
		})
	}
}

func TestTablePolicyNegativeLevel(t *testing.T) {
	p := DefaultNotePolicy()
	if _, err := p.DaysForLevel(-1); !errors.Is(err, ErrInvalidLevel) {
		t.Fatalf("DaysForLevel(-1) err = %v, want ErrInvalidLevel", err)
	}
}

func TestTablePolicyMaxLevel(t *testing.T) {
	if got := DefaultNotePolicy().MaxLevel(); got != 10 {
		t.Fatalf("MaxLevel()=%d, want 10", got)
	}
}

func TestNewTablePolicyRejectsBadTables(t *testing.T) {
	cases := []struct {
		name    string
		periods []int
	}{
		{name: "empty", periods: nil},
		{name: "negative_entry", periods: []int{7, -1, 30}},
		{name: "decreasing", periods: []int{7, 15, 10}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewTablePolicy(tc.periods); !errors.Is(err, ErrInvalidPeriods) {
				t.Fatalf("NewTablePolicy(%v) err = %v, want ErrInvalidPeriods", tc.periods, err)
			}
		})
	}
}

func TestGeometricPolicyDaysForLevel(t *testing.T) {
	p := NewGeometricPolicy()

	// floor(1.5 * previous) at every step from the 1, 2, 3 base cases.
	cases := []struct {
		nextLevel int
		want      int
	}{
		{1, 0}, {2, 1}, {3, 2}, {4, 3}, {5, 4}, {6, 6}, {7, 9},
		{8, 13}, {9, 19}, {10, 28}, {11, 42}, {12, 63}, {13, 94},
		{14, 141}, {15, 211}, {16, 316}, {17, 474},
	}

	for _, tc := range cases {
		got, err := p.DaysForLevel(tc.nextLevel)
		if err != nil {
			t.Fatalf("DaysForLevel(%d) error: %v", tc.nextLevel, err)
		}
		if got != tc.want {
			t.Fatalf("DaysForLevel(%d)=%d, want %d", tc.nextLevel, got, tc.want)
		}
	}
}

func TestGeometricPolicyInvalidLevel(t *testing.T) {
	p := NewGeometricPolicy()
	for _, next := range []int{0, -1, -10} {
		if _, err := p.DaysForLevel(next); !errors.Is(err, ErrInvalidLevel) {
			t.Fatalf("DaysForLevel(%d) err = %v, want ErrInvalidLevel", next, err)
		}
	}
}

func TestGeometricPolicyKeying(t *testing.T) {
	// IntervalAtLevel(L) must be DaysForLevel(L+1): the policy is keyed by
	// the level about to be reached.
	p := NewGeometricPolicy()
	for level := 0; level <= 15; level++ {
		atLevel, err := p.IntervalAtLevel(level)
		if err != nil {
			t.Fatalf("IntervalAtLevel(%d) error: %v", level, err)
		}
		forNext, err := p.DaysForLevel(level + 1)
		if err != nil {
			t.Fatalf("DaysForLevel(%d) error: %v", level+1, err)
		}
		if atLevel != forNext {
			t.Fatalf("IntervalAtLevel(%d)=%d, want DaysForLevel(%d)=%d", level, atLevel, level+1, forNext)
		}
	}
}

func TestPoliciesMonotone(t *testing.T) {
	for _, p := range []Policy{Policy(DefaultNotePolicy()), Policy(NewGeometricPolicy())} {
		prev := -1
		for level := 0; level <= p.MaxLevel()+2; level++ {
			d, err := p.IntervalAtLevel(level)
			if err != nil {
				t.Fatalf("IntervalAtLevel(%d) error: %v", level, err)
			}
			if d < prev {
				t.Fatalf("interval decreases at level %d: %d < %d", level, d, prev)
			}
			prev = d
		}
	}
}
