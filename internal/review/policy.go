package review

import "fmt"

// Policy maps a review level to the number of days that must elapse before
// the next review. Implementations are stateless value types.
//
// DaysForLevel keeps each policy's native keying convention (see the package
// doc); IntervalAtLevel always takes the level an item currently holds and
// resolves the keying internally. Callers computing due state should use
// IntervalAtLevel.
type Policy interface {
	DaysForLevel(level int) (int, error)
	IntervalAtLevel(level int) (int, error)
	MaxLevel() int
}

// defaultNotePeriods is the day table for note reviews, one entry per level
// starting at level 0. The last entry is the saturation interval.
var defaultNotePeriods = []int{7, 15, 30, 30, 45, 45, 60, 60, 90, 180}

// TablePolicy schedules reviews from a fixed day table. Level 0 maps to the
// first entry; levels at or beyond MaxLevel keep using the last entry, so
// items never stop being schedulable.
type TablePolicy struct {
	periods []int
}

// NewTablePolicy builds a TablePolicy from the given day table. The table
// must be non-empty, non-negative and monotonically non-decreasing.
func NewTablePolicy(periods []int) (*TablePolicy, error) {
	if len(periods) == 0 {
		return nil, fmt.Errorf("%w: empty table", ErrInvalidPeriods)
	}
	prev := 0
	for i, p := range periods {
		if p < 0 {
			return nil, fmt.Errorf("%w: negative period %d at level %d", ErrInvalidPeriods, p, i)
		}
		if p < prev {
			return nil, fmt.Errorf("%w: period %d at level %d decreases", ErrInvalidPeriods, p, i)
		}
		prev = p
	}
	cp := make([]int, len(periods))
	copy(cp, periods)
	return &TablePolicy{periods: cp}, nil
}

// DefaultNotePolicy returns the table policy used for notes.
func DefaultNotePolicy() *TablePolicy {
	p, _ := NewTablePolicy(defaultNotePeriods)
	return p
}

// DaysForLevel returns the interval for an item currently holding level.
// Saturates at the last table entry; negative levels are rejected.
func (p *TablePolicy) DaysForLevel(level int) (int, error) {
	if level < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}
	if level >= len(p.periods) {
		return p.periods[len(p.periods)-1], nil
	}
	return p.periods[level], nil
}

// IntervalAtLevel is DaysForLevel: the table is keyed by the current level.
func (p *TablePolicy) IntervalAtLevel(level int) (int, error) {
	return p.DaysForLevel(level)
}

// MaxLevel is the table length; ReviewGood clamps levels here.
func (p *TablePolicy) MaxLevel() int {
	return len(p.periods)
}

const (
	// geometricCoeff is the per-level interval growth factor.
	// SM-2 used 1.3 for the hardest cards and 2.5 for the easiest.
	geometricCoeff = 1.5

	// geometricMaxLevel is the level at which flashcards leave the review
	// queue for good.
	geometricMaxLevel = 15
)

// GeometricPolicy schedules flashcard reviews with geometric interval
// growth. DaysForLevel is keyed by the level the card is about to reach,
// not the level it holds: a card at level L waits DaysForLevel(L+1) days.
type GeometricPolicy struct {
	coeff    float64
	maxLevel int
}

// NewGeometricPolicy returns the geometric policy with the default
// coefficient and ceiling.
func NewGeometricPolicy() *GeometricPolicy {
	return &GeometricPolicy{coeff: geometricCoeff, maxLevel: geometricMaxLevel}
}

// DaysForLevel returns the interval preceding nextLevel. Base cases are
// 1→0, 2→1, 3→2; beyond that each step is floor(coeff * previous), with
// the floor applied at every step. Computed iteratively so deep levels do
// not recurse. There is no upper bound on nextLevel: projections past the
// ceiling are still well-defined numbers.
func (p *GeometricPolicy) DaysForLevel(nextLevel int) (int, error) {
	if nextLevel < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLevel, nextLevel)
	}
	switch nextLevel {
	case 1:
		return 0, nil
	case 2:
		return 1, nil
	case 3:
		return 2, nil
	}
	days := 2
	for l := 4; l <= nextLevel; l++ {
		days = int(p.coeff * float64(days))
	}
	return days, nil
}

// IntervalAtLevel resolves the off-by-one keying: an item holding level
// waits for the interval that precedes level+1.
func (p *GeometricPolicy) IntervalAtLevel(level int) (int, error) {
	if level < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}
	return p.DaysForLevel(level + 1)
}

// MaxLevel is the reviewability ceiling, not a bound on DaysForLevel.
func (p *GeometricPolicy) MaxLevel() int {
	return p.maxLevel
}
