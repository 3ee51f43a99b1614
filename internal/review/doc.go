// Package review implements the spaced-repetition scheduling engine.
//
// The engine decides, for a reviewable item (a note or a flashcard), whether
// it is due, which level it moves to after a review outcome, and how far away
// future review milestones lie. It is pure: every function is a function of
// its arguments, including the reference time, which is always passed in
// explicitly. The package performs no I/O and holds no state, so it is safe
// to call from any number of goroutines.
//
// Two interval policies coexist and must not be unified:
//
//   - TablePolicy (notes): a fixed day table indexed by the level an item
//     currently holds, saturating at the last entry.
//   - GeometricPolicy (flashcards): a recursive formula keyed by the level
//     the item is *about to reach*, so the interval that governs an item at
//     level L is DaysForLevel(L+1).
//
// The one-off keying difference is deliberate and load-bearing; use
// IntervalAtLevel when you hold a current level and let each policy resolve
// its own convention.
package review
