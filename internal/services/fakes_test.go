package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/odosui/mt/internal/logger"
	"github.com/odosui/mt/internal/types"
)

var testNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

func daysAgo(n int) time.Time { return testNow.AddDate(0, 0, -n) }

func daysAgoPtr(n int) *time.Time {
	t := daysAgo(n)
	return &t
}

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("production")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return log
}

// newTestDB opens a throwaway in-memory database. The fake repos below hold
// state themselves; the handle only backs the transaction wrappers in the
// services under test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	return db
}

type fakeNoteRepo struct {
	notes []*types.Note
	err   error
}

func (r *fakeNoteRepo) Create(ctx context.Context, tx *gorm.DB, notes []*types.Note) ([]*types.Note, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, n := range notes {
		n.CreatedAt = testNow
		n.UpdatedAt = testNow
		r.notes = append(r.notes, n)
	}
	return notes, nil
}

func (r *fakeNoteRepo) GetByIDs(ctx context.Context, tx *gorm.DB, noteIDs []uuid.UUID) ([]*types.Note, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*types.Note
	for _, n := range r.notes {
		for _, id := range noteIDs {
			if n.ID == id {
				out = append(out, n)
			}
		}
	}
	return out, nil
}

func (r *fakeNoteRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Note, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.notes, nil
}

func (r *fakeNoteRepo) Update(ctx context.Context, tx *gorm.DB, note *types.Note, touchUpdatedAt bool) error {
	if r.err != nil {
		return r.err
	}
	for i, n := range r.notes {
		if n.ID == note.ID {
			if touchUpdatedAt {
				note.UpdatedAt = testNow
			}
			r.notes[i] = note
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeNoteRepo) Delete(ctx context.Context, tx *gorm.DB, noteIDs []uuid.UUID) error {
	if r.err != nil {
		return r.err
	}
	kept := r.notes[:0]
	for _, n := range r.notes {
		drop := false
		for _, id := range noteIDs {
			if n.ID == id {
				drop = true
			}
		}
		if !drop {
			kept = append(kept, n)
		}
	}
	r.notes = kept
	return nil
}

func (r *fakeNoteRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return int64(len(r.notes)), nil
}

type fakeCardRepo struct {
	cards []*types.Flashcard
	err   error
}

func (r *fakeCardRepo) Create(ctx context.Context, tx *gorm.DB, cards []*types.Flashcard) ([]*types.Flashcard, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, c := range cards {
		c.CreatedAt = testNow
		c.UpdatedAt = testNow
		r.cards = append(r.cards, c)
	}
	return cards, nil
}

func (r *fakeCardRepo) GetByIDs(ctx context.Context, tx *gorm.DB, cardIDs []uuid.UUID) ([]*types.Flashcard, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*types.Flashcard
	for _, c := range r.cards {
		for _, id := range cardIDs {
			if c.ID == id {
				out = append(out, c)
			}
		}
	}
	return out, nil
}

func (r *fakeCardRepo) ListByNoteIDs(ctx context.Context, tx *gorm.DB, noteIDs []uuid.UUID) ([]*types.Flashcard, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*types.Flashcard
	for _, c := range r.cards {
		for _, id := range noteIDs {
			if c.NoteID == id {
				out = append(out, c)
			}
		}
	}
	return out, nil
}

func (r *fakeCardRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*types.Flashcard, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.cards, nil
}

func (r *fakeCardRepo) Update(ctx context.Context, tx *gorm.DB, card *types.Flashcard) error {
	if r.err != nil {
		return r.err
	}
	for i, c := range r.cards {
		if c.ID == card.ID {
			r.cards[i] = card
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeCardRepo) CountByNoteIDs(ctx context.Context, tx *gorm.DB, noteIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := map[uuid.UUID]int{}
	for _, c := range r.cards {
		for _, id := range noteIDs {
			if c.NoteID == id {
				out[id]++
			}
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users []*types.User
	err   error
}

func (r *fakeUserRepo) Create(ctx context.Context, tx *gorm.DB, users []*types.User) ([]*types.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.users = append(r.users, users...)
	return users, nil
}

func (r *fakeUserRepo) GetByIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*types.User
	for _, u := range r.users {
		for _, id := range userIDs {
			if u.ID == id {
				out = append(out, u)
			}
		}
	}
	return out, nil
}

func (r *fakeUserRepo) GetByEmails(ctx context.Context, tx *gorm.DB, userEmails []string) ([]*types.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*types.User
	for _, u := range r.users {
		for _, e := range userEmails {
			if u.Email == e {
				out = append(out, u)
			}
		}
	}
	return out, nil
}

func (r *fakeUserRepo) EmailExists(ctx context.Context, tx *gorm.DB, userEmail string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	for _, u := range r.users {
		if u.Email == userEmail {
			return true, nil
		}
	}
	return false, nil
}
