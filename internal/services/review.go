package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/odosui/mt/internal/logger"
	"github.com/odosui/mt/internal/repos"
	"github.com/odosui/mt/internal/review"
)

// ReviewCounts is the aggregate returned by GET /reviews.
type ReviewCounts struct {
	Counts struct {
		Notes     int `json:"notes"`
		Questions int `json:"questions"`
	} `json:"counts"`
}

type ReviewService interface {
	Counts(ctx context.Context) (*ReviewCounts, error)
	ReviewNote(ctx context.Context, id uuid.UUID) (*NoteView, error)
}

type reviewService struct {
	db          *gorm.DB
	log         *logger.Logger
	noteRepo    repos.NoteRepo
	cardRepo    repos.FlashcardRepo
	notePolicy  review.Policy
	cardPolicy  review.Policy
	noteService NoteService
	now         func() time.Time
}

func NewReviewService(db *gorm.DB, log *logger.Logger, noteRepo repos.NoteRepo, cardRepo repos.FlashcardRepo, notePolicy, cardPolicy review.Policy, noteService NoteService, now func() time.Time) ReviewService {
	if now == nil {
		now = time.Now
	}
	return &reviewService{
		db:          db,
		log:         log.With("service", "ReviewService"),
		noteRepo:    noteRepo,
		cardRepo:    cardRepo,
		notePolicy:  notePolicy,
		cardPolicy:  cardPolicy,
		noteService: noteService,
		now:         now,
	}
}

// Counts computes how many notes and how many flashcards are currently due.
// The two scans are independent, so they run concurrently.
func (rs *reviewService) Counts(ctx context.Context) (*ReviewCounts, error) {
	now := rs.now()
	out := &ReviewCounts{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		notes, err := rs.noteRepo.List(gctx, nil)
		if err != nil {
			return fmt.Errorf("failed to list notes: %w", err)
		}
		n := 0
		for _, note := range notes {
			due, err := review.NoteNeedsReview(rs.notePolicy, note.Level, note.LastReviewedAt, note.CreatedAt, now)
			if err != nil {
				return fmt.Errorf("failed to compute due state for note %s: %w", note.ID, err)
			}
			if due {
				n++
			}
		}
		out.Counts.Notes = n
		return nil
	})

	g.Go(func() error {
		cards, err := rs.cardRepo.ListAll(gctx, nil)
		if err != nil {
			return fmt.Errorf("failed to list flashcards: %w", err)
		}
		n := 0
		for _, card := range cards {
			ok, err := review.CardIsReviewable(rs.cardPolicy, card.Level, card.ReviewedAt, now)
			if err != nil {
				return fmt.Errorf("failed to compute due state for flashcard %s: %w", card.ID, err)
			}
			if ok {
				n++
			}
		}
		out.Counts.Questions = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// ReviewNote marks a note as reviewed: advance one level (clamped at the
// policy ceiling) and stamp the review time. The read-modify-write runs in
// one transaction so concurrent reviews of the same note cannot lose
// updates.
func (rs *reviewService) ReviewNote(ctx context.Context, id uuid.UUID) (*NoteView, error) {
	now := rs.now()

	err := rs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		notes, err := rs.noteRepo.GetByIDs(ctx, tx, []uuid.UUID{id})
		if err != nil {
			return fmt.Errorf("failed to get note %s: %w", id, err)
		}
		if len(notes) == 0 {
			return fmt.Errorf("%w: note %s", ErrNotFound, id)
		}
		note := notes[0]

		tr, err := review.Apply(rs.notePolicy, note.Level, review.OutcomeGood, now)
		if err != nil {
			return err
		}
		note.Level = tr.Level
		note.LastReviewedAt = &tr.ReviewedAt

		// A review is not an edit; UpdatedAt stays put.
		if err := rs.noteRepo.Update(ctx, tx, note, false); err != nil {
			return fmt.Errorf("failed to persist review of note %s: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rs.noteService.GetNote(ctx, id)
}
