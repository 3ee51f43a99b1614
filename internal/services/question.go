package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/odosui/mt/internal/logger"
	"github.com/odosui/mt/internal/repos"
	"github.com/odosui/mt/internal/review"
	"github.com/odosui/mt/internal/types"
)

// QuestionView is the flashcard representation returned by the API. The two
// countdown fields are derived, never stored: days_till_next_review is the
// live countdown for the current level, days_till_review_after_current the
// full length of the interval that will follow the next successful review.
type QuestionView struct {
	ID                         uuid.UUID  `json:"id"`
	NoteID                     uuid.UUID  `json:"note_id"`
	Question                   string     `json:"question"`
	Answer                     string     `json:"answer"`
	Level                      int        `json:"level"`
	ReviewedAt                 *time.Time `json:"reviewed_at"`
	DaysTillNextReview         int        `json:"days_till_next_review"`
	DaysTillReviewAfterCurrent int        `json:"days_till_review_after_current"`
}

type QuestionService interface {
	CreateQuestion(ctx context.Context, noteID uuid.UUID, question, answer string) (*QuestionView, error)
	GetQuestions(ctx context.Context, noteID uuid.UUID) ([]*QuestionView, error)
	GetAllQuestions(ctx context.Context, forReview bool) ([]*QuestionView, error)
	ReviewGood(ctx context.Context, id uuid.UUID) (*QuestionView, error)
	ReviewBad(ctx context.Context, id uuid.UUID) (*QuestionView, error)
}

type questionService struct {
	db       *gorm.DB
	log      *logger.Logger
	noteRepo repos.NoteRepo
	cardRepo repos.FlashcardRepo
	policy   review.Policy
	now      func() time.Time
}

func NewQuestionService(db *gorm.DB, log *logger.Logger, noteRepo repos.NoteRepo, cardRepo repos.FlashcardRepo, policy review.Policy, now func() time.Time) QuestionService {
	if now == nil {
		now = time.Now
	}
	return &questionService{
		db:       db,
		log:      log.With("service", "QuestionService"),
		noteRepo: noteRepo,
		cardRepo: cardRepo,
		policy:   policy,
		now:      now,
	}
}

func (qs *questionService) CreateQuestion(ctx context.Context, noteID uuid.UUID, question, answer string) (*QuestionView, error) {
	if strings.TrimSpace(question) == "" {
		return nil, fmt.Errorf("%w: question is empty", ErrInvalidInput)
	}
	if strings.TrimSpace(answer) == "" {
		return nil, fmt.Errorf("%w: answer is empty", ErrInvalidInput)
	}

	notes, err := qs.noteRepo.GetByIDs(ctx, nil, []uuid.UUID{noteID})
	if err != nil {
		return nil, fmt.Errorf("failed to get note %s: %w", noteID, err)
	}
	if len(notes) == 0 {
		return nil, fmt.Errorf("%w: note %s", ErrNotFound, noteID)
	}

	card := &types.Flashcard{
		ID:       uuid.New(),
		NoteID:   noteID,
		Question: question,
		Answer:   answer,
	}
	if _, err := qs.cardRepo.Create(ctx, nil, []*types.Flashcard{card}); err != nil {
		return nil, fmt.Errorf("failed to create flashcard: %w", err)
	}
	return qs.buildView(card)
}

func (qs *questionService) GetQuestions(ctx context.Context, noteID uuid.UUID) ([]*QuestionView, error) {
	notes, err := qs.noteRepo.GetByIDs(ctx, nil, []uuid.UUID{noteID})
	if err != nil {
		return nil, fmt.Errorf("failed to get note %s: %w", noteID, err)
	}
	if len(notes) == 0 {
		return nil, fmt.Errorf("%w: note %s", ErrNotFound, noteID)
	}

	cards, err := qs.cardRepo.ListByNoteIDs(ctx, nil, []uuid.UUID{noteID})
	if err != nil {
		return nil, fmt.Errorf("failed to list flashcards for note %s: %w", noteID, err)
	}
	return qs.buildViews(cards)
}

func (qs *questionService) GetAllQuestions(ctx context.Context, forReview bool) ([]*QuestionView, error) {
	cards, err := qs.cardRepo.ListAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list flashcards: %w", err)
	}

	if forReview {
		now := qs.now()
		due := cards[:0:0]
		for _, card := range cards {
			ok, err := review.CardIsReviewable(qs.policy, card.Level, card.ReviewedAt, now)
			if err != nil {
				return nil, fmt.Errorf("failed to compute due state for flashcard %s: %w", card.ID, err)
			}
			if ok {
				due = append(due, card)
			}
		}
		cards = due
	}
	return qs.buildViews(cards)
}

func (qs *questionService) ReviewGood(ctx context.Context, id uuid.UUID) (*QuestionView, error) {
	return qs.applyReview(ctx, id, review.OutcomeGood)
}

func (qs *questionService) ReviewBad(ctx context.Context, id uuid.UUID) (*QuestionView, error) {
	return qs.applyReview(ctx, id, review.OutcomeBad)
}

// applyReview runs one state-machine transition inside a transaction. The
// engine does not check dueness here on purpose: surfacing an item is the
// queue filter's decision, applying the outcome is unconditional.
func (qs *questionService) applyReview(ctx context.Context, id uuid.UUID, outcome review.Outcome) (*QuestionView, error) {
	now := qs.now()
	var updated *types.Flashcard

	err := qs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cards, err := qs.cardRepo.GetByIDs(ctx, tx, []uuid.UUID{id})
		if err != nil {
			return fmt.Errorf("failed to get flashcard %s: %w", id, err)
		}
		if len(cards) == 0 {
			return fmt.Errorf("%w: flashcard %s", ErrNotFound, id)
		}
		card := cards[0]

		tr, err := review.Apply(qs.policy, card.Level, outcome, now)
		if err != nil {
			return err
		}
		card.Level = tr.Level
		card.ReviewedAt = &tr.ReviewedAt

		if err := qs.cardRepo.Update(ctx, tx, card); err != nil {
			return fmt.Errorf("failed to persist review of flashcard %s: %w", id, err)
		}
		updated = card
		return nil
	})
	if err != nil {
		return nil, err
	}

	return qs.buildView(updated)
}

func (qs *questionService) buildViews(cards []*types.Flashcard) ([]*QuestionView, error) {
	views := make([]*QuestionView, 0, len(cards))
	for _, card := range cards {
		v, err := qs.buildView(card)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (qs *questionService) buildView(card *types.Flashcard) (*QuestionView, error) {
	now := qs.now()

	daysTillNext, err := review.CardDaysUntilDue(qs.policy, card.Level, card.ReviewedAt, now)
	if err != nil {
		return nil, fmt.Errorf("failed to compute due state for flashcard %s: %w", card.ID, err)
	}
	daysAfter, err := review.DaysTillReviewAfterCurrent(qs.policy, card.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to compute follow-up interval for flashcard %s: %w", card.ID, err)
	}

	return &QuestionView{
		ID:                         card.ID,
		NoteID:                     card.NoteID,
		Question:                   card.Question,
		Answer:                     card.Answer,
		Level:                      card.Level,
		ReviewedAt:                 card.ReviewedAt,
		DaysTillNextReview:         daysTillNext,
		DaysTillReviewAfterCurrent: daysAfter,
	}, nil
}
