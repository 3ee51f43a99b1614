package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/odosui/mt/internal/logger"
	"github.com/odosui/mt/internal/types"
)

type FlashcardRepo interface {
	Create(ctx context.Context, tx *gorm.DB, cards []*types.Flashcard) ([]*types.Flashcard, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, cardIDs []uuid.UUID) ([]*types.Flashcard, error)
	ListByNoteIDs(ctx context.Context, tx *gorm.DB, noteIDs []uuid.UUID) ([]*types.Flashcard, error)
	ListAll(ctx context.Context, tx *gorm.DB) ([]*types.Flashcard, error)
	Update(ctx context.Context, tx *gorm.DB, card *types.Flashcard) error
	CountByNoteIDs(ctx context.Context, tx *gorm.DB, noteIDs []uuid.UUID) (map[uuid.UUID]int, error)
}

type flashcardRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFlashcardRepo(db *gorm.DB, baseLog *logger.Logger) FlashcardRepo {
	return &flashcardRepo{db: db, log: baseLog.With("repo", "FlashcardRepo")}
}

func (fr *flashcardRepo) Create(ctx context.Context, tx *gorm.DB, cards []*types.Flashcard) ([]*types.Flashcard, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}

	if len(cards) == 0 {
		return []*types.Flashcard{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

func (fr *flashcardRepo) GetByIDs(ctx context.Context, tx *gorm.DB, cardIDs []uuid.UUID) ([]*types.Flashcard, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}

	var results []*types.Flashcard
	if len(cardIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", cardIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (fr *flashcardRepo) ListByNoteIDs(ctx context.Context, tx *gorm.DB, noteIDs []uuid.UUID) ([]*types.Flashcard, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}

	var results []*types.Flashcard
	if len(noteIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("note_id IN ?", noteIDs).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (fr *flashcardRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*types.Flashcard, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}

	var results []*types.Flashcard
	if err := transaction.WithContext(ctx).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (fr *flashcardRepo) Update(ctx context.Context, tx *gorm.DB, card *types.Flashcard) error {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}

	return transaction.WithContext(ctx).
		Model(&types.Flashcard{}).
		Where("id = ?", card.ID).
		Updates(map[string]interface{}{
			"question":    card.Question,
			"answer":      card.Answer,
			"level":       card.Level,
			"reviewed_at": card.ReviewedAt,
		}).Error
}

func (fr *flashcardRepo) CountByNoteIDs(ctx context.Context, tx *gorm.DB, noteIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}

	counts := make(map[uuid.UUID]int, len(noteIDs))
	if len(noteIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		NoteID uuid.UUID
		N      int
	}
	if err := transaction.WithContext(ctx).
		Model(&types.Flashcard{}).
		Select("note_id, count(*) as n").
		Where("note_id IN ?", noteIDs).
		Group("note_id").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		counts[r.NoteID] = r.N
	}
	return counts, nil
}
