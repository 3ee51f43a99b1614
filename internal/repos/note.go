package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/odosui/mt/internal/logger"
	"github.com/odosui/mt/internal/types"
)

type NoteRepo interface {
	Create(ctx context.Context, tx *gorm.DB, notes []*types.Note) ([]*types.Note, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, noteIDs []uuid.UUID) ([]*types.Note, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Note, error)
	Update(ctx context.Context, tx *gorm.DB, note *types.Note, touchUpdatedAt bool) error
	Delete(ctx context.Context, tx *gorm.DB, noteIDs []uuid.UUID) error
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type noteRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewNoteRepo(db *gorm.DB, baseLog *logger.Logger) NoteRepo {
	return &noteRepo{db: db, log: baseLog.With("repo", "NoteRepo")}
}

func (nr *noteRepo) Create(ctx context.Context, tx *gorm.DB, notes []*types.Note) ([]*types.Note, error) {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}

	if len(notes) == 0 {
		return []*types.Note{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (nr *noteRepo) GetByIDs(ctx context.Context, tx *gorm.DB, noteIDs []uuid.UUID) ([]*types.Note, error) {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}

	var results []*types.Note
	if len(noteIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", noteIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (nr *noteRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Note, error) {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}

	var results []*types.Note
	if err := transaction.WithContext(ctx).
		Order("updated_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (nr *noteRepo) Update(ctx context.Context, tx *gorm.DB, note *types.Note, touchUpdatedAt bool) error {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}

	q := transaction.WithContext(ctx).Model(&types.Note{}).Where("id = ?", note.ID)
	if touchUpdatedAt {
		// Updates runs gorm's UpdatedAt tracking.
		return q.Updates(map[string]interface{}{
			"body":             note.Body,
			"tags":             note.Tags,
			"favorite":         note.Favorite,
			"level":            note.Level,
			"last_reviewed_at": note.LastReviewedAt,
		}).Error
	}
	// Review transitions must not look like edits: UpdateColumns skips the
	// UpdatedAt hook.
	return q.UpdateColumns(map[string]interface{}{
		"level":            note.Level,
		"last_reviewed_at": note.LastReviewedAt,
	}).Error
}

func (nr *noteRepo) Delete(ctx context.Context, tx *gorm.DB, noteIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}

	if len(noteIDs) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Where("id IN ?", noteIDs).
		Delete(&types.Note{}).Error
}

func (nr *noteRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).Model(&types.Note{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
