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

// NoteView is the full representation returned for a single note, including
// the derived scheduling fields.
type NoteView struct {
	ID                    uuid.UUID          `json:"id"`
	Body                  string             `json:"body"`
	Snippet               string             `json:"snippet"`
	Tags                  []string           `json:"tags"`
	Favorite              bool               `json:"favorite"`
	Level                 int                `json:"level"`
	LastReviewedAt        *time.Time         `json:"last_reviewed_at"`
	CreatedAt             time.Time          `json:"created_at"`
	UpdatedAt             time.Time          `json:"updated_at"`
	NeedsReview           bool               `json:"needs_review"`
	QuestionCount         int                `json:"question_count"`
	UpcomingReviewsInDays []review.Milestone `json:"upcoming_reviews_in_days"`
}

// NoteListItem is the lighter shape used by note lists.
type NoteListItem struct {
	ID             uuid.UUID  `json:"id"`
	Snippet        string     `json:"snippet"`
	Tags           []string   `json:"tags"`
	Favorite       bool       `json:"favorite"`
	Level          int        `json:"level"`
	NeedsReview    bool       `json:"needs_review"`
	UpdatedAt      time.Time  `json:"updated_at"`
	CreatedAt      time.Time  `json:"created_at"`
	LastReviewedAt *time.Time `json:"last_reviewed_at"`
}

type NoteCounts struct {
	TotalNotes int64 `json:"total_notes"`
}

type UpdateNoteInput struct {
	Body     *string `json:"body"`
	Favorite *bool   `json:"favorite"`
}

type NoteService interface {
	CreateNote(ctx context.Context, body string) (*NoteView, error)
	GetNote(ctx context.Context, id uuid.UUID) (*NoteView, error)
	UpdateNote(ctx context.Context, id uuid.UUID, in UpdateNoteInput) (*NoteView, error)
	DeleteNote(ctx context.Context, id uuid.UUID) error
	ListNotes(ctx context.Context, tags string, isReview, favOnly bool) ([]*NoteListItem, error)
	NoteCounts(ctx context.Context) (*NoteCounts, error)
}

type noteService struct {
	db       *gorm.DB
	log      *logger.Logger
	noteRepo repos.NoteRepo
	cardRepo repos.FlashcardRepo
	policy   review.Policy
	now      func() time.Time
}

func NewNoteService(db *gorm.DB, log *logger.Logger, noteRepo repos.NoteRepo, cardRepo repos.FlashcardRepo, policy review.Policy, now func() time.Time) NoteService {
	if now == nil {
		now = time.Now
	}
	return &noteService{
		db:       db,
		log:      log.With("service", "NoteService"),
		noteRepo: noteRepo,
		cardRepo: cardRepo,
		policy:   policy,
		now:      now,
	}
}

func (ns *noteService) CreateNote(ctx context.Context, body string) (*NoteView, error) {
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("%w: note body is empty", ErrInvalidInput)
	}

	note := &types.Note{
		ID:   uuid.New(),
		Body: body,
		Tags: tagsToJSON(ExtractTags(body)),
	}
	if _, err := ns.noteRepo.Create(ctx, nil, []*types.Note{note}); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	return ns.buildView(ctx, note)
}

func (ns *noteService) GetNote(ctx context.Context, id uuid.UUID) (*NoteView, error) {
	note, err := ns.getOne(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	return ns.buildView(ctx, note)
}

func (ns *noteService) UpdateNote(ctx context.Context, id uuid.UUID, in UpdateNoteInput) (*NoteView, error) {
	note, err := ns.getOne(ctx, nil, id)
	if err != nil {
		return nil, err
	}

	if in.Body != nil {
		note.Body = *in.Body
		note.Tags = tagsToJSON(ExtractTags(*in.Body))
	}
	if in.Favorite != nil {
		note.Favorite = *in.Favorite
	}

	if err := ns.noteRepo.Update(ctx, nil, note, true); err != nil {
		return nil, fmt.Errorf("failed to update note %s: %w", id, err)
	}

	// Re-read so the view carries the stored UpdatedAt.
	note, err = ns.getOne(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	return ns.buildView(ctx, note)
}

// DeleteNote removes a note; its flashcards go with it via the FK cascade.
func (ns *noteService) DeleteNote(ctx context.Context, id uuid.UUID) error {
	if _, err := ns.getOne(ctx, nil, id); err != nil {
		return err
	}
	if err := ns.noteRepo.Delete(ctx, nil, []uuid.UUID{id}); err != nil {
		return fmt.Errorf("failed to delete note %s: %w", id, err)
	}
	return nil
}

func (ns *noteService) ListNotes(ctx context.Context, tags string, isReview, favOnly bool) ([]*NoteListItem, error) {
	notes, err := ns.noteRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	wanted := splitTagFilter(tags)
	now := ns.now()

	items := []*NoteListItem{}
	for _, n := range notes {
		noteTags := tagsFromJSON(n.Tags)
		if len(wanted) > 0 && !hasAnyTag(noteTags, wanted) {
			continue
		}
		if favOnly && !n.Favorite {
			continue
		}
		due, err := review.NoteNeedsReview(ns.policy, n.Level, n.LastReviewedAt, n.CreatedAt, now)
		if err != nil {
			return nil, fmt.Errorf("failed to compute due state for note %s: %w", n.ID, err)
		}
		if isReview && !due {
			continue
		}
		items = append(items, &NoteListItem{
			ID:             n.ID,
			Snippet:        snippet(n.Body),
			Tags:           noteTags,
			Favorite:       n.Favorite,
			Level:          n.Level,
			NeedsReview:    due,
			UpdatedAt:      n.UpdatedAt,
			CreatedAt:      n.CreatedAt,
			LastReviewedAt: n.LastReviewedAt,
		})
	}
	return items, nil
}

func (ns *noteService) NoteCounts(ctx context.Context) (*NoteCounts, error) {
	total, err := ns.noteRepo.Count(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count notes: %w", err)
	}
	return &NoteCounts{TotalNotes: total}, nil
}

func (ns *noteService) getOne(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Note, error) {
	notes, err := ns.noteRepo.GetByIDs(ctx, tx, []uuid.UUID{id})
	if err != nil {
		return nil, fmt.Errorf("failed to get note %s: %w", id, err)
	}
	if len(notes) == 0 {
		return nil, fmt.Errorf("%w: note %s", ErrNotFound, id)
	}
	return notes[0], nil
}

func (ns *noteService) buildView(ctx context.Context, n *types.Note) (*NoteView, error) {
	now := ns.now()

	due, err := review.NoteNeedsReview(ns.policy, n.Level, n.LastReviewedAt, n.CreatedAt, now)
	if err != nil {
		return nil, fmt.Errorf("failed to compute due state for note %s: %w", n.ID, err)
	}
	upcoming, err := review.NextReviewPoints(ns.policy, n.Level, n.LastReviewedAt, n.CreatedAt, now)
	if err != nil {
		return nil, fmt.Errorf("failed to project reviews for note %s: %w", n.ID, err)
	}

	counts, err := ns.cardRepo.CountByNoteIDs(ctx, nil, []uuid.UUID{n.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to count flashcards for note %s: %w", n.ID, err)
	}

	return &NoteView{
		ID:                    n.ID,
		Body:                  n.Body,
		Snippet:               snippet(n.Body),
		Tags:                  tagsFromJSON(n.Tags),
		Favorite:              n.Favorite,
		Level:                 n.Level,
		LastReviewedAt:        n.LastReviewedAt,
		CreatedAt:             n.CreatedAt,
		UpdatedAt:             n.UpdatedAt,
		NeedsReview:           due,
		QuestionCount:         counts[n.ID],
		UpcomingReviewsInDays: upcoming,
	}, nil
}

// snippet keeps the first three lines of a body for list rendering.
func snippet(body string) string {
	lines := strings.Split(body, "\n")
	if len(lines) > 3 {
		lines = lines[:3]
	}
	return strings.Join(lines, "\n")
}

func splitTagFilter(tags string) []string {
	if strings.TrimSpace(tags) == "" {
		return nil
	}
	parts := strings.Split(tags, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.ToLower(strings.TrimSpace(p))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

func hasAnyTag(noteTags, wanted []string) bool {
	for _, nt := range noteTags {
		nt = strings.ToLower(strings.TrimSpace(nt))
		for _, w := range wanted {
			if nt == w {
				return true
			}
		}
	}
	return false
}
