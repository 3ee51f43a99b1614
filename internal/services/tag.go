package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/odosui/mt/internal/logger"
	"github.com/odosui/mt/internal/repos"
)

// TagView is one aggregated tag with its usage count.
type TagView struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Count int    `json:"count"`
}

type TagService interface {
	ListTags(ctx context.Context) ([]*TagView, error)
}

type tagService struct {
	db       *gorm.DB
	log      *logger.Logger
	noteRepo repos.NoteRepo
}

func NewTagService(db *gorm.DB, log *logger.Logger, noteRepo repos.NoteRepo) TagService {
	return &tagService{db: db, log: log.With("service", "TagService"), noteRepo: noteRepo}
}

// ListTags aggregates tags across all notes, case-insensitively, sorted by
// usage count descending (alphabetical among ties to keep output stable).
func (ts *tagService) ListTags(ctx context.Context) ([]*TagView, error) {
	notes, err := ts.noteRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	counts := map[string]int{}
	for _, n := range notes {
		for _, tag := range tagsFromJSON(n.Tags) {
			can := strings.ToLower(strings.TrimSpace(tag))
			if can != "" {
				counts[can]++
			}
		}
	}

	tags := make([]*TagView, 0, len(counts))
	for tag, count := range counts {
		tags = append(tags, &TagView{ID: tag, Title: tag, Count: count})
	}
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Count != tags[j].Count {
			return tags[i].Count > tags[j].Count
		}
		return tags[i].ID < tags[j].ID
	})
	return tags, nil
}
