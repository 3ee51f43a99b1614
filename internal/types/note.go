package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Note is a markdown note under spaced-repetition scheduling. Tags are
// derived from the body on every write and cached here for list filtering.
type Note struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Body           string         `gorm:"type:text;not null;column:body" json:"body"`
	Tags           datatypes.JSON `gorm:"column:tags" json:"tags"`
	Favorite       bool           `gorm:"not null;default:false;column:favorite" json:"favorite"`
	Level          int            `gorm:"not null;default:0;column:level" json:"level"`
	LastReviewedAt *time.Time     `gorm:"column:last_reviewed_at" json:"last_reviewed_at"`
	CreatedAt      time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"not null" json:"updated_at"`
}

func (Note) TableName() string { return "note" }
