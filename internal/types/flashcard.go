package types

import (
	"time"

	"github.com/google/uuid"
)

// Flashcard is a question/answer pair belonging to a note. ReviewedAt is nil
// until the first review; a never-reviewed card is immediately due.
type Flashcard struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	NoteID     uuid.UUID  `gorm:"type:uuid;not null;index;column:note_id" json:"note_id"`
	Note       *Note      `gorm:"constraint:OnDelete:CASCADE;foreignKey:NoteID;references:ID" json:"note,omitempty"`
	Question   string     `gorm:"type:text;not null;column:question" json:"question"`
	Answer     string     `gorm:"type:text;not null;column:answer" json:"answer"`
	Level      int        `gorm:"not null;default:0;column:level" json:"level"`
	ReviewedAt *time.Time `gorm:"column:reviewed_at" json:"reviewed_at"`
	CreatedAt  time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"not null" json:"updated_at"`
}

func (Flashcard) TableName() string { return "flashcard" }
