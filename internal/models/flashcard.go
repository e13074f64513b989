package models

import "time"

const (
	DifficultyMedium = "medium"
	MaxConfidence    = 5
)

type Flashcard struct {
	ID              string     `db:"id" json:"id"`
	UserID          string     `db:"user_id" json:"-"`
	NoteID          *string    `db:"source_note_id" json:"source_note_id"`
	Question        string     `db:"question" json:"question"`
	Answer          string     `db:"answer" json:"answer"`
	Subject         *string    `db:"subject" json:"subject"`
	Difficulty      string     `db:"difficulty" json:"difficulty"`
	LastReviewed    *time.Time `db:"last_reviewed" json:"last_reviewed"`
	TimesReviewed   int        `db:"times_reviewed" json:"times_reviewed"`
	ConfidenceLevel int        `db:"confidence_level" json:"confidence_level"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
}
