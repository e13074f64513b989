package models

import "time"

// DayLayout is the calendar-day encoding used for study session and streak days.
const DayLayout = "2006-01-02"

// StudySession is unique per (user, day); repeated logs on one day accumulate minutes.
type StudySession struct {
	ID              string    `db:"id" json:"id"`
	UserID          string    `db:"user_id" json:"-"`
	Date            string    `db:"session_date" json:"date"`
	DurationMinutes int       `db:"duration_minutes" json:"duration"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

type Streak struct {
	Current       int `json:"current_streak"`
	Longest       int `json:"longest_streak"`
	TotalSessions int `json:"total_sessions"`
	TotalMinutes  int `json:"total_minutes"`
}

type FlashcardStats struct {
	Total         int     `db:"total" json:"total"`
	AvgConfidence float64 `db:"avg_confidence" json:"avg_confidence"`
	TotalReviews  int     `db:"total_reviews" json:"total_reviews"`
}

type Analytics struct {
	RecentSessions []StudySession `json:"recent_sessions"`
	TasksByStatus  map[string]int `json:"tasks_by_status"`
	NotesBySubject map[string]int `json:"notes_by_subject"`
	FlashcardStats FlashcardStats `json:"flashcard_stats"`
}
