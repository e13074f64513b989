package models

import "time"

// MoodLog is one logging event; several per day are allowed.
type MoodLog struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"-"`
	MoodScore   int       `db:"mood_score" json:"mood_score"`
	EnergyLevel *int      `db:"energy_level" json:"energy_level"`
	StressLevel *int      `db:"stress_level" json:"stress_level"`
	Notes       *string   `db:"notes" json:"notes"`
	Date        time.Time `db:"date" json:"date"`
}
