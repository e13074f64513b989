package models

import "time"

const (
	TaskStatusPending       = "pending"
	TaskPriorityMedium      = "medium"
	DefaultEstimatedMinutes = 60
)

// Task status is free text; pending/in-progress/done are the values the front-end uses.
type Task struct {
	ID               string    `db:"id" json:"id"`
	UserID           string    `db:"user_id" json:"-"`
	Title            string    `db:"title" json:"title"`
	Description      *string   `db:"description" json:"description"`
	Subject          *string   `db:"subject" json:"subject"`
	Priority         string    `db:"priority" json:"priority"`
	Status           string    `db:"status" json:"status"`
	DueDate          *string   `db:"due_date" json:"due_date"`
	EstimatedMinutes int       `db:"estimated_time" json:"estimated_time"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}
