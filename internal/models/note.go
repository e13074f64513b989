package models

import "time"

type Note struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"-"`
	Title     string    `db:"title" json:"title"`
	Content   string    `db:"content" json:"content"`
	Subject   *string   `db:"subject" json:"subject"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
