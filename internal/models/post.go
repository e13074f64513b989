package models

import "time"

type Post struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"author_id"`
	Title     string    `db:"title" json:"title"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// PostView is a post joined with its author and like state for one viewer.
type PostView struct {
	Post
	AuthorEmail     *string `db:"author_email" json:"author_email"`
	AuthorFirstName *string `db:"author_first_name" json:"author_first_name"`
	AuthorLastName  *string `db:"author_last_name" json:"author_last_name"`
	Likes           int     `db:"likes" json:"likes"`
	Liked           bool    `db:"liked" json:"liked"`
	CanDelete       bool    `db:"-" json:"can_delete"`
}

type PostLike struct {
	ID        string    `db:"id" json:"id"`
	PostID    string    `db:"post_id" json:"post_id"`
	UserID    string    `db:"user_id" json:"user_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type PostComment struct {
	ID        string    `db:"id" json:"id"`
	PostID    string    `db:"post_id" json:"post_id"`
	UserID    string    `db:"user_id" json:"author_id"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type CommentView struct {
	PostComment
	AuthorEmail     *string `db:"author_email" json:"author_email"`
	AuthorFirstName *string `db:"author_first_name" json:"author_first_name"`
	AuthorLastName  *string `db:"author_last_name" json:"author_last_name"`
	CanDelete       bool    `db:"-" json:"can_delete"`
}
