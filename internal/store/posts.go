package store

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/AnshRaj112/studentflow-backend/internal/database"
	"github.com/AnshRaj112/studentflow-backend/internal/models"
)

func (s *Store) CreatePost(ctx context.Context, owner, title, content string) (*models.Post, error) {
	post := &models.Post{
		ID:        newID(),
		UserID:    owner,
		Title:     title,
		Content:   content,
		CreatedAt: s.stamp(),
	}

	_, err := s.db.NamedExecContext(ctx, `
		INSERT INTO posts (id, user_id, title, content, created_at)
		VALUES (:id, :user_id, :title, :content, :created_at)`, post)
	if err != nil {
		return nil, errors.Wrap(err, "inserting post")
	}
	return post, nil
}

// ListPosts returns the community feed newest-first. Like counts and the
// viewer's like state are computed per row at read time.
func (s *Store) ListPosts(ctx context.Context, viewer string, limit int) ([]models.PostView, error) {
	posts := []models.PostView{}
	err := s.db.SelectContext(ctx, &posts, s.rebind(`
		SELECT p.id, p.user_id, p.title, p.content, p.created_at,
		       u.email AS author_email,
		       u.first_name AS author_first_name,
		       u.last_name AS author_last_name,
		       (SELECT COUNT(*) FROM post_likes pl WHERE pl.post_id = p.id) AS likes,
		       EXISTS (SELECT 1 FROM post_likes pl2 WHERE pl2.post_id = p.id AND pl2.user_id = ?) AS liked
		FROM posts p
		LEFT JOIN users u ON u.id = p.user_id
		ORDER BY p.created_at DESC
		LIMIT ?`), viewer, limit)
	if err != nil {
		return nil, errors.Wrap(err, "listing posts")
	}

	for i := range posts {
		posts[i].CanDelete = posts[i].UserID == viewer
	}
	return posts, nil
}

func (s *Store) postExists(ctx context.Context, q sqlx.QueryerContext, id string) error {
	var found string
	err := sqlx.GetContext(ctx, q, &found, s.rebind(`SELECT id FROM posts WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(postEntity)
	}
	return errors.Wrap(err, "loading post")
}

// DeletePost removes the post and its likes in one transaction.
// Comments on the post are left in place.
func (s *Store) DeletePost(ctx context.Context, owner, id string) error {
	return database.RunInTx(ctx, s.db, func(tx *sqlx.Tx) error {
		if err := s.checkOwner(ctx, tx, postEntity, id, owner); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM post_likes WHERE post_id = ?`), id); err != nil {
			return errors.Wrap(err, "deleting post likes")
		}
		_, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM posts WHERE id = ?`), id)
		return errors.Wrap(err, "deleting post")
	})
}

// LikePost ensures owner likes the post; liking twice is a no-op.
func (s *Store) LikePost(ctx context.Context, owner, postID string) error {
	if err := s.postExists(ctx, s.db, postID); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO post_likes (id, post_id, user_id, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (post_id, user_id) DO NOTHING`), newID(), postID, owner, s.stamp())
	return errors.Wrap(err, "inserting like")
}

// UnlikePost removes the owner's like if present.
func (s *Store) UnlikePost(ctx context.Context, owner, postID string) error {
	_, err := s.db.ExecContext(ctx, s.rebind(`DELETE FROM post_likes WHERE post_id = ? AND user_id = ?`), postID, owner)
	return errors.Wrap(err, "deleting like")
}

func (s *Store) CountLikes(ctx context.Context, postID string) (int, error) {
	var n int
	err := s.db.GetContext(ctx, &n, s.rebind(`SELECT COUNT(*) FROM post_likes WHERE post_id = ?`), postID)
	return n, errors.Wrap(err, "counting likes")
}
