package store

import (
	"context"

	"github.com/pkg/errors"

	"github.com/AnshRaj112/studentflow-backend/internal/models"
)

// ListComments returns a post's comments oldest-first.
func (s *Store) ListComments(ctx context.Context, viewer, postID string) ([]models.CommentView, error) {
	comments := []models.CommentView{}
	err := s.db.SelectContext(ctx, &comments, s.rebind(`
		SELECT c.id, c.post_id, c.user_id, c.content, c.created_at,
		       u.email AS author_email,
		       u.first_name AS author_first_name,
		       u.last_name AS author_last_name
		FROM post_comments c
		LEFT JOIN users u ON u.id = c.user_id
		WHERE c.post_id = ?
		ORDER BY c.created_at ASC`), postID)
	if err != nil {
		return nil, errors.Wrap(err, "listing comments")
	}

	for i := range comments {
		comments[i].CanDelete = comments[i].UserID == viewer
	}
	return comments, nil
}

func (s *Store) CreateComment(ctx context.Context, owner, postID, content string) (*models.PostComment, error) {
	if err := s.postExists(ctx, s.db, postID); err != nil {
		return nil, err
	}

	comment := &models.PostComment{
		ID:        newID(),
		PostID:    postID,
		UserID:    owner,
		Content:   content,
		CreatedAt: s.stamp(),
	}

	_, err := s.db.NamedExecContext(ctx, `
		INSERT INTO post_comments (id, post_id, user_id, content, created_at)
		VALUES (:id, :post_id, :user_id, :content, :created_at)`, comment)
	if err != nil {
		return nil, errors.Wrap(err, "inserting comment")
	}
	return comment, nil
}

// DeleteComment only matches a comment under the given post.
func (s *Store) DeleteComment(ctx context.Context, owner, postID, commentID string) error {
	var userID string
	err := s.db.GetContext(ctx, &userID, s.rebind(`
		SELECT user_id FROM post_comments WHERE id = ? AND post_id = ?`), commentID, postID)
	if err := resolveOwner(commentEntity, userID, owner, err); err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, s.rebind(`DELETE FROM post_comments WHERE id = ?`), commentID)
	return errors.Wrap(err, "deleting comment")
}
