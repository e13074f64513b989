package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnshRaj112/studentflow-backend/internal/apperr"
	"github.com/AnshRaj112/studentflow-backend/internal/models"
)

func TestLikePost_Idempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	alice := mustUser(t, s, "alice@example.com")
	bob := mustUser(t, s, "bob@example.com")

	post, err := s.CreatePost(ctx, alice, "Study group", "Anyone up for calculus?")
	require.NoError(t, err)

	require.NoError(t, s.LikePost(ctx, bob, post.ID))
	require.NoError(t, s.LikePost(ctx, bob, post.ID))

	n, err := s.CountLikes(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	var likes []models.PostLike
	require.NoError(t, s.db.SelectContext(ctx, &likes, s.rebind(`SELECT * FROM post_likes WHERE post_id = ?`), post.ID))
	require.Len(t, likes, 1)
	assert.Equal(t, bob, likes[0].UserID)
	assert.Equal(t, post.ID, likes[0].PostID)
	assert.True(t, likes[0].CreatedAt.Equal(post.CreatedAt.Add(time.Second)), "second like leaves the first row untouched")

	require.NoError(t, s.UnlikePost(ctx, bob, post.ID))
	require.NoError(t, s.UnlikePost(ctx, bob, post.ID))
	n, err = s.CountLikes(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestLikePost_MissingPost(t *testing.T) {
	s := newTestStore(t)
	alice := mustUser(t, s, "alice@example.com")

	err := s.LikePost(context.Background(), alice, "nope")

	assert.True(t, apperr.Is(err, apperr.NotFound))
	assert.Equal(t, "Post not found", apperr.Message(err))
}

func TestListPosts_ViewerProjection(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	alice := mustUser(t, s, "alice@example.com")
	bob := mustUser(t, s, "bob@example.com")

	older, err := s.CreatePost(ctx, alice, "First", "hello")
	require.NoError(t, err)
	newer, err := s.CreatePost(ctx, bob, "Second", "world")
	require.NoError(t, err)
	require.NoError(t, s.LikePost(ctx, bob, older.ID))
	require.NoError(t, s.LikePost(ctx, alice, older.ID))

	posts, err := s.ListPosts(ctx, bob, DefaultLimit)
	require.NoError(t, err)
	require.Len(t, posts, 2)

	assert.Equal(t, newer.ID, posts[0].ID)
	assert.True(t, posts[0].CanDelete)
	assert.False(t, posts[0].Liked)
	assert.Equal(t, 0, posts[0].Likes)

	assert.Equal(t, older.ID, posts[1].ID)
	assert.False(t, posts[1].CanDelete)
	assert.True(t, posts[1].Liked)
	assert.Equal(t, 2, posts[1].Likes)
	require.NotNil(t, posts[1].AuthorEmail)
	assert.Equal(t, "alice@example.com", *posts[1].AuthorEmail)
	assert.Equal(t, alice, posts[1].UserID)
}

func TestDeletePost(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	alice := mustUser(t, s, "alice@example.com")
	bob := mustUser(t, s, "bob@example.com")

	post, err := s.CreatePost(ctx, alice, "Title", "Body")
	require.NoError(t, err)
	require.NoError(t, s.LikePost(ctx, alice, post.ID))
	require.NoError(t, s.LikePost(ctx, bob, post.ID))
	_, err = s.CreateComment(ctx, bob, post.ID, "nice")
	require.NoError(t, err)

	err = s.DeletePost(ctx, bob, post.ID)
	assert.True(t, apperr.Is(err, apperr.Forbidden))
	n, err := s.CountLikes(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.NoError(t, s.DeletePost(ctx, alice, post.ID))

	n, err = s.CountLikes(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	posts, err := s.ListPosts(ctx, alice, DefaultLimit)
	require.NoError(t, err)
	assert.Empty(t, posts)

	// comments are not cascaded
	comments, err := s.ListComments(ctx, alice, post.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 1)

	assert.True(t, apperr.Is(s.DeletePost(ctx, alice, post.ID), apperr.NotFound))
}
