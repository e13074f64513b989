package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnshRaj112/studentflow-backend/internal/apperr"
)

func TestComments(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	alice := mustUser(t, s, "alice@example.com")
	bob := mustUser(t, s, "bob@example.com")

	post, err := s.CreatePost(ctx, alice, "Q", "What is entropy?")
	require.NoError(t, err)
	other, err := s.CreatePost(ctx, alice, "Q2", "Another")
	require.NoError(t, err)

	first, err := s.CreateComment(ctx, bob, post.ID, "Disorder")
	require.NoError(t, err)
	second, err := s.CreateComment(ctx, alice, post.ID, "Thanks")
	require.NoError(t, err)

	comments, err := s.ListComments(ctx, alice, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, first.ID, comments[0].ID)
	assert.False(t, comments[0].CanDelete)
	assert.Equal(t, "bob@example.com", *comments[0].AuthorEmail)
	assert.Equal(t, second.ID, comments[1].ID)
	assert.True(t, comments[1].CanDelete)

	err = s.DeleteComment(ctx, alice, post.ID, first.ID)
	assert.True(t, apperr.Is(err, apperr.Forbidden))

	err = s.DeleteComment(ctx, bob, other.ID, first.ID)
	assert.True(t, apperr.Is(err, apperr.NotFound))
	assert.Equal(t, "Comment not found", apperr.Message(err))

	require.NoError(t, s.DeleteComment(ctx, bob, post.ID, first.ID))
	comments, err = s.ListComments(ctx, alice, post.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 1)
}

func TestCreateComment_MissingPost(t *testing.T) {
	s := newTestStore(t)
	alice := mustUser(t, s, "alice@example.com")

	_, err := s.CreateComment(context.Background(), alice, "ghost", "hello?")

	assert.True(t, apperr.Is(err, apperr.NotFound))
}
