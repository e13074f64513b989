package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnshRaj112/studentflow-backend/internal/apperr"
)

func TestNotes_CRUD(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	alice := mustUser(t, s, "alice@example.com")

	first, err := s.CreateNote(ctx, alice, NoteInput{Title: "Cells", Content: "Mitochondria", Subject: strPtr("Biology")})
	require.NoError(t, err)
	second, err := s.CreateNote(ctx, alice, NoteInput{Title: "Limits", Content: "epsilon-delta"})
	require.NoError(t, err)

	notes, err := s.ListNotes(ctx, alice, DefaultLimit)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, second.ID, notes[0].ID)
	assert.Equal(t, first.ID, notes[1].ID)
	assert.Nil(t, notes[0].Subject)
	assert.Equal(t, "Biology", *notes[1].Subject)

	limited, err := s.ListNotes(ctx, alice, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	require.NoError(t, s.UpdateNote(ctx, alice, first.ID, NoteInput{Title: "Cells v2", Content: "ATP"}))
	got, err := s.GetNote(ctx, alice, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cells v2", got.Title)
	assert.Nil(t, got.Subject)

	require.NoError(t, s.DeleteNote(ctx, alice, first.ID))
	_, err = s.GetNote(ctx, alice, first.ID)
	assert.True(t, apperr.Is(err, apperr.NotFound))
}

func TestNotes_Ownership(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	alice := mustUser(t, s, "alice@example.com")
	bob := mustUser(t, s, "bob@example.com")

	note, err := s.CreateNote(ctx, alice, NoteInput{Title: "Private", Content: "mine"})
	require.NoError(t, err)

	_, err = s.GetNote(ctx, bob, note.ID)
	assert.True(t, apperr.Is(err, apperr.NotFound))

	err = s.UpdateNote(ctx, bob, note.ID, NoteInput{Title: "x", Content: "y"})
	assert.True(t, apperr.Is(err, apperr.Forbidden))

	err = s.DeleteNote(ctx, bob, note.ID)
	assert.True(t, apperr.Is(err, apperr.Forbidden))

	err = s.DeleteNote(ctx, alice, "does-not-exist")
	assert.True(t, apperr.Is(err, apperr.NotFound))

	bobNotes, err := s.ListNotes(ctx, bob, DefaultLimit)
	require.NoError(t, err)
	assert.Empty(t, bobNotes)
}
