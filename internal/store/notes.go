package store

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/AnshRaj112/studentflow-backend/internal/models"
)

type NoteInput struct {
	Title   string
	Content string
	Subject *string
}

func (s *Store) CreateNote(ctx context.Context, owner string, in NoteInput) (*models.Note, error) {
	note := &models.Note{
		ID:        newID(),
		UserID:    owner,
		Title:     in.Title,
		Content:   in.Content,
		Subject:   in.Subject,
		CreatedAt: s.stamp(),
	}

	_, err := s.db.NamedExecContext(ctx, `
		INSERT INTO notes (id, user_id, title, content, subject, created_at)
		VALUES (:id, :user_id, :title, :content, :subject, :created_at)`, note)
	if err != nil {
		return nil, errors.Wrap(err, "inserting note")
	}
	return note, nil
}

// ListNotes returns the owner's notes newest-first.
func (s *Store) ListNotes(ctx context.Context, owner string, limit int) ([]models.Note, error) {
	notes := []models.Note{}
	err := s.db.SelectContext(ctx, &notes, s.rebind(`
		SELECT * FROM notes WHERE user_id = ?
		ORDER BY created_at DESC LIMIT ?`), owner, limit)
	if err != nil {
		return nil, errors.Wrap(err, "listing notes")
	}
	return notes, nil
}

// GetNote returns NotFound for notes owned by someone else.
func (s *Store) GetNote(ctx context.Context, owner, id string) (*models.Note, error) {
	var note models.Note
	err := s.db.GetContext(ctx, &note, s.rebind(`SELECT * FROM notes WHERE id = ? AND user_id = ?`), id, owner)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(noteEntity)
	}
	if err != nil {
		return nil, errors.Wrap(err, "loading note")
	}
	return &note, nil
}

func (s *Store) UpdateNote(ctx context.Context, owner, id string, in NoteInput) error {
	if err := s.checkOwner(ctx, s.db, noteEntity, id, owner); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, s.rebind(`
		UPDATE notes SET title = ?, content = ?, subject = ? WHERE id = ? AND user_id = ?`),
		in.Title, in.Content, in.Subject, id, owner)
	return errors.Wrap(err, "updating note")
}

func (s *Store) DeleteNote(ctx context.Context, owner, id string) error {
	if err := s.checkOwner(ctx, s.db, noteEntity, id, owner); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, s.rebind(`DELETE FROM notes WHERE id = ? AND user_id = ?`), id, owner)
	return errors.Wrap(err, "deleting note")
}
