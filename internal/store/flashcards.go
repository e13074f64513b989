package store

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/AnshRaj112/studentflow-backend/internal/database"
	"github.com/AnshRaj112/studentflow-backend/internal/models"
)

type FlashcardInput struct {
	Question   string
	Answer     string
	Subject    *string
	Difficulty string
	NoteID     *string
}

func (s *Store) newFlashcard(owner string, in FlashcardInput) *models.Flashcard {
	if in.Difficulty == "" {
		in.Difficulty = models.DifficultyMedium
	}
	return &models.Flashcard{
		ID:         newID(),
		UserID:     owner,
		NoteID:     in.NoteID,
		Question:   in.Question,
		Answer:     in.Answer,
		Subject:    in.Subject,
		Difficulty: in.Difficulty,
		CreatedAt:  s.stamp(),
	}
}

const insertFlashcard = `
	INSERT INTO flashcards (id, user_id, source_note_id, question, answer, subject, difficulty,
	                        last_reviewed, times_reviewed, confidence_level, created_at)
	VALUES (:id, :user_id, :source_note_id, :question, :answer, :subject, :difficulty,
	        :last_reviewed, :times_reviewed, :confidence_level, :created_at)`

// CreateFlashcard inserts a card; a source note, when given, must belong to owner.
func (s *Store) CreateFlashcard(ctx context.Context, owner string, in FlashcardInput) (*models.Flashcard, error) {
	if in.NoteID != nil {
		if _, err := s.GetNote(ctx, owner, *in.NoteID); err != nil {
			return nil, err
		}
	}

	card := s.newFlashcard(owner, in)
	if _, err := s.db.NamedExecContext(ctx, insertFlashcard, card); err != nil {
		return nil, errors.Wrap(err, "inserting flashcard")
	}
	return card, nil
}

// CreateFlashcards inserts a batch of cards atomically.
func (s *Store) CreateFlashcards(ctx context.Context, owner string, inputs []FlashcardInput) ([]models.Flashcard, error) {
	cards := make([]models.Flashcard, 0, len(inputs))
	err := database.RunInTx(ctx, s.db, func(tx *sqlx.Tx) error {
		for _, in := range inputs {
			card := s.newFlashcard(owner, in)
			if _, err := tx.NamedExecContext(ctx, insertFlashcard, card); err != nil {
				return errors.Wrap(err, "inserting generated flashcard")
			}
			cards = append(cards, *card)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cards, nil
}

// ListFlashcards returns the owner's cards newest-first, optionally filtered by subject.
func (s *Store) ListFlashcards(ctx context.Context, owner, subject string, limit int) ([]models.Flashcard, error) {
	query := `SELECT * FROM flashcards WHERE user_id = ?`
	args := []interface{}{owner}
	if subject != "" {
		query += ` AND subject = ?`
		args = append(args, subject)
	}
	query += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, limit)

	cards := []models.Flashcard{}
	if err := s.db.SelectContext(ctx, &cards, s.rebind(query), args...); err != nil {
		return nil, errors.Wrap(err, "listing flashcards")
	}
	return cards, nil
}

func (s *Store) GetFlashcard(ctx context.Context, owner, id string) (*models.Flashcard, error) {
	var card models.Flashcard
	err := s.db.GetContext(ctx, &card, s.rebind(`SELECT * FROM flashcards WHERE id = ? AND user_id = ?`), id, owner)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(flashcardEntity)
	}
	if err != nil {
		return nil, errors.Wrap(err, "loading flashcard")
	}
	return &card, nil
}

func (s *Store) UpdateFlashcard(ctx context.Context, owner, id string, in FlashcardInput) error {
	if err := s.checkOwner(ctx, s.db, flashcardEntity, id, owner); err != nil {
		return err
	}
	if in.NoteID != nil {
		if _, err := s.GetNote(ctx, owner, *in.NoteID); err != nil {
			return err
		}
	}
	if in.Difficulty == "" {
		in.Difficulty = models.DifficultyMedium
	}

	_, err := s.db.ExecContext(ctx, s.rebind(`
		UPDATE flashcards SET question = ?, answer = ?, subject = ?, difficulty = ?, source_note_id = ?
		WHERE id = ? AND user_id = ?`),
		in.Question, in.Answer, in.Subject, in.Difficulty, in.NoteID, id, owner)
	return errors.Wrap(err, "updating flashcard")
}

func (s *Store) DeleteFlashcard(ctx context.Context, owner, id string) error {
	if err := s.checkOwner(ctx, s.db, flashcardEntity, id, owner); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, s.rebind(`DELETE FROM flashcards WHERE id = ? AND user_id = ?`), id, owner)
	return errors.Wrap(err, "deleting flashcard")
}

// ReviewFlashcard stamps last_reviewed, bumps times_reviewed and overwrites confidence.
func (s *Store) ReviewFlashcard(ctx context.Context, owner, id string, confidence int) (*models.Flashcard, error) {
	if err := s.checkOwner(ctx, s.db, flashcardEntity, id, owner); err != nil {
		return nil, err
	}

	_, err := s.db.ExecContext(ctx, s.rebind(`
		UPDATE flashcards
		SET last_reviewed = ?, times_reviewed = times_reviewed + 1, confidence_level = ?
		WHERE id = ? AND user_id = ?`), s.stamp(), confidence, id, owner)
	if err != nil {
		return nil, errors.Wrap(err, "reviewing flashcard")
	}
	return s.GetFlashcard(ctx, owner, id)
}
