// Package store holds all SQL access for the relational store.
package store

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/AnshRaj112/studentflow-backend/internal/apperr"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// Store scopes every per-user query to an owner id.
// Queries are written with ? placeholders and rebound for the active driver.
type Store struct {
	db  *sqlx.DB
	now func() time.Time
}

func New(db *sqlx.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// SetClock replaces the clock used to stamp created_at and review times.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

func (s *Store) stamp() time.Time {
	return s.now().UTC()
}

func (s *Store) rebind(query string) string {
	return s.db.Rebind(query)
}

func newID() string {
	return uuid.NewString()
}

// entity names a table whose rows carry a user_id owner column.
type entity struct {
	table string
	name  string
}

var (
	noteEntity      = entity{table: "notes", name: "Note"}
	taskEntity      = entity{table: "tasks", name: "Task"}
	postEntity      = entity{table: "posts", name: "Post"}
	commentEntity   = entity{table: "post_comments", name: "Comment"}
	moodEntity      = entity{table: "mood_logs", name: "Mood log"}
	flashcardEntity = entity{table: "flashcards", name: "Flashcard"}
)

func notFound(ent entity) error {
	return apperr.Missing(ent.name + " not found")
}

// checkOwner loads the owner of ent/id and fails with NotFound when the row
// is absent or Forbidden when it belongs to someone else.
func (s *Store) checkOwner(ctx context.Context, q sqlx.QueryerContext, ent entity, id, owner string) error {
	var userID string
	err := sqlx.GetContext(ctx, q, &userID, s.rebind(`SELECT user_id FROM `+ent.table+` WHERE id = ?`), id)
	return resolveOwner(ent, userID, owner, err)
}

func resolveOwner(ent entity, userID, owner string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(ent)
	}
	if err != nil {
		return errors.Wrapf(err, "loading %s owner", ent.table)
	}
	if userID != owner {
		return apperr.NotAllowed("Not allowed to modify this " + strings.ToLower(ent.name))
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
