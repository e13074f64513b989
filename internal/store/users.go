package store

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/AnshRaj112/studentflow-backend/internal/apperr"
	"github.com/AnshRaj112/studentflow-backend/internal/models"
)

// CreateUser inserts a user; a taken email is a Conflict.
func (s *Store) CreateUser(ctx context.Context, email, passwordHash, firstName, lastName string) (*models.User, error) {
	user := &models.User{
		ID:           newID(),
		Email:        email,
		PasswordHash: passwordHash,
		FirstName:    firstName,
		LastName:     lastName,
		CreatedAt:    s.stamp(),
	}

	_, err := s.db.NamedExecContext(ctx, `
		INSERT INTO users (id, email, password_hash, first_name, last_name, created_at)
		VALUES (:id, :email, :password_hash, :first_name, :last_name, :created_at)`, user)
	if isUniqueViolation(err) {
		return nil, apperr.Duplicate("Email already exists")
	}
	if err != nil {
		return nil, errors.Wrap(err, "inserting user")
	}
	return user, nil
}

func (s *Store) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getUser(ctx, `SELECT * FROM users WHERE email = ?`, email)
}

func (s *Store) UserByID(ctx context.Context, id string) (*models.User, error) {
	return s.getUser(ctx, `SELECT * FROM users WHERE id = ?`, id)
}

func (s *Store) getUser(ctx context.Context, query, arg string) (*models.User, error) {
	var user models.User
	err := s.db.GetContext(ctx, &user, s.rebind(query), arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.Missing("User not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "loading user")
	}
	return &user, nil
}
