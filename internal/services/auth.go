package services

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/AnshRaj112/studentflow-backend/internal/apperr"
	"github.com/AnshRaj112/studentflow-backend/internal/models"
	"github.com/AnshRaj112/studentflow-backend/pkg/utils"
)

type UserStore interface {
	CreateUser(ctx context.Context, email, passwordHash, firstName, lastName string) (*models.User, error)
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	UserByID(ctx context.Context, id string) (*models.User, error)
}

type AuthService struct {
	users  UserStore
	tokens *TokenIssuer
}

func NewAuthService(users UserStore, tokens *TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates the account and returns an access token for it.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (string, error) {
	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return "", errors.Wrap(err, "hashing password")
	}

	user, err := s.users.CreateUser(ctx, normalizeEmail(in.Email), hash,
		strings.TrimSpace(in.FirstName), strings.TrimSpace(in.LastName))
	if err != nil {
		return "", err
	}
	return s.tokens.Issue(user.ID)
}

// Login never distinguishes an unknown email from a wrong password.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.UserByEmail(ctx, normalizeEmail(email))
	if apperr.Is(err, apperr.NotFound) {
		return "", apperr.Unauthenticated("Invalid credentials")
	}
	if err != nil {
		return "", err
	}

	ok, err := utils.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return "", errors.Wrapf(err, "verifying password for user %s", user.ID)
	}
	if !ok {
		return "", apperr.Unauthenticated("Invalid credentials")
	}
	return s.tokens.Issue(user.ID)
}

// Authenticate verifies token and confirms its user still exists.
func (s *AuthService) Authenticate(ctx context.Context, token string) (string, error) {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return "", err
	}
	if _, err := s.users.UserByID(ctx, userID); err != nil {
		if apperr.Is(err, apperr.NotFound) {
			return "", apperr.Unauthenticated("User not found")
		}
		return "", err
	}
	return userID, nil
}

func (s *AuthService) Me(ctx context.Context, userID string) (*models.User, error) {
	return s.users.UserByID(ctx, userID)
}
