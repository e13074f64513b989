package handlers

import (
	"net/http"

	"github.com/AnshRaj112/studentflow-backend/internal/respond"
	"github.com/AnshRaj112/studentflow-backend/internal/services"
)

type registerRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func newTokenResponse(token string) tokenResponse {
	return tokenResponse{AccessToken: token, TokenType: "bearer"}
}

// Register creates an account and returns an access token (201).
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := h.decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	ctx, cancel := dbContext(r)
	defer cancel()

	token, err := h.auth.Register(ctx, services.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, newTokenResponse(token))
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := h.decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	ctx, cancel := dbContext(r)
	defer cancel()

	token, err := h.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, newTokenResponse(token))
}

// Me returns the caller's profile.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := dbContext(r)
	defer cancel()

	user, err := h.auth.Me(ctx, owner(r))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, user)
}
