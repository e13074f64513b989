package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"

	"github.com/AnshRaj112/studentflow-backend/internal/apperr"
	"github.com/AnshRaj112/studentflow-backend/internal/models"
	"github.com/AnshRaj112/studentflow-backend/internal/respond"
	"github.com/AnshRaj112/studentflow-backend/internal/services"
	"github.com/AnshRaj112/studentflow-backend/internal/store"
)

type flashcardRequest struct {
	Question   string  `json:"question" validate:"required"`
	Answer     string  `json:"answer" validate:"required"`
	Subject    *string `json:"subject"`
	Difficulty string  `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	NoteID     *string `json:"note_id"`
}

type reviewRequest struct {
	Confidence *int `json:"confidence" validate:"required,min=0,max=5"`
}

type generateRequest struct {
	NoteID string `json:"note_id" validate:"required"`
	Count  int    `json:"count"`
}

type generateResponse struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message"`
	Flashcards []models.Flashcard `json:"flashcards"`
}

func (h *Handler) decodeFlashcard(r *http.Request) (store.FlashcardInput, error) {
	var req flashcardRequest
	if err := h.decode(r, &req); err != nil {
		return store.FlashcardInput{}, err
	}
	req.Question = strings.TrimSpace(req.Question)
	req.Answer = strings.TrimSpace(req.Answer)
	if err := h.check(&req); err != nil {
		return store.FlashcardInput{}, err
	}

	return store.FlashcardInput{
		Question:   req.Question,
		Answer:     req.Answer,
		Subject:    trimmed(req.Subject),
		Difficulty: req.Difficulty,
		NoteID:     trimmed(req.NoteID),
	}, nil
}

// ListFlashcards accepts ?subject and ?limit.
func (h *Handler) ListFlashcards(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	ctx, cancel := dbContext(r)
	defer cancel()

	cards, err := h.store.ListFlashcards(ctx, owner(r), strings.TrimSpace(r.URL.Query().Get("subject")), limit)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, cards)
}

func (h *Handler) CreateFlashcard(w http.ResponseWriter, r *http.Request) {
	in, err := h.decodeFlashcard(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	ctx, cancel := dbContext(r)
	defer cancel()

	card, err := h.store.CreateFlashcard(ctx, owner(r), in)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.Created(w, card.ID)
}

func (h *Handler) UpdateFlashcard(w http.ResponseWriter, r *http.Request) {
	in, err := h.decodeFlashcard(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	ctx, cancel := dbContext(r)
	defer cancel()

	if err := h.store.UpdateFlashcard(ctx, owner(r), chi.URLParam(r, "id"), in); err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.Success(w)
}

func (h *Handler) DeleteFlashcard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := dbContext(r)
	defer cancel()

	if err := h.store.DeleteFlashcard(ctx, owner(r), chi.URLParam(r, "id")); err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.Success(w)
}

// ReviewFlashcard records a review and returns the updated card.
func (h *Handler) ReviewFlashcard(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := h.decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	ctx, cancel := dbContext(r)
	defer cancel()

	card, err := h.store.ReviewFlashcard(ctx, owner(r), chi.URLParam(r, "id"), *req.Confidence)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, card)
}

// GenerateFlashcards fails with a server error when AI is not configured.
func (h *Handler) GenerateFlashcards(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := h.decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	cards, err := h.ai.GenerateFlashcards(r.Context(), owner(r), strings.TrimSpace(req.NoteID), req.Count)
	if errors.Is(err, services.ErrAIUnavailable) {
		err = apperr.Wrap(apperr.ServerError, apperr.Message(err), err)
	}
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, generateResponse{
		Success:    true,
		Message:    fmt.Sprintf("Generated %d flashcards", len(cards)),
		Flashcards: cards,
	})
}
