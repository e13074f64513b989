package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/AnshRaj112/studentflow-backend/internal/respond"
	"github.com/AnshRaj112/studentflow-backend/internal/store"
)

type noteRequest struct {
	Title   string  `json:"title" validate:"required"`
	Content string  `json:"content" validate:"required"`
	Subject *string `json:"subject"`
}

func (h *Handler) decodeNote(r *http.Request) (store.NoteInput, error) {
	var req noteRequest
	if err := h.decode(r, &req); err != nil {
		return store.NoteInput{}, err
	}
	req.Title = strings.TrimSpace(req.Title)
	if err := h.check(&req); err != nil {
		return store.NoteInput{}, err
	}
	return store.NoteInput{Title: req.Title, Content: req.Content, Subject: trimmed(req.Subject)}, nil
}

func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	ctx, cancel := dbContext(r)
	defer cancel()

	notes, err := h.store.ListNotes(ctx, owner(r), limit)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, notes)
}

func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	in, err := h.decodeNote(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	ctx, cancel := dbContext(r)
	defer cancel()

	note, err := h.store.CreateNote(ctx, owner(r), in)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.Created(w, note.ID)
}

func (h *Handler) GetNote(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := dbContext(r)
	defer cancel()

	note, err := h.store.GetNote(ctx, owner(r), chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, note)
}

func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	in, err := h.decodeNote(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	ctx, cancel := dbContext(r)
	defer cancel()

	if err := h.store.UpdateNote(ctx, owner(r), chi.URLParam(r, "id"), in); err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.Success(w)
}

func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := dbContext(r)
	defer cancel()

	if err := h.store.DeleteNote(ctx, owner(r), chi.URLParam(r, "id")); err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.Success(w)
}
