package handlers

import (
	"net/http"

	"github.com/AnshRaj112/studentflow-backend/internal/respond"
)

type sessionRequest struct {
	Duration int `json:"duration" validate:"min=1"`
}

func (h *Handler) LogSession(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if err := h.decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	ctx, cancel := dbContext(r)
	defer cancel()

	session, err := h.study.LogSession(ctx, owner(r), req.Duration)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, session)
}

func (h *Handler) Streak(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := dbContext(r)
	defer cancel()

	streak, err := h.study.Streak(ctx, owner(r))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, streak)
}

func (h *Handler) Analytics(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := dbContext(r)
	defer cancel()

	analytics, err := h.study.Analytics(ctx, owner(r))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, analytics)
}
