package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/AnshRaj112/studentflow-backend/internal/respond"
	"github.com/AnshRaj112/studentflow-backend/internal/store"
)

type moodRequest struct {
	MoodScore   int     `json:"mood_score" validate:"required,min=1,max=5"`
	EnergyLevel *int    `json:"energy_level" validate:"omitempty,min=1,max=5"`
	StressLevel *int    `json:"stress_level" validate:"omitempty,min=1,max=5"`
	Notes       *string `json:"notes"`
}

type moodStreakResponse struct {
	CurrentStreak int `json:"current_streak"`
}

func (h *Handler) ListMoods(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	ctx, cancel := dbContext(r)
	defer cancel()

	moods, err := h.store.ListMoods(ctx, owner(r), limit)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, moods)
}

func (h *Handler) CreateMood(w http.ResponseWriter, r *http.Request) {
	var req moodRequest
	if err := h.decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	ctx, cancel := dbContext(r)
	defer cancel()

	mood, err := h.store.CreateMood(ctx, owner(r), store.MoodInput{
		MoodScore:   req.MoodScore,
		EnergyLevel: req.EnergyLevel,
		StressLevel: req.StressLevel,
		Notes:       trimmed(req.Notes),
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.Created(w, mood.ID)
}

func (h *Handler) DeleteMood(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := dbContext(r)
	defer cancel()

	if err := h.store.DeleteMood(ctx, owner(r), chi.URLParam(r, "id")); err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.Success(w)
}

func (h *Handler) MoodStreak(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := dbContext(r)
	defer cancel()

	streak, err := h.study.MoodStreak(ctx, owner(r))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, moodStreakResponse{CurrentStreak: streak})
}
