package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/AnshRaj112/studentflow-backend/internal/respond"
	"github.com/AnshRaj112/studentflow-backend/internal/store"
)

type taskRequest struct {
	Title         string  `json:"title" validate:"required"`
	Description   *string `json:"description"`
	Subject       *string `json:"subject"`
	Priority      string  `json:"priority"`
	Status        string  `json:"status"`
	DueDate       *string `json:"due_date"`
	EstimatedTime *int    `json:"estimated_time" validate:"omitempty,gte=0"`
}

func (h *Handler) decodeTask(r *http.Request) (store.TaskInput, error) {
	var req taskRequest
	if err := h.decode(r, &req); err != nil {
		return store.TaskInput{}, err
	}
	req.Title = strings.TrimSpace(req.Title)
	if err := h.check(&req); err != nil {
		return store.TaskInput{}, err
	}

	return store.TaskInput{
		Title:            req.Title,
		Description:      req.Description,
		Subject:          trimmed(req.Subject),
		Priority:         strings.TrimSpace(req.Priority),
		Status:           strings.TrimSpace(req.Status),
		DueDate:          trimmed(req.DueDate),
		EstimatedMinutes: req.EstimatedTime,
	}, nil
}

// ListTasks accepts ?status (default "all") and ?limit.
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	ctx, cancel := dbContext(r)
	defer cancel()

	tasks, err := h.store.ListTasks(ctx, owner(r), strings.TrimSpace(r.URL.Query().Get("status")), limit)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, tasks)
}

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	in, err := h.decodeTask(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	ctx, cancel := dbContext(r)
	defer cancel()

	task, err := h.store.CreateTask(ctx, owner(r), in)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.Created(w, task.ID)
}

func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	in, err := h.decodeTask(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	ctx, cancel := dbContext(r)
	defer cancel()

	if err := h.store.UpdateTask(ctx, owner(r), chi.URLParam(r, "id"), in); err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.Success(w)
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := dbContext(r)
	defer cancel()

	if err := h.store.DeleteTask(ctx, owner(r), chi.URLParam(r, "id")); err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.Success(w)
}
