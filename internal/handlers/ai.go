package handlers

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/AnshRaj112/studentflow-backend/internal/apperr"
	"github.com/AnshRaj112/studentflow-backend/internal/respond"
	"github.com/AnshRaj112/studentflow-backend/internal/services"
)

const (
	aiStatusOK          = "ok"
	aiStatusUnavailable = "unavailable"
)

type summarizeRequest struct {
	Content string `json:"content" validate:"required"`
}

type summarizeResponse struct {
	Summary string `json:"summary"`
	Status  string `json:"status"`
}

type studyPlanRequest struct {
	Subject    string   `json:"subject"`
	Topics     []string `json:"topics"`
	Timeline   string   `json:"timeline"`
	Difficulty string   `json:"difficulty"`
}

type studyPlanResponse struct {
	StudyPlan     string `json:"study_plan"`
	StudyPlanHTML string `json:"study_plan_html"`
	Status        string `json:"status"`
}

type chatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Message string     `json:"message"`
	Context []chatTurn `json:"context"`
}

type chatResponse struct {
	Response string `json:"response"`
}

// SummarizeNotes answers with a warning text instead of an error when AI is not configured.
func (h *Handler) SummarizeNotes(w http.ResponseWriter, r *http.Request) {
	var req summarizeRequest
	if err := h.decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}
	req.Content = strings.TrimSpace(req.Content)
	if err := h.check(&req); err != nil {
		respond.Error(w, r, err)
		return
	}

	summary, err := h.ai.Summarize(r.Context(), req.Content)
	switch {
	case errors.Is(err, services.ErrAIUnavailable):
		respond.JSON(w, http.StatusOK, summarizeResponse{Summary: services.SummaryUnavailableText, Status: aiStatusUnavailable})
	case err != nil:
		respond.Error(w, r, err)
	default:
		respond.JSON(w, http.StatusOK, summarizeResponse{Summary: summary, Status: aiStatusOK})
	}
}

func (h *Handler) StudyPlan(w http.ResponseWriter, r *http.Request) {
	var req studyPlanRequest
	if err := h.decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	plan, err := h.ai.StudyPlan(r.Context(), services.StudyPlanRequest{
		Subject:    req.Subject,
		Topics:     req.Topics,
		Timeline:   req.Timeline,
		Difficulty: req.Difficulty,
	})
	switch {
	case errors.Is(err, services.ErrAIUnavailable):
		respond.JSON(w, http.StatusOK, studyPlanResponse{
			StudyPlan:     services.StudyPlanUnavailableText,
			StudyPlanHTML: services.StudyPlanUnavailableText,
			Status:        aiStatusUnavailable,
		})
	case err != nil:
		respond.Error(w, r, err)
	default:
		respond.JSON(w, http.StatusOK, studyPlanResponse{
			StudyPlan:     plan.Markdown,
			StudyPlanHTML: plan.HTML,
			Status:        aiStatusOK,
		})
	}
}

// Chat reports a server error when AI is not configured.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	if !h.ai.Enabled() {
		err := services.ErrAIUnavailable
		respond.Error(w, r, apperr.Wrap(apperr.ServerError, apperr.Message(err), err))
		return
	}

	var req chatRequest
	if err := h.decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	history := make([]services.ChatTurn, 0, len(req.Context))
	for _, turn := range req.Context {
		history = append(history, services.ChatTurn{Role: turn.Role, Content: turn.Content})
	}

	answer, err := h.ai.Chat(r.Context(), req.Message, history)
	if errors.Is(err, services.ErrAIUnavailable) {
		err = apperr.Wrap(apperr.ServerError, apperr.Message(err), err)
	}
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, chatResponse{Response: answer})
}
