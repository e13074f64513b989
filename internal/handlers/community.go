package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/AnshRaj112/studentflow-backend/internal/models"
	"github.com/AnshRaj112/studentflow-backend/internal/respond"
)

type postRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type commentRequest struct {
	Content string `json:"content" validate:"required"`
}

type postsResponse struct {
	Posts []models.PostView `json:"posts"`
}

type commentsResponse struct {
	Comments []models.CommentView `json:"comments"`
}

func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	ctx, cancel := dbContext(r)
	defer cancel()

	posts, err := h.store.ListPosts(ctx, owner(r), limit)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, postsResponse{Posts: posts})
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := h.decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)
	if err := h.check(&req); err != nil {
		respond.Error(w, r, err)
		return
	}

	ctx, cancel := dbContext(r)
	defer cancel()

	post, err := h.store.CreatePost(ctx, owner(r), req.Title, req.Content)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.Created(w, post.ID)
}

// DeletePost is author-only and also removes the post's likes.
func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := dbContext(r)
	defer cancel()

	if err := h.store.DeletePost(ctx, owner(r), chi.URLParam(r, "id")); err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.Success(w)
}

func (h *Handler) LikePost(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := dbContext(r)
	defer cancel()

	if err := h.store.LikePost(ctx, owner(r), chi.URLParam(r, "id")); err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.Success(w)
}

func (h *Handler) UnlikePost(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := dbContext(r)
	defer cancel()

	if err := h.store.UnlikePost(ctx, owner(r), chi.URLParam(r, "id")); err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.Success(w)
}

func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := dbContext(r)
	defer cancel()

	comments, err := h.store.ListComments(ctx, owner(r), chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, commentsResponse{Comments: comments})
}

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if err := h.decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}
	req.Content = strings.TrimSpace(req.Content)
	if err := h.check(&req); err != nil {
		respond.Error(w, r, err)
		return
	}

	ctx, cancel := dbContext(r)
	defer cancel()

	comment, err := h.store.CreateComment(ctx, owner(r), chi.URLParam(r, "id"), req.Content)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.Created(w, comment.ID)
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := dbContext(r)
	defer cancel()

	err := h.store.DeleteComment(ctx, owner(r), chi.URLParam(r, "id"), chi.URLParam(r, "commentID"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.Success(w)
}
