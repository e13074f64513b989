package routes

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/AnshRaj112/studentflow-backend/internal/handlers"
	"github.com/AnshRaj112/studentflow-backend/internal/middleware"
)

type Options struct {
	Auth           middleware.Authenticator
	AllowedOrigins []string
	Production     bool
	// Limiter backs the shared auth rate limit.
	Limiter middleware.Counter
	// LocalLimiter limits auth routes in process when Limiter is nil.
	LocalLimiter *middleware.IPLimiter
	// AllowedHost rejects requests for other hosts in production; empty allows any.
	AllowedHost string
}

// NewRouter builds the full HTTP surface around h.
func NewRouter(h *handlers.Handler, opts Options) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(opts.AllowedOrigins))
	if opts.Production {
		r.Use(middleware.SecurityHeaders)
		r.Use(middleware.HostCheck(opts.AllowedHost))
	}

	r.Get("/health", handlers.Health)
	r.Get("/favicon.ico", h.Favicon)

	SetupRoutes(r, h, opts)

	r.Handle("/*", h.Static())
	return r
}

func SetupRoutes(r chi.Router, h *handlers.Handler, opts Options) {
	// Auth routes
	r.Group(func(r chi.Router) {
		switch {
		case opts.Limiter != nil:
			r.Use(middleware.RateLimit(opts.Limiter, middleware.AuthRateLimitMaxRequests, middleware.AuthRateLimitWindow))
		case opts.LocalLimiter != nil:
			r.Use(middleware.LocalRateLimit(opts.LocalLimiter))
		}
		r.Post("/api/auth/register", h.Register)
		r.Post("/api/auth/login", h.Login)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(opts.Auth))

		r.Get("/api/auth/me", h.Me)

		// Notes
		r.Get("/api/notes", h.ListNotes)
		r.Post("/api/notes", h.CreateNote)
		r.Get("/api/notes/{id}", h.GetNote)
		r.Put("/api/notes/{id}", h.UpdateNote)
		r.Delete("/api/notes/{id}", h.DeleteNote)

		// Study
		r.Get("/api/study/tasks", h.ListTasks)
		r.Post("/api/study/tasks", h.CreateTask)
		r.Put("/api/study/tasks/{id}", h.UpdateTask)
		r.Delete("/api/study/tasks/{id}", h.DeleteTask)
		r.Post("/api/study/session", h.LogSession)
		r.Get("/api/study/streak", h.Streak)
		r.Get("/api/study/analytics", h.Analytics)

		// Community
		r.Get("/api/community/posts", h.ListPosts)
		r.Post("/api/community/posts", h.CreatePost)
		r.Delete("/api/community/posts/{id}", h.DeletePost)
		r.Post("/api/community/posts/{id}/like", h.LikePost)
		r.Delete("/api/community/posts/{id}/like", h.UnlikePost)
		r.Get("/api/community/posts/{id}/comments", h.ListComments)
		r.Post("/api/community/posts/{id}/comments", h.CreateComment)
		r.Delete("/api/community/posts/{id}/comments/{commentID}", h.DeleteComment)

		// Wellbeing
		r.Get("/api/wellbeing/mood-logs", h.ListMoods)
		r.Post("/api/wellbeing/mood-logs", h.CreateMood)
		r.Delete("/api/wellbeing/mood-logs/{id}", h.DeleteMood)
		r.Get("/api/wellbeing/mood-streak", h.MoodStreak)

		// Flashcards
		r.Get("/api/flashcards", h.ListFlashcards)
		r.Post("/api/flashcards", h.CreateFlashcard)
		r.Post("/api/flashcards/generate", h.GenerateFlashcards)
		r.Put("/api/flashcards/{id}", h.UpdateFlashcard)
		r.Delete("/api/flashcards/{id}", h.DeleteFlashcard)
		r.Post("/api/flashcards/{id}/review", h.ReviewFlashcard)

		// AI
		r.Post("/api/ai/summarize-notes", h.SummarizeNotes)
		r.Post("/api/ai/study-plan", h.StudyPlan)
		r.Post("/api/ai/chat", h.Chat)
	})
}
