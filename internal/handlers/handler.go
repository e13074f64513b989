package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/AnshRaj112/studentflow-backend/internal/apperr"
	"github.com/AnshRaj112/studentflow-backend/internal/middleware"
	"github.com/AnshRaj112/studentflow-backend/internal/services"
	"github.com/AnshRaj112/studentflow-backend/internal/store"
)

const (
	// Bounds store work per request; AI calls use the provider client's own timeout.
	dbTimeout = 5 * time.Second
	maxBody   = 1 << 20
)

type Deps struct {
	Store     *store.Store
	Auth      *services.AuthService
	Study     *services.StudyService
	AI        *services.AIService
	StaticDir string
}

type Handler struct {
	store     *store.Store
	auth      *services.AuthService
	study     *services.StudyService
	ai        *services.AIService
	staticDir string
	validate  *validator.Validate
}

func New(d Deps) *Handler {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &Handler{
		store:     d.Store,
		auth:      d.Auth,
		study:     d.Study,
		ai:        d.AI,
		staticDir: d.StaticDir,
		validate:  v,
	}
}

func dbContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), dbTimeout)
}

func owner(r *http.Request) string {
	return middleware.UserID(r.Context())
}

// decode reads a JSON body into dst and runs its validate tags.
func (h *Handler) decode(r *http.Request, dst interface{}) error {
	body := http.MaxBytesReader(nil, r.Body, maxBody)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return apperr.Wrap(apperr.Validation, "Invalid request body", err)
	}
	return h.check(dst)
}

func (h *Handler) check(v interface{}) error {
	err := h.validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperr.Wrap(apperr.Validation, "Invalid request body", err)
	}
	return apperr.Invalid(fieldMessage(fieldErrs[0]))
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return field + " is invalid"
	}
}

// parseLimit reads ?limit, defaulting to store.DefaultLimit.
func parseLimit(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("limit"))
	if raw == "" {
		return store.DefaultLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > store.MaxLimit {
		return 0, apperr.Invalid(fmt.Sprintf("limit must be between 1 and %d", store.MaxLimit))
	}
	return n, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
