package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/AnshRaj112/studentflow-backend/internal/apperr"
	"github.com/AnshRaj112/studentflow-backend/internal/respond"
)

type contextKey string

const userIDKey contextKey = "user_id"

// Authenticator resolves a bearer token to the id of an existing user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (string, error)
}

// RequireAuth rejects requests without a valid bearer token and stores the
// caller's user id in the request context.
func RequireAuth(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				respond.Error(w, r, apperr.Unauthenticated("Missing bearer token"))
				return
			}

			userID, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				respond.Error(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserID returns the authenticated caller, or "" outside RequireAuth.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}
