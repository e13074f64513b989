package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AnshRaj112/studentflow-backend/internal/database/dbtest"
	"github.com/AnshRaj112/studentflow-backend/internal/handlers"
	"github.com/AnshRaj112/studentflow-backend/internal/respond"
	"github.com/AnshRaj112/studentflow-backend/internal/routes"
	"github.com/AnshRaj112/studentflow-backend/internal/services"
	"github.com/AnshRaj112/studentflow-backend/internal/store"
)

type fakeGenerator struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

type testServer struct {
	t       *testing.T
	handler http.Handler
}

type serverOption func(*handlers.Deps)

func withStaticDir(dir string) serverOption {
	return func(d *handlers.Deps) { d.StaticDir = dir }
}

// newServer wires the full router over an in-memory database.
// A nil gen runs AI endpoints in degraded mode.
func newServer(t *testing.T, gen services.Generator, opts ...serverOption) *testServer {
	t.Helper()

	st := store.New(dbtest.New(t))
	auth := services.NewAuthService(st, services.NewTokenIssuer("test-secret"))
	deps := handlers.Deps{
		Store: st,
		Auth:  auth,
		Study: services.NewStudyService(st),
		AI:    services.NewAIService(gen, st),
	}
	for _, opt := range opts {
		opt(&deps)
	}

	router := routes.NewRouter(handlers.New(deps), routes.Options{
		Auth:           auth,
		AllowedOrigins: []string{"*"},
	})
	return &testServer{t: t, handler: router}
}

func (s *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

// register creates an account and returns its access token.
func (s *testServer) register(email string) string {
	s.t.Helper()

	rec := s.do(http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":      email,
		"password":   "correct horse",
		"first_name": "Ada",
		"last_name":  "Lovelace",
	})
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())

	var out struct {
		AccessToken string `json:"access_token"`
	}
	decode(s.t, rec, &out)
	require.NotEmpty(s.t, out.AccessToken)
	return out.AccessToken
}

// create posts body to path and returns the new row's id.
func (s *testServer) create(path, token string, body interface{}) string {
	s.t.Helper()

	rec := s.do(http.MethodPost, path, token, body)
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())

	var out struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
	}
	decode(s.t, rec, &out)
	require.True(s.t, out.Success)
	require.NotEmpty(s.t, out.ID)
	return out.ID
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) respond.ErrorBody {
	t.Helper()
	var body respond.ErrorBody
	decode(t, rec, &body)
	return body
}
