package handlers_test

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	s := newServer(t, nil)

	rec := s.do(http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestFaviconAndStatic(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "logo.png"), []byte("logo-bytes"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>StudentFlow</h1>"), 0o644))

	s := newServer(t, nil, withStaticDir(dir))

	rec := s.do(http.MethodGet, "/favicon.ico", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "logo-bytes", rec.Body.String())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "favicon.png"), []byte("favicon-bytes"), 0o644))
	rec = s.do(http.MethodGet, "/favicon.ico", "", nil)
	assert.Equal(t, "favicon-bytes", rec.Body.String())

	rec = s.do(http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "StudentFlow")

	rec = s.do(http.MethodGet, "/missing.js", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFavicon_Missing(t *testing.T) {
	s := newServer(t, nil, withStaticDir(t.TempDir()))

	rec := s.do(http.MethodGet, "/favicon.ico", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
