package handlers

import (
	"net/http"
	"os"
	"path/filepath"
)

func Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// Favicon serves assets/favicon.png, falling back to assets/logo.png.
func (h *Handler) Favicon(w http.ResponseWriter, r *http.Request) {
	for _, name := range []string{"favicon.png", "logo.png"} {
		path := filepath.Join(h.staticDir, "assets", name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
	}
	http.NotFound(w, r)
}

// Static serves the bundled front-end.
func (h *Handler) Static() http.Handler {
	return http.FileServer(http.Dir(h.staticDir))
}
