package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/AnshRaj112/studentflow-backend/internal/apperr"
	"github.com/AnshRaj112/studentflow-backend/internal/respond"
)

// SecurityHeaders sets security-related response headers. Production only.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Content-Security-Policy", "default-src 'self'")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		next.ServeHTTP(w, r)
	})
}

// HostCheck answers 403 when the request host is not allowedHost.
// allowedHost is a bare hostname; empty disables the check.
func HostCheck(allowedHost string) func(http.Handler) http.Handler {
	allowedHost = strings.TrimSpace(allowedHost)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if allowedHost == "" {
				next.ServeHTTP(w, r)
				return
			}
			host := r.Host
			if h, _, err := net.SplitHostPort(host); err == nil {
				host = h
			}
			if !strings.EqualFold(host, allowedHost) {
				respond.Error(w, r, apperr.NotAllowed("Unknown host"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
