package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocalRateLimit(t *testing.T) {
	clock := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	limiter := NewIPLimiter(3, time.Minute)
	limiter.now = func() time.Time { return clock }
	handler := LocalRateLimit(limiter)(okHandler())

	send := func(addr string) *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodPost, "/api/auth/register", nil)
		r.RemoteAddr = addr
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		return w
	}

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, send("10.0.0.1:1000").Code)
	}
	w := send("10.0.0.1:1000")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "20", w.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"success":false,"error":"rate_limited","detail":"Too many attempts. Please try again later."}`, w.Body.String())

	assert.Equal(t, http.StatusOK, send("10.0.0.2:1000").Code, "other clients have their own bucket")

	clock = clock.Add(20 * time.Second)
	assert.Equal(t, http.StatusOK, send("10.0.0.1:1000").Code, "one token refilled")
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:1000").Code)
}

func TestIPLimiter_DropsIdleClients(t *testing.T) {
	clock := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	limiter := NewIPLimiter(10, time.Minute)
	limiter.now = func() time.Time { return clock }

	limiter.Allow("10.0.0.1")
	limiter.Allow("10.0.0.2")
	assert.Equal(t, 2, limiter.size())

	clock = clock.Add(ipLimiterTTL + ipLimiterSweepInterval + time.Second)
	limiter.Allow("10.0.0.3")
	assert.Equal(t, 1, limiter.size())
}
