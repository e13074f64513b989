package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/AnshRaj112/studentflow-backend/pkg/clientip"
)

const (
	ipLimiterSweepInterval = 5 * time.Minute
	ipLimiterTTL           = 30 * time.Minute
)

type limiterEntry struct {
	limiter *rate.Limiter
	lastUse time.Time
}

// IPLimiter keeps one token bucket per client IP in process memory.
// Idle buckets are dropped after ipLimiterTTL.
type IPLimiter struct {
	mu        sync.Mutex
	entries   map[string]*limiterEntry
	every     time.Duration
	burst     int
	now       func() time.Time
	lastSweep time.Time
}

// NewIPLimiter allows burst requests at once, refilled at max per window.
func NewIPLimiter(max int, window time.Duration) *IPLimiter {
	return &IPLimiter{
		entries: make(map[string]*limiterEntry),
		every:   window / time.Duration(max),
		burst:   max,
		now:     time.Now,
	}
}

func (l *IPLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > ipLimiterSweepInterval {
		for key, e := range l.entries {
			if now.Sub(e.lastUse) > ipLimiterTTL {
				delete(l.entries, key)
			}
		}
		l.lastSweep = now
	}

	e, ok := l.entries[ip]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(rate.Every(l.every), l.burst)}
		l.entries[ip] = e
	}
	e.lastUse = now
	return e.limiter.AllowN(now, 1)
}

func (l *IPLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// LocalRateLimit is the single-instance counterpart of RateLimit, used when Redis is not available.
func LocalRateLimit(l *IPLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Allow(clientip.FromRequest(r)) {
				tooManyRequests(w, l.every)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
