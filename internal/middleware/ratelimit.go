package middleware

import (
	"context"
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/AnshRaj112/studentflow-backend/internal/respond"
	"github.com/AnshRaj112/studentflow-backend/pkg/clientip"
)

const (
	AuthRateLimitWindow      = time.Minute
	AuthRateLimitMaxRequests = 10
	rateLimitKeyPrefix       = "ratelimit:auth:"
)

// Counter increments a windowed counter and returns the new value.
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RedisCounter is a fixed-window counter: the key expires one window after its first hit.
type RedisCounter struct {
	client *redis.Client
}

func NewRedisCounter(client *redis.Client) *RedisCounter {
	return &RedisCounter{client: client}
}

func (c *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	n, err := c.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if n == 1 {
		if err := c.client.Expire(ctx, key, window).Err(); err != nil {
			return n, err
		}
	}
	return n, nil
}

// RateLimit allows max requests per client IP per window and answers 429 beyond that.
// Counter failures fail open.
func RateLimit(counter Counter, max int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := rateLimitKeyPrefix + clientip.FromRequest(r)

			n, err := counter.Incr(r.Context(), key, window)
			if err != nil {
				log.Printf("⚠️  Rate limiter unavailable: %v", err)
				next.ServeHTTP(w, r)
				return
			}

			remaining := max - int(n)
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(max))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if int(n) > max {
				tooManyRequests(w, window)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func tooManyRequests(w http.ResponseWriter, retryAfter time.Duration) {
	secs := int(math.Ceil(retryAfter.Seconds()))
	if secs < 1 {
		secs = 1
	}
	w.Header().Set("Retry-After", strconv.Itoa(secs))
	respond.JSON(w, http.StatusTooManyRequests, respond.ErrorBody{
		Success: false,
		Error:   "rate_limited",
		Detail:  "Too many attempts. Please try again later.",
	})
}
