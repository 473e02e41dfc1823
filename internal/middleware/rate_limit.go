package middleware

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	// DefaultRateLimit is the per-minute request allowance
	DefaultRateLimit = 60
	// DefaultBurstSize caps how many requests may arrive at once
	DefaultBurstSize = 10
	// CleanupInterval is how often idle buckets are swept
	CleanupInterval = 5 * time.Minute
	// LimiterTTL is how long an idle bucket survives between sweeps
	LimiterTTL = 10 * time.Minute
)

// RateLimiter hands out a token bucket per caller. Authenticated requests
// are keyed by user ID, anonymous ones by client IP.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket

	perMinute int
	perSecond rate.Limit
	burst     int
	stopCh    chan struct{}
}

type bucket struct {
	limiter *rate.Limiter
	seen    time.Time
}

// NewRateLimiter creates a RateLimiter with the default allowance
func NewRateLimiter() *RateLimiter {
	return NewRateLimiterWithConfig(DefaultRateLimit, DefaultBurstSize)
}

// NewRateLimiterWithConfig creates a RateLimiter and starts its sweep
// goroutine; call Stop when the limiter is no longer needed
func NewRateLimiterWithConfig(requestsPerMinute, burstSize int) *RateLimiter {
	rl := &RateLimiter{
		buckets:   make(map[string]*bucket),
		perMinute: requestsPerMinute,
		perSecond: rate.Limit(float64(requestsPerMinute) / 60.0),
		burst:     burstSize,
		stopCh:    make(chan struct{}),
	}
	go rl.sweep()
	return rl
}

// Allow reports whether the caller behind key may proceed
func (r *RateLimiter) Allow(key string) bool {
	return r.bucketFor(key).Allow()
}

// bucketFor returns the caller's limiter, creating it on first sight.
// rate.Limiter is internally synchronized, so callers use it outside the
// map lock.
func (r *RateLimiter) bucketFor(key string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(r.perSecond, r.burst)}
		r.buckets[key] = b
	}
	b.seen = time.Now()
	return b.limiter
}

// remaining estimates the tokens left for key and when the bucket refills
func (r *RateLimiter) remaining(key string) (int, time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.buckets[key]
	if !ok {
		return r.burst, time.Now().Add(time.Minute)
	}
	tokens := int(b.limiter.Tokens())
	if tokens < 0 {
		tokens = 0
	}
	refill := time.Duration(float64(r.burst-tokens)/float64(r.perSecond)) * time.Second
	return tokens, time.Now().Add(refill)
}

func (r *RateLimiter) sweep() {
	ticker := time.NewTicker(CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			cutoff := time.Now().Add(-LimiterTTL)
			r.mu.Lock()
			for key, b := range r.buckets {
				if b.seen.Before(cutoff) {
					delete(r.buckets, key)
					log.Debug().Str("key", key).Msg("Dropped idle rate limit bucket")
				}
			}
			r.mu.Unlock()
		case <-r.stopCh:
			return
		}
	}
}

// Stop ends the sweep goroutine
func (r *RateLimiter) Stop() {
	close(r.stopCh)
}

// limiterKey identifies the caller: user ID once authenticated, client IP
// before that
func limiterKey(c echo.Context) string {
	if userID := GetUserID(c); userID != uuid.Nil {
		return userID.String()
	}
	return c.RealIP()
}

// RateLimitMiddleware enforces the limiter and reports the caller's budget
// through X-RateLimit headers
func RateLimitMiddleware(rl *RateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := limiterKey(c)
			allowed := rl.Allow(key)
			tokens, reset := rl.remaining(key)

			header := c.Response().Header()
			header.Set("X-RateLimit-Limit", strconv.Itoa(rl.perMinute))
			header.Set("X-RateLimit-Remaining", strconv.Itoa(tokens))
			header.Set("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))

			if !allowed {
				retryAfter := int(time.Until(reset).Seconds())
				if retryAfter < 1 {
					retryAfter = 1
				}
				header.Set("X-RateLimit-Remaining", "0")
				header.Set("Retry-After", strconv.Itoa(retryAfter))

				log.Warn().
					Str("key", key).
					Int("retry_after", retryAfter).
					Msg("Rate limit exceeded")

				return rateLimitError(c, fmt.Sprintf("Too many requests. Please retry after %d seconds.", retryAfter))
			}

			return next(c)
		}
	}
}
