package http

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/constants"
	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/httpmetrics"
	"github.com/AlibekovAA/exercise-tracker/backend/internal/observability/metrics"
)

// RateLimiter keeps one token bucket per client address.
type RateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	rate     rate.Limit
	burst    int
	cleanup  *time.Ticker
	done     chan struct{}
	once     sync.Once
}

func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	if requestsPerSecond <= 0 {
		requestsPerSecond = constants.RateLimitGeneralRequestsPerSecond
	}
	if burst <= 0 {
		burst = constants.RateLimitGeneralBurst
	}

	rl := &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
		cleanup:  time.NewTicker(constants.RateLimitCleanupInterval),
		done:     make(chan struct{}),
	}

	go rl.cleanupLimiters()

	return rl
}

func (rl *RateLimiter) cleanupLimiters() {
	for {
		select {
		case <-rl.done:
			return
		case <-rl.cleanup.C:
			rl.mu.Lock()
			for key, limiter := range rl.limiters {
				if limiter.Tokens() >= float64(rl.burst) {
					delete(rl.limiters, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}

func (rl *RateLimiter) Stop() {
	rl.once.Do(func() {
		rl.cleanup.Stop()
		close(rl.done)
	})
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.RLock()
	limiter, exists := rl.limiters[key]
	rl.mu.RUnlock()

	if !exists {
		rl.mu.Lock()
		limiter, exists = rl.limiters[key]
		if !exists {
			limiter = rate.NewLimiter(rl.rate, rl.burst)
			rl.limiters[key] = limiter
		}
		rl.mu.Unlock()
	}

	return limiter
}

func (rl *RateLimiter) Allow(key string) bool {
	return rl.getLimiter(key).Allow()
}

// Middleware limits requests whose path starts with one of prefixes; an empty
// prefix list limits everything.
func (rl *RateLimiter) Middleware(prefixes ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !matchesPrefix(r.URL.Path, prefixes) {
				next.ServeHTTP(w, r)
				return
			}

			if !rl.Allow(GetClientIP(r)) {
				metrics.RateLimitBlocked.WithLabelValues(httpmetrics.NormalizePath(r.URL.Path)).Inc()
				WriteErrorEnvelope(w, http.StatusTooManyRequests, CodeRateLimited, "rate limit exceeded", nil, TraceIDFromContext(r.Context()))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func matchesPrefix(path string, prefixes []string) bool {
	if len(prefixes) == 0 {
		return true
	}
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
