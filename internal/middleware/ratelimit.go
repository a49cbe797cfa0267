package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"
)

// rateWindow is one client's counter for the current window
type rateWindow struct {
	count     int
	resetTime time.Time
}

// RateLimiter tracks request counts per client key with a fixed window:
// the first request opens a window, further requests increment the counter
// until the window expires, and an expired window is replaced on the next
// request. State is process-local and lost on restart.
type RateLimiter struct {
	mu      sync.Mutex
	windows map[string]*rateWindow
	limit   int           // Max requests allowed per window
	window  time.Duration // Window duration
	now     func() time.Time
}

// NewRateLimiter creates a new rate limiter allowing limit requests per window
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		windows: make(map[string]*rateWindow),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}

	// Start cleanup goroutine to prevent memory leak
	go rl.cleanupLoop()

	return rl
}

// Allow checks if a request for key should be allowed
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()

	w, ok := rl.windows[key]
	if !ok || now.After(w.resetTime) {
		rl.windows[key] = &rateWindow{count: 1, resetTime: now.Add(rl.window)}
		return true
	}

	if w.count >= rl.limit {
		return false
	}

	w.count++
	return true
}

// cleanupLoop periodically removes expired windows to prevent memory leak
func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.cleanup()
	}
}

func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, w := range rl.windows {
		if now.After(w.resetTime) {
			delete(rl.windows, key)
		}
	}
}

// RateLimit creates middleware limiting requests per client IP
func RateLimit(limiter *RateLimiter) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			ip := ClientIP(r)

			if !limiter.Allow(ip) {
				slog.Warn("rate limit exceeded",
					"ip", ip,
					"path", r.URL.Path,
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"error":"Too many requests. Please try again later."}`))
				return
			}

			next(w, r)
		}
	}
}

// ClientIP extracts the client IP from proxy headers. All clients without an
// identifiable address share the "unknown" bucket, which conflates them into
// one rate-limit counter.
func ClientIP(r *http.Request) string {
	// X-Forwarded-For: take the first hop
	xff := r.Header.Get("X-Forwarded-For")
	if xff != "" {
		ip, _, _ := strings.Cut(xff, ",")
		if ip = strings.TrimSpace(ip); ip != "" {
			return ip
		}
	}

	xri := r.Header.Get("X-Real-IP")
	if xri != "" {
		return strings.TrimSpace(xri)
	}

	return "unknown"
}
