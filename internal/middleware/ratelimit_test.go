package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestLimiter builds a limiter with a controllable clock and no cleanup
// goroutine.
func newTestLimiter(limit int, window time.Duration, now *time.Time) *RateLimiter {
	return &RateLimiter{
		windows: make(map[string]*rateWindow),
		limit:   limit,
		window:  window,
		now:     func() time.Time { return *now },
	}
}

func TestRateLimiter_Allow(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	rl := newTestLimiter(5, time.Minute, &now)

	// First N requests in the window are allowed
	for i := 0; i < 5; i++ {
		assert.True(t, rl.Allow("1.2.3.4"), "request %d should be allowed", i+1)
	}

	// N+1 is rejected
	assert.False(t, rl.Allow("1.2.3.4"))

	// Still rejected while the window is open
	now = now.Add(30 * time.Second)
	assert.False(t, rl.Allow("1.2.3.4"))

	// After the window elapses the counter resets
	now = now.Add(31 * time.Second)
	assert.True(t, rl.Allow("1.2.3.4"))
	assert.True(t, rl.Allow("1.2.3.4"))
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	rl := newTestLimiter(1, time.Minute, &now)

	assert.True(t, rl.Allow("1.2.3.4"))
	assert.False(t, rl.Allow("1.2.3.4"))
	assert.True(t, rl.Allow("5.6.7.8"), "a different client key has its own window")
}

func TestRateLimiter_Cleanup(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	rl := newTestLimiter(5, time.Minute, &now)

	rl.Allow("1.2.3.4")
	rl.Allow("5.6.7.8")
	require.Len(t, rl.windows, 2)

	now = now.Add(2 * time.Minute)
	rl.cleanup()
	assert.Empty(t, rl.windows)
}

func TestRateLimitMiddleware(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	rl := newTestLimiter(2, time.Minute, &now)

	called := 0
	h := RateLimit(rl)(func(w http.ResponseWriter, r *http.Request) {
		called++
		w.WriteHeader(http.StatusCreated)
	})

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/newsletter", nil)
		req.Header.Set("X-Forwarded-For", "9.9.9.9")
		rec := httptest.NewRecorder()
		h(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusCreated, do().Code)
	assert.Equal(t, http.StatusCreated, do().Code)

	rec := do()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"error":"Too many requests. Please try again later."}`, rec.Body.String())
	assert.Equal(t, 2, called, "limited request must not reach the handler")
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			name:    "x-forwarded-for first hop",
			headers: map[string]string{"X-Forwarded-For": "1.2.3.4, 10.0.0.1"},
			want:    "1.2.3.4",
		},
		{
			name:    "x-real-ip fallback",
			headers: map[string]string{"X-Real-IP": "5.6.7.8"},
			want:    "5.6.7.8",
		},
		{
			name: "no headers collapses to the shared unknown bucket",
			want: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, ClientIP(req))
		})
	}
}
