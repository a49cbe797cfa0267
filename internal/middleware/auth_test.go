package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequireSecret(t *testing.T) {
	tests := []struct {
		name       string
		secret     string
		authHeader string
		wantStatus int
		wantNext   bool
	}{
		{
			name:       "valid token",
			secret:     "s3cret",
			authHeader: "Bearer s3cret",
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "wrong token",
			secret:     "s3cret",
			authHeader: "Bearer nope",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing header",
			secret:     "s3cret",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing bearer prefix",
			secret:     "s3cret",
			authHeader: "s3cret",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unset secret is a server error, not unauthorized",
			secret:     "",
			authHeader: "Bearer anything",
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			h := RequireSecret(tt.secret)(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})

			req := httptest.NewRequest(http.MethodGet, "/newsletter/subscribers", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			h(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
		})
	}
}
