package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"
)

// RequireSecret guards admin newsletter endpoints with a shared-secret bearer
// token. An empty configured secret is a deployment mistake and is reported
// as a server error, distinct from a caller presenting a bad token.
func RequireSecret(secret string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				slog.Error("newsletter admin endpoint called but NEWSLETTER_API_SECRET is not configured")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"error":"Server is not configured for this operation."}`))
				return
			}

			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
				slog.Warn("newsletter admin auth failed", "path", r.URL.Path, "token_present", token != "")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"Unauthorized"}`))
				return
			}

			next(w, r)
		}
	}
}
