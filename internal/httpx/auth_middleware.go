package httpx

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"bookshelf/internal/apperr"
)

// AuthMiddleware guards mutating routes behind a single shared bearer token.
// The comparison is constant-time.
func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				WriteError(w, r, apperr.Auth())
				return
			}
			token := strings.TrimPrefix(authHeader, "Bearer ")

			if subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
				WriteError(w, r, apperr.Auth())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
