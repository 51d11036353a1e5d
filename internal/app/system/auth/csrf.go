package auth

import (
	"crypto/sha256"
	"net/http"

	"github.com/gorilla/csrf"
)

// CSRF protects unsafe methods with a token keyed off the session key.
// Over plain HTTP (secure=false) requests are marked as plaintext so the
// origin check does not demand HTTPS.
func CSRF(sessionKey string, secure bool) func(http.Handler) http.Handler {
	key := sha256.Sum256([]byte("csrf:" + sessionKey))
	protect := csrf.Protect(key[:],
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.SameSite(csrf.SameSiteLaxMode),
	)
	return func(next http.Handler) http.Handler {
		h := protect(next)
		if secure {
			return h
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
		})
	}
}
