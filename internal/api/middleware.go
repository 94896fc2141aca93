/**
 * @description
 * This file contains the bearer-token middleware guarding the agent-facing
 * endpoints. Verification is behind a one-method interface so alternate
 * strategies can be substituted without touching route logic.
 */

package api

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// TokenVerifier decides whether a presented bearer token is acceptable.
type TokenVerifier interface {
	Verify(token string) bool
}

// StaticTokenVerifier accepts exactly one configured shared secret.
type StaticTokenVerifier struct {
	token string
}

// NewStaticTokenVerifier creates a verifier for the given shared secret.
func NewStaticTokenVerifier(token string) StaticTokenVerifier {
	return StaticTokenVerifier{token: token}
}

// Verify reports whether the presented token equals the shared secret.
func (v StaticTokenVerifier) Verify(token string) bool {
	return subtle.ConstantTimeCompare([]byte(token), []byte(v.token)) == 1
}

// AgentAuthMiddleware creates a middleware that requires a valid bearer token
// on every request it wraps. Public endpoints are intentionally not behind it.
func AgentAuthMiddleware(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondError(w, http.StatusUnauthorized, "Invalid authentication token")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			if token == authHeader || !verifier.Verify(token) {
				respondError(w, http.StatusUnauthorized, "Invalid authentication token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
