package mw

import (
	"net/http"
	"strings"

	"github.com/vmedia/showreel/internal/admin"
)

// SessionToken extracts the admin session token from a request. The token
// travels either as a bearer token or in the "showreel_session" cookie.
func SessionToken(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	if c, err := r.Cookie("showreel_session"); err == nil {
		return c.Value
	}
	return ""
}

// RequireAdmin rejects requests that do not carry a live admin session.
func RequireAdmin(sessions *admin.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !sessions.Valid(SessionToken(r)) {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
