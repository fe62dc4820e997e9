package middleware

import (
	"log"
	"net/http"
	"net/url"

	"github.com/dcode-github/property_portal_web/session"
)

// RequireAuth gates authenticated-only pages. Anonymous visitors are sent
// to the login page with their intended destination preserved, so a
// successful login returns them where they were headed.
func RequireAuth(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !sessions.IsAuthenticated(r) {
				log.Printf("Unauthenticated request to %s, redirecting to login", r.URL.Path)
				http.Redirect(w, r, LoginURL(r.URL.RequestURI()), http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// LoginURL builds the login page URL carrying the originally requested
// location.
func LoginURL(from string) string {
	return "/login?from=" + url.QueryEscape(from)
}
