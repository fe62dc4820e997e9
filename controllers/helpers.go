package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/dcode-github/property_portal_web/api"
	"github.com/dcode-github/property_portal_web/models"
)

func bearerToken(sess *models.Session) string {
	if sess == nil {
		return ""
	}
	return sess.Token
}

// wantsJSON reports whether the request came from the page script rather
// than a plain form post.
func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode JSON response: %v", err)
	}
}

// apiErrorMessage returns the server-provided message for an API failure,
// or the fallback for transport failures and blank messages.
func apiErrorMessage(err error, fallback string) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// returnPath validates a preserved destination: it must be a local absolute
// path, anything else falls back to the home page.
func returnPath(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") {
		return "/"
	}
	return raw
}
