package controllers

import (
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"

	"github.com/dcode-github/property_portal_web/api"
	"github.com/dcode-github/property_portal_web/middleware"
	"github.com/dcode-github/property_portal_web/session"
	"github.com/dcode-github/property_portal_web/views"
)

// FavoritesPage renders the visitor's favorite listings. The route guard
// guarantees a session. Every item is forced to favorited regardless of
// what the API reports, since this page only lists current favorites.
func FavoritesPage(apiClient *api.Client, sessions *session.Manager, renderer *views.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessions.Current(r)

		data := views.FavoritesData{BaseData: views.NewBaseData(sess)}

		favorites, err := apiClient.GetFavorites(r.Context(), bearerToken(sess))
		if err != nil {
			log.Printf("Failed to fetch favorites: %v", err)
			data.Error = "Failed to load favorites"
			renderer.Render(w, http.StatusOK, "favorites.html", data)
			return
		}

		for i := range favorites {
			favorites[i].IsFavorite = true
		}
		data.Favorites = favorites
		renderer.Render(w, http.StatusOK, "favorites.html", data)
	}
}

// ToggleFavorite flips the favorite state of one property. Anonymous
// visitors are sent to the login page without any upstream call. Failures
// are non-blocking for the page script; plain form posts fall back to a
// redirect either way.
func ToggleFavorite(apiClient *api.Client, sessions *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessions.Current(r)
		if sess == nil {
			if wantsJSON(r) {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"login": "/login"})
				return
			}
			http.Redirect(w, r, middleware.LoginURL(backTo(r)), http.StatusFound)
			return
		}

		propertyID := mux.Vars(r)["propertyID"]
		isFavorite, err := apiClient.ToggleFavorite(r.Context(), sess.Token, propertyID)
		if err != nil {
			log.Printf("Failed to toggle favorite for property %s: %v", propertyID, err)
			if wantsJSON(r) {
				writeJSON(w, http.StatusBadGateway, map[string]string{"message": "Failed to toggle favorite"})
				return
			}
			http.Redirect(w, r, backTo(r), http.StatusSeeOther)
			return
		}

		if wantsJSON(r) {
			writeJSON(w, http.StatusOK, map[string]bool{"isFavorite": isFavorite})
			return
		}
		http.Redirect(w, r, backTo(r), http.StatusSeeOther)
	}
}

// backTo picks the page a non-script toggle returns to.
func backTo(r *http.Request) string {
	if ref := r.Header.Get("Referer"); ref != "" {
		return returnPath(refPath(ref))
	}
	return "/"
}

// refPath strips the Referer down to a path and query; returnPath rejects
// anything that is not a local absolute path.
func refPath(ref string) string {
	if strings.HasPrefix(ref, "/") {
		return ref
	}
	u, err := url.Parse(ref)
	if err != nil {
		return "/"
	}
	return u.RequestURI()
}
