package controllers

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dcode-github/property_portal_web/api"
	"github.com/dcode-github/property_portal_web/session"
	"github.com/dcode-github/property_portal_web/views"
)

// PropertyDetailPage renders a single listing.
func PropertyDetailPage(apiClient *api.Client, sessions *session.Manager, renderer *views.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessions.Current(r)
		id := mux.Vars(r)["id"]

		data := views.DetailData{BaseData: views.NewBaseData(sess)}

		property, err := apiClient.GetProperty(r.Context(), bearerToken(sess), id)
		if err != nil {
			log.Printf("Failed to fetch property %s: %v", id, err)
			data.Error = "Property not found"
			renderer.Render(w, http.StatusNotFound, "detail.html", data)
			return
		}

		data.Property = property
		renderer.Render(w, http.StatusOK, "detail.html", data)
	}
}
