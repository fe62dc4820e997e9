package routes

import (
	"github.com/gorilla/mux"

	"github.com/dcode-github/property_portal_web/api"
	"github.com/dcode-github/property_portal_web/controllers"
	"github.com/dcode-github/property_portal_web/middleware"
	"github.com/dcode-github/property_portal_web/session"
	"github.com/dcode-github/property_portal_web/views"
)

func Routes(router *mux.Router, apiClient *api.Client, sessions *session.Manager, renderer *views.Renderer) {
	router.PathPrefix("/static/").Handler(views.StaticHandler())

	// Public pages
	router.HandleFunc("/", controllers.SearchPage(apiClient, sessions, renderer)).Methods("GET")
	router.HandleFunc("/property/{id}", controllers.PropertyDetailPage(apiClient, sessions, renderer)).Methods("GET")
	router.HandleFunc("/login", controllers.LoginPage(sessions, renderer)).Methods("GET")
	router.HandleFunc("/login", controllers.LoginSubmit(apiClient, sessions, renderer)).Methods("POST")
	router.HandleFunc("/register", controllers.RegisterPage(sessions, renderer)).Methods("GET")
	router.HandleFunc("/register", controllers.RegisterSubmit(apiClient, sessions, renderer)).Methods("POST")
	router.HandleFunc("/logout", controllers.Logout(sessions)).Methods("POST")

	// The toggle route handles anonymous visitors itself (login redirect
	// with no upstream call), so it stays outside the guarded subrouter.
	// It must be registered before the /favorites prefix below.
	router.HandleFunc("/favorites/{propertyID}", controllers.ToggleFavorite(apiClient, sessions)).Methods("POST")

	// Pages that require authentication
	protected := router.PathPrefix("/favorites").Subrouter()
	protected.Use(middleware.RequireAuth(sessions))
	protected.HandleFunc("", controllers.FavoritesPage(apiClient, sessions, renderer)).Methods("GET")
}
