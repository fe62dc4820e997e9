package controllers

import (
	"log"
	"net/http"

	"github.com/dcode-github/property_portal_web/api"
	"github.com/dcode-github/property_portal_web/session"
	"github.com/dcode-github/property_portal_web/views"
)

// LoginPage renders the sign-in form. The "from" query value is threaded
// through the form so a guarded page can pull the visitor back after login.
func LoginPage(sessions *session.Manager, renderer *views.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sessions.IsAuthenticated(r) {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		data := views.AuthFormData{
			BaseData: views.NewBaseData(nil),
			From:     returnPath(r.URL.Query().Get("from")),
		}
		renderer.Render(w, http.StatusOK, "login.html", data)
	}
}

// LoginSubmit exchanges the form credentials for a session via the listing
// API, installs it and redirects to the preserved destination or home.
func LoginSubmit(apiClient *api.Client, sessions *session.Manager, renderer *views.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}
		email := r.PostFormValue("email")
		password := r.PostFormValue("password")
		from := returnPath(r.PostFormValue("from"))

		data := views.AuthFormData{
			BaseData: views.NewBaseData(nil),
			Email:    email,
			From:     from,
		}

		sess, err := apiClient.Login(r.Context(), email, password)
		if err != nil {
			log.Printf("Login failed for %s: %v", email, err)
			data.Error = apiErrorMessage(err, "Invalid email or password")
			renderer.Render(w, http.StatusUnauthorized, "login.html", data)
			return
		}

		if err := sessions.Login(w, r, sess); err != nil {
			log.Printf("Failed to persist session for %s: %v", email, err)
			data.Error = "Something went wrong. Please try again."
			renderer.Render(w, http.StatusInternalServerError, "login.html", data)
			return
		}
		http.Redirect(w, r, from, http.StatusSeeOther)
	}
}

// RegisterPage renders the account creation form.
func RegisterPage(sessions *session.Manager, renderer *views.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sessions.IsAuthenticated(r) {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		renderer.Render(w, http.StatusOK, "register.html", views.AuthFormData{
			BaseData: views.NewBaseData(nil),
		})
	}
}

// RegisterSubmit validates the form before any network call: the password
// must match its confirmation and be at least 6 characters. Only then does
// it register upstream, install the session and land on the home page.
func RegisterSubmit(apiClient *api.Client, sessions *session.Manager, renderer *views.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}
		email := r.PostFormValue("email")
		password := r.PostFormValue("password")
		confirm := r.PostFormValue("confirmPassword")

		data := views.AuthFormData{
			BaseData: views.NewBaseData(nil),
			Email:    email,
		}

		if password != confirm {
			data.Error = "Passwords do not match"
			renderer.Render(w, http.StatusBadRequest, "register.html", data)
			return
		}
		if len(password) < 6 {
			data.Error = "Password must be at least 6 characters long"
			renderer.Render(w, http.StatusBadRequest, "register.html", data)
			return
		}

		sess, err := apiClient.Register(r.Context(), email, password)
		if err != nil {
			log.Printf("Registration failed for %s: %v", email, err)
			data.Error = apiErrorMessage(err, "Registration failed. Email may already exist.")
			renderer.Render(w, http.StatusBadRequest, "register.html", data)
			return
		}

		if err := sessions.Login(w, r, sess); err != nil {
			log.Printf("Failed to persist session for %s: %v", email, err)
			data.Error = "Something went wrong. Please try again."
			renderer.Render(w, http.StatusInternalServerError, "register.html", data)
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// Logout destroys the session and returns to the home page.
func Logout(sessions *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessions.Logout(w, r)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
