package session

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dcode-github/property_portal_web/models"
	"github.com/dcode-github/property_portal_web/utils"
)

const CookieName = "portal_session"

// Manager owns the session lifecycle: anonymous by default, created on
// login, destroyed on logout. The browser only ever sees an opaque session
// ID in an HttpOnly cookie; the bearer token stays server-side.
type Manager struct {
	store  Store
	ttl    time.Duration
	secure bool
}

func NewManager(store Store, ttl time.Duration, secure bool) *Manager {
	return &Manager{store: store, ttl: ttl, secure: secure}
}

// Login persists the session and hands the browser its cookie. Any session
// previously tied to the cookie is discarded.
func (m *Manager) Login(w http.ResponseWriter, r *http.Request, sess *models.Session) error {
	if cookie, err := r.Cookie(CookieName); err == nil {
		if err := m.store.Delete(r.Context(), cookie.Value); err != nil {
			log.Printf("Failed to discard previous session: %v", err)
		}
	}

	id := uuid.NewString()
	if err := m.store.Save(r.Context(), id, sess, m.ttl); err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Logout removes the stored session and expires the cookie. Safe to call
// for anonymous visitors.
func (m *Manager) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(CookieName); err == nil {
		if err := m.store.Delete(r.Context(), cookie.Value); err != nil {
			log.Printf("Failed to delete session: %v", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Current returns the visitor's session, or nil for anonymous visitors.
// A session whose upstream token has expired counts as anonymous.
func (m *Manager) Current(r *http.Request) *models.Session {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil
	}

	sess, err := m.store.Get(r.Context(), cookie.Value)
	if err != nil {
		log.Printf("Failed to load session %s: %v", cookie.Value, err)
		return nil
	}
	if sess == nil {
		return nil
	}

	if utils.TokenExpired(sess.Token, time.Now()) {
		if err := m.store.Delete(r.Context(), cookie.Value); err != nil {
			log.Printf("Failed to delete expired session: %v", err)
		}
		return nil
	}
	return sess
}

// IsAuthenticated reports whether the request carries a live session.
func (m *Manager) IsAuthenticated(r *http.Request) bool {
	return m.Current(r) != nil
}
