package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcode-github/property_portal_web/models"
	"github.com/dcode-github/property_portal_web/session"
)

func guardedHandler(t *testing.T, mgr *session.Manager) http.Handler {
	t.Helper()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return RequireAuth(mgr)(next)
}

func TestRedirectsAnonymousPreservingDestination(t *testing.T) {
	mgr := session.NewManager(session.NewMemoryStore(), time.Hour, false)
	handler := guardedHandler(t, mgr)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/favorites?sort=price", nil)
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?from=%2Ffavorites%3Fsort%3Dprice", rec.Header().Get("Location"))
}

func TestPassesAuthenticatedRequests(t *testing.T) {
	mgr := session.NewManager(session.NewMemoryStore(), time.Hour, false)

	loginRec := httptest.NewRecorder()
	loginReq := httptest.NewRequest(http.MethodPost, "/login", nil)
	require.NoError(t, mgr.Login(loginRec, loginReq, &models.Session{
		User:  models.User{ID: "u1", Email: "user@example.com"},
		Token: "tok",
	}))
	cookies := loginRec.Result().Cookies()
	require.Len(t, cookies, 1)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/favorites", nil)
	req.AddCookie(cookies[0])
	guardedHandler(t, mgr).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
