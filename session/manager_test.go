package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcode-github/property_portal_web/models"
)

func testSession() *models.Session {
	return &models.Session{
		User:  models.User{ID: "u1", Email: "user@example.com"},
		Token: "opaque-token",
	}
}

func doLogin(t *testing.T, mgr *Manager, sess *models.Session) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	require.NoError(t, mgr.Login(rec, req, sess))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	return cookies[0]
}

func TestLoginThenCurrent(t *testing.T) {
	mgr := NewManager(NewMemoryStore(), time.Hour, false)
	cookie := doLogin(t, mgr, testSession())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)

	got := mgr.Current(req)
	require.NotNil(t, got)
	assert.Equal(t, "user@example.com", got.User.Email)
	assert.Equal(t, "opaque-token", got.Token)
	assert.True(t, mgr.IsAuthenticated(req))
}

func TestCurrentWithoutCookie(t *testing.T) {
	mgr := NewManager(NewMemoryStore(), time.Hour, false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, mgr.Current(req))
	assert.False(t, mgr.IsAuthenticated(req))
}

func TestLogoutDestroysSession(t *testing.T) {
	mgr := NewManager(NewMemoryStore(), time.Hour, false)
	cookie := doLogin(t, mgr, testSession())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(cookie)
	mgr.Logout(rec, req)

	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Negative(t, cleared[0].MaxAge)

	// The old cookie no longer resolves to a session either.
	again := httptest.NewRequest(http.MethodGet, "/", nil)
	again.AddCookie(cookie)
	assert.Nil(t, mgr.Current(again))
}

func TestExpiredTokenCountsAsAnonymous(t *testing.T) {
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		ExpiresAt: time.Now().Add(-time.Minute).Unix(),
	}).SignedString([]byte("upstream-key"))
	require.NoError(t, err)

	mgr := NewManager(NewMemoryStore(), time.Hour, false)
	cookie := doLogin(t, mgr, &models.Session{
		User:  models.User{ID: "u1", Email: "user@example.com"},
		Token: expired,
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	assert.Nil(t, mgr.Current(req))
}

func TestLoginReplacesPreviousSession(t *testing.T) {
	store := NewMemoryStore()
	mgr := NewManager(store, time.Hour, false)
	first := doLogin(t, mgr, testSession())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.AddCookie(first)
	require.NoError(t, mgr.Login(rec, req, &models.Session{
		User:  models.User{ID: "u2", Email: "other@example.com"},
		Token: "other-token",
	}))

	// The first session ID is gone from the store.
	prev, err := store.Get(context.Background(), first.Value)
	require.NoError(t, err)
	assert.Nil(t, prev)
}

func TestMemoryStoreTTL(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save(context.Background(), "sid", testSession(), -time.Second))

	got, err := store.Get(context.Background(), "sid")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save(context.Background(), "sid", testSession(), time.Hour))

	got, err := store.Get(context.Background(), "sid")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, testSession(), got)

	require.NoError(t, store.Delete(context.Background(), "sid"))
	got, err = store.Get(context.Background(), "sid")
	require.NoError(t, err)
	assert.Nil(t, got)
}
