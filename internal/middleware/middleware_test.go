package middleware

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"github.com/adityav/starwars-portal/internal/auth"
	"github.com/adityav/starwars-portal/internal/models"
	"github.com/adityav/starwars-portal/internal/session"
	"github.com/adityav/starwars-portal/internal/store"
)

func setupSessions(t *testing.T, name string) *session.Store {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+name+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE app_state (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`)
	require.NoError(t, err)
	return session.New(context.Background(), store.NewLocalState(db))
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
}

func TestGuardRedirects(t *testing.T) {
	ctx := context.Background()
	sessions := setupSessions(t, "mw_guard")
	wrapped := Guard(sessions, "/login")(okHandler())

	// Logged out: protected path redirects to login.
	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/resource/1", nil))
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	// Logged out: login path renders.
	w = httptest.NewRecorder()
	wrapped.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/login", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	sessions.Login(ctx, "tok-1", models.Credential{Email: "user1@test.com"})

	// Logged in: login path redirects to landing.
	w = httptest.NewRecorder()
	wrapped.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/login", nil))
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	// Logged in: protected path renders.
	w = httptest.NewRecorder()
	wrapped.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/resource/1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// After logout the very next evaluation redirects again.
	sessions.Logout(ctx)
	w = httptest.NewRecorder()
	wrapped.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/resource/1", nil))
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRequireAuth(t *testing.T) {
	ctx := context.Background()
	sessions := setupSessions(t, "mw_auth")
	wrapped := RequireAuth(sessions)(okHandler())

	// No cookie.
	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	sessions.Login(ctx, "tok-1", models.Credential{Email: "user1@test.com"})

	// Wrong token.
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: "stale"})
	w = httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Matching token.
	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: "tok-1"})
	w = httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
