package middleware

import (
	"net/http"

	"github.com/adityav/starwars-portal/internal/auth"
	"github.com/adityav/starwars-portal/internal/session"
)

// RequireAuth guards API routes: the request must carry the session cookie
// and its value must match the live session token.
func RequireAuth(sessions *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(auth.SessionCookie)
			if err != nil {
				http.Error(w, `{"error":"not authenticated"}`, http.StatusUnauthorized)
				return
			}

			sess := sessions.Current()
			if !sess.IsAuthenticated || cookie.Value != sess.AuthToken {
				http.Error(w, `{"error":"not authenticated"}`, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
