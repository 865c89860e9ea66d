package middleware

import (
	"net/http"

	"github.com/adityav/starwars-portal/internal/guard"
	"github.com/adityav/starwars-portal/internal/session"
)

// Guard applies the route-guard decision to page routes. It re-reads the
// session on every request, so a logout redirects the next navigation rather
// than stranding the client on a stale view.
func Guard(sessions *session.Store, publicPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d := guard.Evaluate(sessions.Current().IsAuthenticated, r.URL.Path, publicPath)
			if !d.Allow {
				http.Redirect(w, r, d.RedirectTo, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
