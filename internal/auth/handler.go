package auth

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/adityav/starwars-portal/internal/guard"
	"github.com/adityav/starwars-portal/internal/models"
	"github.com/adityav/starwars-portal/internal/session"
)

// SessionCookie carries the opaque session token to the browser client.
const SessionCookie = "session_token"

// Handler holds auth-related HTTP handlers.
type Handler struct {
	creds    *CredentialList
	sessions *session.Store
}

func NewHandler(creds *CredentialList, sessions *session.Store) *Handler {
	return &Handler{creds: creds, sessions: sessions}
}

// Login validates the input, checks it against the credential list, and on a
// match establishes the session. Validation failures return field-level
// messages; a credential mismatch returns a single top-level error.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}

	if fieldErrs := validateLogin(req); len(fieldErrs) > 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{"errors": fieldErrs})
		return
	}

	profile, ok := h.creds.Match(req.Email, req.Password)
	if !ok {
		http.Error(w, `{"error":"invalid email or password"}`, http.StatusUnauthorized)
		return
	}

	token := uuid.New().String()
	h.sessions.Login(r.Context(), token, profile)

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"user":     profile,
		"redirect": guard.LandingPath,
	})
}

// Logout clears the session. Calling it while logged out succeeds the same way.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Logout(r.Context())

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"message":"logged out"}`))
}

// Me returns the currently authenticated profile.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Current()
	if !sess.IsAuthenticated {
		http.Error(w, `{"error":"not authenticated"}`, http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sess.Profile)
}

// LoginView serves the login screen's bootstrap view model. The route guard
// has already redirected authenticated clients away from it.
func (h *Handler) LoginView(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"view":"login","authenticated":false}`))
}
