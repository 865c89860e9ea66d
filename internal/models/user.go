package models

// Credential is one entry in the static credential list seeded at startup.
// Identity is the email address.
type Credential struct {
	Email       string `json:"email"`
	Password    string `json:"-"` // never serialize
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
}

// Session is the client-local authentication state. The auth token is present
// exactly when the session is authenticated, and the profile is present
// exactly when the token is.
type Session struct {
	AuthToken       string      `json:"-"`
	Profile         *Credential `json:"profile,omitempty"`
	IsAuthenticated bool        `json:"is_authenticated"`
}

// LoginRequest is the JSON body for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
