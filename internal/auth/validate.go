package auth

import (
	"net/mail"

	"github.com/adityav/starwars-portal/internal/models"
)

const minPasswordLen = 6

// validateLogin checks the login input and returns field-level messages.
// An empty map means the input is acceptable.
func validateLogin(req models.LoginRequest) map[string]string {
	errs := map[string]string{}

	if req.Email == "" {
		errs["email"] = "Email is required"
	} else if addr, err := mail.ParseAddress(req.Email); err != nil || addr.Address != req.Email {
		errs["email"] = "Invalid email format"
	}

	if req.Password == "" {
		errs["password"] = "Password is required"
	} else if len(req.Password) < minPasswordLen {
		errs["password"] = "Password must be at least 6 characters"
	}

	return errs
}
