package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/adityav/starwars-portal/internal/models"
)

// seedUsers is the static credential list. It is fixed at startup and never
// mutated; there is no registration flow.
var seedUsers = []models.Credential{
	{
		Email:       "user1@test.com",
		Password:    "password123",
		DisplayName: "User One",
		AvatarURL:   "https://randomuser.me/api/portraits/men/1.jpg",
	},
	{
		Email:       "user2@test.com",
		Password:    "password456",
		DisplayName: "User Two",
		AvatarURL:   "https://randomuser.me/api/portraits/men/2.jpg",
	},
}

type credentialRecord struct {
	profile models.Credential
	hash    []byte
}

// CredentialList is the immutable set of known credentials, with passwords
// hashed at seed time.
type CredentialList struct {
	records []credentialRecord
}

// SeedCredentials builds the credential list from the static seed.
func SeedCredentials() (*CredentialList, error) {
	l := &CredentialList{}
	for _, u := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("seed credential %s: %w", u.Email, err)
		}
		profile := u
		profile.Password = "" // only the hash is kept
		l.records = append(l.records, credentialRecord{profile: profile, hash: hash})
	}
	return l, nil
}

// Match returns the profile for an exact (email, password) match.
func (l *CredentialList) Match(email, password string) (models.Credential, bool) {
	for _, rec := range l.records {
		if rec.profile.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword(rec.hash, []byte(password)) == nil {
			return rec.profile, true
		}
	}
	return models.Credential{}, false
}
