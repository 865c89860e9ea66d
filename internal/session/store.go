package session

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/adityav/starwars-portal/internal/models"
	"github.com/adityav/starwars-portal/internal/store"
)

// Durable state keys for the persisted session.
const (
	keyAuthToken = "auth_token"
	keyProfile   = "profile"
)

// Store holds the live session and mirrors it into durable local state.
// It is hydrated once at construction; afterwards only Login and Logout
// mutate it, each atomically with respect to Current.
type Store struct {
	mu    sync.RWMutex
	sess  models.Session
	state *store.LocalState
}

// New creates a session store hydrated from durable state. Absent or
// unparsable stored data yields the logged-out session; corrupt storage is
// never surfaced.
func New(ctx context.Context, state *store.LocalState) *Store {
	s := &Store{state: state}

	token, ok, err := state.Get(ctx, keyAuthToken)
	if err != nil || !ok || token == "" {
		return s
	}
	raw, ok, err := state.Get(ctx, keyProfile)
	if err != nil || !ok {
		return s
	}
	var profile models.Credential
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		// Treat a corrupt stored profile as "no session".
		return s
	}

	s.sess = models.Session{AuthToken: token, Profile: &profile, IsAuthenticated: true}
	return s
}

// Login sets the session atomically and writes both durable entries.
// Persistence is best-effort: a failed write is logged, not returned.
// Empty arguments are rejected as a no-op.
func (s *Store) Login(ctx context.Context, token string, profile models.Credential) {
	if token == "" || profile.Email == "" {
		return
	}

	s.mu.Lock()
	p := profile
	s.sess = models.Session{AuthToken: token, Profile: &p, IsAuthenticated: true}
	s.mu.Unlock()

	if err := s.state.Set(ctx, keyAuthToken, token); err != nil {
		log.Printf("session: persist token: %v", err)
		return
	}
	raw, err := json.Marshal(profile)
	if err != nil {
		log.Printf("session: encode profile: %v", err)
		return
	}
	if err := s.state.Set(ctx, keyProfile, string(raw)); err != nil {
		log.Printf("session: persist profile: %v", err)
	}
}

// Logout clears the session and removes the durable entries. Calling it when
// already logged out is a no-op.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.sess = models.Session{}
	s.mu.Unlock()

	if err := s.state.Delete(ctx, keyAuthToken); err != nil {
		log.Printf("session: remove token: %v", err)
	}
	if err := s.state.Delete(ctx, keyProfile); err != nil {
		log.Printf("session: remove profile: %v", err)
	}
}

// Current returns a copy of the live session state.
func (s *Store) Current() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess := s.sess
	if s.sess.Profile != nil {
		p := *s.sess.Profile
		sess.Profile = &p
	}
	return sess
}
