package repositories

import "fmt"

// Session is the single active-username pointer. Setting it is the atomic
// "sign in" action shared by register and login; clearing it never
// touches user data.
type Session struct {
	store Store
}

// NewSession creates a new [Session] backed by the given store.
func NewSession(store Store) *Session {
	return &Session{store: store}
}

// Current returns the active username, or false when signed out.
func (s *Session) Current() (string, bool) {
	username, ok, err := s.store.Get(activeUserKey)
	if err != nil || !ok || username == "" {
		return "", false
	}
	return username, true
}

// SignIn points the session at username.
func (s *Session) SignIn(username string) error {
	if err := s.store.Set(activeUserKey, username); err != nil {
		return fmt.Errorf("failed to sign in: %w", err)
	}
	return nil
}

// Logout clears the pointer.
func (s *Session) Logout() error {
	if err := s.store.Remove(activeUserKey); err != nil {
		return fmt.Errorf("failed to sign out: %w", err)
	}
	return nil
}
