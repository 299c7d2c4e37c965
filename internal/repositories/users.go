package repositories

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/desertthunder/fitsense/internal/models"
	"github.com/desertthunder/fitsense/internal/shared"
)

// UserDirectory maps usernames to [models.UserProfile] records under the
// "users" key and owns point accrual for the active user.
type UserDirectory struct {
	store   Store
	session *Session
}

// NewUserDirectory creates a new [UserDirectory] with the given store and session.
func NewUserDirectory(store Store, session *Session) *UserDirectory {
	return &UserDirectory{store: store, session: session}
}

// All returns every registered profile. It never fails: an absent or
// unparseable "users" document yields an empty map.
func (d *UserDirectory) All() map[string]models.UserProfile {
	users := make(map[string]models.UserProfile)

	raw, ok, err := d.store.Get(usersKey)
	if err != nil || !ok {
		return users
	}
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return map[string]models.UserProfile{}
	}
	return users
}

// Get looks up a profile by username.
func (d *UserDirectory) Get(username string) (models.UserProfile, bool) {
	profile, ok := d.All()[username]
	return profile, ok
}

// CurrentProfile returns the active session's profile, if any.
func (d *UserDirectory) CurrentProfile() (models.UserProfile, bool) {
	username, ok := d.session.Current()
	if !ok {
		return models.UserProfile{}, false
	}
	return d.Get(username)
}

// Register creates a profile with zero points and signs the session in.
// Returns [shared.ErrUserExists] when the username is taken.
func (d *UserDirectory) Register(username, passwordSecret, email string) (*models.UserProfile, error) {
	users := d.All()
	if _, taken := users[username]; taken {
		return nil, fmt.Errorf("%w: %s", shared.ErrUserExists, username)
	}

	profile := models.UserProfile{
		Username:       username,
		PasswordSecret: passwordSecret,
		Email:          email,
		JoinedDate:     time.Now(),
		TotalPoints:    0,
	}

	users[username] = profile
	if err := d.persist(users); err != nil {
		return nil, err
	}
	if err := d.session.SignIn(username); err != nil {
		return nil, err
	}

	return &profile, nil
}

// Login signs the session in when the user exists and either has no
// password secret or the supplied one matches exactly. No lockout, no
// hashing; credential hardening is out of scope for a local store.
func (d *UserDirectory) Login(username, passwordSecret string) error {
	user, ok := d.Get(username)
	if !ok {
		return fmt.Errorf("%w: %s", shared.ErrInvalidCredentials, username)
	}
	if user.PasswordSecret != "" && user.PasswordSecret != passwordSecret {
		return fmt.Errorf("%w: %s", shared.ErrInvalidCredentials, username)
	}
	return d.session.SignIn(username)
}

// Save upserts a profile by username, overwriting unconditionally.
func (d *UserDirectory) Save(profile models.UserProfile) error {
	users := d.All()
	users[profile.Username] = profile
	return d.persist(users)
}

// AddPoints adds amount to the active user's total. A missing session is
// a silent no-op; callers that care must check session state themselves.
func (d *UserDirectory) AddPoints(amount int) error {
	profile, ok := d.CurrentProfile()
	if !ok {
		return nil
	}
	profile.TotalPoints += amount
	return d.Save(profile)
}

func (d *UserDirectory) persist(users map[string]models.UserProfile) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to marshal users: %w", err)
	}
	return d.store.Set(usersKey, string(data))
}
