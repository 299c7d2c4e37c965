package repositories

import "github.com/desertthunder/fitsense/internal/shared"

// PlanRepository caches the last generated plan text per user under
// plan_<username>. Plans are plain markdown, not JSON.
type PlanRepository struct {
	store   Store
	session *Session
}

// NewPlanRepository creates a new [PlanRepository].
func NewPlanRepository(store Store, session *Session) *PlanRepository {
	return &PlanRepository{store: store, session: session}
}

// Save stores the plan text for the active user.
func (r *PlanRepository) Save(text string) error {
	username, ok := r.session.Current()
	if !ok {
		return shared.ErrNotAuthenticated
	}
	return r.store.Set(planKeyPrefix+username, text)
}

// Get returns the active user's cached plan, if one exists.
func (r *PlanRepository) Get() (string, bool) {
	username, ok := r.session.Current()
	if !ok {
		return "", false
	}
	text, ok, err := r.store.Get(planKeyPrefix + username)
	if err != nil || !ok {
		return "", false
	}
	return text, true
}
