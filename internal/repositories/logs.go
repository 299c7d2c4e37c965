package repositories

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/desertthunder/fitsense/internal/models"
	"github.com/desertthunder/fitsense/internal/shared"
)

// Points awarded per recorded workout: a flat base, one point per rep and
// five per form-score point.
const (
	pointsBase         = 10
	pointsPerRep       = 1
	pointsPerFormScore = 5
)

// PointsFor returns the points a recorded log earns.
func PointsFor(log models.WorkoutLog) int {
	return pointsBase + pointsPerRep*log.RepCount + pointsPerFormScore*log.FormScore
}

// WorkoutLogRepository owns the append-only "logs" collection. Entries
// from every user share one document; reads filter by the session user.
type WorkoutLogRepository struct {
	store   Store
	session *Session
	users   *UserDirectory
}

// NewWorkoutLogRepository creates a new [WorkoutLogRepository].
func NewWorkoutLogRepository(store Store, session *Session, users *UserDirectory) *WorkoutLogRepository {
	return &WorkoutLogRepository{store: store, session: session, users: users}
}

// NewLogID returns a millisecond-timestamp identifier. Paired with the
// entry date it sorts stably even when two entries land on the same day.
func NewLogID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}

// Append records a workout for the active user: assigns a fresh ID,
// stamps the user, prepends to the global collection and accrues points.
// The entry's ID and UserID fields are ignored on input. Returns
// [shared.ErrNotAuthenticated] when no session is active.
//
// The log write and the point write are two separate store operations;
// a crash between them leaves points behind logs. Accepted drift.
func (r *WorkoutLogRepository) Append(entry models.WorkoutLog) (*models.WorkoutLog, error) {
	username, ok := r.session.Current()
	if !ok {
		return nil, shared.ErrNotAuthenticated
	}

	entry.ID = NewLogID(time.Now())
	entry.UserID = username
	if entry.Date.IsZero() {
		entry.Date = time.Now()
	}

	all := append([]models.WorkoutLog{entry}, r.allLogs()...)
	if err := r.persist(all); err != nil {
		return nil, err
	}

	if err := r.users.AddPoints(PointsFor(entry)); err != nil {
		return nil, err
	}

	return &entry, nil
}

// ListForCurrentUser returns the active user's entries in stored order,
// most recent first. Without a session it returns nothing.
func (r *WorkoutLogRepository) ListForCurrentUser() []models.WorkoutLog {
	username, ok := r.session.Current()
	if !ok {
		return nil
	}

	var logs []models.WorkoutLog
	for _, entry := range r.allLogs() {
		if entry.UserID == username {
			logs = append(logs, entry)
		}
	}
	return logs
}

// ClearForCurrentUser removes only the active user's entries; other
// users' history is untouched. A missing session is a no-op.
func (r *WorkoutLogRepository) ClearForCurrentUser() error {
	username, ok := r.session.Current()
	if !ok {
		return nil
	}

	kept := make([]models.WorkoutLog, 0)
	for _, entry := range r.allLogs() {
		if entry.UserID != username {
			kept = append(kept, entry)
		}
	}
	return r.persist(kept)
}

// allLogs reads the raw global collection; absence or corruption degrades
// to empty.
func (r *WorkoutLogRepository) allLogs() []models.WorkoutLog {
	raw, ok, err := r.store.Get(logsKey)
	if err != nil || !ok {
		return nil
	}

	var logs []models.WorkoutLog
	if err := json.Unmarshal([]byte(raw), &logs); err != nil {
		return nil
	}
	return logs
}

func (r *WorkoutLogRepository) persist(logs []models.WorkoutLog) error {
	data, err := json.Marshal(logs)
	if err != nil {
		return fmt.Errorf("failed to marshal logs: %w", err)
	}
	return r.store.Set(logsKey, string(data))
}
