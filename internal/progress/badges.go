package progress

import (
	"time"

	"github.com/desertthunder/fitsense/internal/models"
)

// badgeDef pairs a catalog entry with its unlock predicate.
type badgeDef struct {
	id          string
	kind        models.BadgeKind
	name        string
	description string
	unlocked    func(s badgeStats) bool
}

// badgeStats are the aggregates the predicates run against.
type badgeStats struct {
	totalWorkouts int
	totalReps     int
	perfectForms  int // logs with formScore >= 9
	streak        int
}

// The badge IDs and predicates are a compatibility contract with the
// persisted history semantics; do not reorder or rename.
var badgeCatalog = []badgeDef{
	{"first_step", models.BadgeFirstStep, "First Step", "Complete your first workout",
		func(s badgeStats) bool { return s.totalWorkouts >= 1 }},
	{"getting_strong", models.BadgeGettingStrong, "Getting Strong", "Complete 5 workouts",
		func(s badgeStats) bool { return s.totalWorkouts >= 5 }},
	{"dedicated", models.BadgeDedicated, "Dedicated", "Complete 20 workouts",
		func(s badgeStats) bool { return s.totalWorkouts >= 20 }},
	{"rep_master", models.BadgeRepMaster, "Rep Master", "Accumulate 100 total reps",
		func(s badgeStats) bool { return s.totalReps >= 100 }},
	{"form_perfect", models.BadgeFormPerfect, "Form Perfectionist", "Get a form score of 9+ in 3 workouts",
		func(s badgeStats) bool { return s.perfectForms >= 3 }},
	{"streak_week", models.BadgeStreakWeek, "On Fire", "Maintain a 3-day streak",
		func(s badgeStats) bool { return s.streak >= 3 }},
}

// EvaluateBadges returns the fixed catalog with unlock flags computed
// fresh from the given logs. Evaluation is idempotent: unchanged logs
// always produce identical flags, and clearing history relocks badges.
func EvaluateBadges(logs []models.WorkoutLog, now time.Time) []models.Badge {
	stats := badgeStats{
		totalWorkouts: len(logs),
		streak:        CalculateStreak(logs, now),
	}
	for _, entry := range logs {
		stats.totalReps += entry.RepCount
		if entry.FormScore >= 9 {
			stats.perfectForms++
		}
	}

	badges := make([]models.Badge, len(badgeCatalog))
	for i, def := range badgeCatalog {
		badges[i] = models.Badge{
			ID:          def.id,
			Kind:        def.kind,
			Name:        def.name,
			Description: def.description,
			Unlocked:    def.unlocked(stats),
		}
	}
	return badges
}
