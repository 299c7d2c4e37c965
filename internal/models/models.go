package models

import (
	"fmt"
	"time"
)

// UserProfile is one registered account, keyed by username.
//
// TotalPoints is mutated only by point accrual and is expected to be
// non-decreasing. PasswordSecret is an opaque comparison token stored in
// plain text; hardening it is an explicit non-goal of the single-device
// model.
type UserProfile struct {
	Username       string    `json:"username"`
	PasswordSecret string    `json:"password,omitempty"`
	Email          string    `json:"email,omitempty"`
	JoinedDate     time.Time `json:"joinedDate"`
	TotalPoints    int       `json:"totalPoints"`
}

// WorkoutLog is one persisted workout analysis, immutable once written.
//
// UserID references UserProfile.Username; entries are stored in one
// global collection and always read through a per-user filter.
type WorkoutLog struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Date         time.Time `json:"date"`
	ExerciseName string    `json:"exerciseName"`
	RepCount     int       `json:"repCount"`
	FormScore    int       `json:"formScore"`
	Feedback     []string  `json:"feedback"`
}

// AnalysisResult is the structured output of the video analysis service.
type AnalysisResult struct {
	ExerciseName string   `json:"exerciseName"`
	RepCount     int      `json:"repCount"`
	FormScore    int      `json:"formScore"`
	Feedback     []string `json:"feedback"`
	Suggestions  []string `json:"suggestions"`
}

// UserGoal enumerates the training goals a plan can target.
type UserGoal string

const (
	GoalLoseWeight       UserGoal = "Lose Weight"
	GoalBuildMuscle      UserGoal = "Build Muscle"
	GoalImproveEndurance UserGoal = "Improve Endurance"
	GoalFlexibility      UserGoal = "Flexibility & Mobility"
)

// FitnessLevel enumerates self-reported experience levels.
type FitnessLevel string

const (
	LevelBeginner     FitnessLevel = "Beginner"
	LevelIntermediate FitnessLevel = "Intermediate"
	LevelAdvanced     FitnessLevel = "Advanced"
)

// WorkoutPlanRequest holds the parameters for plan generation.
type WorkoutPlanRequest struct {
	Goal            UserGoal     `json:"goal"`
	Level           FitnessLevel `json:"level"`
	DaysPerWeek     int          `json:"daysPerWeek"`
	DurationMinutes int          `json:"durationMinutes"`
	Equipment       string       `json:"equipment"`
	Age             int          `json:"age,omitempty"`
	FocusArea       string       `json:"focusArea,omitempty"`
	Limitations     string       `json:"limitations,omitempty"`
}

// Validate checks that the request describes a schedulable plan.
func (r WorkoutPlanRequest) Validate() error {
	switch r.Goal {
	case GoalLoseWeight, GoalBuildMuscle, GoalImproveEndurance, GoalFlexibility:
	default:
		return fmt.Errorf("unknown goal %q", r.Goal)
	}

	switch r.Level {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
	default:
		return fmt.Errorf("unknown fitness level %q", r.Level)
	}

	if r.DaysPerWeek < 1 || r.DaysPerWeek > 7 {
		return fmt.Errorf("days per week must be 1-7, got %d", r.DaysPerWeek)
	}

	if r.DurationMinutes <= 0 {
		return fmt.Errorf("session duration must be positive, got %d", r.DurationMinutes)
	}

	return nil
}

// BadgeKind tags the achievement catalog entries.
//
// Presentation concerns (icons, localized names) map from the kind in the
// UI layer; the kind itself is the stable identity.
type BadgeKind int

const (
	BadgeFirstStep BadgeKind = iota
	BadgeGettingStrong
	BadgeDedicated
	BadgeRepMaster
	BadgeFormPerfect
	BadgeStreakWeek
)

// Badge is a derived achievement, recomputed from live workout history.
// Unlocked is never persisted.
type Badge struct {
	ID          string    `json:"id"`
	Kind        BadgeKind `json:"-"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Unlocked    bool      `json:"unlocked"`
}

// LeaderboardEntry is a derived standing; Rank is assigned by sorting and
// never persisted.
type LeaderboardEntry struct {
	Rank          int    `json:"rank"`
	Username      string `json:"username"`
	Points        int    `json:"points"`
	IsCurrentUser bool   `json:"isCurrentUser"`
}
