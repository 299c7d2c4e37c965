// package tasks implements the workout coaching operations behind the CLI and TUI.
//
// The core abstraction is CoachEngine, which orchestrates media analysis, plan
// generation, and progress reporting over the repositories layer. Operations
// emit progress updates via channels for non-blocking status reporting.
package tasks

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/desertthunder/fitsense/internal/models"
	"github.com/desertthunder/fitsense/internal/progress"
	"github.com/desertthunder/fitsense/internal/repositories"
	"github.com/desertthunder/fitsense/internal/services"
	"github.com/desertthunder/fitsense/internal/shared"
)

// AnalysisRunResult contains all data from a single analysis operation.
type AnalysisRunResult struct {
	RunID        string                 // Unique ID for this run
	Analysis     *models.AnalysisResult // Structured analysis output
	Log          *models.WorkoutLog     // Persisted log entry (nil when not saved)
	PointsEarned int                    // Points credited to the active user
	Saved        bool                   // Whether the result was written to history
}

// PlanRunResult contains all data from a plan generation operation.
type PlanRunResult struct {
	RunID string // Unique ID for this run
	Plan  string // Generated markdown plan
	Saved bool   // Whether the plan was persisted for the active user
}

// ProgressSnapshot is a point-in-time view of the active user's standing.
type ProgressSnapshot struct {
	Profile     models.UserProfile
	Streak      int
	Badges      []models.Badge
	Leaderboard []models.LeaderboardEntry
	History     []models.WorkoutLog
}

// CoachEngine defines the coaching operations exposed to the CLI and TUI.
type CoachEngine interface {
	// Analyze reads a media file, submits it for analysis, and optionally
	// records the result as a workout log for the active user.
	Analyze(ctx context.Context, progress chan<- ProgressUpdate, mediaPath string, save bool) (*AnalysisRunResult, error)

	// GeneratePlan builds a weekly plan from the request and stores it for
	// the active user.
	GeneratePlan(ctx context.Context, progress chan<- ProgressUpdate, req models.WorkoutPlanRequest) (*PlanRunResult, error)

	// Snapshot derives streak, badges, leaderboard, and history for the
	// active user as of now.
	Snapshot(now time.Time) (*ProgressSnapshot, error)
}

// WorkoutEngine implements CoachEngine over the AI services and repositories.
type WorkoutEngine struct {
	analyzer services.Analyzer
	planner  services.Planner
	users    *repositories.UserDirectory
	logs     *repositories.WorkoutLogRepository
	plans    *repositories.PlanRepository
	language string
}

// NewWorkoutEngine creates a new WorkoutEngine with the provided dependencies.
func NewWorkoutEngine(analyzer services.Analyzer, planner services.Planner, users *repositories.UserDirectory, logs *repositories.WorkoutLogRepository, plans *repositories.PlanRepository, language string) *WorkoutEngine {
	if language == "" {
		language = "en"
	}
	return &WorkoutEngine{
		analyzer: analyzer,
		planner:  planner,
		users:    users,
		logs:     logs,
		plans:    plans,
		language: language,
	}
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default so progress reporting never stalls execution.
func (e *WorkoutEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
		// Sent successfully
	default:
		// Channel full or closed, skip this update
	}
}

// mediaMimeType resolves the MIME type for an uploaded workout recording.
func mediaMimeType(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".mp4":
		return "video/mp4", nil
	case ".mov":
		return "video/quicktime", nil
	case ".webm":
		return "video/webm", nil
	case ".jpg", ".jpeg":
		return "image/jpeg", nil
	case ".png":
		return "image/png", nil
	case ".gif":
		return "image/gif", nil
	}
	if mt := mime.TypeByExtension(ext); strings.HasPrefix(mt, "video/") || strings.HasPrefix(mt, "image/") {
		return mt, nil
	}
	return "", fmt.Errorf("%w: unsupported media type %q", shared.ErrInvalidInput, ext)
}

// Analyze runs a full analysis pass: read media, call the analyzer, and
// record the workout when save is set.
func (e *WorkoutEngine) Analyze(ctx context.Context, progress chan<- ProgressUpdate, mediaPath string, save bool) (*AnalysisRunResult, error) {
	if e.analyzer == nil {
		return nil, fmt.Errorf("%w: analyzer not initialized", shared.ErrServiceUnavailable)
	}

	result := &AnalysisRunResult{RunID: shared.GenerateID()}

	e.sendProgress(progress, readMediaUpdate(1, 3, mediaPath))

	mimeType, err := mediaMimeType(mediaPath)
	if err != nil {
		return nil, err
	}
	media, err := os.ReadFile(mediaPath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read media file: %v", shared.ErrInvalidInput, err)
	}

	e.sendProgress(progress, analyzeMediaUpdate(2, 3))

	analysis, err := e.analyzer.AnalyzeWorkout(ctx, media, mimeType, e.language)
	if err != nil {
		return nil, err
	}
	result.Analysis = analysis

	if !save {
		e.sendProgress(progress, analysisDoneUpdate(3, 3, analysis))
		return result, nil
	}

	e.sendProgress(progress, saveLogUpdate(3, 3))

	log := models.WorkoutLog{
		ExerciseName: analysis.ExerciseName,
		RepCount:     analysis.RepCount,
		FormScore:    analysis.FormScore,
		Feedback:     analysis.Feedback,
	}
	saved, err := e.logs.Append(log)
	if err != nil {
		return result, err
	}

	result.Log = saved
	result.PointsEarned = repositories.PointsFor(*saved)
	result.Saved = true

	e.sendProgress(progress, logSavedUpdate(3, 3, saved, result.PointsEarned))
	return result, nil
}

// GeneratePlan builds and persists a weekly plan for the active user.
func (e *WorkoutEngine) GeneratePlan(ctx context.Context, progress chan<- ProgressUpdate, req models.WorkoutPlanRequest) (*PlanRunResult, error) {
	if e.planner == nil {
		return nil, fmt.Errorf("%w: planner not initialized", shared.ErrServiceUnavailable)
	}

	result := &PlanRunResult{RunID: shared.GenerateID()}

	e.sendProgress(progress, buildPlanUpdate(1, 2, req))

	plan, err := e.planner.GeneratePlan(ctx, req, e.language)
	if err != nil {
		return nil, err
	}
	result.Plan = plan

	e.sendProgress(progress, savePlanUpdate(2, 2))

	if err := e.plans.Save(plan); err != nil {
		return result, err
	}
	result.Saved = true

	return result, nil
}

// Snapshot derives the active user's full progress view from live history.
func (e *WorkoutEngine) Snapshot(now time.Time) (*ProgressSnapshot, error) {
	prof, ok := e.users.CurrentProfile()
	if !ok {
		return nil, fmt.Errorf("%w: no active user", shared.ErrNotAuthenticated)
	}

	history := e.logs.ListForCurrentUser()
	users := e.users.All()

	return &ProgressSnapshot{
		Profile:     prof,
		Streak:      progress.CalculateStreak(history, now),
		Badges:      progress.EvaluateBadges(history, now),
		Leaderboard: progress.BuildLeaderboard(users, prof.Username),
		History:     history,
	}, nil
}
