package tasks

import (
	"fmt"
	"path/filepath"

	"github.com/desertthunder/fitsense/internal/models"
)

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	ReadMedia Phase = iota
	AnalyzeMedia
	SaveLog
	BuildPlan
	SavePlan
)

func (p Phase) String() string {
	switch p {
	case ReadMedia:
		return "read_media"
	case AnalyzeMedia:
		return "analyze_media"
	case SaveLog:
		return "save_log"
	case BuildPlan:
		return "build_plan"
	case SavePlan:
		return "save_plan"
	default:
		return ""
	}
}

func readMediaUpdate(step, total int, path string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ReadMedia,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Reading %s...", filepath.Base(path)),
	}
}

func analyzeMediaUpdate(step, total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   AnalyzeMedia,
		Step:    step,
		Total:   total,
		Message: "Analyzing workout form...",
	}
}

func analysisDoneUpdate(step, total int, analysis *models.AnalysisResult) ProgressUpdate {
	return ProgressUpdate{
		Phase:   AnalyzeMedia,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Detected %s: %d reps, form %d/10", analysis.ExerciseName, analysis.RepCount, analysis.FormScore),
		Data:    analysis,
	}
}

func saveLogUpdate(step, total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   SaveLog,
		Step:    step,
		Total:   total,
		Message: "Saving workout to history...",
	}
}

func logSavedUpdate(step, total int, log *models.WorkoutLog, points int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   SaveLog,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Logged %s (+%d points)", log.ExerciseName, points),
		Data:    log,
	}
}

func buildPlanUpdate(step, total int, req models.WorkoutPlanRequest) ProgressUpdate {
	return ProgressUpdate{
		Phase:   BuildPlan,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Generating %s plan (%d days/week)...", req.Goal, req.DaysPerWeek),
	}
}

func savePlanUpdate(step, total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   SavePlan,
		Step:    step,
		Total:   total,
		Message: "Saving plan...",
	}
}
