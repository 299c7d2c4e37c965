package services

import (
	"context"

	"github.com/desertthunder/fitsense/internal/models"
)

// Analyzer produces structured form feedback for an uploaded workout
// recording (video or still image).
type Analyzer interface {
	// AnalyzeWorkout submits the media payload with its MIME type and a
	// language tag and returns the structured analysis.
	AnalyzeWorkout(ctx context.Context, media []byte, mimeType, language string) (*models.AnalysisResult, error)
}

// Planner generates a personalized weekly training plan as markdown text.
type Planner interface {
	GeneratePlan(ctx context.Context, req models.WorkoutPlanRequest, language string) (string, error)
}
