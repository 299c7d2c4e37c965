package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/fitsense/internal/shared"
	"github.com/desertthunder/fitsense/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Analyze submits a workout recording for analysis and optionally records the result.
func (r *Runner) Analyze(ctx context.Context, cmd *cli.Command) error {
	mediaPath := cmd.StringArg("file")
	if mediaPath == "" {
		return fmt.Errorf("%w: media file path is required", shared.ErrMissingArgument)
	}

	ws, err := r.openWorkspace(cmd.String("lang"))
	if err != nil {
		return err
	}
	defer ws.Close()

	save := cmd.Bool("save")

	r.logger.Info("starting analysis", "file", mediaPath, "save", save)

	// Progress channel and goroutine to surface updates as they arrive
	progressCh := make(chan tasks.ProgressUpdate, 10)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progressCh {
			r.writePlain("%s\n", update.Message)
		}
	}()

	result, err := ws.engine.Analyze(ctx, progressCh, mediaPath, save)
	close(progressCh)
	<-done

	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(result, cmd.Bool("pretty"))
	}

	analysis := result.Analysis
	r.writePlain("\n")
	r.writePlainHeader(fmt.Sprintf("Analysis: %s", analysis.ExerciseName))
	r.writePlain("Reps: %d\n", analysis.RepCount)
	r.writePlain("Form score: %d/10\n", analysis.FormScore)

	if len(analysis.Feedback) > 0 {
		r.writePlainln("Feedback:")
		for _, fb := range analysis.Feedback {
			r.writePlain("  - %s\n", fb)
		}
	}

	if len(analysis.Suggestions) > 0 {
		r.writePlainln("Suggestions:")
		for _, s := range analysis.Suggestions {
			r.writePlain("  - %s\n", s)
		}
	}

	if result.Saved {
		r.writePlain("\n✓ Workout logged (+%d points)\n", result.PointsEarned)
	} else {
		r.writePlain("\nResult not saved (run with --save to record it)\n")
	}

	return nil
}
