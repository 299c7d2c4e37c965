package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/fitsense/internal/formatter"
	"github.com/desertthunder/fitsense/internal/models"
	"github.com/desertthunder/fitsense/internal/shared"
	"github.com/desertthunder/fitsense/internal/tasks"
	"github.com/urfave/cli/v3"
)

// PlanGenerate builds a personalized weekly plan and saves it for the active user.
func (r *Runner) PlanGenerate(ctx context.Context, cmd *cli.Command) error {
	req := models.WorkoutPlanRequest{
		Goal:            models.UserGoal(cmd.String("goal")),
		Level:           models.FitnessLevel(cmd.String("level")),
		DaysPerWeek:     cmd.Int("days"),
		DurationMinutes: cmd.Int("duration"),
		Equipment:       cmd.String("equipment"),
		Age:             cmd.Int("age"),
		FocusArea:       cmd.String("focus"),
		Limitations:     cmd.String("limitations"),
	}

	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidFlag, err)
	}

	ws, err := r.openWorkspace(cmd.String("lang"))
	if err != nil {
		return err
	}
	defer ws.Close()

	r.logger.Info("generating plan", "goal", req.Goal, "level", req.Level, "days", req.DaysPerWeek)

	progressCh := make(chan tasks.ProgressUpdate, 10)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progressCh {
			r.writePlain("%s\n", update.Message)
		}
	}()

	result, err := ws.engine.GeneratePlan(ctx, progressCh, req)
	close(progressCh)
	<-done

	if err != nil {
		return err
	}

	r.writePlain("\n%s\n", result.Plan)
	return r.writePlain("\n✓ Plan saved\n")
}

// PlanShow prints the active user's saved plan.
func (r *Runner) PlanShow(ctx context.Context, cmd *cli.Command) error {
	ws, err := r.openWorkspace("")
	if err != nil {
		return err
	}
	defer ws.Close()

	if _, ok := ws.session.Current(); !ok {
		return fmt.Errorf("%w: no active user", shared.ErrNotAuthenticated)
	}

	plan, ok := ws.plans.Get()
	if !ok {
		return r.writePlain("No plan saved yet. Run 'fitsense plan generate' first.\n")
	}

	return r.writePlain("%s\n", plan)
}

// PlanExport writes the saved plan to a Markdown file.
func (r *Runner) PlanExport(ctx context.Context, cmd *cli.Command) error {
	ws, err := r.openWorkspace("")
	if err != nil {
		return err
	}
	defer ws.Close()

	if _, ok := ws.session.Current(); !ok {
		return fmt.Errorf("%w: no active user", shared.ErrNotAuthenticated)
	}

	plan, ok := ws.plans.Get()
	if !ok {
		return fmt.Errorf("%w: no plan saved", shared.ErrInvalidInput)
	}

	path, err := formatter.WritePlanMarkdown(plan, cmd.String("output"))
	if err != nil {
		return err
	}

	r.logger.Info("plan exported", "path", path)
	return r.writePlain("✓ Plan written to %s\n", path)
}
