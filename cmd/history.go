package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/fitsense/internal/formatter"
	"github.com/desertthunder/fitsense/internal/shared"
	"github.com/urfave/cli/v3"
)

// HistoryList lists the active user's workout history, most recent first.
func (r *Runner) HistoryList(ctx context.Context, cmd *cli.Command) error {
	ws, err := r.openWorkspace("")
	if err != nil {
		return err
	}
	defer ws.Close()

	if _, ok := ws.session.Current(); !ok {
		return fmt.Errorf("%w: no active user", shared.ErrNotAuthenticated)
	}

	history := ws.logs.ListForCurrentUser()
	if limit := cmd.Int("limit"); limit > 0 && limit < len(history) {
		history = history[:limit]
	}

	if cmd.Bool("json") {
		return r.writeJSON(history, cmd.Bool("pretty"))
	}

	if len(history) == 0 {
		return r.writePlain("No workouts logged yet. Run 'fitsense analyze <file>' to get started.\n")
	}

	return r.writePlain("%s", formatter.HistoryToText(history))
}

// HistoryExport writes the active user's history to a CSV file.
func (r *Runner) HistoryExport(ctx context.Context, cmd *cli.Command) error {
	ws, err := r.openWorkspace("")
	if err != nil {
		return err
	}
	defer ws.Close()

	if _, ok := ws.session.Current(); !ok {
		return fmt.Errorf("%w: no active user", shared.ErrNotAuthenticated)
	}

	history := ws.logs.ListForCurrentUser()

	path, err := formatter.WriteHistoryCSV(history, cmd.String("output"))
	if err != nil {
		return err
	}

	r.logger.Info("history exported", "path", path, "entries", len(history))
	return r.writePlain("✓ Exported %d workout(s) to %s\n", len(history), path)
}

// HistoryClear deletes the active user's workout history.
func (r *Runner) HistoryClear(ctx context.Context, cmd *cli.Command) error {
	ws, err := r.openWorkspace("")
	if err != nil {
		return err
	}
	defer ws.Close()

	username, ok := ws.session.Current()
	if !ok {
		return fmt.Errorf("%w: no active user", shared.ErrNotAuthenticated)
	}

	if !cmd.Bool("yes") {
		return r.writePlain("This deletes all workout history for %s. Re-run with --yes to confirm.\n", username)
	}

	if err := ws.logs.ClearForCurrentUser(); err != nil {
		return err
	}

	r.logger.Info("history cleared", "username", username)
	return r.writePlain("✓ Workout history cleared\n")
}
