package main

import (
	"context"
	"time"

	"github.com/desertthunder/fitsense/internal/formatter"
	"github.com/urfave/cli/v3"
)

// ProgressSummary prints the full progress report for the active user.
func (r *Runner) ProgressSummary(ctx context.Context, cmd *cli.Command) error {
	ws, err := r.openWorkspace("")
	if err != nil {
		return err
	}
	defer ws.Close()

	snap, err := ws.engine.Snapshot(time.Now())
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(snap, cmd.Bool("pretty"))
	}

	report := formatter.ProgressToMarkdown(snap.Profile, snap.Streak, snap.Badges, snap.Leaderboard, snap.History, time.Now())

	if outputPath := cmd.String("output"); outputPath != "" {
		path, err := formatter.WritePlanMarkdown(string(report), outputPath)
		if err != nil {
			return err
		}
		r.logger.Info("progress report written", "path", path)
		return r.writePlain("✓ Report written to %s\n", path)
	}

	return r.writePlain("%s", report)
}

// ProgressStreak shows the current workout streak.
func (r *Runner) ProgressStreak(ctx context.Context, cmd *cli.Command) error {
	ws, err := r.openWorkspace("")
	if err != nil {
		return err
	}
	defer ws.Close()

	snap, err := ws.engine.Snapshot(time.Now())
	if err != nil {
		return err
	}

	if snap.Streak == 0 {
		return r.writePlain("No active streak. Log a workout today to start one!\n")
	}
	return r.writePlain("🔥 %d day streak\n", snap.Streak)
}

// ProgressBadges shows the achievement catalog with unlock state.
func (r *Runner) ProgressBadges(ctx context.Context, cmd *cli.Command) error {
	ws, err := r.openWorkspace("")
	if err != nil {
		return err
	}
	defer ws.Close()

	snap, err := ws.engine.Snapshot(time.Now())
	if err != nil {
		return err
	}

	r.writePlainHeader("Badges")
	return r.writePlain("%s", formatter.BadgesToText(snap.Badges))
}

// ProgressLeaderboard shows community standings.
func (r *Runner) ProgressLeaderboard(ctx context.Context, cmd *cli.Command) error {
	ws, err := r.openWorkspace("")
	if err != nil {
		return err
	}
	defer ws.Close()

	snap, err := ws.engine.Snapshot(time.Now())
	if err != nil {
		return err
	}

	r.writePlainHeader("Leaderboard")
	return r.writePlain("%s", formatter.LeaderboardToText(snap.Leaderboard))
}
