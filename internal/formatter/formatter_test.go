package formatter

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/desertthunder/fitsense/internal/models"
	th "github.com/desertthunder/fitsense/internal/testing"
)

func sampleHistory() []models.WorkoutLog {
	return []models.WorkoutLog{
		{
			ID:           "1756600000000",
			UserID:       "alice",
			Date:         time.Date(2026, 8, 30, 18, 15, 0, 0, time.UTC),
			ExerciseName: "Squat",
			RepCount:     12,
			FormScore:    8,
			Feedback:     []string{"Good depth", "Watch knee tracking"},
		},
		{
			ID:           "1756500000000",
			UserID:       "alice",
			Date:         time.Date(2026, 8, 29, 7, 30, 0, 0, time.UTC),
			ExerciseName: "Push-up",
			RepCount:     20,
			FormScore:    9,
			Feedback:     []string{"Solid core tension"},
		},
	}
}

func TestExporters(t *testing.T) {
	t.Run("HistoryToCSV", func(t *testing.T) {
		data, err := HistoryToCSV(sampleHistory())
		if err != nil {
			t.Fatalf("HistoryToCSV failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "ID,Date,Exercise,Reps,FormScore,Points,Feedback") {
			t.Errorf("CSV missing headers, got: %s", output)
		}
		if !strings.Contains(output, "Squat") {
			t.Errorf("CSV missing exercise name")
		}
		// 10 + 12 reps + 8*5 form
		if !strings.Contains(output, ",62,") {
			t.Errorf("CSV missing derived points, got: %s", output)
		}
		if !strings.Contains(output, "Good depth; Watch knee tracking") {
			t.Errorf("CSV missing joined feedback")
		}
	})

	t.Run("HistoryToCSV empty", func(t *testing.T) {
		data, err := HistoryToCSV(nil)
		if err != nil {
			t.Fatalf("HistoryToCSV failed: %v", err)
		}
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		if len(lines) != 1 {
			t.Errorf("expected headers only, got %d lines", len(lines))
		}
	})

	t.Run("HistoryToText", func(t *testing.T) {
		output := string(HistoryToText(sampleHistory()))

		if !strings.Contains(output, "Workouts: 2") {
			t.Errorf("text missing workout count, got: %s", output)
		}
		if !strings.Contains(output, "1. 2026-08-30 18:15 - Squat: 12 reps, form 8/10 (+62 pts)") {
			t.Errorf("text missing first entry, got: %s", output)
		}
		if !strings.Contains(output, "- Solid core tension") {
			t.Errorf("text missing feedback line")
		}
	})

	t.Run("BadgesToText", func(t *testing.T) {
		badges := []models.Badge{
			{ID: "first_step", Name: "First Step", Description: "Complete your first workout", Unlocked: true},
			{ID: "dedicated", Name: "Dedicated", Description: "Complete 20 workouts", Unlocked: false},
		}

		output := string(BadgesToText(badges))

		if !strings.Contains(output, "[x] First Step - Complete your first workout") {
			t.Errorf("missing unlocked badge, got: %s", output)
		}
		if !strings.Contains(output, "[ ] Dedicated") {
			t.Errorf("missing locked badge, got: %s", output)
		}
	})

	t.Run("LeaderboardToText", func(t *testing.T) {
		entries := []models.LeaderboardEntry{
			{Rank: 1, Username: "MikeLifts", Points: 1500},
			{Rank: 2, Username: "alice", Points: 320, IsCurrentUser: true},
		}

		output := string(LeaderboardToText(entries))

		if !strings.Contains(output, "MikeLifts") {
			t.Errorf("missing first entry, got: %s", output)
		}
		lines := strings.Split(strings.TrimSpace(output), "\n")
		if len(lines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(lines))
		}
		if !strings.HasPrefix(lines[1], "*") {
			t.Errorf("expected current user marker, got: %s", lines[1])
		}
	})

	t.Run("ProgressToMarkdown", func(t *testing.T) {
		profile := models.UserProfile{Username: "alice", TotalPoints: 320}
		badges := []models.Badge{
			{Name: "First Step", Description: "Complete your first workout", Unlocked: true},
		}
		leaderboard := []models.LeaderboardEntry{
			{Rank: 1, Username: "MikeLifts", Points: 1500},
			{Rank: 2, Username: "alice", Points: 320, IsCurrentUser: true},
		}
		now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

		output := string(ProgressToMarkdown(profile, 3, badges, leaderboard, sampleHistory(), now))

		if !strings.Contains(output, "# Progress Report: alice") {
			t.Errorf("missing title, got: %s", output)
		}
		if !strings.Contains(output, "**Current Streak**: 3 day(s)") {
			t.Errorf("missing streak line")
		}
		if !strings.Contains(output, "| 2 | **alice** | 320 |") {
			t.Errorf("missing bolded current user row, got: %s", output)
		}
		if !strings.Contains(output, "- 2026-08-30: Squat, 12 reps, form 8/10") {
			t.Errorf("missing recent workout line")
		}
	})
}

func TestFileExports(t *testing.T) {
	t.Run("WriteHistoryCSV", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "history.csv")

		written, err := WriteHistoryCSV(sampleHistory(), path)
		if err != nil {
			t.Fatalf("WriteHistoryCSV failed: %v", err)
		}
		if written != path {
			t.Errorf("expected path %s, got %s", path, written)
		}

		th.AssertFileExists(t, path)
		if content := th.MustReadFile(t, path); !strings.Contains(content, "Squat") {
			t.Errorf("written CSV missing data")
		}
	})

	t.Run("WriteHistoryCSV default filename", func(t *testing.T) {
		wd := th.MustGetwd(t)
		th.MustChdir(t, t.TempDir())
		defer th.MustChdir(t, wd)

		written, err := WriteHistoryCSV(sampleHistory(), "")
		if err != nil {
			t.Fatalf("WriteHistoryCSV failed: %v", err)
		}
		if written != "workout_history.csv" {
			t.Errorf("expected default filename, got %s", written)
		}
		th.AssertFileExists(t, written)
	})

	t.Run("WritePlanMarkdown", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "plan.md")

		written, err := WritePlanMarkdown("# Plan\n\nDay 1: Rest", path)
		if err != nil {
			t.Fatalf("WritePlanMarkdown failed: %v", err)
		}

		content := th.MustReadFile(t, written)
		if !strings.HasPrefix(content, "# Plan") {
			t.Errorf("plan content mismatch: %s", content)
		}
		if !strings.HasSuffix(content, "\n") {
			t.Errorf("plan file should end with newline")
		}
	})

	t.Run("WritePlanMarkdown fails on bad path", func(t *testing.T) {
		if _, err := WritePlanMarkdown("# Plan", filepath.Join(t.TempDir(), "missing", "plan.md")); err == nil {
			t.Error("expected error for missing directory")
		}
	})
}
