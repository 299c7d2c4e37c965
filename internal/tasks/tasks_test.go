package tasks

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/desertthunder/fitsense/internal/models"
	"github.com/desertthunder/fitsense/internal/repositories"
	"github.com/desertthunder/fitsense/internal/shared"
	tu "github.com/desertthunder/fitsense/internal/testing"
)

type engineFixture struct {
	engine   *WorkoutEngine
	analyzer *tu.MockAnalyzer
	planner  *tu.MockPlanner
	users    *repositories.UserDirectory
	logs     *repositories.WorkoutLogRepository
	plans    *repositories.PlanRepository
}

func setupEngine(t *testing.T) (*engineFixture, func()) {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	store := repositories.NewKVStore(db)
	session := repositories.NewSession(store)
	users := repositories.NewUserDirectory(store, session)
	logs := repositories.NewWorkoutLogRepository(store, session, users)
	plans := repositories.NewPlanRepository(store, session)

	analyzer := &tu.MockAnalyzer{}
	planner := &tu.MockPlanner{}
	engine := NewWorkoutEngine(analyzer, planner, users, logs, plans, "en")

	return &engineFixture{engine, analyzer, planner, users, logs, plans}, func() { db.Close() }
}

func writeTempMedia(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("fake media bytes"), 0o644); err != nil {
		t.Fatalf("failed to write media fixture: %v", err)
	}
	return path
}

func signIn(t *testing.T, f *engineFixture, username string) {
	t.Helper()
	if _, err := f.users.Register(username, "secret", ""); err != nil {
		t.Fatalf("failed to register %s: %v", username, err)
	}
}

func TestWorkoutEngineAnalyze(t *testing.T) {
	ctx := context.Background()

	t.Run("analyzes without saving", func(t *testing.T) {
		f, cleanup := setupEngine(t)
		defer cleanup()

		result, err := f.engine.Analyze(ctx, nil, writeTempMedia(t, "squat.mp4"), false)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result.Analysis == nil || result.Analysis.ExerciseName != "Push-up" {
			t.Errorf("unexpected analysis %+v", result.Analysis)
		}
		if result.Saved || result.Log != nil {
			t.Error("expected nothing persisted without save")
		}
		if result.RunID == "" {
			t.Error("expected a run ID")
		}
		if f.analyzer.Calls != 1 {
			t.Errorf("expected one analyzer call, got %d", f.analyzer.Calls)
		}
	})

	t.Run("saves log and credits points", func(t *testing.T) {
		f, cleanup := setupEngine(t)
		defer cleanup()
		signIn(t, f, "alice")

		f.analyzer.Result = &models.AnalysisResult{
			ExerciseName: "Squat",
			RepCount:     5,
			FormScore:    8,
			Feedback:     []string{"Good depth"},
		}

		result, err := f.engine.Analyze(ctx, nil, writeTempMedia(t, "squat.mov"), true)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !result.Saved || result.Log == nil {
			t.Fatal("expected saved log entry")
		}
		if result.Log.UserID != "alice" {
			t.Errorf("expected log owned by alice, got %s", result.Log.UserID)
		}
		if result.PointsEarned != 55 {
			t.Errorf("expected 55 points, got %d", result.PointsEarned)
		}

		prof, _ := f.users.Get("alice")
		if prof.TotalPoints != 55 {
			t.Errorf("expected profile at 55 points, got %d", prof.TotalPoints)
		}
		if history := f.logs.ListForCurrentUser(); len(history) != 1 {
			t.Errorf("expected one history entry, got %d", len(history))
		}
	})

	t.Run("save requires an active user", func(t *testing.T) {
		f, cleanup := setupEngine(t)
		defer cleanup()

		_, err := f.engine.Analyze(ctx, nil, writeTempMedia(t, "squat.mp4"), true)
		if !errors.Is(err, shared.ErrNotAuthenticated) {
			t.Errorf("expected ErrNotAuthenticated, got %v", err)
		}
	})

	t.Run("rejects unsupported media", func(t *testing.T) {
		f, cleanup := setupEngine(t)
		defer cleanup()

		_, err := f.engine.Analyze(ctx, nil, writeTempMedia(t, "notes.txt"), false)
		if !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
		if f.analyzer.Calls != 0 {
			t.Error("analyzer should not be called for unsupported media")
		}
	})

	t.Run("fails on missing media file", func(t *testing.T) {
		f, cleanup := setupEngine(t)
		defer cleanup()

		_, err := f.engine.Analyze(ctx, nil, filepath.Join(t.TempDir(), "gone.mp4"), false)
		if !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("propagates analyzer failure", func(t *testing.T) {
		f, cleanup := setupEngine(t)
		defer cleanup()
		f.analyzer.Err = shared.ErrServiceUnavailable

		_, err := f.engine.Analyze(ctx, nil, writeTempMedia(t, "squat.mp4"), false)
		if !errors.Is(err, shared.ErrServiceUnavailable) {
			t.Errorf("expected ErrServiceUnavailable, got %v", err)
		}
	})

	t.Run("emits progress without blocking on a full channel", func(t *testing.T) {
		f, cleanup := setupEngine(t)
		defer cleanup()

		progress := make(chan ProgressUpdate, 1)
		if _, err := f.engine.Analyze(ctx, progress, writeTempMedia(t, "squat.mp4"), false); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		select {
		case update := <-progress:
			if update.Phase != ReadMedia {
				t.Errorf("expected first update in read_media phase, got %s", update.Phase)
			}
		default:
			t.Error("expected at least one progress update")
		}
	})
}

func TestWorkoutEngineGeneratePlan(t *testing.T) {
	ctx := context.Background()
	validReq := models.WorkoutPlanRequest{
		Goal:            models.GoalLoseWeight,
		Level:           models.LevelBeginner,
		DaysPerWeek:     3,
		DurationMinutes: 30,
		Equipment:       "None",
	}

	t.Run("generates and persists plan", func(t *testing.T) {
		f, cleanup := setupEngine(t)
		defer cleanup()
		signIn(t, f, "alice")
		f.planner.Plan = "# Plan\n\nDay 1: Walk"

		result, err := f.engine.GeneratePlan(ctx, nil, validReq)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !result.Saved {
			t.Error("expected plan to be saved")
		}
		if stored, ok := f.plans.Get(); !ok || stored != "# Plan\n\nDay 1: Walk" {
			t.Errorf("expected stored plan, got %q (ok=%v)", stored, ok)
		}
	})

	t.Run("returns plan even when save fails", func(t *testing.T) {
		f, cleanup := setupEngine(t)
		defer cleanup()
		f.planner.Plan = "# Plan"

		result, err := f.engine.GeneratePlan(ctx, nil, validReq)
		if !errors.Is(err, shared.ErrNotAuthenticated) {
			t.Fatalf("expected ErrNotAuthenticated, got %v", err)
		}
		if result == nil || result.Plan != "# Plan" {
			t.Error("expected generated plan alongside the save error")
		}
		if result.Saved {
			t.Error("plan must not be marked saved")
		}
	})

	t.Run("propagates planner failure", func(t *testing.T) {
		f, cleanup := setupEngine(t)
		defer cleanup()
		signIn(t, f, "alice")
		f.planner.Err = shared.ErrAPIRequest

		if _, err := f.engine.GeneratePlan(ctx, nil, validReq); !errors.Is(err, shared.ErrAPIRequest) {
			t.Errorf("expected ErrAPIRequest, got %v", err)
		}
	})
}

func TestWorkoutEngineSnapshot(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 31, 18, 0, 0, 0, time.UTC)

	t.Run("requires an active user", func(t *testing.T) {
		f, cleanup := setupEngine(t)
		defer cleanup()

		if _, err := f.engine.Snapshot(now); !errors.Is(err, shared.ErrNotAuthenticated) {
			t.Errorf("expected ErrNotAuthenticated, got %v", err)
		}
	})

	t.Run("derives standing from history", func(t *testing.T) {
		f, cleanup := setupEngine(t)
		defer cleanup()
		signIn(t, f, "alice")

		f.analyzer.Result = &models.AnalysisResult{ExerciseName: "Push-up", RepCount: 10, FormScore: 9}
		if _, err := f.engine.Analyze(ctx, nil, writeTempMedia(t, "pushup.mp4"), true); err != nil {
			t.Fatalf("failed to seed history: %v", err)
		}

		snap, err := f.engine.Snapshot(time.Now())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if snap.Profile.Username != "alice" {
			t.Errorf("expected alice's profile, got %s", snap.Profile.Username)
		}
		if snap.Streak != 1 {
			t.Errorf("expected streak of 1, got %d", snap.Streak)
		}
		if len(snap.History) != 1 {
			t.Errorf("expected one history entry, got %d", len(snap.History))
		}
		if len(snap.Badges) != 6 {
			t.Fatalf("expected six badges, got %d", len(snap.Badges))
		}
		if !snap.Badges[0].Unlocked {
			t.Error("expected first badge unlocked after one workout")
		}

		var aliceEntry *models.LeaderboardEntry
		for i := range snap.Leaderboard {
			if snap.Leaderboard[i].Username == "alice" {
				aliceEntry = &snap.Leaderboard[i]
			}
		}
		if aliceEntry == nil {
			t.Fatal("expected alice on the leaderboard")
		}
		if !aliceEntry.IsCurrentUser {
			t.Error("expected alice flagged as current user")
		}
	})
}

func TestMediaMimeType(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"clip.mp4", "video/mp4", false},
		{"clip.MOV", "video/quicktime", false},
		{"clip.webm", "video/webm", false},
		{"still.jpg", "image/jpeg", false},
		{"still.png", "image/png", false},
		{"notes.txt", "", true},
		{"archive.zip", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := mediaMimeType(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
