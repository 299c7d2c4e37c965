package ui

import (
	"github.com/desertthunder/fitsense/internal/tasks"
)

// snapshotMsg carries a freshly derived progress snapshot and the stored plan.
type snapshotMsg struct {
	snapshot *tasks.ProgressSnapshot
	plan     string
	hasPlan  bool
	err      error
}
