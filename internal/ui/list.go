package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/fitsense/internal/models"
	"github.com/desertthunder/fitsense/internal/repositories"
)

var (
	_ list.Item = logItem{}
	_ list.Item = badgeItem{}
	_ list.Item = standingItem{}
)

// logItem wraps [models.WorkoutLog] to implement [list.Item].
type logItem struct {
	log models.WorkoutLog
}

func (i logItem) FilterValue() string { return i.log.ExerciseName }
func (i logItem) Title() string {
	return fmt.Sprintf("%s %s", i.log.Date.Format("2006-01-02"), i.log.ExerciseName)
}
func (i logItem) Description() string {
	desc := fmt.Sprintf("%d reps • form %d/10 • +%d pts", i.log.RepCount, i.log.FormScore, repositories.PointsFor(i.log))
	if len(i.log.Feedback) > 0 {
		desc = fmt.Sprintf("%s • %s", desc, strings.Join(i.log.Feedback, "; "))
	}
	return desc
}

// badgeItem wraps [models.Badge] to implement [list.Item].
type badgeItem struct {
	badge models.Badge
}

func (i badgeItem) FilterValue() string { return i.badge.Name }
func (i badgeItem) Title() string {
	if i.badge.Unlocked {
		return fmt.Sprintf("★ %s", i.badge.Name)
	}
	return fmt.Sprintf("☆ %s", i.badge.Name)
}
func (i badgeItem) Description() string { return i.badge.Description }

// standingItem wraps [models.LeaderboardEntry] to implement [list.Item].
type standingItem struct {
	entry models.LeaderboardEntry
}

func (i standingItem) FilterValue() string { return i.entry.Username }
func (i standingItem) Title() string {
	name := i.entry.Username
	if i.entry.IsCurrentUser {
		name = name + " (you)"
	}
	return fmt.Sprintf("#%d %s", i.entry.Rank, name)
}
func (i standingItem) Description() string {
	return fmt.Sprintf("%d points", i.entry.Points)
}
