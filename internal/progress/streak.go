package progress

import (
	"sort"
	"time"

	"github.com/desertthunder/fitsense/internal/models"
)

// CalculateStreak returns the number of consecutive local calendar days
// ending today or yesterday (relative to now) with at least one logged
// workout.
//
// Multiple workouts on one day count once. A most-recent workout older
// than yesterday breaks the streak immediately, regardless of history.
func CalculateStreak(logs []models.WorkoutLog, now time.Time) int {
	if len(logs) == 0 {
		return 0
	}

	seen := make(map[string]bool)
	var days []time.Time
	for _, entry := range logs {
		day := truncateToDay(entry.Date.In(now.Location()))
		key := day.Format("2006-01-02")
		if !seen[key] {
			seen[key] = true
			days = append(days, day)
		}
	}

	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	today := truncateToDay(now)
	yesterday := today.AddDate(0, 0, -1)
	if !days[0].Equal(today) && !days[0].Equal(yesterday) {
		return 0
	}

	streak := 1
	for i := 0; i < len(days)-1; i++ {
		if !days[i].AddDate(0, 0, -1).Equal(days[i+1]) {
			break
		}
		streak++
	}
	return streak
}

// truncateToDay drops the time-of-day component, keeping the location so
// midnight boundaries follow local time.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
