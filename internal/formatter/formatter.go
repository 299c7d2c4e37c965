// package formatter provides functions to export workout data to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/desertthunder/fitsense/internal/models"
	"github.com/desertthunder/fitsense/internal/repositories"
)

const dateLayout = "2006-01-02 15:04"

// HistoryToCSV converts workout history to CSV format with columns: ID, Date, Exercise, Reps, FormScore, Points, Feedback
func HistoryToCSV(logs []models.WorkoutLog) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Date", "Exercise", "Reps", "FormScore", "Points", "Feedback"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, log := range logs {
		record := []string{
			log.ID,
			log.Date.Format(dateLayout),
			log.ExerciseName,
			strconv.Itoa(log.RepCount),
			strconv.Itoa(log.FormScore),
			strconv.Itoa(repositories.PointsFor(log)),
			strings.Join(log.Feedback, "; "),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// HistoryToText converts workout history to plain text format
func HistoryToText(logs []models.WorkoutLog) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Workouts: %d\n\n", len(logs)))
	for i, log := range logs {
		buf.WriteString(fmt.Sprintf("%d. %s - %s: %d reps, form %d/10 (+%d pts)\n",
			i+1, log.Date.Format(dateLayout), log.ExerciseName, log.RepCount, log.FormScore, repositories.PointsFor(log)))
		for _, fb := range log.Feedback {
			buf.WriteString(fmt.Sprintf("   - %s\n", fb))
		}
	}

	return buf.Bytes()
}

// BadgesToText renders the badge catalog with unlock state
func BadgesToText(badges []models.Badge) []byte {
	var buf bytes.Buffer

	for _, badge := range badges {
		marker := "[ ]"
		if badge.Unlocked {
			marker = "[x]"
		}
		buf.WriteString(fmt.Sprintf("%s %s - %s\n", marker, badge.Name, badge.Description))
	}

	return buf.Bytes()
}

// LeaderboardToText renders leaderboard standings as aligned plain text
func LeaderboardToText(entries []models.LeaderboardEntry) []byte {
	var buf bytes.Buffer

	for _, entry := range entries {
		marker := " "
		if entry.IsCurrentUser {
			marker = "*"
		}
		buf.WriteString(fmt.Sprintf("%s %2d. %-20s %6d pts\n", marker, entry.Rank, entry.Username, entry.Points))
	}

	return buf.Bytes()
}

// ProgressToMarkdown builds a full progress report in Markdown.
func ProgressToMarkdown(profile models.UserProfile, streak int, badges []models.Badge, leaderboard []models.LeaderboardEntry, history []models.WorkoutLog, now time.Time) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# Progress Report: %s\n\n", profile.Username))
	buf.WriteString(fmt.Sprintf("Generated %s\n\n", now.Format("2006-01-02")))

	buf.WriteString(fmt.Sprintf("**Total Points**: %d\n", profile.TotalPoints))
	buf.WriteString(fmt.Sprintf("**Current Streak**: %d day(s)\n", streak))
	buf.WriteString(fmt.Sprintf("**Workouts Logged**: %d\n\n", len(history)))

	buf.WriteString("## Badges\n\n")
	for _, badge := range badges {
		state := "Locked"
		if badge.Unlocked {
			state = "Unlocked"
		}
		buf.WriteString(fmt.Sprintf("- **%s** (%s): %s\n", badge.Name, state, badge.Description))
	}

	buf.WriteString("\n## Leaderboard\n\n")
	buf.WriteString("| Rank | User | Points |\n")
	buf.WriteString("|------|------|--------|\n")
	for _, entry := range leaderboard {
		name := entry.Username
		if entry.IsCurrentUser {
			name = "**" + name + "**"
		}
		buf.WriteString(fmt.Sprintf("| %d | %s | %d |\n", entry.Rank, name, entry.Points))
	}

	if len(history) > 0 {
		buf.WriteString("\n## Recent Workouts\n\n")
		limit := len(history)
		if limit > 5 {
			limit = 5
		}
		for _, log := range history[:limit] {
			buf.WriteString(fmt.Sprintf("- %s: %s, %d reps, form %d/10\n",
				log.Date.Format("2006-01-02"), log.ExerciseName, log.RepCount, log.FormScore))
		}
	}

	return buf.Bytes()
}

// WriteHistoryCSV exports workout history to a CSV file.
//
// Defaults to workout_history.csv as the filename.
func WriteHistoryCSV(logs []models.WorkoutLog, path string) (string, error) {
	if path == "" {
		path = "workout_history.csv"
	}

	data, err := HistoryToCSV(logs)
	if err != nil {
		return "", fmt.Errorf("failed to generate CSV: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write CSV file: %w", err)
	}

	return path, nil
}

// WritePlanMarkdown saves a generated plan to a Markdown file.
//
// Defaults to workout_plan.md as the filename.
func WritePlanMarkdown(plan string, path string) (string, error) {
	if path == "" {
		path = "workout_plan.md"
	}

	if !strings.HasSuffix(plan, "\n") {
		plan += "\n"
	}

	if err := os.WriteFile(path, []byte(plan), 0644); err != nil {
		return "", fmt.Errorf("failed to write plan file: %w", err)
	}

	return path, nil
}
