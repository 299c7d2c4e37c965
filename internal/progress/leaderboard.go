package progress

import (
	"sort"

	"github.com/desertthunder/fitsense/internal/models"
)

// placeholderThreshold is the real-user count below which the board is
// padded with placeholder entries so small installs still look alive.
const placeholderThreshold = 5

var placeholders = []models.LeaderboardEntry{
	{Username: "Sarah Fit", Points: 1250},
	{Username: "GymRat_99", Points: 980},
	{Username: "MikeLifts", Points: 1500},
	{Username: "BeginnerBob", Points: 150},
}

// BuildLeaderboard derives a ranked standing from the user directory.
//
// Real users arrive sorted by username so the result is deterministic;
// when fewer than placeholderThreshold real users exist, placeholders are
// appended, skipping any whose name collides with a real username. The
// points sort is stable, so ties keep arrival order. Ranks are 1-based.
func BuildLeaderboard(users map[string]models.UserProfile, currentUser string) []models.LeaderboardEntry {
	usernames := make([]string, 0, len(users))
	for username := range users {
		usernames = append(usernames, username)
	}
	sort.Strings(usernames)

	entries := make([]models.LeaderboardEntry, 0, len(usernames)+len(placeholders))
	for _, username := range usernames {
		entries = append(entries, models.LeaderboardEntry{
			Username:      username,
			Points:        users[username].TotalPoints,
			IsCurrentUser: username == currentUser,
		})
	}

	if len(entries) < placeholderThreshold {
		for _, placeholder := range placeholders {
			if _, taken := users[placeholder.Username]; taken {
				continue
			}
			entries = append(entries, placeholder)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Points > entries[j].Points
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
