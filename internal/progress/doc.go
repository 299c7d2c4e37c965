// Package progress computes the gamification views: streaks, badges and
// the leaderboard.
//
// Every function here is pure: results derive entirely from the workout
// logs and profiles passed in (plus an explicit evaluation time), so the
// engine is testable without touching the store. Nothing is cached and
// nothing is persisted; callers always get a fresh computation, which is
// why badge unlocks are deliberately not sticky.
package progress
