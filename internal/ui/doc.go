// Package ui implements an interactive terminal dashboard using bubbletea's Elm architecture.
//
// The TUI provides a multi-view progress dashboard:
//  1. [HistoryView] : Browse the active user's workout history
//  2. [BadgesView] : Achievement catalog with unlock state
//  3. [LeaderboardView] : Community standings
//  4. [PlanView] : The saved weekly workout plan
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// All derived data (streak, badges, standings) is computed through the WorkoutEngine
// snapshot, so the dashboard always reflects live history.
//
// Keyboard navigation uses vim-style bindings (j/k, tab, 1-4, r, q) with contextual
// help displayed via charmbracelet/bubbles/help.
package ui
