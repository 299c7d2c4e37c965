// Package models defines the domain entities for the fitsense coaching CLI.
//
// The package contains three categories of types:
//
// 1. Persisted entities, serialized as JSON into the key-value store:
//   - [UserProfile] : Registered accounts with their accumulated points
//   - [WorkoutLog] : Immutable per-user workout history entries
//
// 2. Collaborator payloads, exchanged with the AI services:
//   - [AnalysisResult] : Structured form feedback for an uploaded video
//   - [WorkoutPlanRequest] : Parameters for personalized plan generation
//
// 3. Derived views, computed on demand and never stored:
//   - [Badge] : Achievement with a pure predicate over workout history
//   - [LeaderboardEntry] : Ranked points standing across all known users
//
// JSON field names on the persisted entities are a compatibility contract
// with the store layout and must not change.
package models
