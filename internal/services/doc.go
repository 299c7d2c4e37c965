// Package services defines the interfaces for the external AI
// collaborators and their Gemini-backed implementation.
//
// The core never talks to the network directly; it consumes [Analyzer]
// and [Planner], so tests substitute doubles and the CLI wires
// [GeminiService]. Calls are single-attempt: a failure propagates to the
// caller, who retries manually.
package services
