// Package progress holds the completion and unlock model: lesson lock state,
// per-course and overall percentages, per-category skill levels, learning
// streaks and achievements.
//
// Every function here is pure. Inputs are value snapshots already resident in
// memory and results are fresh copies, so callers that share a UserProgress
// between goroutines only need to serialise their own read-modify-write
// cycles (see service.ProgressService).
package progress
