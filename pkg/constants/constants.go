package constants

import "time"

// Grid constants
const (
	DefaultGridSize = 9
	MaxGridSize     = 31
	MinGivens       = 17
)

// Solver limits
const (
	DefaultSolutionCountCap = 2
	MaxTrueCandidateCap     = 1000
)

// Command-dispatch result kinds (spec.md §6.4's result shapes)
const (
	ResultNone       = "none"
	ResultSolved     = "solved"
	ResultError      = "error"
	ResultExact      = "exact"
	ResultAtLeast    = "at-least"
	ResultChanged    = "changed"
	ResultInvalid    = "invalid"
	ResultCandidates = "candidates"
)

// API version
const APIVersion = "0.1.0"

// Default port
const DefaultPort = "8080"

// DefaultSolveTimeout bounds a search when the caller hasn't configured
// MAX_SOLVE_SECONDS.
const DefaultSolveTimeout = 10 * time.Second
