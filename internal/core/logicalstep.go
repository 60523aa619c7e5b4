package core

// ============================================================================
// LogicalStep - one unit of narrated deduction
// ============================================================================
//
// LogicalStep plays the role the teacher's Technique.Detect function plays
// (human/solver.go's checkForSingles walking s.registry.GetByTier), but as a
// first-class interface so that brute-force and logical activation can be
// declared per step rather than hardcoded into the tier-ordering loop.
//
// ============================================================================

// LogicalStep is a pluggable deduction. Steps are selected once at Builder
// time into two ordered lists (brute-force-active and logical-solve-active)
// filtered from RunsDuringBruteForce/RunsDuringLogicalSolve.
type LogicalStep interface {
	// Name identifies the step, used to prefix its StepDescription unless
	// the step owns its own prefix (see StepConstraints).
	Name() string
	// RunsDuringBruteForce reports whether this step participates in the
	// fast, description-free loop brute-force search runs before branching.
	RunsDuringBruteForce() bool
	// RunsDuringLogicalSolve reports whether this step participates in the
	// narrated, one-deduction-at-a-time logical solve.
	RunsDuringLogicalSolve() bool
	// Run mutates the board and returns the outcome. wantDescription is
	// false during brute-force; implementations may skip building a
	// StepDescription in that case.
	Run(b *Board, wantDescription bool) StepResult
}

// OwnsPrefix is implemented by steps (just StepConstraints) whose
// StepDescription already names the source of the deduction, so the Solver
// should not additionally prefix it with the step's own Name.
type OwnsPrefix interface {
	OwnsPrefix() bool
}
