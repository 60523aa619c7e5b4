package core

// ============================================================================
// Constraint - the variant-rule plug-in interface
// ============================================================================
//
// Constraint is the seam the spec's "library of variant constraints" plugs
// into - the core never knows about arrow, killer-cage, or chess-move rules,
// only this interface (§4.5). This plays the role the teacher's Technique
// struct (human/solver.go, human/technique_registry.go) plays for a fixed
// catalog of named detectors, generalized to an open-ended, pluggable rule
// set that also contributes houses and weak links at build time.
//
// ============================================================================

// Constraint is a pluggable variant rule. Implementations are registered
// once at Builder time and held by shared ownership inside the board's
// immutable metadata; the core never mutates a constraint after build.
type Constraint interface {
	// Name identifies the constraint kind, e.g. "arrow".
	Name() string
	// SpecificName identifies this particular instance, e.g. "arrow r1c1-r3c3".
	SpecificName() string

	// InitBoard is a one-shot chance to tighten candidates from the initial
	// position. It is iterated to a fixed point across all constraints
	// during build and must not encode reasoning a human would want
	// narrated - InitBoard results are never surfaced as step descriptions.
	InitBoard(b *Board) StepResult

	// Enforce is a cheap, local, read-only check run immediately after every
	// commit (Board.SetSolved). It must not mutate the board.
	Enforce(b *Board, cell CellID, v int) EnforceResult

	// StepLogic performs a full deduction pass, returning a narrated result.
	// bruteForcing is true when the caller will discard the description and
	// wants the fastest correct behavior.
	StepLogic(b *Board, bruteForcing bool) StepResult

	// CellsMustContain returns the cells this constraint requires to contain
	// value v, for use by other constraints composing with this one.
	CellsMustContain(b *Board, v int) []CellID

	// WeakLinks returns this constraint's static contribution to the
	// weak-link table for a board of size n. A self-pair (A, A) means
	// candidate A is globally impossible.
	WeakLinks(n int) [][2]CandidateID

	// Houses returns extra houses this constraint contributes; houses whose
	// cell set duplicates a default house are dropped at build time.
	Houses(n int) []House
}

// BaseConstraint implements every Constraint method as a no-op so that
// concrete constraints only need to override what they actually use -
// mirroring how many of the teacher's techniques only implement Detect and
// leave everything else to the surrounding Technique struct's defaults.
type BaseConstraint struct{}

func (BaseConstraint) InitBoard(*Board) StepResult                       { return NoneResult() }
func (BaseConstraint) Enforce(*Board, CellID, int) EnforceResult         { return EnforceOK() }
func (BaseConstraint) StepLogic(*Board, bool) StepResult                 { return NoneResult() }
func (BaseConstraint) CellsMustContain(*Board, int) []CellID             { return nil }
func (BaseConstraint) WeakLinks(int) [][2]CandidateID                    { return nil }
func (BaseConstraint) Houses(int) []House                                { return nil }
