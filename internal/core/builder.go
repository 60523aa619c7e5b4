package core

import "fmt"

// ============================================================================
// Builder - validates input and produces a ready Solver
// ============================================================================
//
// Builder plays the role the teacher splits across NewBoard / InitCandidates
// (human/board.go) and NewSolver / NewSolverWithRegistry (human/solver.go),
// generalized to arbitrary N, pluggable regions, and a constraint list that
// must reach a joint fixed point before the first move is ever requested.
//
// ============================================================================

// Builder accumulates puzzle configuration and produces a Solver.
type Builder struct {
	size        int
	regionOf    []int
	givens      []int
	constraints []Constraint
	steps       []LogicalStep
	err         error
}

// NewBuilder starts a build for an N x N board. Unless WithRegions supplies
// labels, the default regions are the classic sqrt(N) x sqrt(N) boxes when
// N is a perfect square, and there are no default region houses otherwise.
func NewBuilder(size int) *Builder {
	return &Builder{size: size}
}

// WithRegions sets the default region label per cell (length must be
// size*size). A nil labeling keeps the default box regions; an
// all-identical labeling collapses to no default region houses.
func (bd *Builder) WithRegions(regionOf []int) *Builder {
	bd.regionOf = regionOf
	return bd
}

// WithGivens sets the initial values (0 = empty), length must be size*size.
func (bd *Builder) WithGivens(givens []int) *Builder {
	bd.givens = givens
	return bd
}

// WithConstraint registers one constraint. Order is preserved and matters
// for StepConstraints dispatch priority.
func (bd *Builder) WithConstraint(c Constraint) *Builder {
	bd.constraints = append(bd.constraints, c)
	return bd
}

// WithLogicalStep registers one logical step in addition to the built-ins
// (naked single, hidden single, simple cell forcing). Required steps (bulk naked singles, the constraints dispatcher) are
// auto-inserted if missing; see insertRequiredSteps.
func (bd *Builder) WithLogicalStep(s LogicalStep) *Builder {
	bd.steps = append(bd.steps, s)
	return bd
}

// Build validates the configuration, constructs the board, applies givens,
// runs every constraint's InitBoard to a joint fixed point, and wires the
// logical-step lists. It returns a diagnostic error instead of a Solver on
// any structural or semantic build failure.
func (bd *Builder) Build() (*Solver, error) {
	n := bd.size
	total := n * n
	if n < 1 || n > maxMaskSize {
		return nil, fmt.Errorf("board size must be between 1 and %d, got %d", maxMaskSize, n)
	}
	if bd.givens != nil && len(bd.givens) != total {
		return nil, fmt.Errorf("givens must have length %d, got %d", total, len(bd.givens))
	}
	if bd.regionOf != nil {
		if len(bd.regionOf) != total {
			return nil, fmt.Errorf("region labels must have length %d, got %d", total, len(bd.regionOf))
		}
		for _, r := range bd.regionOf {
			if r < 0 || r >= n {
				return nil, fmt.Errorf("region label %d out of range [0,%d)", r, n)
			}
		}
	}
	for _, v := range bd.givens {
		if v < 0 || v > n {
			return nil, fmt.Errorf("given value %d out of range [0,%d]", v, n)
		}
	}

	meta := buildMeta(n, bd.regionOf, bd.constraints)
	board := &Board{Meta: meta, Masks: make([]ValueMask, total)}
	for i := range board.Masks {
		board.Masks[i] = FullMask(n)
	}

	// Apply each self-link as an initial elimination (candidate globally
	// impossible), mirroring §3's "a pair (A,A) ... is an initial
	// elimination".
	for id := CandidateID(0); id < CandidateID(meta.totalCandidates); id++ {
		if meta.WeakLinks[id].Test(id) {
			if !board.ClearCandidate(id) {
				return nil, fmt.Errorf("constraint weak links make candidate %d impossible and empty its cell", id)
			}
		}
	}

	if bd.givens != nil {
		for i, v := range bd.givens {
			if v == 0 {
				continue
			}
			if !board.SetSolved(CellID(i), v) {
				return nil, fmt.Errorf("given %d at cell %d contradicts board constraints", v, i)
			}
		}
	}

	// Iterate every constraint's InitBoard to a joint fixed point.
	for {
		progressed := false
		for _, c := range bd.constraints {
			res := c.InitBoard(board)
			switch res.Status {
			case StatusInvalid:
				return nil, fmt.Errorf("constraint %q rejected the initial position", c.SpecificName())
			case StatusChanged, StatusSolved:
				progressed = true
			}
		}
		if !board.IsConsistent() {
			return nil, fmt.Errorf("constraint initialization emptied a cell")
		}
		if !progressed {
			break
		}
	}

	// The built-in narrated steps always run first; registered steps follow.
	steps := append([]LogicalStep{NakedSingleStep{}, HiddenSingleStep{}, SimpleCellForcingStep{}}, bd.steps...)
	allSteps := insertRequiredSteps(steps)
	var bruteSteps, logicalSteps []LogicalStep
	for _, s := range allSteps {
		if s.RunsDuringBruteForce() {
			bruteSteps = append(bruteSteps, s)
		}
		if s.RunsDuringLogicalSolve() {
			logicalSteps = append(logicalSteps, s)
		}
	}

	return &Solver{
		Board:       board,
		bruteSteps:  bruteSteps,
		logicSteps:  logicalSteps,
	}, nil
}

// insertRequiredSteps ensures bulk-naked-singles runs first (if missing) and
// the constraints dispatcher runs immediately after any naked/hidden single
// step (if missing).
func insertRequiredSteps(steps []LogicalStep) []LogicalStep {
	hasBulk, hasConstraints := false, false
	singleIdx := -1
	for i, s := range steps {
		switch s.(type) {
		case BulkNakedSinglesStep:
			hasBulk = true
		case StepConstraints:
			hasConstraints = true
		case NakedSingleStep, HiddenSingleStep:
			if singleIdx == -1 {
				singleIdx = i
			}
		}
	}

	out := make([]LogicalStep, 0, len(steps)+2)
	if !hasBulk {
		out = append(out, BulkNakedSinglesStep{})
	}
	if !hasConstraints && singleIdx == -1 {
		// No naked/hidden single step registered at all: append the
		// dispatcher at the end so it still runs somewhere.
		out = append(out, steps...)
		out = append(out, StepConstraints{})
		return out
	}
	for i, s := range steps {
		out = append(out, s)
		if !hasConstraints && i == singleIdx {
			out = append(out, StepConstraints{})
		}
	}
	return out
}

// buildMeta constructs the immutable BoardMeta: default houses (rows,
// columns, regions), constraint-contributed houses (de-duplicated),
// per-cell house membership, the weak-link table (same-cell, same-house,
// constraint-contributed), the exclusivity table, and the powerful-cell
// union.
func buildMeta(n int, regionOf []int, constraints []Constraint) *BoardMeta {
	total := n * n
	totalCand := total * n

	var houses []House
	for r := 0; r < n; r++ {
		cells := make([]CellID, n)
		for c := 0; c < n; c++ {
			cells[c] = CellAt(n, r, c)
		}
		houses = append(houses, NewHouse(fmt.Sprintf("Row %d", r+1), cells))
	}
	for c := 0; c < n; c++ {
		cells := make([]CellID, n)
		for r := 0; r < n; r++ {
			cells[r] = CellAt(n, r, c)
		}
		houses = append(houses, NewHouse(fmt.Sprintf("Column %d", c+1), cells))
	}

	if regionOf == nil {
		regionOf = defaultBoxRegions(n)
	}
	if !allSame(regionOf) {
		byRegion := make(map[int][]CellID)
		var labels []int
		for i, r := range regionOf {
			if _, ok := byRegion[r]; !ok {
				labels = append(labels, r)
			}
			byRegion[r] = append(byRegion[r], CellID(i))
		}
		for _, r := range labels {
			if len(byRegion[r]) == n {
				houses = append(houses, NewHouse(fmt.Sprintf("Region %d", r+1), byRegion[r]))
			}
		}
	}

	for _, c := range constraints {
		houses = append(houses, c.Houses(n)...)
	}
	houses = dedupeHouses(houses)

	cellHouses := make([][]int, total)
	for hi, h := range houses {
		for _, c := range h.Cells {
			cellHouses[c] = append(cellHouses[c], hi)
		}
	}

	weakLinks := make([]LinkSet, totalCand)
	for i := range weakLinks {
		weakLinks[i] = NewLinkSet(totalCand)
	}
	link := func(a, b CandidateID) {
		weakLinks[a].Set(b)
		weakLinks[b].Set(a)
	}

	// Same cell, distinct values.
	for cell := 0; cell < total; cell++ {
		for v1 := 1; v1 <= n; v1++ {
			for v2 := v1 + 1; v2 <= n; v2++ {
				link(NewCandidateID(n, CellID(cell), v1), NewCandidateID(n, CellID(cell), v2))
			}
		}
	}
	// Same house, same value, distinct cells.
	for _, h := range houses {
		for v := 1; v <= n; v++ {
			for i := 0; i < len(h.Cells); i++ {
				for j := i + 1; j < len(h.Cells); j++ {
					link(NewCandidateID(n, h.Cells[i], v), NewCandidateID(n, h.Cells[j], v))
				}
			}
		}
	}
	// Constraint-contributed pairs, including self-pairs marking a
	// candidate globally impossible.
	for _, c := range constraints {
		for _, pair := range c.WeakLinks(n) {
			link(pair[0], pair[1])
		}
	}

	exclusive := make([]bool, total*total)
	for i := 0; i < total; i++ {
		for j := i + 1; j < total; j++ {
			allLinked := true
			for v := 1; v <= n && allLinked; v++ {
				a := NewCandidateID(n, CellID(i), v)
				b := NewCandidateID(n, CellID(j), v)
				if !weakLinks[a].Test(b) {
					allLinked = false
				}
			}
			exclusive[i*total+j] = allLinked
			exclusive[j*total+i] = allLinked
		}
	}

	var powerful []CellID
	seenPowerful := make(map[CellID]bool)
	for _, c := range constraints {
		if pc, ok := c.(PowerfulCellSource); ok {
			for _, cell := range pc.PowerfulCells(n) {
				if !seenPowerful[cell] {
					seenPowerful[cell] = true
					powerful = append(powerful, cell)
				}
			}
		}
	}

	return &BoardMeta{
		Size:            n,
		RegionOf:        regionOf,
		Houses:          houses,
		CellHouses:      cellHouses,
		WeakLinks:       weakLinks,
		Exclusive:       exclusive,
		PowerfulCells:   powerful,
		Constraints:     constraints,
		totalCells:      total,
		totalCandidates: totalCand,
	}
}

// PowerfulCellSource is implemented by constraints that flag cells as
// high-branching priorities for search (§3's "Powerful-cell list").
type PowerfulCellSource interface {
	PowerfulCells(n int) []CellID
}

func defaultBoxRegions(n int) []int {
	box := isqrt(n)
	if box*box != n {
		return make([]int, n*n) // all zero => collapses to no region houses
	}
	regionOf := make([]int, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			regionOf[r*n+c] = (r/box)*box + c/box
		}
	}
	return regionOf
}

func isqrt(n int) int {
	for i := 1; i*i <= n; i++ {
		if i*i == n {
			return i
		}
	}
	return 0
}

func allSame(xs []int) bool {
	for _, x := range xs {
		if x != xs[0] {
			return false
		}
	}
	return true
}
