package core

// ============================================================================
// Solver - orchestrates logical and brute-force search
// ============================================================================
//
// Solver plays the role the teacher's Solver struct plays (human/solver.go):
// it holds the wired-up step lists and knows how to advance a board one
// deduction at a time, but it generalizes FindNextMove/SolveWithSteps into
// the five entry points §4.8 names (logical solve, first solution, random
// solution, counting, true candidates) over arbitrary N and pluggable
// constraints instead of a fixed 9x9 technique tier ladder.
//
// Logical solves mutate the Solver's own board (s.Board); brute-force
// entry points clone the board and search over the clone, leaving s.Board
// untouched, matching §2's stated data flow.
//
// ============================================================================

// Solver orchestrates logical deduction and brute-force search over one
// board produced by a Builder.
type Solver struct {
	Board      *Board
	bruteSteps []LogicalStep
	logicSteps []LogicalStep
}

// ----------------------------------------------------------------------------
// Logical solve
// ----------------------------------------------------------------------------

// RunSingleLogicalStep consults the logical-solve step list in order and
// returns the first non-none result, with the step's Name prefixed onto the
// description unless the step owns its own prefix (StepConstraints). cancel
// is checked before each step so a caller can abort a slow constraint step.
func (s *Solver) RunSingleLogicalStep(wantDescription bool, cancel Cancel) StepResult {
	for _, step := range s.logicSteps {
		if cancel.Check() {
			return NoneResult()
		}
		res := step.Run(s.Board, wantDescription)
		if res.IsNone() {
			continue
		}
		if wantDescription && res.Description != nil {
			owns := false
			if op, ok := step.(OwnsPrefix); ok {
				owns = op.OwnsPrefix()
			}
			if !owns {
				prefixed := NewStep(step.Name() + ": " + res.Description.Line).WithChildren(res.Description.Children...)
				res.Description = &prefixed
			}
		}
		return res
	}
	return NoneResult()
}

// RunLogicalSolve repeatedly runs RunSingleLogicalStep until it returns
// None, Solved, or Invalid, aggregating every intermediate description.
// cancel is consulted between steps, the same as every brute-force entry
// point, so a long logical solve over a pathological board can be aborted.
func (s *Solver) RunLogicalSolve(cancel Cancel) (StepStatus, StepDescriptions) {
	var log StepDescriptions
	for {
		if cancel.Check() {
			return StatusNone, log
		}
		res := s.RunSingleLogicalStep(true, cancel)
		if res.Description != nil {
			log = append(log, *res.Description)
		}
		switch res.Status {
		case StatusNone:
			return StatusNone, log
		case StatusSolved:
			return StatusSolved, log
		case StatusInvalid:
			return StatusInvalid, log
		}
	}
}

// ----------------------------------------------------------------------------
// Brute-force propagation shared by every search entry point
// ----------------------------------------------------------------------------

// propagate runs every brute-force-active step to a fixed point, returning
// false if the board became invalid.
func (s *Solver) propagate(b *Board) bool {
	for {
		progressed := false
		for _, step := range s.bruteSteps {
			res := step.Run(b, false)
			if res.IsInvalid() {
				return false
			}
			if res.Changed() {
				progressed = true
			}
			if res.IsSolved() {
				return true
			}
		}
		if !progressed {
			break
		}
	}
	return b.IsConsistent()
}

// nextUnsolvedCell returns the first unsolved cell in index order, or -1 if
// every cell is solved.
func nextUnsolvedCell(b *Board) int {
	for i, m := range b.Masks {
		if !m.Solved() {
			return i
		}
	}
	return -1
}

// bestBruteForceCell implements §4.8's heuristic: first any unsolved
// powerful cell with <=2 candidates, else the powerful cell with the fewest
// candidates, else any cell with <=2 candidates, else the unsolved cell
// with the fewest candidates.
func bestBruteForceCell(b *Board) int {
	bestPowerful, bestPowerfulCount := -1, 1<<30
	for _, cell := range b.Meta.PowerfulCells {
		m := b.Masks[cell]
		if m.Solved() {
			continue
		}
		count := m.Count()
		if count <= 2 {
			return int(cell)
		}
		if count < bestPowerfulCount {
			bestPowerful, bestPowerfulCount = int(cell), count
		}
	}
	if bestPowerful >= 0 {
		return bestPowerful
	}

	best, bestCount := -1, 1<<30
	for i, m := range b.Masks {
		if m.Solved() {
			continue
		}
		count := m.Count()
		if count <= 2 {
			return i
		}
		if count < bestCount {
			best, bestCount = i, count
		}
	}
	return best
}

// ----------------------------------------------------------------------------
// First solution (deterministic, lexicographically first)
// ----------------------------------------------------------------------------

// FindFirstSolution performs a depth-first search, cell by cell in index
// order, always trying the smallest remaining candidate first, returning
// the lexicographically first solution. The Solver's own board is left
// untouched; the returned board is a clone.
func (s *Solver) FindFirstSolution(cancel Cancel) (*Board, bool) {
	stack := []*Board{s.Board.Clone()}
	for len(stack) > 0 {
		if cancel.Check() {
			return nil, false
		}
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !s.propagate(b) {
			continue
		}
		if b.IsSolved() {
			return b, true
		}

		cellIdx := nextUnsolvedCell(b)
		if cellIdx < 0 {
			continue
		}
		cell := CellID(cellIdx)
		v, ok := b.Masks[cell].Min()
		if !ok {
			continue
		}

		if rest := b.Clone(); rest.ClearValue(cell, v) {
			stack = append(stack, rest)
		}
		if b.SetSolved(cell, v) {
			stack = append(stack, b)
		}
	}
	return nil, false
}

// ----------------------------------------------------------------------------
// Random solution
// ----------------------------------------------------------------------------

// FindRandomSolution performs the same search as FindFirstSolution but
// chooses cells via bestBruteForceCell and chooses the value to try at each
// branch uniformly at random among the cell's remaining candidates.
func (s *Solver) FindRandomSolution(r Rand, cancel Cancel) (*Board, bool) {
	stack := []*Board{s.Board.Clone()}
	for len(stack) > 0 {
		if cancel.Check() {
			return nil, false
		}
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !s.propagate(b) {
			continue
		}
		if b.IsSolved() {
			return b, true
		}

		cellIdx := bestBruteForceCell(b)
		if cellIdx < 0 {
			continue
		}
		cell := CellID(cellIdx)
		v, ok := b.Masks[cell].Pick(r)
		if !ok {
			continue
		}

		if rest := b.Clone(); rest.ClearValue(cell, v) {
			stack = append(stack, rest)
		}
		if b.SetSolved(cell, v) {
			stack = append(stack, b)
		}
	}
	return nil, false
}

// ----------------------------------------------------------------------------
// Counting
// ----------------------------------------------------------------------------

// CountStatus describes how exhaustively FindSolutionCount searched.
type CountStatus int

const (
	// CountNone means the puzzle has no solution.
	CountNone CountStatus = iota
	// CountExact means the full search tree was exhausted.
	CountExact
	// CountAtLeast means the cap or the receiver's stop request was hit
	// before the tree was exhausted; Count is a lower bound.
	CountAtLeast
)

// CountResult is the outcome of FindSolutionCount.
type CountResult struct {
	Status CountStatus
	Count  int
}

// Receiver streams solutions and progress pings out of FindSolutionCount's
// search. Both fields are optional.
type Receiver struct {
	// OnSolution is handed every completed board found; returning false
	// stops the search early.
	OnSolution func(b *Board) bool
	// OnProgress is called periodically with a monotonically-increasing
	// token, for UIs without a cheap wall clock.
	OnProgress func(token uint64)
}

const progressPingEvery = 2048

// FindSolutionCount counts solutions up to max, reporting ExactCount if the
// search tree is exhausted with count>0, AtLeastCount if max was hit or the
// receiver asked to stop, and CountNone if the puzzle has no solution.
func (s *Solver) FindSolutionCount(max int, receiver *Receiver, cancel Cancel) CountResult {
	count := 0
	nodes := uint64(0)
	exhausted := true
	stopped := false

	var recurse func(b *Board)
	recurse = func(b *Board) {
		if stopped || cancel.Check() {
			exhausted = false
			return
		}
		nodes++
		if receiver != nil && receiver.OnProgress != nil && nodes%progressPingEvery == 0 {
			receiver.OnProgress(nodes)
		}
		if !s.propagate(b) {
			return
		}
		if b.IsSolved() {
			count++
			if receiver != nil && receiver.OnSolution != nil {
				if !receiver.OnSolution(b) {
					stopped = true
					exhausted = false
				}
			}
			return
		}
		if count >= max {
			exhausted = false
			return
		}

		cellIdx := bestBruteForceCell(b)
		if cellIdx < 0 {
			return
		}
		cell := CellID(cellIdx)
		for _, v := range b.Masks[cell].Values() {
			if count >= max || stopped || cancel.Check() {
				exhausted = false
				return
			}
			branch := b.Clone()
			if branch.SetSolved(cell, v) {
				recurse(branch)
			}
		}
	}

	recurse(s.Board.Clone())

	if count == 0 {
		if exhausted {
			return CountResult{Status: CountNone, Count: 0}
		}
		return CountResult{Status: CountAtLeast, Count: 0}
	}
	if exhausted {
		return CountResult{Status: CountExact, Count: count}
	}
	return CountResult{Status: CountAtLeast, Count: count}
}

// ----------------------------------------------------------------------------
// True candidates
// ----------------------------------------------------------------------------

// TrueCandidatesResult is the union, over every completion, of the
// candidates present in each cell.
type TrueCandidatesResult struct {
	Masks []ValueMask
}

// FindTrueCandidates computes the union over all solutions of the
// candidates in each cell. It runs brute-force logic once, then for every
// still-open (cell, value) not yet known to appear, commits it and
// attempts one random solution; each success unions that solution's values
// into the result. Finally it narrows the working board to the
// accumulated union and runs bulk-naked-singles once.
func (s *Solver) FindTrueCandidates(r Rand, cancel Cancel) (*TrueCandidatesResult, bool) {
	base := s.Board.Clone()
	if !s.propagate(base) {
		return nil, false
	}

	union := make([]ValueMask, base.Meta.totalCells)
	for i, m := range base.Masks {
		if m.Solved() {
			v, _ := m.Only()
			union[i] = NewValueMask(v)
		}
	}

	for i, m := range base.Masks {
		if m.Solved() {
			continue
		}
		cell := CellID(i)
		for _, v := range m.Values() {
			if cancel.Check() {
				return nil, false
			}
			if union[i].Has(v) {
				continue
			}
			probe := base.Clone()
			if !probe.SetSolved(cell, v) {
				continue
			}
			solution, found := s.solveFrom(probe, r, cancel)
			if !found {
				continue
			}
			for j, sm := range solution.Masks {
				sv, _ := sm.Only()
				union[j] = union[j].Set(sv)
			}
		}
	}

	for i := range base.Masks {
		solved := base.Masks[i].Solved()
		base.Masks[i] = union[i]
		if solved {
			base.Masks[i] = base.Masks[i].MarkSolved()
		}
	}
	BulkNakedSinglesStep{}.Run(base, false)

	return &TrueCandidatesResult{Masks: base.Masks}, true
}

// solveFrom runs a random-solution search starting from an already-built
// board (rather than s.Board), used internally by the true-candidates probe.
func (s *Solver) solveFrom(start *Board, r Rand, cancel Cancel) (*Board, bool) {
	stack := []*Board{start}
	for len(stack) > 0 {
		if cancel.Check() {
			return nil, false
		}
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !s.propagate(b) {
			continue
		}
		if b.IsSolved() {
			return b, true
		}

		cellIdx := bestBruteForceCell(b)
		if cellIdx < 0 {
			continue
		}
		cell := CellID(cellIdx)
		v, ok := b.Masks[cell].Pick(r)
		if !ok {
			continue
		}
		if rest := b.Clone(); rest.ClearValue(cell, v) {
			stack = append(stack, rest)
		}
		if b.SetSolved(cell, v) {
			stack = append(stack, b)
		}
	}
	return nil, false
}

// FindTrueCandidatesWithCount behaves like FindTrueCandidates but also
// returns, for each candidate, the number of distinct completions found
// that contain it, capped at cap. Completions already seen (by exact cell
// assignment) are not double-counted across different search orders
// reaching the same board. Probing a candidate stops after 64 consecutive
// already-seen completions, so a count below cap is a lower bound, not an
// exact number. Candidates of cells solved before the search report cap.
func (s *Solver) FindTrueCandidatesWithCount(cap int, r Rand, cancel Cancel) (*TrueCandidatesResult, []int, bool) {
	base := s.Board.Clone()
	if !s.propagate(base) {
		return nil, nil, false
	}

	n := base.Meta.Size
	union := make([]ValueMask, base.Meta.totalCells)
	counts := make([]int, base.Meta.totalCandidates)
	seenSolutions := make(map[string]bool)

	for i, m := range base.Masks {
		if m.Solved() {
			v, _ := m.Only()
			union[i] = NewValueMask(v)
			id := NewCandidateID(n, CellID(i), v)
			counts[id] = cap
		}
	}

	for i, m := range base.Masks {
		if m.Solved() {
			continue
		}
		cell := CellID(i)
		for _, v := range m.Values() {
			id := NewCandidateID(n, cell, v)
			// A candidate may genuinely appear in fewer than `cap`
			// completions; once repeated probes keep landing on
			// already-seen completions we stop early rather than loop
			// forever, accepting the under-cap count as an underestimate
			// (documented as acceptable in the true-candidates-with-count
			// contract).
			staleStreak := 0
			const maxStaleStreak = 64
			for counts[id] < cap && staleStreak < maxStaleStreak {
				if cancel.Check() {
					return nil, nil, false
				}
				probe := base.Clone()
				if !probe.SetSolved(cell, v) {
					break
				}
				solution, found := s.solveFrom(probe, r, cancel)
				if !found {
					break
				}
				key := solutionKey(solution)
				fresh := !seenSolutions[key]
				seenSolutions[key] = true
				if fresh {
					staleStreak = 0
				} else {
					staleStreak++
				}

				for j, sm := range solution.Masks {
					sv, _ := sm.Only()
					union[j] = union[j].Set(sv)
					if fresh {
						cid := NewCandidateID(n, CellID(j), sv)
						if counts[cid] < cap {
							counts[cid]++
						}
					}
				}
			}
		}
	}

	for i := range base.Masks {
		solved := base.Masks[i].Solved()
		base.Masks[i] = union[i]
		if solved {
			base.Masks[i] = base.Masks[i].MarkSolved()
		}
	}
	BulkNakedSinglesStep{}.Run(base, false)

	return &TrueCandidatesResult{Masks: base.Masks}, counts, true
}

// solutionKey renders a fully-solved board as a compact string for
// de-duplicating completions reached via different search orders.
func solutionKey(b *Board) string {
	buf := make([]byte, 0, len(b.Masks))
	for _, m := range b.Masks {
		v, _ := m.Only()
		buf = appendInt(buf, v)
		buf = append(buf, ',')
	}
	return string(buf)
}
