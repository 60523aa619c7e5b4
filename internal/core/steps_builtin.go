package core

import "fmt"

// ============================================================================
// Built-in logical steps
// ============================================================================
//
// These generalize the teacher's fixed-9x9 DetectNakedSingle/DetectHiddenSingle
// (human/techniques/simple.go) and candidate-filling loop (human/solver.go's
// FindNextMove) to arbitrary houses and board size, expressed against
// Board/House/ValueMask instead of row/col/box arithmetic.
//
// ============================================================================

// NakedSingleStep commits the one remaining candidate of a singleton cell,
// narrating which cell and value. Runs during the logical solve, not during
// brute-force (brute-force commits via search, not narration).
type NakedSingleStep struct{}

func (NakedSingleStep) Name() string                  { return "Naked Single" }
func (NakedSingleStep) RunsDuringBruteForce() bool     { return false }
func (NakedSingleStep) RunsDuringLogicalSolve() bool   { return true }

func (NakedSingleStep) Run(b *Board, wantDescription bool) StepResult {
	n := b.Meta.Size
	for i, m := range b.Masks {
		if m.Solved() {
			continue
		}
		if v, ok := m.Only(); ok {
			cell := CellID(i)
			ok := b.SetSolved(cell, v)
			if !ok {
				return InvalidResult(descIf(wantDescription, fmt.Sprintf(
					"cell %d has only candidate %d, but committing it contradicts another constraint", cell, v)))
			}
			if b.IsSolved() {
				return SolvedResult(descIf(wantDescription, fmt.Sprintf(
					"cell %d's only remaining candidate is %d (n=%d)", cell, v, n)))
			}
			return ChangedResult(descIf(wantDescription, fmt.Sprintf(
				"cell %d's only remaining candidate is %d", cell, v)))
		}
	}
	return NoneResult()
}

// BulkNakedSinglesStep repeats naked-single detection to a fixed point
// without narration, used by brute-force propagation and as a final
// tidy-up pass after true-candidates narrowing.
type BulkNakedSinglesStep struct{}

func (BulkNakedSinglesStep) Name() string                { return "Bulk Naked Singles" }
func (BulkNakedSinglesStep) RunsDuringBruteForce() bool   { return true }
func (BulkNakedSinglesStep) RunsDuringLogicalSolve() bool { return false }

func (BulkNakedSinglesStep) Run(b *Board, _ bool) StepResult {
	anyChanged := false
	for {
		progressed := false
		for i, m := range b.Masks {
			if m.Solved() {
				continue
			}
			if m.IsEmpty() {
				return InvalidResult(nil)
			}
			if v, ok := m.Only(); ok {
				if !b.SetSolved(CellID(i), v) {
					return InvalidResult(nil)
				}
				progressed = true
				anyChanged = true
			}
		}
		if !progressed {
			break
		}
	}
	if !b.IsConsistent() {
		return InvalidResult(nil)
	}
	if b.IsSolved() {
		return SolvedResult(nil)
	}
	if anyChanged {
		return ChangedResult(nil)
	}
	return NoneResult()
}

// HiddenSingleStep commits a value in the one cell of a house that can
// still hold it.
type HiddenSingleStep struct{}

func (HiddenSingleStep) Name() string                { return "Hidden Single" }
func (HiddenSingleStep) RunsDuringBruteForce() bool   { return false }
func (HiddenSingleStep) RunsDuringLogicalSolve() bool { return true }

func (HiddenSingleStep) Run(b *Board, wantDescription bool) StepResult {
	n := b.Meta.Size
	for _, h := range b.Meta.Houses {
		for v := 1; v <= n; v++ {
			var holder CellID
			count := 0
			alreadyPlaced := false
			for _, c := range h.Cells {
				m := b.Masks[c]
				if m.Solved() {
					if only, _ := m.Only(); only == v {
						alreadyPlaced = true
					}
					continue
				}
				if m.Has(v) {
					count++
					holder = c
				}
			}
			if alreadyPlaced {
				continue
			}
			if count == 0 {
				return InvalidResult(descIf(wantDescription, fmt.Sprintf(
					"house %q has nowhere to place %d", h.Name, v)))
			}
			if count == 1 {
				if !b.SetSolved(holder, v) {
					return InvalidResult(descIf(wantDescription, fmt.Sprintf(
						"house %q forces %d into cell %d, but that contradicts another constraint", h.Name, v, holder)))
				}
				if b.IsSolved() {
					return SolvedResult(descIf(wantDescription, fmt.Sprintf(
						"in house %q, %d can only go in cell %d", h.Name, v, holder)))
				}
				return ChangedResult(descIf(wantDescription, fmt.Sprintf(
					"in house %q, %d can only go in cell %d", h.Name, v, holder)))
			}
		}
	}
	return NoneResult()
}

// StepConstraints dispatches to the first constraint whose StepLogic
// returns a non-none result. It owns its own prefix: the constraint's
// SpecificName already identifies the source of the deduction, so the
// Solver must not additionally prefix it with this step's Name.
type StepConstraints struct{}

func (StepConstraints) Name() string                { return "Constraint" }
func (StepConstraints) RunsDuringBruteForce() bool   { return true }
func (StepConstraints) RunsDuringLogicalSolve() bool { return true }
func (StepConstraints) OwnsPrefix() bool             { return true }

func (StepConstraints) Run(b *Board, wantDescription bool) StepResult {
	for _, c := range b.Meta.Constraints {
		res := c.StepLogic(b, !wantDescription)
		if res.IsNone() {
			continue
		}
		if wantDescription && res.Description != nil {
			res.Description = &StepDescription{
				Line:     fmt.Sprintf("%s: %s", c.SpecificName(), res.Description.Line),
				Children: res.Description.Children,
			}
		}
		return res
	}
	return NoneResult()
}

// SimpleCellForcingStep intersects the weak links of every remaining
// candidate of each unsolved cell; any candidate still on the board that
// falls in every intersection is forced false, since placing any of the
// cell's values would eliminate it.
type SimpleCellForcingStep struct{}

func (SimpleCellForcingStep) Name() string                { return "Simple Cell Forcing" }
func (SimpleCellForcingStep) RunsDuringBruteForce() bool   { return false }
func (SimpleCellForcingStep) RunsDuringLogicalSolve() bool { return true }

func (SimpleCellForcingStep) Run(b *Board, wantDescription bool) StepResult {
	n := b.Meta.Size
	elim := NewEliminationList(n)

	for i, m := range b.Masks {
		if m.Solved() || m.Count() < 2 {
			continue
		}
		cell := CellID(i)
		vals := m.Values()

		var acc LinkSet
		for j, v := range vals {
			id := NewCandidateID(n, cell, v)
			if j == 0 {
				acc = b.Meta.WeakLinks[id].Clone()
				continue
			}
			acc.IntersectWith(b.Meta.WeakLinks[id])
		}
		if acc.Size() == 0 {
			continue
		}
		acc.ForEach(func(linked CandidateID) {
			lc, lv := linked.Cell(n), linked.Value(n)
			if b.Masks[lc].Has(lv) {
				elim.Add(linked)
			}
		})
	}

	if elim.Len() == 0 {
		return NoneResult()
	}
	changed, invalid := elim.Execute(b)
	if invalid {
		return InvalidResult(descIf(wantDescription, fmt.Sprintf(
			"simple cell forcing eliminates %s, emptying a cell", elim.Display())))
	}
	if !changed {
		return NoneResult()
	}
	if b.IsSolved() {
		return SolvedResult(descIf(wantDescription, fmt.Sprintf("simple cell forcing: %s", elim.Display())))
	}
	return ChangedResult(descIf(wantDescription, fmt.Sprintf("simple cell forcing: %s", elim.Display())))
}

func descIf(want bool, line string) *StepDescription {
	if !want {
		return nil
	}
	d := NewStep(line)
	return &d
}
