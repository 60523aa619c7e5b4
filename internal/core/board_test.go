package core

import "testing"

func TestIsExclusiveHoldsWithinAHouseButNotAcrossBoxes(t *testing.T) {
	solver := classic9x9(t, make([]int, 81))
	b := solver.Board

	r1c1 := CellAt(9, 0, 0)
	r1c2 := CellAt(9, 0, 1)
	if !b.IsExclusive(r1c1, r1c2) {
		t.Error("expected two cells in the same row to be exclusive")
	}

	c1r1 := CellAt(9, 0, 0)
	c1r2 := CellAt(9, 1, 0)
	if !b.IsExclusive(c1r1, c1r2) {
		t.Error("expected two cells in the same column to be exclusive")
	}

	boxMate := CellAt(9, 1, 1)
	if !b.IsExclusive(r1c1, boxMate) {
		t.Error("expected two cells in the same box to be exclusive")
	}

	// r1c1 and r2c5 share no row, column, or box on a classic board, so
	// nothing forces every value to be mutually exclusive between them.
	unrelated := CellAt(9, 1, 4)
	if b.IsExclusive(r1c1, unrelated) {
		t.Error("expected cells sharing no house to not be exclusive")
	}
}

func TestIsExclusiveAgreesWithWeakLinkSymmetry(t *testing.T) {
	solver := classic9x9(t, make([]int, 81))
	b := solver.Board
	n := b.Meta.Size

	a := CellAt(9, 2, 3)
	c := CellAt(9, 2, 7)
	if !b.IsExclusive(a, c) {
		t.Fatal("expected same-row cells to be exclusive")
	}
	for v := 1; v <= n; v++ {
		x := NewCandidateID(n, a, v)
		y := NewCandidateID(n, c, v)
		if !b.Meta.WeakLinks[x].Test(y) {
			t.Errorf("value %d: exclusivity claims a weak link that WeakLinks does not have", v)
		}
		if !b.Meta.WeakLinks[y].Test(x) {
			t.Errorf("value %d: weak link is not symmetric", v)
		}
	}
}

func TestCloneLeavesOriginalBoardUntouched(t *testing.T) {
	solver := classic9x9(t, make([]int, 81))
	original := solver.Board
	clone := original.Clone()

	cell := CellAt(9, 0, 0)
	if !clone.SetSolved(cell, 5) {
		t.Fatal("expected SetSolved to succeed on an empty cell")
	}

	if original.Masks[cell].Solved() {
		t.Error("mutating the clone solved a cell on the original board")
	}
	if original.SolvedCount != 0 {
		t.Errorf("expected original SolvedCount to stay 0, got %d", original.SolvedCount)
	}
	if !clone.Masks[cell].Solved() {
		t.Error("expected the clone's cell to be solved")
	}

	// Clone shares Meta by reference, so the house/weak-link tables
	// themselves are untouched by either board's mutation.
	if original.Meta != clone.Meta {
		t.Error("expected Clone to share the same Meta pointer")
	}
}

func TestDeepCloneLeavesOriginalMetaUntouched(t *testing.T) {
	solver := classic9x9(t, make([]int, 81))
	original := solver.Board
	deep := original.DeepClone()

	if deep.Meta == original.Meta {
		t.Fatal("expected DeepClone to allocate a new Meta")
	}

	a := CellAt(9, 0, 0)
	c := CellAt(9, 0, 1)
	id := NewCandidateID(9, a, 1)
	linked := NewCandidateID(9, c, 1)

	if !original.Meta.WeakLinks[id].Test(linked) {
		t.Fatal("expected the fixture to start with this weak link set")
	}

	deep.Meta.WeakLinks[id].Clear(linked)
	deep.Meta.Exclusive[int(a)*deep.Meta.totalCells+int(c)] = false

	if !original.Meta.WeakLinks[id].Test(linked) {
		t.Error("mutating the deep clone's weak links changed the original's")
	}
	if !original.IsExclusive(a, c) {
		t.Error("mutating the deep clone's exclusivity table changed the original's")
	}
}
