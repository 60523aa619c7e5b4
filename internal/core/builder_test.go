package core

import "testing"

func classic9x9(t *testing.T, givens []int) *Solver {
	t.Helper()
	solver, err := NewBuilder(9).WithGivens(givens).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return solver
}

func TestBuilderRejectsBadSize(t *testing.T) {
	if _, err := NewBuilder(0).Build(); err == nil {
		t.Error("expected error for size 0")
	}
	if _, err := NewBuilder(maxMaskSize + 1).Build(); err == nil {
		t.Error("expected error for size over the mask limit")
	}
}

func TestBuilderRejectsWrongLengthGivens(t *testing.T) {
	if _, err := NewBuilder(9).WithGivens(make([]int, 10)).Build(); err == nil {
		t.Error("expected error for mismatched givens length")
	}
}

func TestBuilderRejectsContradictoryGivens(t *testing.T) {
	givens := make([]int, 81)
	givens[0] = 5 // r1c1 = 5
	givens[1] = 5 // r1c2 = 5, same row - contradiction
	if _, err := NewBuilder(9).WithGivens(givens).Build(); err == nil {
		t.Error("expected error for two givens sharing a row with the same value")
	}
}

func TestBuilderDefaultBoxRegions(t *testing.T) {
	solver := classic9x9(t, make([]int, 81))
	// 9 rows + 9 cols + 9 boxes = 27 houses.
	if got := len(solver.Board.Meta.Houses); got != 27 {
		t.Errorf("expected 27 houses for a plain 9x9 board, got %d", got)
	}
}

func TestBuilderNonSquareSizeHasNoDefaultRegions(t *testing.T) {
	solver, err := NewBuilder(6).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// 6 is not a perfect square, so only rows + columns.
	if got := len(solver.Board.Meta.Houses); got != 12 {
		t.Errorf("expected 12 houses for a regionless 6x6 board, got %d", got)
	}
}

// An empty 9x9 grid's lexicographically-first solution is the
// well-known "123456789..." band-shifted solution. This test checks the
// first row and that the board is fully solved; the next test checks the
// whole board.
func TestFindFirstSolutionEmptyGridFirstRow(t *testing.T) {
	solver := classic9x9(t, make([]int, 81))
	board, ok := solver.FindFirstSolution(NewCancel())
	if !ok {
		t.Fatal("expected a solution on an empty 9x9 grid")
	}
	for c := 0; c < 9; c++ {
		v, solved := board.Masks[c].Only()
		if !solved || v != c+1 {
			t.Errorf("expected first row cell %d to be %d, got %d (solved=%v)", c, c+1, v, solved)
		}
	}
	if !board.IsSolved() {
		t.Error("expected a fully solved board")
	}
}

func TestFindFirstSolutionEmptyGridFullBoard(t *testing.T) {
	solver := classic9x9(t, make([]int, 81))
	board, ok := solver.FindFirstSolution(NewCancel())
	if !ok {
		t.Fatal("expected a solution on an empty 9x9 grid")
	}
	want := "123456789456789123789123456214365897365897214897214365531642978642978531978531642"
	got := boardString(board)
	if got != want {
		t.Errorf("expected the canonical lexicographically-first solution\n  want %s\n  got  %s", want, got)
	}
}

func boardString(b *Board) string {
	buf := make([]byte, len(b.Masks))
	for i, m := range b.Masks {
		v, _ := m.Only()
		buf[i] = byte('0' + v)
	}
	return string(buf)
}

func TestFindSolutionCountUniquePuzzleIsExactOne(t *testing.T) {
	// A full, valid 9x9 completion minus one cell has exactly one
	// completion: the missing value is forced by its row/column/box.
	givens := make([]int, 81)
	full := []int{
		1, 2, 3, 4, 5, 6, 7, 8, 9,
		4, 5, 6, 7, 8, 9, 1, 2, 3,
		7, 8, 9, 1, 2, 3, 4, 5, 6,
		2, 3, 1, 5, 6, 4, 8, 9, 7,
		5, 6, 4, 8, 9, 7, 2, 3, 1,
		8, 9, 7, 2, 3, 1, 5, 6, 4,
		3, 1, 2, 6, 4, 5, 9, 7, 8,
		6, 4, 5, 9, 7, 8, 3, 1, 2,
		9, 7, 8, 3, 1, 2, 6, 4, 5,
	}
	copy(givens, full)
	givens[80] = 0 // blank the last cell; it is forced back to 5.

	solver := classic9x9(t, givens)
	res := solver.FindSolutionCount(2, nil, NewCancel())
	if res.Status != CountExact || res.Count != 1 {
		t.Errorf("expected exact count 1, got status=%v count=%d", res.Status, res.Count)
	}
}

func TestFindSolutionCountNoSolution(t *testing.T) {
	givens := make([]int, 81)
	givens[0] = 5
	givens[9] = 5 // same column as r1c1, different row - contradiction once propagated
	solver, err := NewBuilder(9).WithGivens(givens).Build()
	if err == nil {
		res := solver.FindSolutionCount(2, nil, NewCancel())
		if res.Status != CountNone {
			t.Errorf("expected CountNone, got %v", res.Status)
		}
	}
	// If Build itself rejected the contradictory givens, that is an
	// equally valid way of reporting "no solution" for this board.
}

func TestFindSolutionCountCapReturnsAtLeast(t *testing.T) {
	// An empty 9x9 grid has far more than 2 solutions.
	solver := classic9x9(t, make([]int, 81))
	res := solver.FindSolutionCount(2, nil, NewCancel())
	if res.Status != CountAtLeast || res.Count < 2 {
		t.Errorf("expected AtLeast with count>=2, got status=%v count=%d", res.Status, res.Count)
	}
}

func TestFindSolutionCountRespectsCancel(t *testing.T) {
	solver := classic9x9(t, make([]int, 81))
	cancel := NewCancel()
	cancel.CancelNow()
	res := solver.FindSolutionCount(1000000, nil, cancel)
	if res.Status == CountExact {
		t.Error("expected a canceled search not to report an exact count")
	}
}

func TestRunLogicalSolveSolvesAnAlmostCompleteBoard(t *testing.T) {
	full := []int{
		1, 2, 3, 4, 5, 6, 7, 8, 9,
		4, 5, 6, 7, 8, 9, 1, 2, 3,
		7, 8, 9, 1, 2, 3, 4, 5, 6,
		2, 3, 1, 5, 6, 4, 8, 9, 7,
		5, 6, 4, 8, 9, 7, 2, 3, 1,
		8, 9, 7, 2, 3, 1, 5, 6, 4,
		3, 1, 2, 6, 4, 5, 9, 7, 8,
		6, 4, 5, 9, 7, 8, 3, 1, 2,
		9, 7, 8, 3, 1, 2, 6, 4, 5,
	}
	givens := append([]int(nil), full...)
	givens[80] = 0
	solver := classic9x9(t, givens)

	status, _ := solver.RunLogicalSolve(NewCancel())
	if status != StatusSolved {
		t.Fatalf("expected logical solve to finish the board, got status %v", status)
	}
	if !solver.Board.IsSolved() {
		t.Error("expected board to report solved")
	}
	v, _ := solver.Board.Masks[80].Only()
	if v != 5 {
		t.Errorf("expected the forced cell to resolve to 5, got %d", v)
	}
}

func TestFindTrueCandidatesNarrowsToUnionOfCompletions(t *testing.T) {
	full := []int{
		1, 2, 3, 4, 5, 6, 7, 8, 9,
		4, 5, 6, 7, 8, 9, 1, 2, 3,
		7, 8, 9, 1, 2, 3, 4, 5, 6,
		2, 3, 1, 5, 6, 4, 8, 9, 7,
		5, 6, 4, 8, 9, 7, 2, 3, 1,
		8, 9, 7, 2, 3, 1, 5, 6, 4,
		3, 1, 2, 6, 4, 5, 9, 7, 8,
		6, 4, 5, 9, 7, 8, 3, 1, 2,
		9, 7, 8, 3, 1, 2, 6, 4, 5,
	}
	givens := append([]int(nil), full...)
	// r1c1, r1c2 both blank. Swapping 1<->2 is ruled out by r4c1=2 and
	// r7c2=1, so the only completion puts 1 in r1c1 and 2 in r1c2.
	givens[0], givens[1] = 0, 0
	solver := classic9x9(t, givens)

	result, ok := solver.FindTrueCandidates(NewRand(1), NewCancel())
	if !ok {
		t.Fatal("expected true candidates to succeed")
	}
	if !result.Masks[0].Has(1) || result.Masks[0].Count() != 1 {
		t.Errorf("expected r1c1 true candidates {1}, got %s", result.Masks[0])
	}
	if !result.Masks[1].Has(2) || result.Masks[1].Count() != 1 {
		t.Errorf("expected r1c2 true candidates {2}, got %s", result.Masks[1])
	}
}
