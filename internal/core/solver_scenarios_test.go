package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// These cases reproduce the concrete end-to-end scenarios documented for
// the engine: a handful of known givens strings with known solution
// counts or solutions, used as regression fixtures for the search and
// propagation code together rather than any one piece in isolation.

func parseGivensDigits(t *testing.T, s string) []int {
	t.Helper()
	require.Len(t, s, 81)
	out := make([]int, 81)
	for i, c := range s {
		if c >= '1' && c <= '9' {
			out[i] = int(c - '0')
		}
	}
	return out
}

func TestScenarioUniquePuzzleExactCountOne(t *testing.T) {
	givens := parseGivensDigits(t, "........1....23.4.....452....1.3.....3...4...6..7....8..6.....9.5....62.7.9...1..")
	solver, err := NewBuilder(9).WithGivens(givens).Build()
	require.NoError(t, err)

	res := solver.FindSolutionCount(100, nil, NewCancel())
	require.Equal(t, CountExact, res.Status)
	require.Equal(t, 1, res.Count)
}

func TestScenarioTwoSolutionPuzzleNamesBothSolutions(t *testing.T) {
	givens := parseGivensDigits(t, "8...62..1.5.....7..197...5........9.....28..3.....36.54...1..6...74...3.5.2......")
	solver, err := NewBuilder(9).WithGivens(givens).Build()
	require.NoError(t, err)

	var found []string
	res := solver.FindSolutionCount(10, &Receiver{
		OnSolution: func(b *Board) bool {
			found = append(found, boardString(b))
			return true
		},
	}, NewCancel())

	require.Equal(t, CountExact, res.Status)
	require.Equal(t, 2, res.Count)
	require.ElementsMatch(t, []string{
		"873562941654891372219734856326157498945628713781943625438219567167485239592376184",
		"873562941254891376619734852326157498945628713781943625438219567167485239592376184",
	}, found)
}

func TestScenarioUnderdeterminedPuzzleExactCount(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping an exhaustive 2357-solution count in short mode")
	}
	givens := parseGivensDigits(t, ".............23.4.....452....1.3.....3...4...6..7....8..6.....9.5....62.7.9...1..")
	solver, err := NewBuilder(9).WithGivens(givens).Build()
	require.NoError(t, err)

	res := solver.FindSolutionCount(10000, nil, NewCancel())
	require.Equal(t, CountExact, res.Status)
	require.Equal(t, 2357, res.Count)
}

func TestScenarioPhistomefelRingTrueCandidates(t *testing.T) {
	givens := parseGivensDigits(t, "....................23456....4...2....5...3....6...4....74365....................")
	solver, err := NewBuilder(9).WithGivens(givens).Build()
	require.NoError(t, err)

	result, ok := solver.FindTrueCandidates(NewRand(7), NewCancel())
	require.True(t, ok)

	cases := []struct {
		cell CellID
		want []int
	}{
		{CellAt(9, 0, 0), []int{3, 4, 5, 6, 7}},
		{CellAt(9, 8, 0), []int{2, 3, 4, 5, 6}},
		{CellAt(9, 8, 8), []int{2, 3, 4, 6, 7}},
	}
	for _, tc := range cases {
		require.Equal(t, NewValueMask(tc.want...), result.Masks[tc.cell],
			"cell %d true candidates", tc.cell)
	}
}
