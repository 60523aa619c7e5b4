// Package variant holds a handful of example constraint plug-ins that
// exercise internal/core's Constraint interface - a stand-in for the
// variant-rule catalog spec.md §1 describes as an external collaborator
// out of the core's scope. These exist to drive the concrete end-to-end
// scenarios spec.md §8 names (anti-king/anti-knight, no-consecutive/no-
// ratio) and to demonstrate how a real constraint wires into the weak-link
// table the Builder assembles.
package variant

import "variantsudoku/internal/core"

// kingOffsets are the eight king-move deltas.
var kingOffsets = [][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// knightOffsets are the eight knight-move deltas.
var knightOffsets = [][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// orthogonalOffsets are the four rook-adjacent deltas.
var orthogonalOffsets = [][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
}

// neighborPairs returns every unordered pair of distinct cells reachable
// from one another by one of the given offsets, each pair reported once.
func neighborPairs(n int, offsets [][2]int) [][2]core.CellID {
	var pairs [][2]core.CellID
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			for _, d := range offsets {
				nr, nc := r+d[0], c+d[1]
				if nr < 0 || nr >= n || nc < 0 || nc >= n {
					continue
				}
				a, b := core.CellAt(n, r, c), core.CellAt(n, nr, nc)
				if a < b {
					pairs = append(pairs, [2]core.CellID{a, b})
				}
			}
		}
	}
	return pairs
}
