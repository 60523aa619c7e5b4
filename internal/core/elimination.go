package core

import (
	"fmt"
	"sort"
	"strings"
)

// ============================================================================
// EliminationList - ordered, de-duplicated candidate removals
// ============================================================================
//
// EliminationList batches candidate removals produced by one logical step
// so that `execute` is the single mutator of a board on that path - the
// design notes call this out explicitly as the fix for elimination sites
// scattered across the teacher's technique files (each of
// human/techniques_*.go calls b.RemoveCandidate directly at its own call
// site). The compact Display grouping is new: it renders a batch of
// eliminations the way a human solver write-up would ("3: r1c2,5").
//
// ============================================================================

// EliminationList is an ordered, de-duplicated set of candidates queued for
// removal.
type EliminationList struct {
	n     int
	order []CandidateID
	seen  map[CandidateID]bool
}

// NewEliminationList builds an empty list for a board of size n.
func NewEliminationList(n int) *EliminationList {
	return &EliminationList{n: n, seen: make(map[CandidateID]bool)}
}

// Add queues a candidate for removal if not already queued.
func (l *EliminationList) Add(id CandidateID) {
	if l.seen[id] {
		return
	}
	l.seen[id] = true
	l.order = append(l.order, id)
}

// AddValue queues the (cell, value) candidate for removal.
func (l *EliminationList) AddValue(cell CellID, value int) {
	l.Add(NewCandidateID(l.n, cell, value))
}

// Remove drops a candidate from the queue if present.
func (l *EliminationList) Remove(id CandidateID) {
	if !l.seen[id] {
		return
	}
	delete(l.seen, id)
	for i, existing := range l.order {
		if existing == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

// Contains reports whether id is queued.
func (l *EliminationList) Contains(id CandidateID) bool {
	return l.seen[id]
}

// Len returns the number of queued candidates.
func (l *EliminationList) Len() int {
	return len(l.order)
}

// Candidates returns the queued candidates in insertion order.
func (l *EliminationList) Candidates() []CandidateID {
	out := make([]CandidateID, len(l.order))
	copy(out, l.order)
	return out
}

// Execute removes every queued candidate from the board, returning whether
// any cell changed and whether the board became invalid (a cell emptied).
func (l *EliminationList) Execute(b *Board) (changed bool, invalid bool) {
	for _, id := range l.order {
		ok, didChange := b.clearCandidate(id)
		if didChange {
			changed = true
		}
		if !ok {
			invalid = true
		}
	}
	return changed, invalid
}

// Display renders the queued candidates grouped by value, each value's
// cells compacted into the shorter of a row-grouped or column-grouped
// notation, e.g. "3: r1c2,4  7: r2,3c5".
func (l *EliminationList) Display() string {
	n := l.n
	byValue := make(map[int][]CellID)
	var values []int
	for _, id := range l.order {
		v := id.Value(n)
		if _, ok := byValue[v]; !ok {
			values = append(values, v)
		}
		byValue[v] = append(byValue[v], id.Cell(n))
	}
	sort.Ints(values)

	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, fmt.Sprintf("%d: %s", v, compactCells(byValue[v], n)))
	}
	return strings.Join(parts, "  ")
}

// compactCells renders a set of cells as either row-grouped ("r1c2,4") or
// column-grouped ("r2,4c1") notation, picking whichever is shorter.
func compactCells(cells []CellID, n int) string {
	row := groupBy(cells, n, true)
	col := groupBy(cells, n, false)
	if len(col) < len(row) {
		return col
	}
	return row
}

// groupBy renders cells grouped by row (byRow=true, "r{row}c{cols...}") or
// by column (byRow=false, "r{rows...}c{col}").
func groupBy(cells []CellID, n int, byRow bool) string {
	groups := make(map[int][]int)
	var keys []int
	for _, c := range cells {
		var major, minor int
		if byRow {
			major, minor = c.Row(n), c.Col(n)
		} else {
			major, minor = c.Col(n), c.Row(n)
		}
		if _, ok := groups[major]; !ok {
			keys = append(keys, major)
		}
		groups[major] = append(groups[major], minor)
	}
	sort.Ints(keys)

	parts := make([]string, 0, len(keys))
	for _, major := range keys {
		minors := groups[major]
		sort.Ints(minors)
		minorStrs := make([]string, len(minors))
		for i, m := range minors {
			minorStrs[i] = fmt.Sprintf("%d", m+1)
		}
		if byRow {
			parts = append(parts, fmt.Sprintf("r%dc%s", major+1, strings.Join(minorStrs, ",")))
		} else {
			parts = append(parts, fmt.Sprintf("r%sc%d", strings.Join(minorStrs, ","), major+1))
		}
	}
	return strings.Join(parts, ",")
}
