package core

// ============================================================================
// Board - mutable cell state over immutable shared metadata
// ============================================================================
//
// Board pairs a per-cell ValueMask slice (the only thing that changes
// during a solve) with a BoardMeta record frozen at build time and shared
// by reference across every clone - the teacher's Board (human/board.go)
// instead recomputes peers ad hoc from GridSize/BoxSize constants on every
// call. Generalizing that to pluggable houses and weak links means the
// metadata has to be computed once and handed around, not derived inline.
//
// ============================================================================

// BoardMeta is the immutable-after-build shared state of a board: size,
// houses, weak-link table, exclusivity table, powerful cells, and the
// registered constraint list. Every clone of a Board points at the same
// BoardMeta; only DeepClone duplicates it.
type BoardMeta struct {
	Size int

	// RegionOf maps a cell to its default region label. When every label is
	// identical, no region houses are built from it.
	RegionOf []int

	// Houses is the full de-duplicated house list: rows, columns, default
	// regions, then constraint-contributed houses.
	Houses []House

	// CellHouses[cell] lists the indices into Houses containing that cell.
	CellHouses [][]int

	// WeakLinks[candidate] is the set of candidates that candidate forces
	// false. Symmetric: A in WeakLinks[B] iff B in WeakLinks[A].
	WeakLinks []LinkSet

	// Exclusive[i*total+j] is true iff cells i and j cannot share any value.
	Exclusive []bool

	// PowerfulCells is the union of cells constraints flag as high-branching
	// priorities for search.
	PowerfulCells []CellID

	// Constraints is the ordered, registered constraint list.
	Constraints []Constraint

	totalCells      int
	totalCandidates int
}

// Board is the mutable per-cell state of one puzzle position.
type Board struct {
	Meta        *BoardMeta
	Masks       []ValueMask
	SolvedCount int
}

// Cell returns the current mask of the given cell.
func (b *Board) Cell(c CellID) ValueMask {
	return b.Masks[c]
}

// AllCells returns every cell identifier on the board, in index order.
func (b *Board) AllCells() []CellID {
	cells := make([]CellID, b.Meta.totalCells)
	for i := range cells {
		cells[i] = CellID(i)
	}
	return cells
}

// IsSolved reports whether every cell is committed.
func (b *Board) IsSolved() bool {
	return b.SolvedCount == b.Meta.totalCells
}

// IsConsistent reports whether every cell has a non-empty mask.
func (b *Board) IsConsistent() bool {
	for _, m := range b.Masks {
		if m.IsEmpty() {
			return false
		}
	}
	return true
}

// Clone copies the mutable per-cell state and shares Meta by reference.
func (b *Board) Clone() *Board {
	masks := make([]ValueMask, len(b.Masks))
	copy(masks, b.Masks)
	return &Board{Meta: b.Meta, Masks: masks, SolvedCount: b.SolvedCount}
}

// DeepClone copies the mutable state and the metadata, for callers that
// intend to re-wire constraints. No core entry point does this itself.
func (b *Board) DeepClone() *Board {
	metaCopy := *b.Meta
	metaCopy.WeakLinks = make([]LinkSet, len(b.Meta.WeakLinks))
	for i, l := range b.Meta.WeakLinks {
		metaCopy.WeakLinks[i] = l.Clone()
	}
	metaCopy.Exclusive = append([]bool(nil), b.Meta.Exclusive...)
	nb := b.Clone()
	nb.Meta = &metaCopy
	return nb
}

// clearCandidate removes one candidate, returning (ok, changed). ok is false
// iff the cell became empty as a result (an invalid board state).
func (b *Board) clearCandidate(id CandidateID) (ok bool, changed bool) {
	cell := id.Cell(b.Meta.Size)
	v := id.Value(b.Meta.Size)
	m := b.Masks[cell]
	if !m.Has(v) {
		return true, false
	}
	m = m.Clear(v)
	b.Masks[cell] = m
	return !m.IsEmpty(), true
}

// ClearCandidate removes one candidate from the board. Returns false iff the
// owning cell became empty.
func (b *Board) ClearCandidate(id CandidateID) bool {
	ok, _ := b.clearCandidate(id)
	return ok
}

// ClearValue removes value v as a candidate of cell. Returns false iff the
// cell became empty.
func (b *Board) ClearValue(cell CellID, v int) bool {
	return b.ClearCandidate(NewCandidateID(b.Meta.Size, cell, v))
}

// ClearCandidates removes every candidate in ids, returning the aggregate
// validity (false iff any cell emptied).
func (b *Board) ClearCandidates(ids []CandidateID) bool {
	ok := true
	for _, id := range ids {
		if !b.ClearCandidate(id) {
			ok = false
		}
	}
	return ok
}

// KeepMask intersects cell's mask with m, used to narrow a cell's remaining
// candidates down to a known-good subset (e.g. true-candidates narrowing).
// Returns false iff the cell became empty.
func (b *Board) KeepMask(cell CellID, m ValueMask) bool {
	cur := b.Masks[cell]
	solved := cur.Solved()
	next := cur.Intersect(m)
	if solved {
		next = next.MarkSolved()
	}
	b.Masks[cell] = next
	return !next.IsEmpty()
}

// SetSolved commits value v to cell. It fails (returns false) if v is not a
// candidate of cell or the cell is already solved. On success it sets the
// mask to {v} with the solved flag, increments the solved counter, removes
// every candidate weakly linked to (cell, v), and consults every
// constraint's Enforce. A false return during the weak-link elimination or
// an Enforce failure marks the commit invalid; the caller must treat the
// board as inconsistent from that point.
func (b *Board) SetSolved(cell CellID, v int) bool {
	m := b.Masks[cell]
	if m.Solved() || !m.Has(v) {
		return false
	}

	b.Masks[cell] = NewValueMask(v).MarkSolved()
	b.SolvedCount++

	id := NewCandidateID(b.Meta.Size, cell, v)
	ok := true
	b.Meta.WeakLinks[id].ForEach(func(linked CandidateID) {
		if linked == id {
			return
		}
		if !b.ClearCandidate(linked) {
			ok = false
		}
	})

	for _, c := range b.Meta.Constraints {
		if res := c.Enforce(b, cell, v); res.Invalid {
			ok = false
		}
	}

	return ok
}

// IsExclusive reports whether c1 and c2 cannot share any value.
func (b *Board) IsExclusive(c1, c2 CellID) bool {
	total := b.Meta.totalCells
	return b.Meta.Exclusive[int(c1)*total+int(c2)]
}

// IsGrouped reports whether every pair of cells in the set is exclusive.
func (b *Board) IsGrouped(cells []CellID) bool {
	for i := 0; i < len(cells); i++ {
		for j := i + 1; j < len(cells); j++ {
			if !b.IsExclusive(cells[i], cells[j]) {
				return false
			}
		}
	}
	return true
}

// IsGroupedForValue reports whether every pair of cells in the set is
// weakly linked for value v specifically.
func (b *Board) IsGroupedForValue(cells []CellID, v int) bool {
	n := b.Meta.Size
	for i := 0; i < len(cells); i++ {
		for j := i + 1; j < len(cells); j++ {
			a := NewCandidateID(n, cells[i], v)
			c := NewCandidateID(n, cells[j], v)
			if !b.Meta.WeakLinks[a].Test(c) {
				return false
			}
		}
	}
	return true
}

// IsGroupedForValues reports whether every pair of cells in the set is
// weakly linked for every value in values.
func (b *Board) IsGroupedForValues(cells []CellID, values []int) bool {
	for _, v := range values {
		if !b.IsGroupedForValue(cells, v) {
			return false
		}
	}
	return true
}

// HousesContaining returns the houses containing cell.
func (b *Board) HousesContaining(cell CellID) []House {
	idxs := b.Meta.CellHouses[cell]
	out := make([]House, len(idxs))
	for i, idx := range idxs {
		out[i] = b.Meta.Houses[idx]
	}
	return out
}

// CellsWithNCandidates returns every unsolved cell with exactly n candidates.
func (b *Board) CellsWithNCandidates(n int) []CellID {
	var out []CellID
	for i, m := range b.Masks {
		if !m.Solved() && m.Count() == n {
			out = append(out, CellID(i))
		}
	}
	return out
}
