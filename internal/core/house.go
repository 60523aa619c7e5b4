package core

import "sort"

// ============================================================================
// House - a group of N cells holding each value exactly once
// ============================================================================
//
// A House generalizes the teacher's hardcoded row/column/box groupings
// (human/grid.go's RowIndices/ColIndices/BoxIndices) into a named, arbitrary
// cell group so that constraint-contributed houses (extra regions, cages,
// killer-style groups) are first-class alongside the three defaults.
//
// ============================================================================

// House is an immutable named group of cells that must hold every value
// exactly once. Cells are stored sorted so that two houses naming the same
// cell set compare equal regardless of original ordering.
type House struct {
	Name  string
	Cells []CellID
}

// NewHouse builds a house from an unordered cell list, sorting a defensive copy.
func NewHouse(name string, cells []CellID) House {
	sorted := make([]CellID, len(cells))
	copy(sorted, cells)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return House{Name: name, Cells: sorted}
}

// sameCellSet reports whether two houses name the same set of cells,
// regardless of name.
func (h House) sameCellSet(other House) bool {
	if len(h.Cells) != len(other.Cells) {
		return false
	}
	for i := range h.Cells {
		if h.Cells[i] != other.Cells[i] {
			return false
		}
	}
	return true
}

// key returns a comparable representation of the cell set for de-duplication.
func (h House) key() string {
	buf := make([]byte, 0, len(h.Cells)*4)
	for _, c := range h.Cells {
		buf = appendInt(buf, int(c))
		buf = append(buf, ',')
	}
	return string(buf)
}

// dedupeHouses drops later houses whose cell set duplicates an earlier one.
func dedupeHouses(houses []House) []House {
	seen := make(map[string]bool, len(houses))
	out := make([]House, 0, len(houses))
	for _, h := range houses {
		k := h.key()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, h)
	}
	return out
}
