package core

import "testing"

func TestNewHouseSortsCells(t *testing.T) {
	h := NewHouse("Row 1", []CellID{5, 1, 3})
	want := []CellID{1, 3, 5}
	for i, c := range want {
		if h.Cells[i] != c {
			t.Errorf("expected sorted cells %v, got %v", want, h.Cells)
			break
		}
	}
}

func TestDedupeHousesDropsDuplicateCellSets(t *testing.T) {
	a := NewHouse("Row 1", []CellID{0, 1, 2})
	b := NewHouse("Duplicate of Row 1", []CellID{2, 1, 0})
	c := NewHouse("Column 1", []CellID{0, 3, 6})
	out := dedupeHouses([]House{a, b, c})
	if len(out) != 2 {
		t.Fatalf("expected 2 houses after dedupe, got %d", len(out))
	}
	if out[0].Name != "Row 1" || out[1].Name != "Column 1" {
		t.Errorf("expected first-seen house to win, got %q then %q", out[0].Name, out[1].Name)
	}
}
