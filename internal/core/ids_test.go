package core

import "testing"

func TestCellIDRowCol(t *testing.T) {
	c := CellAt(9, 2, 5)
	if c.Row(9) != 2 || c.Col(9) != 5 {
		t.Errorf("expected row=2 col=5, got row=%d col=%d", c.Row(9), c.Col(9))
	}
	if int(c) != 23 {
		t.Errorf("expected flat index 23, got %d", c)
	}
}

func TestCandidateIDRoundTrip(t *testing.T) {
	cell := CellAt(9, 3, 4)
	for v := 1; v <= 9; v++ {
		id := NewCandidateID(9, cell, v)
		if id.Cell(9) != cell {
			t.Errorf("value %d: expected cell %d, got %d", v, cell, id.Cell(9))
		}
		if id.Value(9) != v {
			t.Errorf("expected value %d, got %d", v, id.Value(9))
		}
	}
}
