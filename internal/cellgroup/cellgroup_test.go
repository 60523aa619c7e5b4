package cellgroup

import (
	"testing"

	"variantsudoku/internal/core"
)

func TestParseSingleCell(t *testing.T) {
	groups, err := Parse(9, "r1c1")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(groups) != 1 || len(groups[0]) != 1 {
		t.Fatalf("expected one group with one cell, got %v", groups)
	}
	if groups[0][0] != core.CellAt(9, 0, 0) {
		t.Errorf("expected r1c1 to resolve to cell 0, got %d", groups[0][0])
	}
}

func TestParseCrossProductOfRowsAndCols(t *testing.T) {
	groups, err := Parse(9, "r1,2c1,2")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(groups[0]) != 4 {
		t.Fatalf("expected 4 cells from a 2x2 cross product, got %d", len(groups[0]))
	}
}

func TestParseRange(t *testing.T) {
	groups, err := Parse(9, "r1c1-3")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(groups[0]) != 3 {
		t.Fatalf("expected 3 cells from a range, got %d", len(groups[0]))
	}
	want := []core.CellID{core.CellAt(9, 0, 0), core.CellAt(9, 0, 1), core.CellAt(9, 0, 2)}
	for i, c := range want {
		if groups[0][i] != c {
			t.Errorf("expected %v, got %v", want, groups[0])
			break
		}
	}
}

func TestParseMultipleGroupsSeparatedBySemicolon(t *testing.T) {
	groups, err := Parse(9, "r1c1;r2c2")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
}

func TestParseNumpadExtension(t *testing.T) {
	// Start at r5c5 (cell (4,4) zero-indexed), then extend "right" (6) then "down" (2).
	groups, err := Parse(9, "r5c5d62")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(groups[0]) != 3 {
		t.Fatalf("expected 3 cells (anchor + 2 extensions), got %d", len(groups[0]))
	}
	if groups[0][0] != core.CellAt(9, 4, 4) {
		t.Errorf("expected anchor cell r5c5, got %d", groups[0][0])
	}
	if groups[0][1] != core.CellAt(9, 4, 5) {
		t.Errorf("expected first extension to move right to r5c6, got %d", groups[0][1])
	}
	if groups[0][2] != core.CellAt(9, 5, 5) {
		t.Errorf("expected second extension to move down to r6c6, got %d", groups[0][2])
	}
}

func TestParseRejectsOutOfRangeCell(t *testing.T) {
	if _, err := Parse(9, "r10c1"); err == nil {
		t.Error("expected an error for a row beyond the board size")
	}
}

func TestParseRejectsEmptyExpression(t *testing.T) {
	if _, err := Parse(9, ""); err == nil {
		t.Error("expected an error for an empty expression")
	}
}

func TestParseRejectsDirectionWithNoAnchor(t *testing.T) {
	if _, err := Parse(9, "d2"); err == nil {
		t.Error("expected an error for a direction extension with no preceding cell")
	}
}

func TestParseRejectsDirectionOffBoard(t *testing.T) {
	if _, err := Parse(9, "r1c1d8"); err == nil {
		t.Error("expected an error for a direction that moves off the board")
	}
}
