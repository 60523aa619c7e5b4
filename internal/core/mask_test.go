package core

import "testing"

func TestValueMaskBasic(t *testing.T) {
	var m ValueMask
	if !m.IsEmpty() {
		t.Error("zero ValueMask should be empty")
	}
	m = m.Set(3).Set(7)
	if !m.Has(3) || !m.Has(7) {
		t.Error("expected 3 and 7 to be set")
	}
	if m.Has(4) {
		t.Error("did not expect 4 to be set")
	}
	if m.Count() != 2 {
		t.Errorf("expected count 2, got %d", m.Count())
	}
}

func TestValueMaskSolvedFlagIndependentOfValues(t *testing.T) {
	m := NewValueMask(5).MarkSolved()
	if !m.Solved() {
		t.Error("expected solved flag set")
	}
	if m.Count() != 1 {
		t.Errorf("expected count 1 for a solved mask, got %d", m.Count())
	}
	v, ok := m.Only()
	if !ok || v != 5 {
		t.Errorf("expected Only()=5, got %d,%v", v, ok)
	}
	m2 := m.ClearSolved()
	if m2.Solved() {
		t.Error("expected solved flag cleared")
	}
	if !m2.Has(5) {
		t.Error("clearing the solved flag should not clear the value")
	}
}

func TestValueMaskSetOperations(t *testing.T) {
	a := NewValueMask(1, 2, 3)
	b := NewValueMask(2, 3, 4)
	if a.Intersect(b) != NewValueMask(2, 3) {
		t.Error("intersect mismatch")
	}
	if a.Union(b) != NewValueMask(1, 2, 3, 4) {
		t.Error("union mismatch")
	}
	if a.Subtract(b) != NewValueMask(1) {
		t.Error("subtract mismatch")
	}
	if a.Complement(4) != NewValueMask(4) {
		t.Error("complement mismatch")
	}
}

func TestValueMaskMinMaxValues(t *testing.T) {
	m := NewValueMask(9, 1, 5)
	min, _ := m.Min()
	max, _ := m.Max()
	if min != 1 || max != 9 {
		t.Errorf("expected min=1 max=9, got min=%d max=%d", min, max)
	}
	vals := m.Values()
	want := []int{1, 5, 9}
	for i, v := range want {
		if vals[i] != v {
			t.Errorf("Values() not ascending: got %v", vals)
			break
		}
	}
}

func TestValueMaskString(t *testing.T) {
	if NewValueMask().String() != "{}" {
		t.Error("expected empty mask to render as {}")
	}
	if NewValueMask(1, 4, 9).String() != "{1,4,9}" {
		t.Errorf("got %s", NewValueMask(1, 4, 9).String())
	}
}

func TestFullMask(t *testing.T) {
	m := FullMask(9)
	if m.Count() != 9 {
		t.Errorf("expected 9 candidates, got %d", m.Count())
	}
	for v := 1; v <= 9; v++ {
		if !m.Has(v) {
			t.Errorf("expected FullMask(9) to contain %d", v)
		}
	}
}
