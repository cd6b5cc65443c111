package selection

import "testing"

func TestCellSetAddRemove(t *testing.T) {
	var s CellSet

	if !s.Add(Cell{1, 1}) {
		t.Error("first Add should report insertion")
	}
	if s.Add(Cell{1, 1}) {
		t.Error("duplicate Add should report no insertion")
	}
	if !s.Has(Cell{1, 1}) {
		t.Error("set should contain (1,1)")
	}
	if !s.Remove(Cell{1, 1}) {
		t.Error("Remove existing cell returned false")
	}
	if s.Remove(Cell{1, 1}) {
		t.Error("Remove missing cell returned true")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestCellSetInsertionOrder(t *testing.T) {
	s := NewCellSet(Cell{3, 0}, Cell{1, 0}, Cell{2, 0})
	s.Remove(Cell{1, 0})
	s.Add(Cell{0, 5})

	want := []Cell{{3, 0}, {2, 0}, {0, 5}}
	got := s.Cells()
	if len(got) != len(want) {
		t.Fatalf("Cells() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Cells()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	// Index must stay consistent after a removal in the middle.
	if !s.Remove(Cell{0, 5}) || s.Has(Cell{0, 5}) {
		t.Error("removing last cell after a middle removal failed")
	}
}

func TestCellKeysDoNotCollide(t *testing.T) {
	s := NewCellSet(Cell{1, 2}, Cell{2, 1}, Cell{12, 0}, Cell{0, 12}, Cell{-1, 0}, Cell{0, -1})
	if s.Len() != 6 {
		t.Errorf("Len() = %d, want 6", s.Len())
	}
}

func TestCellSetCloneAndEqual(t *testing.T) {
	a := NewCellSet(Cell{1, 1}, Cell{2, 1})
	b := a.Clone()
	if !a.Equal(b) {
		t.Error("clone should be equal")
	}

	b.Add(Cell{3, 1})
	if a.Has(Cell{3, 1}) {
		t.Error("clone shares storage with original")
	}
	if a.Equal(b) {
		t.Error("sets of different size should not be equal")
	}

	c := NewCellSet(Cell{2, 1}, Cell{1, 1})
	if !a.Equal(c) {
		t.Error("Equal should ignore order")
	}
}

func TestNilCellSetReads(t *testing.T) {
	var s *CellSet
	if s.Len() != 0 || s.Has(Cell{}) || s.Cells() != nil {
		t.Error("nil set should read as empty")
	}
	if s.Clone().Len() != 0 {
		t.Error("clone of nil set should be empty")
	}
	if !s.Equal(NewCellSet()) || !NewCellSet().Equal(s) {
		t.Error("nil set should equal an empty set")
	}
	other := NewCellSet()
	other.Add(Cell{X: 1, Y: 1})
	if s.Equal(other) || other.Equal(s) {
		t.Error("nil set should not equal a non-empty set")
	}
}

func TestCellIn(t *testing.T) {
	tests := []struct {
		c    Cell
		want bool
	}{
		{Cell{0, 0}, true},
		{Cell{7, 7}, true},
		{Cell{8, 0}, false},
		{Cell{0, 8}, false},
		{Cell{-1, 3}, false},
	}
	for _, tt := range tests {
		if got := tt.c.In(8, 8); got != tt.want {
			t.Errorf("%v.In(8,8) = %v, want %v", tt.c, got, tt.want)
		}
	}
}
