package selection

import "slices"

// CellSet is a set of cells that remembers insertion order.
// The zero value is an empty set ready to use.
type CellSet struct {
	index map[int64]int
	cells []Cell
}

// NewCellSet creates a set holding the given cells.
func NewCellSet(cells ...Cell) *CellSet {
	s := &CellSet{}
	for _, c := range cells {
		s.Add(c)
	}
	return s
}

// Add inserts c and reports whether it was not already present.
func (s *CellSet) Add(c Cell) bool {
	if s.index == nil {
		s.index = make(map[int64]int)
	}
	k := c.key()
	if _, ok := s.index[k]; ok {
		return false
	}
	s.index[k] = len(s.cells)
	s.cells = append(s.cells, c)
	return true
}

// Remove deletes c and reports whether it was present.
func (s *CellSet) Remove(c Cell) bool {
	k := c.key()
	i, ok := s.index[k]
	if !ok {
		return false
	}
	delete(s.index, k)
	s.cells = slices.Delete(s.cells, i, i+1)
	for j := i; j < len(s.cells); j++ {
		s.index[s.cells[j].key()] = j
	}
	return true
}

// Has reports whether c is in the set.
func (s *CellSet) Has(c Cell) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[c.key()]
	return ok
}

// Len returns the number of cells.
func (s *CellSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.cells)
}

// Cells returns the cells in insertion order. The slice is a copy.
func (s *CellSet) Cells() []Cell {
	if s == nil {
		return nil
	}
	return slices.Clone(s.cells)
}

// Each calls fn for each cell in insertion order.
func (s *CellSet) Each(fn func(Cell)) {
	if s == nil {
		return
	}
	for _, c := range s.cells {
		fn(c)
	}
}

// Clear removes every cell.
func (s *CellSet) Clear() {
	s.index = nil
	s.cells = nil
}

// Clone returns an independent copy of the set.
func (s *CellSet) Clone() *CellSet {
	out := &CellSet{}
	if s == nil {
		return out
	}
	for _, c := range s.cells {
		out.Add(c)
	}
	return out
}

// Equal reports whether both sets hold the same cells, ignoring order.
func (s *CellSet) Equal(other *CellSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	if s == nil {
		return true
	}
	for _, c := range s.cells {
		if !other.Has(c) {
			return false
		}
	}
	return true
}
