package glyph

import (
	"errors"
	"slices"
)

// Errors returned by store operations.
var (
	ErrSizeMismatch = errors.New("grid size does not match store dimensions")
	ErrNilGrid      = errors.New("nil grid")
)

// Factory produces an empty grid of the configured size.
type Factory func() *Grid

// NewFactory returns a Factory producing all-false width x height grids.
func NewFactory(width, height int) Factory {
	return func() *Grid {
		return NewGrid(width, height)
	}
}

// Store maps codepoints to their pixel grids.
// Store is not safe for concurrent use; the editor session owns it.
type Store struct {
	width   int
	height  int
	factory Factory
	glyphs  map[Codepoint]*Grid
}

// NewStore creates an empty store. The grid dimensions are taken from one
// grid produced by the factory.
func NewStore(factory Factory) *Store {
	sample := factory()
	return &Store{
		width:   sample.Width(),
		height:  sample.Height(),
		factory: factory,
		glyphs:  make(map[Codepoint]*Grid),
	}
}

// Width returns the configured glyph width.
func (s *Store) Width() int { return s.width }

// Height returns the configured glyph height.
func (s *Store) Height() int { return s.height }

// Get returns the grid for cp, or nil if the glyph does not exist.
func (s *Store) Get(cp Codepoint) *Grid {
	return s.glyphs[cp]
}

// Has reports whether a glyph exists for cp.
func (s *Store) Has(cp Codepoint) bool {
	_, ok := s.glyphs[cp]
	return ok
}

// Ensure returns the grid for cp, creating an empty one if needed.
// The second result reports whether the grid was created by this call.
func (s *Store) Ensure(cp Codepoint) (*Grid, bool) {
	if g, ok := s.glyphs[cp]; ok {
		return g, false
	}
	g := s.factory()
	s.glyphs[cp] = g
	return g, true
}

// Put stores g for cp, replacing any existing glyph.
func (s *Store) Put(cp Codepoint, g *Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	if g.Width() != s.width || g.Height() != s.height {
		return ErrSizeMismatch
	}
	s.glyphs[cp] = g
	return nil
}

// Delete removes the glyph for cp and reports whether it existed.
func (s *Store) Delete(cp Codepoint) bool {
	if _, ok := s.glyphs[cp]; !ok {
		return false
	}
	delete(s.glyphs, cp)
	return true
}

// Len returns the number of stored glyphs.
func (s *Store) Len() int {
	return len(s.glyphs)
}

// Codepoints returns the stored codepoints in ascending order.
func (s *Store) Codepoints() []Codepoint {
	cps := make([]Codepoint, 0, len(s.glyphs))
	for cp := range s.glyphs {
		cps = append(cps, cp)
	}
	slices.Sort(cps)
	return cps
}
