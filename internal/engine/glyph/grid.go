package glyph

// Grid is a width x height boolean pixel grid stored row-major.
type Grid struct {
	width  int
	height int
	pixels []bool
}

// NewGrid creates an all-false grid. Non-positive dimensions yield an
// empty grid that ignores every write.
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		width:  width,
		height: height,
		pixels: make([]bool, width*height),
	}
}

// NewGridFromRows builds a grid from rows of pixels. Rows shorter than the
// first row are padded with false; longer rows are truncated.
func NewGridFromRows(rows [][]bool) *Grid {
	if len(rows) == 0 {
		return NewGrid(0, 0)
	}
	g := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, v := range row {
			g.Set(x, y, v)
		}
	}
	return g
}

// Width returns the grid width in pixels.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in pixels.
func (g *Grid) Height() int { return g.height }

// Inside reports whether (x, y) addresses a pixel of the grid.
func (g *Grid) Inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// Get returns the pixel at (x, y). Out-of-bounds reads return false.
func (g *Grid) Get(x, y int) bool {
	if !g.Inside(x, y) {
		return false
	}
	return g.pixels[y*g.width+x]
}

// Set writes the pixel at (x, y) and reports whether its value changed.
// Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, v bool) bool {
	if !g.Inside(x, y) {
		return false
	}
	i := y*g.width + x
	if g.pixels[i] == v {
		return false
	}
	g.pixels[i] = v
	return true
}

// Toggle flips the pixel at (x, y) and reports whether it was inside.
func (g *Grid) Toggle(x, y int) bool {
	if !g.Inside(x, y) {
		return false
	}
	i := y*g.width + x
	g.pixels[i] = !g.pixels[i]
	return true
}

// Clear sets every pixel to false.
func (g *Grid) Clear() {
	clear(g.pixels)
}

// Count returns the number of set pixels.
func (g *Grid) Count() int {
	n := 0
	for _, v := range g.pixels {
		if v {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	if g == nil {
		return nil
	}
	pixels := make([]bool, len(g.pixels))
	copy(pixels, g.pixels)
	return &Grid{width: g.width, height: g.height, pixels: pixels}
}

// CopyFrom overwrites g with the contents of src.
// Both grids must have the same dimensions; otherwise it returns false.
func (g *Grid) CopyFrom(src *Grid) bool {
	if src == nil || src.width != g.width || src.height != g.height {
		return false
	}
	copy(g.pixels, src.pixels)
	return true
}

// Equal compares two grids cell by cell. Grids of different size are
// never equal; two nil grids are.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i, v := range g.pixels {
		if other.pixels[i] != v {
			return false
		}
	}
	return true
}

// String renders the grid with '#' for set pixels and '.' otherwise,
// one line per row. Mostly useful in tests and logs.
func (g *Grid) String() string {
	buf := make([]byte, 0, (g.width+1)*g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.pixels[y*g.width+x] {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
