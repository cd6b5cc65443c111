package selection

import "fmt"

// Cell is an integer pixel coordinate in grid space.
type Cell struct {
	X, Y int
}

// Add returns the cell shifted by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// In reports whether the cell lies inside a width x height grid.
func (c Cell) In(width, height int) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < width && c.Y < height
}

// String returns "x,y".
func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// key packs a cell into a single integer map key.
func (c Cell) key() int64 {
	return int64(c.X)<<32 | int64(uint32(c.Y))
}
