package grid

import "fmt"

// New allocates a Width×Height grid of impassable cells with no room owner.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, width, height)
	}
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i].Room = NoRoom
	}
	return &Grid{Width: width, Height: height, cells: cells}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index converts (x,y) into a row-major index. The caller checks bounds.
func (g *Grid) Index(x, y int) int { return y*g.Width + x }

// Coordinate converts a row-major index back to (x,y).
func (g *Grid) Coordinate(i int) (int, int) { return i % g.Width, i / g.Width }

// Len returns Width×Height.
func (g *Grid) Len() int { return len(g.cells) }

// At returns a pointer to the cell at (x,y), or nil when out of bounds.
func (g *Grid) At(x, y int) *Cell {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.cells[g.Index(x, y)]
}

// Cell returns the cell at row-major index i.
func (g *Grid) Cell(i int) *Cell { return &g.cells[i] }

// Passable reports whether (x,y) is in bounds and passable.
func (g *Grid) Passable(x, y int) bool {
	c := g.At(x, y)
	return c != nil && c.Passable
}

// Open marks (x,y) passable. Out-of-bounds coordinates are ignored and
// reported as false, so carvers may overshoot the border safely.
func (g *Grid) Open(x, y int) bool {
	c := g.At(x, y)
	if c == nil {
		return false
	}
	c.Passable = true
	return true
}

// Mask computes the 4-neighbour connectivity bitmask of (x,y).
// Complexity: O(1).
func (g *Grid) Mask(x, y int) Mask {
	var m Mask
	for _, d := range Directions {
		dx, dy := d.Offset()
		if g.Passable(x+dx, y+dy) {
			m |= d.Bit()
		}
	}
	return m
}

// Neighbors returns the in-bounds cardinal neighbours of (x,y) as indices,
// in N, E, S, W order.
func (g *Grid) Neighbors(x, y int) []int {
	out := make([]int, 0, 4)
	for _, d := range Directions {
		dx, dy := d.Offset()
		if g.InBounds(x+dx, y+dy) {
			out = append(out, g.Index(x+dx, y+dy))
		}
	}
	return out
}

// PassableCount returns the number of passable cells.
func (g *Grid) PassableCount() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Passable {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of g.
// Complexity: O(W×H).
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{Width: g.Width, Height: g.Height, cells: cells}
}

// Equal reports whether g and o have the same shape and identical cells.
func (g *Grid) Equal(o *Grid) bool {
	if g.Width != o.Width || g.Height != o.Height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}
