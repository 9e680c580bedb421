// Package grid defines core types and sentinel errors for the level grid.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a non-positive width or height.
	ErrEmptyGrid = errors.New("grid: width and height must be positive")
	// ErrOutOfRange indicates a coordinate outside the grid.
	ErrOutOfRange = errors.New("grid: coordinate out of range")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// NoRoom marks a cell that does not belong to any room.
const NoRoom = -1

// Direction is one of the four cardinal directions, numbered clockwise from
// North so that rotating by k quarter turns is (d + k) mod 4.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists the cardinal directions in scan order.
var Directions = [4]Direction{North, East, South, West}

// offsets is indexed by Direction; y grows southwards.
var offsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Offset returns the (dx, dy) step for d.
func (d Direction) Offset() (int, int) {
	o := offsets[d&3]
	return o[0], o[1]
}

// Opposite returns the direction facing d.
func (d Direction) Opposite() Direction { return (d + 2) & 3 }

// Rotate turns d clockwise by steps quarter turns.
func (d Direction) Rotate(steps uint8) Direction { return (d + Direction(steps)) & 3 }

// Bit returns the Mask bit for d.
func (d Direction) Bit() Mask { return 1 << d }

func (d Direction) String() string {
	switch d & 3 {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	default:
		return "W"
	}
}

// Mask is a 4-bit connectivity bitmask; bit d is set when the neighbour in
// direction d is passable.
type Mask uint8

// Has reports whether the bit for d is set.
func (m Mask) Has(d Direction) bool { return m&d.Bit() != 0 }

// Count returns the number of set directions.
func (m Mask) Count() int {
	n := 0
	for _, d := range Directions {
		if m.Has(d) {
			n++
		}
	}
	return n
}

// Dirs lists the set directions in N, E, S, W order.
func (m Mask) Dirs() []Direction {
	out := make([]Direction, 0, 4)
	for _, d := range Directions {
		if m.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

func (m Mask) String() string {
	s := ""
	for _, d := range Directions {
		if m.Has(d) {
			s += d.String()
		}
	}
	if s == "" {
		return "-"
	}
	return s
}

// Point is an (X, Y) grid coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Step returns the neighbour of p in direction d.
func (p Point) Step(d Direction) Point {
	dx, dy := d.Offset()
	return Point{p.X + dx, p.Y + dy}
}

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Cell is a single grid cell.
type Cell struct {
	Passable  bool // marble may occupy the cell
	Obstacle  bool // static obstacle; never passable
	Elevation int  // discrete height level, may be negative
	Room      int  // owning room id, or NoRoom
}

// Grid is a Width×Height row-major array of cells, owned by exactly one
// generation call.
type Grid struct {
	Width, Height int
	cells         []Cell
}
