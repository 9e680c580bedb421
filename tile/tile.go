package tile

import "github.com/katalvlaran/lvlgen/grid"

// MarbleTile is the classified content of one cell.
type MarbleTile struct {
	Type      Type
	Elevation int
	Rotation  uint8 // quarter turns clockwise, always in [0,3]
	HasWalls  bool
	Metadata  string // opaque to the generator
}

// New returns a ground-level tile of type t with its default walls.
func New(t Type) MarbleTile {
	return MarbleTile{Type: t, HasWalls: t.DefaultWalls()}
}

// NewWith returns a tile with explicit fields; rotation is reduced mod 4.
func NewWith(t Type, elevation int, rotation uint8, walls bool) MarbleTile {
	return MarbleTile{Type: t, Elevation: elevation, Rotation: rotation % 4, HasWalls: walls}
}

var (
	dirsNone  = []grid.Direction{}
	dirsNS    = []grid.Direction{grid.North, grid.South}
	dirsNE    = []grid.Direction{grid.North, grid.East}
	dirsNES   = []grid.Direction{grid.North, grid.East, grid.South}
	dirsNEW   = []grid.Direction{grid.North, grid.East, grid.West}
	dirsAll   = []grid.Direction{grid.North, grid.East, grid.South, grid.West}
	dirsNorth = []grid.Direction{grid.North}
)

// baseConnections lists the openings of t at rotation 0.
func baseConnections(t Type) []grid.Direction {
	switch t {
	case Straight, SlopeUp, SlopeDown, OneWayGate, LoopDeLoop, HalfPipe, Bridge, Tunnel:
		return dirsNS
	case Curve90:
		return dirsNE
	case TJunction, YJunction:
		return dirsNES
	case CrossJunction, OpenPlatform:
		return dirsAll
	case Merge:
		return dirsNEW
	case LaunchPad:
		return dirsNorth
	}
	return dirsNone
}

// Connections returns the directions the tile opens toward, after rotation.
func (m MarbleTile) Connections() []grid.Direction {
	base := baseConnections(m.Type)
	out := make([]grid.Direction, len(base))
	for i, d := range base {
		out[i] = d.Rotate(m.Rotation)
	}
	return out
}

// Mask returns Connections as a grid.Mask.
func (m MarbleTile) Mask() grid.Mask {
	var mask grid.Mask
	for _, d := range m.Connections() {
		mask |= d.Bit()
	}
	return mask
}

// Connects reports whether the tile opens toward d.
func (m MarbleTile) Connects(d grid.Direction) bool { return m.Mask().Has(d) }

// CompatibleWith reports whether a marble can roll from m into other, which
// lies in direction d. Both tiles must open toward each other; a slope on
// either side tolerates one level of difference, otherwise the elevations
// must match.
func (m MarbleTile) CompatibleWith(other MarbleTile, d grid.Direction) bool {
	if !m.Connects(d) || !other.Connects(d.Opposite()) {
		return false
	}
	diff := m.Elevation - other.Elevation
	if m.Type.IsSlope() || other.Type.IsSlope() {
		return diff >= -1 && diff <= 1
	}
	return diff == 0
}

// ASCII returns the single-character form of the tile: '#' for empty,
// 'O' for obstacles, '.' for walled floor and ',' for open floor.
func (m MarbleTile) ASCII() byte {
	switch {
	case m.Type == Empty:
		return '#'
	case m.Type == Obstacle:
		return 'O'
	case m.HasWalls:
		return '.'
	}
	return ','
}
