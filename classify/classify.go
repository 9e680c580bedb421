package classify

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlgen/grid"
	"github.com/katalvlaran/lvlgen/room"
	"github.com/katalvlaran/lvlgen/tile"
)

// Sentinel errors for classification.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("classify: grid is nil")

	// ErrClassificationGap marks a passable cell outside an open room that
	// has no passable neighbour. It always arrives wrapped in a *GapError.
	ErrClassificationGap = errors.New("classify: isolated passable cell")
)

// GapError locates a classification gap.
type GapError struct {
	X, Y int
	Mask grid.Mask
}

func (e *GapError) Error() string {
	return fmt.Sprintf("%v at (%d,%d) mask %v", ErrClassificationGap, e.X, e.Y, e.Mask)
}

// Unwrap lets errors.Is match ErrClassificationGap.
func (e *GapError) Unwrap() error { return ErrClassificationGap }

// ForMask maps a non-empty connectivity mask to its base tile type and
// rotation. It reports false for the empty mask.
//
//	1 neighbour         → Straight (capped), N/S 0, E/W 1
//	2 opposite          → Straight, N-S 0, E-W 1
//	2 adjacent          → Curve90, N-E 0, E-S 1, S-W 2, W-N 3
//	3                   → TJunction, (missing + 1) mod 4
//	4                   → CrossJunction, 0
func ForMask(m grid.Mask) (tile.Type, uint8, bool) {
	switch m.Count() {
	case 1:
		if m.Has(grid.East) || m.Has(grid.West) {
			return tile.Straight, 1, true
		}
		return tile.Straight, 0, true
	case 2:
		if m == grid.North.Bit()|grid.South.Bit() {
			return tile.Straight, 0, true
		}
		if m == grid.East.Bit()|grid.West.Bit() {
			return tile.Straight, 1, true
		}
		for r := uint8(0); r < 4; r++ {
			if m == grid.North.Rotate(r).Bit()|grid.East.Rotate(r).Bit() {
				return tile.Curve90, r, true
			}
		}
	case 3:
		for _, d := range grid.Directions {
			if !m.Has(d) {
				return tile.TJunction, uint8(d.Rotate(1)), true
			}
		}
	case 4:
		return tile.CrossJunction, 0, true
	}
	return tile.Empty, 0, false
}

// Classify maps every cell of g to a MarbleTile, returning rows indexed
// [y][x]. It is a pure function of the grid and the rooms' open flags.
//
// Behavior:
//  1. Impassable cells become Empty, or Obstacle when flagged so.
//  2. Cells of open rooms become OpenPlatform without walls.
//  3. Other passable cells take the ForMask type of their neighbourhood.
//  4. Straight, CrossJunction and OpenPlatform cells with exactly one
//     neighbour one level away, and none further, become slopes facing it.
//
// Returns a *GapError (matching ErrClassificationGap) for the first isolated
// passable cell in row-major order.
//
// Complexity: O(W×H).
func Classify(g *grid.Grid, rooms []room.Room) ([][]tile.MarbleTile, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	open := make(map[int]bool, len(rooms))
	for _, r := range rooms {
		if r.Open {
			open[r.ID] = true
		}
	}

	rows := make([][]tile.MarbleTile, g.Height)
	for y := range rows {
		rows[y] = make([]tile.MarbleTile, g.Width)
		for x := range rows[y] {
			t, err := classifyCell(g, open, x, y)
			if err != nil {
				return nil, err
			}
			rows[y][x] = t
		}
	}
	return rows, nil
}

func classifyCell(g *grid.Grid, open map[int]bool, x, y int) (tile.MarbleTile, error) {
	c := g.At(x, y)
	var meta string
	if c.Room != grid.NoRoom {
		meta = fmt.Sprintf(`{"room":%d}`, c.Room)
	}

	switch {
	case c.Obstacle:
		t := tile.NewWith(tile.Obstacle, c.Elevation, 0, true)
		t.Metadata = meta
		return t, nil
	case !c.Passable:
		return tile.MarbleTile{}, nil
	}

	inOpen := c.Room != grid.NoRoom && open[c.Room]
	mask := g.Mask(x, y)

	var (
		typ tile.Type
		rot uint8
	)
	if inOpen {
		typ = tile.OpenPlatform
	} else {
		var ok bool
		if typ, rot, ok = ForMask(mask); !ok {
			return tile.MarbleTile{}, &GapError{X: x, Y: y, Mask: mask}
		}
	}

	walls := !inOpen && typ != tile.OpenPlatform
	if slopeEligible(typ) {
		if d, up, ok := slopeDirection(g, x, y); ok {
			typ, rot = tile.SlopeDown, uint8(d)
			if up {
				typ = tile.SlopeUp
			}
		}
	}

	t := tile.NewWith(typ, c.Elevation, rot, walls)
	t.Metadata = meta
	return t, nil
}

func slopeEligible(t tile.Type) bool {
	return t == tile.Straight || t == tile.CrossJunction || t == tile.OpenPlatform
}

// slopeDirection finds the single passable neighbour one level away from
// (x,y). up is true when that neighbour is higher. It reports false when no
// neighbour or several differ by one, or when any differs by more.
func slopeDirection(g *grid.Grid, x, y int) (dir grid.Direction, up bool, ok bool) {
	z := g.At(x, y).Elevation
	n := 0
	for _, d := range grid.Directions {
		dx, dy := d.Offset()
		o := g.At(x+dx, y+dy)
		if o == nil || !o.Passable {
			continue
		}
		switch diff := o.Elevation - z; {
		case diff == 1 || diff == -1:
			n++
			dir, up = d, diff == 1
		case diff > 1 || diff < -1:
			return 0, false, false
		}
	}
	return dir, up, n == 1
}
