package elevation

import (
	"github.com/katalvlaran/lvlgen/grid"
	"github.com/katalvlaran/lvlgen/room"
)

// Resolve assigns an elevation to every passable cell of g.
//
// Behavior:
//  1. Seed: multi-source BFS from all room cells at once (see Seed).
//  2. Smooth: bounded in-place passes until the gradient rule holds
//     (see Smooth).
//
// Running out of passes is not an error; check Report.Converged.
//
// Complexity: O(W·H·(1 + passes)).
func Resolve(g *grid.Grid, rooms []room.Room, opts ...Option) (Report, error) {
	if g == nil {
		return Report{}, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Report{}, o.err
	}

	var rep Report
	rep.Seeded, rep.Unreached = Seed(g, rooms)
	rep.Passes = Smooth(g, o.Passes)
	rep.Violations = Violations(g)
	rep.Converged = rep.Violations == 0
	return rep, nil
}

// Seed writes room elevations onto room cells and floods them outwards
// through passable cells. Sources are enqueued in room order, row-major
// within each room, all at distance 0; a corridor cell inherits the elevation
// of whichever room reaches it first, ties going to the earlier queue entry.
// Passable cells no room reaches are set to 0.
//
// Returns the number of flooded corridor cells and of unreached cells.
// Complexity: O(W·H).
func Seed(g *grid.Grid, rooms []room.Room) (seeded, unreached int) {
	visited := make([]bool, g.Len())
	queue := make([]int, 0, g.PassableCount())

	for _, r := range rooms {
		for y := r.Y; y < r.Y+r.H; y++ {
			for x := r.X; x < r.X+r.W; x++ {
				c := g.At(x, y)
				if c == nil || !c.Passable {
					continue
				}
				i := g.Index(x, y)
				if visited[i] {
					continue
				}
				visited[i] = true
				c.Elevation = r.Elevation
				queue = append(queue, i)
			}
		}
	}

	for head := 0; head < len(queue); head++ {
		u := queue[head]
		ux, uy := g.Coordinate(u)
		z := g.Cell(u).Elevation
		for _, d := range grid.Directions {
			dx, dy := d.Offset()
			vx, vy := ux+dx, uy+dy
			if !g.Passable(vx, vy) {
				continue
			}
			v := g.Index(vx, vy)
			if visited[v] {
				continue
			}
			visited[v] = true
			g.Cell(v).Elevation = z
			queue = append(queue, v)
			seeded++
		}
	}

	for i := 0; i < g.Len(); i++ {
		if c := g.Cell(i); c.Passable && !visited[i] {
			c.Elevation = 0
			unreached++
		}
	}
	return seeded, unreached
}

// Smooth runs up to maxPasses in-place passes over the passable cells in
// row-major order. In each pass a cell whose first passable neighbour
// (N, E, S, W) differs by more than 1 moves exactly one unit toward that
// neighbour. It stops after the first pass that changes nothing.
//
// Returns the number of passes executed.
// Complexity: O(W·H) per pass.
func Smooth(g *grid.Grid, maxPasses int) int {
	passes := 0
	for passes < maxPasses {
		passes++
		if !smoothPass(g) {
			break
		}
	}
	return passes
}

// smoothPass performs one pass and reports whether any cell changed.
func smoothPass(g *grid.Grid) bool {
	changed := false
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := g.At(x, y)
			if !c.Passable {
				continue
			}
			for _, d := range grid.Directions {
				dx, dy := d.Offset()
				n := g.At(x+dx, y+dy)
				if n == nil || !n.Passable {
					continue
				}
				if diff := n.Elevation - c.Elevation; diff > 1 {
					c.Elevation++
					changed = true
					break
				} else if diff < -1 {
					c.Elevation--
					changed = true
					break
				}
			}
		}
	}
	return changed
}

// Violations counts unordered pairs of adjacent passable cells whose
// elevations differ by more than 1.
// Complexity: O(W·H).
func Violations(g *grid.Grid) int {
	n := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := g.At(x, y)
			if !c.Passable {
				continue
			}
			// east and south only, so each pair counts once
			for _, d := range [2]grid.Direction{grid.East, grid.South} {
				dx, dy := d.Offset()
				o := g.At(x+dx, y+dy)
				if o == nil || !o.Passable {
					continue
				}
				if diff := o.Elevation - c.Elevation; diff > 1 || diff < -1 {
					n++
				}
			}
		}
	}
	return n
}
