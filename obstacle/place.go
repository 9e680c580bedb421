package obstacle

import (
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lvlgen/grid"
	"github.com/katalvlaran/lvlgen/rng"
	"github.com/katalvlaran/lvlgen/room"
)

// Place scatters static obstacles inside open rooms.
//
// Behavior, per eligible room in slice order:
//  1. Reserve the connection points (room cells with a passable neighbour
//     outside the room) and their 4-neighbours.
//  2. Collect unreserved passable interior cells in row-major order.
//  3. Target round(Density × candidates); skip the room when it is 0.
//  4. Shuffle the candidates with s and accept each one only if the room's
//     remaining passable cells stay a single 4-connected region.
//
// Accepted cells lose Passable and gain Obstacle. Callers must reclassify.
// No value is drawn from s for rooms whose target is 0, so Density 0 leaves
// the stream untouched.
//
// Complexity: O(Σ candidates × room area) in the worst case.
func Place(g *grid.Grid, rooms []room.Room, s *rng.Stream, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	var res Result
	for _, r := range rooms {
		if !Eligible(r, o.MinArea) {
			continue
		}
		res.Rooms++
		p := roomPlacer{g: g, r: r, blocked: mapset.New[int]()}
		cands := p.candidates()
		target := int(math.Round(o.Density * float64(len(cands))))
		res.Candidates += len(cands)
		res.Target += target
		if target == 0 {
			continue
		}

		s.Shuffle(len(cands), func(i, j int) { cands[i], cands[j] = cands[j], cands[i] })
		placed := 0
		for _, i := range cands {
			if placed == target {
				break
			}
			if !p.connectedWithout(i) {
				res.Rejected++
				continue
			}
			c := g.Cell(i)
			c.Passable = false
			c.Obstacle = true
			p.blocked.Put(i)
			placed++
		}
		res.Placed += placed
	}
	return res, nil
}

// Eligible reports whether r receives obstacles at the given threshold.
func Eligible(r room.Room, minArea int) bool {
	return r.Open && r.InteriorArea() >= minArea
}

// ConnectionPoints returns the row-major indices of r's cells that touch a
// passable cell outside r.
func ConnectionPoints(g *grid.Grid, r room.Room) []int {
	var out []int
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			if !g.Passable(x, y) {
				continue
			}
			for _, d := range grid.Directions {
				dx, dy := d.Offset()
				if !r.Contains(x+dx, y+dy) && g.Passable(x+dx, y+dy) {
					out = append(out, g.Index(x, y))
					break
				}
			}
		}
	}
	return out
}

// roomPlacer tracks the obstacles added to one room.
type roomPlacer struct {
	g       *grid.Grid
	r       room.Room
	blocked mapset.Set[int]
}

// candidates lists the unreserved passable interior cells of the room.
func (p roomPlacer) candidates() []int {
	reserved := mapset.New[int]()
	for _, i := range ConnectionPoints(p.g, p.r) {
		reserved.Put(i)
		x, y := p.g.Coordinate(i)
		for _, d := range grid.Directions {
			dx, dy := d.Offset()
			if p.r.Contains(x+dx, y+dy) {
				reserved.Put(p.g.Index(x+dx, y+dy))
			}
		}
	}

	var out []int
	for y := p.r.Y + 1; y < p.r.Y+p.r.H-1; y++ {
		for x := p.r.X + 1; x < p.r.X+p.r.W-1; x++ {
			i := p.g.Index(x, y)
			if p.g.Passable(x, y) && !reserved.Has(i) {
				out = append(out, i)
			}
		}
	}
	return out
}

// connectedWithout reports whether the room's passable cells, minus the
// candidate, still form one 4-connected region.
func (p roomPlacer) connectedWithout(candidate int) bool {
	open := func(x, y int) bool {
		if !p.r.Contains(x, y) || !p.g.Passable(x, y) {
			return false
		}
		i := p.g.Index(x, y)
		return i != candidate && !p.blocked.Has(i)
	}

	start, total := -1, 0
	for y := p.r.Y; y < p.r.Y+p.r.H; y++ {
		for x := p.r.X; x < p.r.X+p.r.W; x++ {
			if open(x, y) {
				if start < 0 {
					start = p.g.Index(x, y)
				}
				total++
			}
		}
	}
	if total == 0 {
		return false
	}

	visited := mapset.New[int]()
	visited.Put(start)
	queue := []int{start}
	for head := 0; head < len(queue); head++ {
		x, y := p.g.Coordinate(queue[head])
		for _, d := range grid.Directions {
			dx, dy := d.Offset()
			vx, vy := x+dx, y+dy
			if !open(vx, vy) {
				continue
			}
			v := p.g.Index(vx, vy)
			if !visited.Has(v) {
				visited.Put(v)
				queue = append(queue, v)
			}
		}
	}
	return visited.Size() == total
}
