package carve

import (
	"fmt"

	"github.com/katalvlaran/lvlgen/grid"
	"github.com/katalvlaran/lvlgen/rng"
	"github.com/katalvlaran/lvlgen/room"
)

// Rooms marks every cell of every room passable and tags it with the room id.
// Elevation is left untouched.
//
// Returns ErrGridNil or ErrRoomOutOfBounds; the grid is not modified on error.
// Complexity: O(Σ room area).
func Rooms(g *grid.Grid, rooms []room.Room) error {
	if g == nil {
		return ErrGridNil
	}
	for _, r := range rooms {
		if r.W <= 0 || r.H <= 0 || !g.InBounds(r.X, r.Y) || !g.InBounds(r.X+r.W-1, r.Y+r.H-1) {
			return fmt.Errorf("%w: %v in %dx%d", ErrRoomOutOfBounds, r, g.Width, g.Height)
		}
	}
	for _, r := range rooms {
		for y := r.Y; y < r.Y+r.H; y++ {
			for x := r.X; x < r.X+r.W; x++ {
				c := g.At(x, y)
				c.Passable = true
				c.Room = r.ID
			}
		}
	}
	return nil
}

// Connect joins each consecutive pair of rooms with an L-shaped channel
// between their centres.
//
// Per pair, exactly one Bool is drawn from s: true carves the horizontal leg
// first, false the vertical leg first. Channels are Options.Width cells wide
// and only open cells; room tags and elevations are left as they are.
//
// Complexity: O(Σ channel length × width + pairs × radius²).
func Connect(g *grid.Grid, rooms []room.Room, s *rng.Stream, opts ...Option) ([]Channel, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(rooms) < 2 {
		return nil, nil
	}

	c := carver{g: g, opts: o}
	channels := make([]Channel, 0, len(rooms)-1)
	for i := 1; i < len(rooms); i++ {
		a, b := rooms[i-1], rooms[i]
		x1, y1 := a.Center()
		x2, y2 := b.Center()
		ch := Channel{
			From:            a.ID,
			To:              b.ID,
			Start:           grid.Point{X: x1, Y: y1},
			End:             grid.Point{X: x2, Y: y2},
			HorizontalFirst: s.Bool(),
			Turns:           x1 != x2 && y1 != y2,
		}
		if ch.HorizontalFirst {
			ch.Corner = grid.Point{X: x2, Y: y1}
			c.hLeg(x1, x2, y1)
			c.vLeg(y1, y2, x2)
		} else {
			ch.Corner = grid.Point{X: x1, Y: y2}
			c.vLeg(y1, y2, x1)
			c.hLeg(x1, x2, y2)
		}
		if ch.Turns && o.CornerRadius > 0 {
			c.corner(ch)
		}
		channels = append(channels, ch)
	}
	return channels, nil
}

// carver opens cells on one grid with fixed channel geometry.
type carver struct {
	g    *grid.Grid
	opts Options
}

// span returns the perpendicular offsets of a channel, -(w-1)/2 .. w/2.
func (c carver) span() (int, int) {
	return -(c.opts.Width - 1) / 2, c.opts.Width / 2
}

// hLeg opens the horizontal leg from xa to xb on row y.
func (c carver) hLeg(xa, xb, y int) {
	if xa > xb {
		xa, xb = xb, xa
	}
	lo, hi := c.span()
	for x := xa; x <= xb; x++ {
		for o := lo; o <= hi; o++ {
			c.g.Open(x, y+o)
		}
	}
}

// vLeg opens the vertical leg from ya to yb on column x.
func (c carver) vLeg(ya, yb, x int) {
	if ya > yb {
		ya, yb = yb, ya
	}
	lo, hi := c.span()
	for y := ya; y <= yb; y++ {
		for o := lo; o <= hi; o++ {
			c.g.Open(x+o, y)
		}
	}
}

// corner rounds the inside of the joint so the turn approximates a quarter
// disk of radius r = min(CornerRadius, |Δx|, |Δy|).
//
// With travel signs (sx, sy) from Start to End, a horizontal-first joint at
// (x2, y1) is rounded around centre (x2-sx·r, y1+sy·r) in quadrant (+sx, -sy);
// a vertical-first joint at (x1, y2) around (x1+sx·r, y2-sy·r) in quadrant
// (-sx, +sy). Cells at distance [max(r-w/2, 0), r+w/2] from the centre are
// opened, as are all cells between that arc and the joint, so every opened
// cell has a 4-connected route back to a leg.
func (c carver) corner(ch Channel) {
	dx, dy := ch.End.X-ch.Start.X, ch.End.Y-ch.Start.Y
	r := min(c.opts.CornerRadius, abs(dx), abs(dy))
	half := c.opts.Width / 2
	inner := max(r-half, 0)
	outer := r + half

	sx, sy := sign(dx), sign(dy)
	var cx, cy, qx, qy int
	if ch.HorizontalFirst {
		cx, cy = ch.Corner.X-sx*r, ch.Corner.Y+sy*r
		qx, qy = sx, -sy
	} else {
		cx, cy = ch.Corner.X+sx*r, ch.Corner.Y-sy*r
		qx, qy = -sx, sy
	}

	in2, out2 := inner*inner, outer*outer
	for oy := 0; oy <= outer; oy++ {
		for ox := 0; ox <= outer; ox++ {
			d2 := ox*ox + oy*oy
			if d2 < in2 {
				continue
			}
			if d2 <= out2 || (ox <= r && oy <= r) {
				c.g.Open(cx+qx*ox, cy+qy*oy)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
