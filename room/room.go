package room

import "fmt"

// Room is an axis-aligned rectangle of passable cells sharing one elevation.
// Rooms are immutable once placement finishes.
type Room struct {
	ID        int  // index in the final centre-x order
	X, Y      int  // top-left corner
	W, H      int  // size in cells
	Elevation int  // fixed at creation
	Open      bool // interior classified as open platform, no walls
}

// Rect returns the bounds as (x, y, w, h).
func (r Room) Rect() (int, int, int, int) { return r.X, r.Y, r.W, r.H }

// Intersects reports whether the half-open rectangles of r and o overlap.
func (r Room) Intersects(o Room) bool {
	return !(r.X+r.W <= o.X || o.X+o.W <= r.X || r.Y+r.H <= o.Y || o.Y+o.H <= r.Y)
}

// Expand returns r grown by m cells on every side.
func (r Room) Expand(m int) Room {
	e := r
	e.X, e.Y = r.X-m, r.Y-m
	e.W, e.H = r.W+2*m, r.H+2*m
	return e
}

// IntersectsWithMargin reports whether the margin-expanded bounds of r and o
// intersect.
func (r Room) IntersectsWithMargin(o Room, margin int) bool {
	return r.Expand(margin).Intersects(o.Expand(margin))
}

// Center returns the integer centre (floor division).
func (r Room) Center() (int, int) { return r.X + r.W/2, r.Y + r.H/2 }

// Contains reports whether (x,y) lies inside the room.
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Interior reports whether (x,y) lies strictly inside the room border.
func (r Room) Interior(x, y int) bool {
	return x > r.X && x < r.X+r.W-1 && y > r.Y && y < r.Y+r.H-1
}

// Area returns W×H.
func (r Room) Area() int { return r.W * r.H }

// InteriorArea returns the area inside the one-cell border.
func (r Room) InteriorArea() int {
	if r.W < 3 || r.H < 3 {
		return 0
	}
	return (r.W - 2) * (r.H - 2)
}

func (r Room) String() string {
	return fmt.Sprintf("room#%d[%d,%d %dx%d z=%d]", r.ID, r.X, r.Y, r.W, r.H, r.Elevation)
}
