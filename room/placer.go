package room

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvlgen/grid"
	"github.com/katalvlaran/lvlgen/rng"
)

// ErrInvalidConfig is returned when Place receives an unusable Config.
var ErrInvalidConfig = errors.New("room: invalid placement config")

const (
	// AttemptsPerRoom is the attempt budget multiplier per requested room.
	AttemptsPerRoom = 10
	// MinAttempts is the smallest attempt budget for a non-zero request.
	MinAttempts = 100
	// sizeSlack rejects rooms that would leave less than two cells of
	// clearance on each side of the map.
	sizeSlack = 4
)

// Trend biases placement along a direction. X and Y follow the grid axes,
// Z is the vertical component that skews sampled elevations.
type Trend struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Z        float64 `json:"z"`
	Strength float64 `json:"strength"` // in [0,1]
}

// Config holds the placement inputs.
type Config struct {
	Width, Height      int
	Count              int // target number of rooms
	MinSize, MaxSize   int // inclusive side length bounds
	Margin             int // clearance around each room
	Elevation          bool
	MaxElevation       int // elevations are sampled in [-MaxElevation, MaxElevation]
	MaxElevationChange int // 0 disables the nearest-room cap
	OpenArea           int // rooms with Area() >= OpenArea are flagged open; 0 disables
	Trend              *Trend
	Start              *grid.Point // trend origin; grid centre when nil
}

// Result is the outcome of Place.
type Result struct {
	Rooms     []Room // sorted by centre x, ids 0..n-1
	Requested int
	Attempts  int // attempts actually spent
}

// Shortfall returns how many requested rooms could not be placed.
func (r Result) Shortfall() int { return r.Requested - len(r.Rooms) }

// AttemptBudget returns the attempt cap for a request of count rooms.
func AttemptBudget(count int) int {
	if count <= 0 {
		return 0
	}
	if n := count * AttemptsPerRoom; n > MinAttempts {
		return n
	}
	return MinAttempts
}

// placer encapsulates mutable placement state.
type placer struct {
	cfg      Config
	s        *rng.Stream
	accepted []Room

	// trend geometry, valid when biased is true
	biased     bool
	ox, oy     float64
	ux, uy     float64
	reach      float64
	zdir       float64
	trendPower float64
}

// Place rejection-samples up to cfg.Count non-overlapping rooms.
//
// Behavior:
//  1. Each attempt draws a size, then a position (uniform, or biased along the
//     trend with probability Strength).
//  2. Candidates whose margin-expanded bounds meet an accepted room's are dropped.
//  3. Accepted rooms draw their elevation when enabled.
//  4. The accepted set is sorted by centre x and numbered.
//
// Running out of attempts is not an error: the partial set is returned and
// Result.Shortfall reports the gap.
//
// Complexity: O(A·n) for A attempts and n accepted rooms.
func Place(cfg Config, s *rng.Stream) (Result, error) {
	if err := cfg.validate(); err != nil {
		return Result{}, err
	}
	if s == nil {
		return Result{}, fmt.Errorf("%w: nil stream", ErrInvalidConfig)
	}
	p := &placer{cfg: cfg, s: s}
	p.initTrend()

	res := Result{Requested: cfg.Count}
	budget := AttemptBudget(cfg.Count)
	for res.Attempts < budget && len(p.accepted) < cfg.Count {
		res.Attempts++
		p.attempt()
	}

	rooms := p.accepted
	sort.SliceStable(rooms, func(i, j int) bool {
		ci, _ := rooms[i].Center()
		cj, _ := rooms[j].Center()
		return ci < cj
	})
	for i := range rooms {
		rooms[i].ID = i
		rooms[i].Open = cfg.OpenArea > 0 && rooms[i].Area() >= cfg.OpenArea
	}
	res.Rooms = rooms
	return res, nil
}

func (c Config) validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.Count < 0:
		return fmt.Errorf("%w: count %d", ErrInvalidConfig, c.Count)
	case c.MinSize < 1 || c.MaxSize < c.MinSize:
		return fmt.Errorf("%w: sizes %d..%d", ErrInvalidConfig, c.MinSize, c.MaxSize)
	case c.Margin < 0:
		return fmt.Errorf("%w: margin %d", ErrInvalidConfig, c.Margin)
	case c.MaxElevation < 0:
		return fmt.Errorf("%w: max elevation %d", ErrInvalidConfig, c.MaxElevation)
	}
	return nil
}

// initTrend precomputes the trend origin, unit direction and reach.
func (p *placer) initTrend() {
	t := p.cfg.Trend
	if t == nil || t.Strength <= 0 {
		return
	}
	p.trendPower = math.Min(t.Strength, 1)

	p.ox, p.oy = float64(p.cfg.Width/2), float64(p.cfg.Height/2)
	if p.cfg.Start != nil {
		p.ox, p.oy = float64(p.cfg.Start.X), float64(p.cfg.Start.Y)
	}
	if n := math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z); n > 0 {
		p.zdir = t.Z / n
	}
	planar := math.Hypot(t.X, t.Y)
	if planar == 0 {
		return
	}
	p.ux, p.uy = t.X/planar, t.Y/planar
	p.reach = math.Min(axisReach(p.ox, p.ux, p.cfg.Width), axisReach(p.oy, p.uy, p.cfg.Height))
	p.biased = p.reach > 0
}

// axisReach returns how far one can travel from o along unit component u
// before leaving [0, size-1]. Infinite when u is zero.
func axisReach(o, u float64, size int) float64 {
	switch {
	case u > 0:
		return (float64(size-1) - o) / u
	case u < 0:
		return -o / u
	}
	return math.Inf(1)
}

// attempt runs one sampling attempt.
func (p *placer) attempt() {
	c := p.cfg
	w := p.s.IntRange(c.MinSize, c.MaxSize)
	h := p.s.IntRange(c.MinSize, c.MaxSize)
	if w >= c.Width-sizeSlack || h >= c.Height-sizeSlack {
		return
	}

	var x, y int
	if p.biased && p.s.Chance(p.trendPower) {
		x, y = p.biasedCorner(w, h)
	} else {
		x = p.s.IntRange(1, c.Width-w-2)
		y = p.s.IntRange(1, c.Height-h-2)
	}

	cand := Room{X: x, Y: y, W: w, H: h}
	for _, r := range p.accepted {
		if r.IntersectsWithMargin(cand, c.Margin) {
			return
		}
	}
	if c.Elevation {
		cand.Elevation = p.elevation(cand)
	}
	p.accepted = append(p.accepted, cand)
}

// biasedCorner places the candidate centre a random fraction of the reach
// along the trend, jittered by up to half the maximum room size.
func (p *placer) biasedCorner(w, h int) (int, int) {
	c := p.cfg
	t := p.s.Float64()
	jx := p.s.IntRange(-c.MaxSize/2, c.MaxSize/2)
	jy := p.s.IntRange(-c.MaxSize/2, c.MaxSize/2)

	cx := int(math.Round(p.ox+p.ux*t*p.reach)) + jx
	cy := int(math.Round(p.oy+p.uy*t*p.reach)) + jy
	return clamp(cx-w/2, 1, c.Width-w-2), clamp(cy-h/2, 1, c.Height-h-2)
}

// progress projects the room centre onto the trend direction, in [0,1].
// Without a planar direction every room counts as fully progressed.
func (p *placer) progress(r Room) float64 {
	if !p.biased {
		return 1
	}
	cx, cy := r.Center()
	proj := ((float64(cx)-p.ox)*p.ux + (float64(cy)-p.oy)*p.uy) / p.reach
	return math.Max(0, math.Min(1, proj))
}

// elevation samples a room elevation: uniform in [-max, max], blended toward
// the trend's vertical target and capped against the nearest accepted room.
func (p *placer) elevation(r Room) int {
	c := p.cfg
	e := p.s.IntRange(-c.MaxElevation, c.MaxElevation)

	if p.trendPower > 0 && p.zdir != 0 {
		target := p.zdir * p.progress(r) * float64(c.MaxElevation)
		e = int(math.Round(float64(e)*(1-p.trendPower) + target*p.trendPower))
	}
	e = clamp(e, -c.MaxElevation, c.MaxElevation)

	if c.MaxElevationChange > 0 {
		if n, ok := p.nearest(r); ok {
			e = clamp(e, n.Elevation-c.MaxElevationChange, n.Elevation+c.MaxElevationChange)
		}
	}
	return e
}

// nearest returns the accepted room whose centre is closest to r's centre;
// ties keep the earliest accepted room.
func (p *placer) nearest(r Room) (Room, bool) {
	if len(p.accepted) == 0 {
		return Room{}, false
	}
	cx, cy := r.Center()
	best, bestD := 0, math.MaxInt
	for i, o := range p.accepted {
		ox, oy := o.Center()
		if d := (ox-cx)*(ox-cx) + (oy-cy)*(oy-cy); d < bestD {
			best, bestD = i, d
		}
	}
	return p.accepted[best], true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
