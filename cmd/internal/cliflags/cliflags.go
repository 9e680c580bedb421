// Package cliflags binds the generation flags shared by lvlgen and lvlview.
package cliflags

import (
	"flag"
	"math"
	"time"

	"github.com/katalvlaran/lvlgen/generator"
	"github.com/katalvlaran/lvlgen/grid"
	"github.com/katalvlaran/lvlgen/room"
)

// Generation holds the parsed flag values.
type Generation struct {
	fs *flag.FlagSet
	p  generator.Params

	trend          room.Trend
	startX, startY int
}

// Bind registers the generation flags on fs with DefaultParams values.
func Bind(fs *flag.FlagSet) *Generation {
	g := &Generation{fs: fs, p: generator.DefaultParams()}
	p := &g.p

	fs.IntVar(&p.Width, "width", p.Width, "map width in cells")
	fs.IntVar(&p.Height, "height", p.Height, "map height in cells")
	fs.IntVar(&p.Rooms, "rooms", p.Rooms, "target number of rooms")
	fs.IntVar(&p.MinRoomSize, "min-room", p.MinRoomSize, "minimum room side")
	fs.IntVar(&p.MaxRoomSize, "max-room", p.MaxRoomSize, "maximum room side")
	fs.IntVar(&p.Margin, "margin", p.Margin, "clearance between rooms")
	fs.Int64Var(&p.Seed, "seed", 0, "random seed (time based when unset)")
	fs.IntVar(&p.ChannelWidth, "channel-width", p.ChannelWidth, "channel width in cells")
	fs.IntVar(&p.CornerRadius, "corner-radius", p.CornerRadius, "channel corner radius (0 = square)")
	fs.BoolVar(&p.Elevation, "elevation", p.Elevation, "enable room elevations and smoothing")
	fs.IntVar(&p.MaxElevation, "max-elevation", p.MaxElevation, "largest absolute room elevation")
	fs.IntVar(&p.MaxElevationChange, "max-elevation-change", p.MaxElevationChange, "elevation cap against the nearest room (0 = off)")
	fs.IntVar(&p.SmoothingPasses, "smoothing-passes", p.SmoothingPasses, "elevation smoothing pass limit")
	fs.BoolVar(&p.Obstacles, "obstacles", p.Obstacles, "place obstacles in large rooms")
	fs.Float64Var(&p.ObstacleDensity, "obstacle-density", p.ObstacleDensity, "fraction of room interior to block, in [0,1]")
	fs.IntVar(&p.MinObstacleArea, "min-obstacle-area", p.MinObstacleArea, "smallest room area that gets obstacles")
	fs.IntVar(&p.OpenRoomArea, "open-room-area", p.OpenRoomArea, "smallest room area rendered as open platform (0 = off)")
	fs.Float64Var(&g.trend.X, "trend-x", 0, "trend direction x")
	fs.Float64Var(&g.trend.Y, "trend-y", 0, "trend direction y")
	fs.Float64Var(&g.trend.Z, "trend-z", 0, "trend direction z (elevation)")
	fs.Float64Var(&g.trend.Strength, "trend-strength", 0, "trend strength in [0,1] (0 = off)")
	fs.IntVar(&g.startX, "start-x", -1, "trend origin x (grid centre when unset)")
	fs.IntVar(&g.startY, "start-y", -1, "trend origin y (grid centre when unset)")
	return g
}

// Set reports whether the named flag was given on the command line.
func (g *Generation) Set(name string) bool {
	found := false
	g.fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// Params assembles the generator parameters. An unset -seed is taken from
// now; the trend and start point are only attached when given.
func (g *Generation) Params(now time.Time) generator.Params {
	p := g.p
	if !g.Set("seed") {
		p.Seed = now.UnixNano() & math.MaxInt64
	}
	if g.trend.Strength > 0 {
		t := g.trend
		p.Trend = &t
	}
	if g.startX >= 0 && g.startY >= 0 {
		p.Start = &grid.Point{X: g.startX, Y: g.startY}
	}
	return p
}
