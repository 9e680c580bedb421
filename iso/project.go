package iso

import (
	"fmt"
	"image/color"

	"github.com/katalvlaran/lvlgen/tile"
)

// Projection constants, in pixels.
const (
	TileWidth       = 32.0
	TileHeight      = 16.0
	ElevationHeight = 12.0
	WallHeight      = 20.0
)

// Point is a screen position.
type Point struct{ X, Y float64 }

// Project maps grid coordinates and elevation to screen space.
//
//	sx = (x − y)·TileWidth/2
//	sy = (x + y)·TileHeight/4 − z·ElevationHeight
func Project(x, y, z float64) Point {
	return Point{
		X: (x - y) * TileWidth / 2,
		Y: (x+y)*TileHeight/4 - z*ElevationHeight,
	}
}

var palette = map[tile.Type]color.RGBA{
	tile.Empty:         {0x2b, 0x2b, 0x2b, 0xff},
	tile.Straight:      {0x5a, 0x9f, 0xd4, 0xff},
	tile.Curve90:       {0x5a, 0xa4, 0xd4, 0xff},
	tile.TJunction:     {0x4c, 0x8f, 0xc7, 0xff},
	tile.YJunction:     {0x4c, 0x8f, 0xc7, 0xff},
	tile.CrossJunction: {0x40, 0x80, 0xb8, 0xff},
	tile.SlopeUp:       {0xe8, 0xa8, 0x47, 0xff},
	tile.SlopeDown:     {0xd8, 0x92, 0x3a, 0xff},
	tile.OpenPlatform:  {0xa6, 0xa6, 0xa6, 0xff},
	tile.Obstacle:      {0x8b, 0x45, 0x13, 0xff},
	tile.Merge:         {0x6b, 0x7f, 0xc7, 0xff},
	tile.OneWayGate:    {0xc7, 0x4c, 0x8f, 0xff},
	tile.LoopDeLoop:    {0xc7, 0x47, 0x8f, 0xff},
	tile.HalfPipe:      {0x8f, 0x47, 0xc7, 0xff},
	tile.LaunchPad:     {0xff, 0x44, 0x44, 0xff},
	tile.Bridge:        {0x7f, 0xc7, 0x6b, 0xff},
	tile.Tunnel:        {0x4c, 0x6b, 0xc7, 0xff},
}

// Color returns the base colour of t; unknown types render mid grey.
func Color(t tile.Type) color.RGBA {
	if c, ok := palette[t]; ok {
		return c
	}
	return color.RGBA{0x80, 0x80, 0x80, 0xff}
}

// Brighten scales c by 1 + 0.1·elevation per channel, clamped to [0, 255].
// Negative elevations darken.
func Brighten(c color.RGBA, elevation int) color.RGBA {
	return scale(c, 1+0.1*float64(elevation))
}

// Darken scales c by f in [0,1].
func Darken(c color.RGBA, f float64) color.RGBA { return scale(c, f) }

func scale(c color.RGBA, f float64) color.RGBA {
	ch := func(v uint8) uint8 {
		s := float64(v) * f
		switch {
		case s <= 0:
			return 0
		case s >= 255:
			return 255
		}
		return uint8(s)
	}
	return color.RGBA{ch(c.R), ch(c.G), ch(c.B), c.A}
}

// Hex formats c as #rrggbb.
func Hex(c color.RGBA) string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }
