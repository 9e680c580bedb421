package iso

import (
	"image/color"

	"github.com/katalvlaran/lvlgen/tile"
)

// FaceKind tells the top of a tile from its two visible walls.
type FaceKind uint8

const (
	Top FaceKind = iota
	SouthWall
	EastWall
)

// Face is one filled quadrilateral of the scene.
type Face struct {
	Kind    FaceKind
	X, Y    int // tile coordinates
	Points  [4]Point
	Fill    color.RGBA
	Opacity float64
	Slope   bool // top face of a slope tile
	Center  Point
}

// Wall reports whether f is one of the two side faces.
func (f Face) Wall() bool { return f.Kind != Top }

// Faces lists the polygons of every non-empty tile in painter's order:
// anti-diagonals x+y from the back of the scene to the front, each tile's
// top before its walls.
//
// Complexity: O(W×H).
func Faces(tiles [][]tile.MarbleTile) []Face {
	h := len(tiles)
	if h == 0 {
		return nil
	}
	w := len(tiles[0])
	out := make([]Face, 0, w*h)
	for sum := 0; sum <= w+h-2; sum++ {
		for y := 0; y < h; y++ {
			x := sum - y
			if x < 0 || x >= w || x >= len(tiles[y]) {
				continue
			}
			out = appendTile(out, tiles[y][x], x, y)
		}
	}
	return out
}

func appendTile(out []Face, t tile.MarbleTile, x, y int) []Face {
	if t.Type == tile.Empty {
		return out
	}
	fx, fy, fz := float64(x), float64(y), float64(t.Elevation)
	fill := Brighten(Color(t.Type), t.Elevation)

	p0 := Project(fx, fy, fz)
	p1 := Project(fx+1, fy, fz)
	p2 := Project(fx+1, fy+1, fz)
	p3 := Project(fx, fy+1, fz)
	out = append(out, Face{
		Kind:    Top,
		X:       x,
		Y:       y,
		Points:  [4]Point{p0, p1, p2, p3},
		Fill:    fill,
		Opacity: 1,
		Slope:   t.Type.IsSlope(),
		Center:  Project(fx+0.5, fy+0.5, fz),
	})
	if !t.HasWalls {
		return out
	}

	bz := fz - WallHeight/ElevationHeight
	b1 := Project(fx+1, fy, bz)
	b2 := Project(fx+1, fy+1, bz)
	b3 := Project(fx, fy+1, bz)
	out = append(out,
		Face{Kind: SouthWall, X: x, Y: y, Points: [4]Point{p3, p2, b2, b3}, Fill: Darken(fill, 0.7), Opacity: 0.9},
		Face{Kind: EastWall, X: x, Y: y, Points: [4]Point{p1, p2, b2, b1}, Fill: Darken(fill, 0.6), Opacity: 0.8},
	)
	return out
}

// Canvas returns the pixel size of a w×h scene and the translation that
// places Project(0,0,0) inside it.
func Canvas(w, h int) (width, height float64, origin Point) {
	width = float64(w+h)*TileWidth/2 + 200
	height = float64(w+h)*TileHeight/4 + 400
	return width, height, Point{X: width / 2, Y: 150}
}
