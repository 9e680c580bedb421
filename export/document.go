package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlgen/generator"
	"github.com/katalvlaran/lvlgen/tile"
)

// ErrMalformed is returned when a decoded document is internally inconsistent.
var ErrMalformed = errors.New("export: malformed document")

// Room is the exported form of room.Room.
type Room struct {
	X         int `json:"x" codec:"x" jsonschema:"required"`
	Y         int `json:"y" codec:"y" jsonschema:"required"`
	W         int `json:"w" codec:"w" jsonschema:"required,minimum=1"`
	H         int `json:"h" codec:"h" jsonschema:"required,minimum=1"`
	Elevation int `json:"elevation" codec:"elevation" jsonschema:"required"`
}

// Tile is the exported form of tile.MarbleTile.
type Tile struct {
	TileType  string `json:"tile_type" codec:"tile_type" jsonschema:"required,enum=Empty,enum=Straight,enum=Curve90,enum=TJunction,enum=YJunction,enum=CrossJunction,enum=SlopeUp,enum=SlopeDown,enum=OpenPlatform,enum=Obstacle,enum=Merge,enum=OneWayGate,enum=LoopDeLoop,enum=HalfPipe,enum=LaunchPad,enum=Bridge,enum=Tunnel"`
	Elevation int    `json:"elevation" codec:"elevation" jsonschema:"required"`
	Rotation  uint8  `json:"rotation" codec:"rotation" jsonschema:"required,minimum=0,maximum=3"`
	HasWalls  bool   `json:"has_walls" codec:"has_walls" jsonschema:"required"`
	Metadata  string `json:"metadata" codec:"metadata" jsonschema:"required"`
}

// Document is the structured export of a level.
type Document struct {
	Width       int      `json:"width" codec:"width" jsonschema:"required,minimum=1"`
	Height      int      `json:"height" codec:"height" jsonschema:"required,minimum=1"`
	Seed        int64    `json:"seed" codec:"seed" jsonschema:"required"`
	Rooms       []Room   `json:"rooms" codec:"rooms" jsonschema:"required"`
	Tiles       []string `json:"tiles" codec:"tiles" jsonschema:"required,description=One ASCII string per grid row"`
	MarbleTiles [][]Tile `json:"marble_tiles" codec:"marble_tiles" jsonschema:"required"`
	Warnings    []string `json:"warnings,omitempty" codec:"warnings,omitempty"`
}

// FromLevel converts a generated level into a Document.
func FromLevel(l *generator.Level) Document {
	doc := Document{
		Width:       l.Width,
		Height:      l.Height,
		Seed:        l.Seed,
		Rooms:       make([]Room, len(l.Rooms)),
		Tiles:       l.Rows(),
		MarbleTiles: make([][]Tile, len(l.Tiles)),
	}
	for i, r := range l.Rooms {
		doc.Rooms[i] = Room{X: r.X, Y: r.Y, W: r.W, H: r.H, Elevation: r.Elevation}
	}
	for y, row := range l.Tiles {
		out := make([]Tile, len(row))
		for x, t := range row {
			out[x] = FromTile(t)
		}
		doc.MarbleTiles[y] = out
	}
	for _, w := range l.Warnings {
		doc.Warnings = append(doc.Warnings, w.Error())
	}
	return doc
}

// FromTile converts one tile.
func FromTile(t tile.MarbleTile) Tile {
	return Tile{
		TileType:  t.Type.String(),
		Elevation: t.Elevation,
		Rotation:  t.Rotation,
		HasWalls:  t.HasWalls,
		Metadata:  t.Metadata,
	}
}

// MarbleTile converts the exported tile back, validating its type name.
func (t Tile) MarbleTile() (tile.MarbleTile, error) {
	typ, err := tile.ParseType(t.TileType)
	if err != nil {
		return tile.MarbleTile{}, err
	}
	m := tile.NewWith(typ, t.Elevation, t.Rotation, t.HasWalls)
	m.Metadata = t.Metadata
	return m, nil
}

// Validate checks the dimensions of every row and every tile type name.
func (d Document) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrMalformed, d.Width, d.Height)
	}
	if len(d.Tiles) != d.Height || len(d.MarbleTiles) != d.Height {
		return fmt.Errorf("%w: %d ascii rows, %d tile rows, height %d", ErrMalformed, len(d.Tiles), len(d.MarbleTiles), d.Height)
	}
	for y := 0; y < d.Height; y++ {
		if len(d.Tiles[y]) != d.Width || len(d.MarbleTiles[y]) != d.Width {
			return fmt.Errorf("%w: row %d width mismatch", ErrMalformed, y)
		}
		for x, t := range d.MarbleTiles[y] {
			if _, err := tile.ParseType(t.TileType); err != nil {
				return fmt.Errorf("%w: (%d,%d): %w", ErrMalformed, x, y, err)
			}
			if t.Rotation > 3 {
				return fmt.Errorf("%w: (%d,%d): rotation %d", ErrMalformed, x, y, t.Rotation)
			}
		}
	}
	return nil
}

// ASCII joins the pass/wall rows with trailing newlines.
func (d Document) ASCII() string {
	var b strings.Builder
	for _, r := range d.Tiles {
		b.WriteString(r)
		b.WriteByte('\n')
	}
	return b.String()
}

// MarbleTileGrid converts MarbleTiles back to tile values, [y][x].
func (d Document) MarbleTileGrid() ([][]tile.MarbleTile, error) {
	out := make([][]tile.MarbleTile, len(d.MarbleTiles))
	for y, row := range d.MarbleTiles {
		out[y] = make([]tile.MarbleTile, len(row))
		for x, t := range row {
			m, err := t.MarbleTile()
			if err != nil {
				return nil, fmt.Errorf("%w: (%d,%d): %w", ErrMalformed, x, y, err)
			}
			out[y][x] = m
		}
	}
	return out, nil
}
