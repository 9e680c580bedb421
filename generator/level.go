package generator

import (
	"errors"
	"strings"

	"github.com/katalvlaran/lvlgen/carve"
	"github.com/katalvlaran/lvlgen/classify"
	"github.com/katalvlaran/lvlgen/elevation"
	"github.com/katalvlaran/lvlgen/grid"
	"github.com/katalvlaran/lvlgen/obstacle"
	"github.com/katalvlaran/lvlgen/room"
	"github.com/katalvlaran/lvlgen/tile"
)

// Level is the read-only result of one generation call.
type Level struct {
	Width, Height int
	Seed          int64
	Params        Params

	Rooms    []room.Room
	Channels []carve.Channel
	Grid     *grid.Grid
	Tiles    [][]tile.MarbleTile // [y][x]

	// Warnings holds *PlacementShortfall and *ConvergenceWarning values.
	Warnings []error

	Stats Stats
}

// Stats collects per-stage diagnostics.
type Stats struct {
	Attempts  int
	Draws     uint64 // values taken from the seeded stream
	Passable  int
	Regions   int
	Elevation elevation.Report
	Obstacles obstacle.Result
	TileCount map[tile.Type]int
}

// Tile returns the tile at (x,y), or an Empty tile when out of bounds.
func (l *Level) Tile(x, y int) tile.MarbleTile {
	if y < 0 || y >= len(l.Tiles) || x < 0 || x >= len(l.Tiles[y]) {
		return tile.MarbleTile{}
	}
	return l.Tiles[y][x]
}

// Rows returns one string per row using MarbleTile.ASCII.
func (l *Level) Rows() []string {
	rows := make([]string, len(l.Tiles))
	buf := make([]byte, l.Width)
	for y, row := range l.Tiles {
		for x, t := range row {
			buf[x] = t.ASCII()
		}
		rows[y] = string(buf[:len(row)])
	}
	return rows
}

// ASCII renders the level as newline-terminated rows.
func (l *Level) ASCII() string {
	var b strings.Builder
	b.Grow((l.Width + 1) * l.Height)
	for _, r := range l.Rows() {
		b.WriteString(r)
		b.WriteByte('\n')
	}
	return b.String()
}

// Reclassify recomputes the tiles from the current grid and rooms without
// touching the level.
func (l *Level) Reclassify() ([][]tile.MarbleTile, error) {
	return classify.Classify(l.Grid, l.Rooms)
}

// HasWarning reports whether any warning matches target.
func (l *Level) HasWarning(target error) bool {
	for _, w := range l.Warnings {
		if errors.Is(w, target) {
			return true
		}
	}
	return false
}

func countTiles(tiles [][]tile.MarbleTile) map[tile.Type]int {
	out := make(map[tile.Type]int)
	for _, row := range tiles {
		for _, t := range row {
			out[t.Type]++
		}
	}
	return out
}
