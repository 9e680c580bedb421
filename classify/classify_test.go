package classify_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgen/classify"
	"github.com/katalvlaran/lvlgen/grid"
	"github.com/katalvlaran/lvlgen/room"
	"github.com/katalvlaran/lvlgen/tile"
)

func parse(t *testing.T, rows ...string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(rows)
	require.NoError(t, err)
	return g
}

func mask(ds ...grid.Direction) grid.Mask {
	var m grid.Mask
	for _, d := range ds {
		m |= d.Bit()
	}
	return m
}

//----------------------------------------------------------------------------//
// ForMask
//----------------------------------------------------------------------------//

func TestForMask_Table(t *testing.T) {
	N, E, S, W := grid.North, grid.East, grid.South, grid.West
	cases := []struct {
		m   grid.Mask
		typ tile.Type
		rot uint8
	}{
		{mask(N), tile.Straight, 0},
		{mask(S), tile.Straight, 0},
		{mask(E), tile.Straight, 1},
		{mask(W), tile.Straight, 1},
		{mask(N, S), tile.Straight, 0},
		{mask(E, W), tile.Straight, 1},
		{mask(N, E), tile.Curve90, 0},
		{mask(E, S), tile.Curve90, 1},
		{mask(S, W), tile.Curve90, 2},
		{mask(W, N), tile.Curve90, 3},
		{mask(N, E, S), tile.TJunction, 0},
		{mask(E, S, W), tile.TJunction, 1},
		{mask(S, W, N), tile.TJunction, 2},
		{mask(W, N, E), tile.TJunction, 3},
		{mask(N, E, S, W), tile.CrossJunction, 0},
	}
	for _, tc := range cases {
		typ, rot, ok := classify.ForMask(tc.m)
		require.True(t, ok, tc.m.String())
		assert.Equal(t, tc.typ, typ, tc.m.String())
		assert.Equal(t, tc.rot, rot, tc.m.String())
	}
	_, _, ok := classify.ForMask(0)
	assert.False(t, ok)
}

// TestForMask_ConnectionsMatchMask checks that every non-capped base tile
// opens exactly toward its passable neighbours.
func TestForMask_ConnectionsMatchMask(t *testing.T) {
	for m := grid.Mask(1); m < 16; m++ {
		if m.Count() == 1 {
			continue
		}
		typ, rot, ok := classify.ForMask(m)
		require.True(t, ok)
		assert.Equal(t, m, tile.NewWith(typ, 0, rot, true).Mask(), "mask %v", m)
	}
}

//----------------------------------------------------------------------------//
// Classify
//----------------------------------------------------------------------------//

func TestClassify_Shapes(t *testing.T) {
	g := parse(t,
		"#####",
		"#...#",
		"#.#.#",
		"#...#",
		"#O###",
	)
	tiles, err := classify.Classify(g, nil)
	require.NoError(t, err)

	assert.Equal(t, tile.Empty, tiles[0][0].Type)
	assert.False(t, tiles[0][0].HasWalls)
	assert.Equal(t, tile.Obstacle, tiles[4][1].Type)
	assert.True(t, tiles[4][1].HasWalls)

	tl := tiles[1][1]
	assert.Equal(t, tile.Curve90, tl.Type)
	assert.Equal(t, uint8(1), tl.Rotation, "E-S corner")
	assert.True(t, tl.HasWalls)

	top := tiles[1][2]
	assert.Equal(t, tile.Straight, top.Type)
	assert.Equal(t, uint8(1), top.Rotation)

	assert.Equal(t, tile.Curve90, tiles[3][3].Type)
	assert.Equal(t, uint8(3), tiles[3][3].Rotation, "W-N corner")
	assert.Empty(t, top.Metadata)
}

func TestClassify_OpenRoom(t *testing.T) {
	g := parse(t,
		"#####",
		"#...#",
		"#...#",
		"#####",
	)
	rooms := []room.Room{{ID: 0, X: 1, Y: 1, W: 3, H: 2, Open: true}}
	for y := 1; y <= 2; y++ {
		for x := 1; x <= 3; x++ {
			g.At(x, y).Room = 0
		}
	}
	tiles, err := classify.Classify(g, rooms)
	require.NoError(t, err)
	for y := 1; y <= 2; y++ {
		for x := 1; x <= 3; x++ {
			assert.Equal(t, tile.OpenPlatform, tiles[y][x].Type)
			assert.False(t, tiles[y][x].HasWalls)
			assert.Equal(t, `{"room":0}`, tiles[y][x].Metadata)
		}
	}

	// the same room closed gets junction tiles with walls
	rooms[0].Open = false
	tiles, err = classify.Classify(g, rooms)
	require.NoError(t, err)
	assert.Equal(t, tile.TJunction, tiles[1][2].Type)
	assert.True(t, tiles[1][2].HasWalls)
}

// TestClassify_SingleCellOpenRoom covers the zero-neighbour case inside an
// open room.
func TestClassify_SingleCellOpenRoom(t *testing.T) {
	g := parse(t, "#.#")
	g.At(1, 0).Room = 0
	tiles, err := classify.Classify(g, []room.Room{{ID: 0, X: 1, W: 1, H: 1, Open: true}})
	require.NoError(t, err)
	assert.Equal(t, tile.OpenPlatform, tiles[0][1].Type)
}

func TestClassify_Gap(t *testing.T) {
	g := parse(t,
		"#..#",
		"####",
		"#.##",
	)
	_, err := classify.Classify(g, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, classify.ErrClassificationGap))
	var gap *classify.GapError
	require.ErrorAs(t, err, &gap)
	assert.Equal(t, 1, gap.X)
	assert.Equal(t, 2, gap.Y)
	assert.Equal(t, grid.Mask(0), gap.Mask)

	_, err = classify.Classify(nil, nil)
	assert.ErrorIs(t, err, classify.ErrGridNil)
}

// TestClassify_Slopes exercises the slope override on a straight run.
func TestClassify_Slopes(t *testing.T) {
	g := parse(t, ".....")
	g.SetElevations([][]int{{0, 0, 1, 1, 1}})
	tiles, err := classify.Classify(g, nil)
	require.NoError(t, err)

	// x=1 is lower than its east neighbour: up-slope facing east
	assert.Equal(t, tile.SlopeUp, tiles[0][1].Type)
	assert.Equal(t, uint8(grid.East), tiles[0][1].Rotation)
	// x=2 is higher than its west neighbour: down-slope facing west
	assert.Equal(t, tile.SlopeDown, tiles[0][2].Type)
	assert.Equal(t, uint8(grid.West), tiles[0][2].Rotation)
	assert.Equal(t, tile.Straight, tiles[0][3].Type)
	assert.Equal(t, 1, tiles[0][3].Elevation)
}

func TestClassify_NoSlopeWhenAmbiguous(t *testing.T) {
	// middle cell has one neighbour up and one down
	g := parse(t, "...")
	g.SetElevations([][]int{{0, 1, 2}})
	tiles, err := classify.Classify(g, nil)
	require.NoError(t, err)
	assert.Equal(t, tile.Straight, tiles[0][1].Type)

	// a step of two blocks the override
	g.SetElevations([][]int{{0, 2, 2}})
	tiles, err = classify.Classify(g, nil)
	require.NoError(t, err)
	assert.Equal(t, tile.Straight, tiles[0][0].Type)
}

// TestClassify_CurvesNeverSlope checks that the override is limited to
// straight, cross and platform tiles.
func TestClassify_CurvesNeverSlope(t *testing.T) {
	g := parse(t,
		"..",
		".#",
	)
	g.SetElevations([][]int{{0, 1}, {0, 0}})
	tiles, err := classify.Classify(g, nil)
	require.NoError(t, err)
	assert.Equal(t, tile.Curve90, tiles[0][0].Type)
}

func TestClassify_Idempotent(t *testing.T) {
	g := parse(t,
		"#......#",
		"#.####.#",
		"#......#",
	)
	g.SetElevations([][]int{{0, 0, 1, 1, 1, 1, 0, 0}, {0, 0, 0, 0, 0, 0, 1, 0}, {0, 1, 1, 1, 0, 0, 0, 0}})
	a, err := classify.Classify(g, nil)
	require.NoError(t, err)
	b, err := classify.Classify(g, nil)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
