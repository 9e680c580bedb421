package tile_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgen/grid"
	"github.com/katalvlaran/lvlgen/tile"
)

func TestNew_DefaultWalls(t *testing.T) {
	s := tile.New(tile.Straight)
	assert.Equal(t, tile.Straight, s.Type)
	assert.Zero(t, s.Elevation)
	assert.Zero(t, s.Rotation)
	assert.True(t, s.HasWalls)

	assert.False(t, tile.New(tile.OpenPlatform).HasWalls)
	assert.False(t, tile.New(tile.Empty).HasWalls)
	assert.Equal(t, uint8(2), tile.NewWith(tile.Curve90, 0, 6, true).Rotation)
}

// TestConnections_Rotation walks Curve90 through all four rotations.
func TestConnections_Rotation(t *testing.T) {
	want := []grid.Mask{
		grid.North.Bit() | grid.East.Bit(),
		grid.East.Bit() | grid.South.Bit(),
		grid.South.Bit() | grid.West.Bit(),
		grid.West.Bit() | grid.North.Bit(),
	}
	for rot, m := range want {
		c := tile.NewWith(tile.Curve90, 0, uint8(rot), true)
		assert.Equal(t, m, c.Mask(), "rotation %d", rot)
	}
}

func TestConnections_Table(t *testing.T) {
	cases := []struct {
		typ  tile.Type
		want string
	}{
		{tile.Empty, "-"},
		{tile.Obstacle, "-"},
		{tile.Straight, "NS"},
		{tile.SlopeUp, "NS"},
		{tile.TJunction, "NES"},
		{tile.YJunction, "NES"},
		{tile.CrossJunction, "NESW"},
		{tile.OpenPlatform, "NESW"},
		{tile.Merge, "NEW"},
		{tile.LaunchPad, "N"},
		{tile.Tunnel, "NS"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tile.New(tc.typ).Mask().String(), tc.typ.String())
	}
	straight := tile.New(tile.Straight)
	assert.Len(t, straight.Connections(), 2)
	assert.True(t, straight.Connects(grid.North))
	assert.False(t, straight.Connects(grid.East))
}

func TestCompatibleWith(t *testing.T) {
	ground := tile.NewWith(tile.Straight, 0, 0, true)
	elevated := tile.NewWith(tile.Straight, 1, 0, true)
	slope := tile.NewWith(tile.SlopeUp, 0, 0, true)
	side := tile.NewWith(tile.Straight, 0, 1, true)

	assert.True(t, slope.CompatibleWith(ground, grid.North))
	assert.True(t, slope.CompatibleWith(elevated, grid.North))
	assert.True(t, ground.CompatibleWith(ground, grid.South))
	assert.False(t, ground.CompatibleWith(elevated, grid.North), "flat tiles need equal elevation")
	assert.False(t, ground.CompatibleWith(side, grid.North), "E-W straight does not open north-south")
	assert.False(t, ground.CompatibleWith(ground, grid.East))
}

func TestType_Names(t *testing.T) {
	for _, typ := range tile.Types() {
		got, err := tile.ParseType(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, got)
	}
	_, err := tile.ParseType("Spiral")
	assert.ErrorIs(t, err, tile.ErrUnknownType)
	assert.Equal(t, "Type(200)", tile.Type(200).String())
	assert.Len(t, tile.Names(), len(tile.Types()))
}

func TestType_JSONText(t *testing.T) {
	b, err := json.Marshal(map[string]tile.Type{"t": tile.CrossJunction})
	require.NoError(t, err)
	assert.JSONEq(t, `{"t":"CrossJunction"}`, string(b))

	var back map[string]tile.Type
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, tile.CrossJunction, back["t"])

	var bad tile.Type
	assert.ErrorIs(t, bad.UnmarshalText([]byte("nope")), tile.ErrUnknownType)
}

func TestType_Predicates(t *testing.T) {
	assert.False(t, tile.Empty.Passable())
	assert.False(t, tile.Obstacle.Passable())
	assert.True(t, tile.OpenPlatform.Passable())
	assert.True(t, tile.SlopeDown.IsSlope())
	assert.False(t, tile.Straight.IsSlope())
}

func TestASCII(t *testing.T) {
	assert.Equal(t, byte('#'), tile.New(tile.Empty).ASCII())
	assert.Equal(t, byte('O'), tile.NewWith(tile.Obstacle, 0, 0, true).ASCII())
	assert.Equal(t, byte('.'), tile.New(tile.Straight).ASCII())
	assert.Equal(t, byte(','), tile.New(tile.OpenPlatform).ASCII())
}
