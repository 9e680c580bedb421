package obstacle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgen/carve"
	"github.com/katalvlaran/lvlgen/grid"
	"github.com/katalvlaran/lvlgen/obstacle"
	"github.com/katalvlaran/lvlgen/rng"
	"github.com/katalvlaran/lvlgen/room"
)

// fixture builds a 10×7 open room with one channel leaving its east wall
// and one leaving its south wall.
func fixture(t *testing.T) (*grid.Grid, []room.Room) {
	t.Helper()
	g, err := grid.New(24, 14)
	require.NoError(t, err)
	rooms := []room.Room{{ID: 0, X: 2, Y: 2, W: 10, H: 7, Open: true}}
	require.NoError(t, carve.Rooms(g, rooms))
	for x := 12; x < 22; x++ {
		g.Open(x, 5)
	}
	for y := 9; y < 13; y++ {
		g.Open(6, y)
	}
	return g, rooms
}

func obstacles(g *grid.Grid) []int {
	var out []int
	for i := 0; i < g.Len(); i++ {
		if g.Cell(i).Obstacle {
			out = append(out, i)
		}
	}
	return out
}

func TestConnectionPoints(t *testing.T) {
	g, rooms := fixture(t)
	got := obstacle.ConnectionPoints(g, rooms[0])
	assert.Equal(t, []int{g.Index(11, 5), g.Index(6, 8)}, got)
}

func TestEligible(t *testing.T) {
	open := room.Room{W: 6, H: 6, Open: true} // interior 16
	assert.True(t, obstacle.Eligible(open, 16))
	assert.False(t, obstacle.Eligible(open, 17))
	closed := open
	closed.Open = false
	assert.False(t, obstacle.Eligible(closed, 0))
}

func TestPlace_DensityZero(t *testing.T) {
	g, rooms := fixture(t)
	s := rng.New(1)
	res, err := obstacle.Place(g, rooms, s, obstacle.WithDensity(0))
	require.NoError(t, err)
	assert.Zero(t, res.Placed)
	assert.Empty(t, obstacles(g))
	assert.Zero(t, s.Draws(), "density 0 draws nothing")
	assert.Equal(t, 1, res.Rooms)
}

// TestPlace_DensityOne fills the room as far as connectivity allows and
// checks the doorway clearance and region invariants.
func TestPlace_DensityOne(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		g, rooms := fixture(t)
		r := rooms[0]
		reserved := map[int]bool{}
		for _, i := range obstacle.ConnectionPoints(g, r) {
			reserved[i] = true
			x, y := g.Coordinate(i)
			for _, d := range grid.Directions {
				if p := (grid.Point{X: x, Y: y}).Step(d); r.Contains(p.X, p.Y) {
					reserved[g.Index(p.X, p.Y)] = true
				}
			}
		}

		res, err := obstacle.Place(g, rooms, rng.New(seed), obstacle.WithDensity(1), obstacle.WithMinArea(16))
		require.NoError(t, err)
		assert.Equal(t, res.Candidates, res.Target)
		assert.Equal(t, res.Placed, len(obstacles(g)))
		assert.Positive(t, res.Placed)
		assert.LessOrEqual(t, res.Placed+res.Rejected, res.Candidates)

		for _, i := range obstacles(g) {
			x, y := g.Coordinate(i)
			assert.False(t, reserved[i], "seed %d: obstacle on doorway clearance", seed)
			assert.True(t, r.Interior(x, y))
			assert.False(t, g.Cell(i).Passable)
		}
		assert.Len(t, g.Regions(), 1, "seed %d: level stays connected", seed)
	}
}

func TestPlace_Deterministic(t *testing.T) {
	a, rooms := fixture(t)
	b, _ := fixture(t)
	_, err := obstacle.Place(a, rooms, rng.New(77), obstacle.WithDensity(0.5))
	require.NoError(t, err)
	_, err = obstacle.Place(b, rooms, rng.New(77), obstacle.WithDensity(0.5))
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestPlace_SkipsIneligibleRooms(t *testing.T) {
	g, rooms := fixture(t)
	rooms[0].Open = false
	res, err := obstacle.Place(g, rooms, rng.New(1), obstacle.WithDensity(1))
	require.NoError(t, err)
	assert.Zero(t, res.Rooms)
	assert.Empty(t, obstacles(g))

	rooms[0].Open = true
	res, err = obstacle.Place(g, rooms, rng.New(1), obstacle.WithDensity(1), obstacle.WithMinArea(100))
	require.NoError(t, err)
	assert.Zero(t, res.Placed)
}

func TestPlace_Errors(t *testing.T) {
	_, err := obstacle.Place(nil, nil, rng.New(1))
	assert.ErrorIs(t, err, obstacle.ErrGridNil)

	g, rooms := fixture(t)
	for _, opt := range []obstacle.Option{obstacle.WithDensity(-0.1), obstacle.WithDensity(1.5), obstacle.WithMinArea(-1)} {
		_, err = obstacle.Place(g, rooms, rng.New(1), opt)
		assert.ErrorIs(t, err, obstacle.ErrOptionViolation)
	}
}
