package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoom_Intersects(t *testing.T) {
	a := Room{X: 2, Y: 2, W: 4, H: 4}
	cases := []struct {
		name string
		b    Room
		want bool
	}{
		{"Overlap", Room{X: 4, Y: 4, W: 4, H: 4}, true},
		{"TouchingEdge", Room{X: 6, Y: 2, W: 3, H: 3}, false},
		{"Disjoint", Room{X: 20, Y: 20, W: 3, H: 3}, false},
		{"Contained", Room{X: 3, Y: 3, W: 1, H: 1}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, a.Intersects(tc.b))
			assert.Equal(t, tc.want, tc.b.Intersects(a), "symmetry")
		})
	}
}

// TestRoom_IntersectsWithMargin checks that the margin expands both rooms.
func TestRoom_IntersectsWithMargin(t *testing.T) {
	a := Room{X: 2, Y: 2, W: 4, H: 4}
	b := Room{X: 7, Y: 2, W: 4, H: 4} // one-cell gap
	assert.False(t, a.IntersectsWithMargin(b, 0))
	assert.True(t, a.IntersectsWithMargin(b, 1), "1+1 expansion closes a 1-cell gap")

	c := Room{X: 9, Y: 2, W: 4, H: 4} // three-cell gap
	assert.False(t, a.IntersectsWithMargin(c, 1))
	assert.True(t, a.IntersectsWithMargin(c, 2))
}

func TestRoom_Geometry(t *testing.T) {
	r := Room{X: 1, Y: 2, W: 5, H: 4}
	cx, cy := r.Center()
	assert.Equal(t, 3, cx)
	assert.Equal(t, 4, cy)
	assert.Equal(t, 20, r.Area())
	assert.Equal(t, 6, r.InteriorArea())
	assert.True(t, r.Contains(5, 5))
	assert.False(t, r.Contains(6, 5))
	assert.True(t, r.Interior(2, 3))
	assert.False(t, r.Interior(1, 3))
	assert.Equal(t, 0, Room{W: 2, H: 9}.InteriorArea())
}
