// Package carve provides options, records and sentinel errors for channel
// carving.
package carve

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlgen/grid"
)

// Sentinel errors for carving.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("carve: grid is nil")

	// ErrRoomOutOfBounds is returned when a room does not fit the grid.
	ErrRoomOutOfBounds = errors.New("carve: room outside grid")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("carve: invalid option supplied")
)

// Option configures Connect via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the channel geometry.
type Options struct {
	// Width is the exact channel width in cells, perpendicular to travel.
	Width int

	// CornerRadius, if > 0, rounds each real L turn with a quarter annulus.
	CornerRadius int

	err error
}

// DefaultOptions returns two-cell wide channels with radius-2 corners.
func DefaultOptions() Options {
	return Options{Width: 2, CornerRadius: 2}
}

// WithWidth sets the channel width. w < 1 is invalid.
func WithWidth(w int) Option {
	return func(o *Options) {
		if w < 1 {
			o.err = fmt.Errorf("%w: width must be >= 1 (%d)", ErrOptionViolation, w)
			return
		}
		o.Width = w
	}
}

// WithCornerRadius sets the corner radius; 0 keeps square corners,
// negative values are invalid.
func WithCornerRadius(r int) Option {
	return func(o *Options) {
		if r < 0 {
			o.err = fmt.Errorf("%w: corner radius cannot be negative (%d)", ErrOptionViolation, r)
			return
		}
		o.CornerRadius = r
	}
}

// Channel records one carved connection between consecutive rooms.
type Channel struct {
	From, To        int        // room ids
	Start, End      grid.Point // room centres joined by the channel
	HorizontalFirst bool       // x leg carved first, then y leg
	Corner          grid.Point // joint of the two legs
	Turns           bool       // both legs have non-zero length
}
