// Package obstacle provides options, the placement report and sentinel errors
// for obstacle placement.
package obstacle

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("obstacle: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("obstacle: invalid option supplied")
)

// Option configures Place.
type Option func(*Options)

// Options holds the placement tunables.
type Options struct {
	// Density is the fraction of candidate cells to block, in [0,1].
	Density float64

	// MinArea is the smallest interior area ((w-2)·(h-2)) a room needs
	// before it receives obstacles.
	MinArea int

	err error
}

// DefaultOptions returns Density 0.3 and MinArea 16.
func DefaultOptions() Options {
	return Options{Density: 0.3, MinArea: 16}
}

// WithDensity sets the density; values outside [0,1] are invalid.
func WithDensity(d float64) Option {
	return func(o *Options) {
		if math.IsNaN(d) || d < 0 || d > 1 {
			o.err = fmt.Errorf("%w: density must be in [0,1] (%v)", ErrOptionViolation, d)
			return
		}
		o.Density = d
	}
}

// WithMinArea sets the eligibility threshold; negative values are invalid.
func WithMinArea(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: min area cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MinArea = n
	}
}

// Result summarises one Place run.
type Result struct {
	Rooms      int // eligible rooms
	Candidates int // candidate cells across eligible rooms
	Target     int // sum of per-room targets
	Placed     int // obstacles actually placed
	Rejected   int // candidates refused because they would split a room
}
