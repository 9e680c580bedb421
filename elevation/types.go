// Package elevation provides options, the run report and sentinel errors for
// elevation resolution.
package elevation

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("elevation: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("elevation: invalid option supplied")
)

// DefaultPasses is the default smoothing cap.
const DefaultPasses = 50

// Option configures Resolve.
type Option func(*Options)

// Options holds the smoothing cap.
type Options struct {
	// Passes bounds the number of smoothing passes; always > 0.
	Passes int

	err error
}

// DefaultOptions returns Options{Passes: DefaultPasses}.
func DefaultOptions() Options {
	return Options{Passes: DefaultPasses}
}

// WithPasses sets the smoothing cap. n < 1 is invalid: the cap is mandatory.
func WithPasses(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: passes must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Passes = n
	}
}

// Report summarises one Resolve run.
type Report struct {
	Seeded     int  // corridor cells assigned by the BFS
	Unreached  int  // passable cells no room reached; left at 0
	Passes     int  // smoothing passes executed
	Converged  bool // no adjacent passable pair differs by more than 1
	Violations int  // adjacent passable pairs with |Δ| > 1 after smoothing
}
