package generator

import (
	"errors"
	"fmt"
)

// Non-fatal outcomes collected in Level.Warnings.
var (
	// ErrPlacementShortfall: fewer rooms were placed than requested.
	ErrPlacementShortfall = errors.New("generator: room placement shortfall")

	// ErrElevationNotConverged: smoothing hit its pass cap with gradient
	// violations left.
	ErrElevationNotConverged = errors.New("generator: elevation smoothing did not converge")
)

// PlacementShortfall details ErrPlacementShortfall.
type PlacementShortfall struct {
	Requested, Placed, Attempts int
}

func (w *PlacementShortfall) Error() string {
	return fmt.Sprintf("%v: placed %d of %d rooms in %d attempts", ErrPlacementShortfall, w.Placed, w.Requested, w.Attempts)
}

// Unwrap lets errors.Is match ErrPlacementShortfall.
func (w *PlacementShortfall) Unwrap() error { return ErrPlacementShortfall }

// ConvergenceWarning details ErrElevationNotConverged.
type ConvergenceWarning struct {
	Passes, Violations int
}

func (w *ConvergenceWarning) Error() string {
	return fmt.Sprintf("%v: %d violations after %d passes", ErrElevationNotConverged, w.Violations, w.Passes)
}

// Unwrap lets errors.Is match ErrElevationNotConverged.
func (w *ConvergenceWarning) Unwrap() error { return ErrElevationNotConverged }
