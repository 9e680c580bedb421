// Package generator runs the full level pipeline: room placement, channel
// carving, elevation resolution, tile classification and obstacle placement.
//
// What:
//
//   - Params describes one level; DefaultParams gives the standard 80×25 map
//     and Validate rejects unusable values before any work starts.
//   - Generator wires the stages together around one grid and one seeded
//     stream; the returned Level carries rooms, channels, the grid, the tiles
//     and per-stage Stats.
//
// Determinism:
//
//   - The only source of randomness is rng.New(Params.Seed). Equal Params
//     always produce equal levels, byte for byte once exported.
//
// Logging:
//
//   - Stage progress is logged at Debug, shortfalls and non-convergence at
//     Warn, a one-line summary at Info. The default logger discards
//     everything; pass WithLogger to see it.
//
// Errors:
//
//   - ErrInvalidParams: Validate failed (wrapped with the field).
//   - classify.ErrClassificationGap: an isolated passable cell.
//   - Warnings, not errors: *PlacementShortfall (ErrPlacementShortfall) and
//     *ConvergenceWarning (ErrElevationNotConverged), in Level.Warnings.
package generator
