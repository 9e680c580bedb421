// Package elevation resolves the height of every passable cell.
//
// What:
//
//   - Seed floods room elevations into the corridors with a multi-source
//     breadth-first search, so each corridor cell takes the height of the
//     nearest room by hop count.
//   - Smooth relaxes the result so that no two adjacent passable cells differ
//     by more than one level. Each offending cell moves a single unit per pass
//     toward its first offending neighbour, up to a mandatory pass cap.
//   - Violations counts the adjacent pairs that still break the rule.
//
// Why:
//
//   - Seeding from all rooms at once keeps corridors close to the rooms they
//     serve; smoothing turns the seams between rooms into walkable ramps.
//
// Smoothing is in place and order dependent: cells updated earlier in a pass
// are seen by later cells of the same pass.
//
// Complexity:
//
//   - Seed:   O(W×H).
//   - Smooth: O(W×H) per pass, at most Options.Passes passes.
//
// Errors:
//
//   - ErrGridNil:         nil grid.
//   - ErrOptionViolation: a pass cap below 1.
//   - Non-convergence is reported through Report.Converged, not as an error.
package elevation
