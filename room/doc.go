// Package room places the rectangular rooms of a level.
//
// What:
//
//   - Room is an immutable axis-aligned rectangle with one elevation.
//   - Place rejection-samples rooms inside the map, keeping a clearance margin
//     between every pair, optionally biased along a Trend.
//
// Placement draws from the caller's rng.Stream in a fixed order (size, then
// position, then elevation for accepted candidates), so the same seed always
// yields the same rooms.
//
// Complexity:
//
//   - Place: O(A·n) with A = max(count·10, 100) attempts and n accepted rooms.
//
// Errors:
//
//   - ErrInvalidConfig: non-positive map size, negative count or margin,
//     inverted size bounds, or a nil stream.
//   - Falling short of the requested count is reported by Result.Shortfall,
//     never as an error.
package room
