// Package grid is the single shared level grid that every generation stage
// mutates in turn.
//
// What:
//
//   - Grid is a rectangular, row-major array of Cell (passable flag, signed
//     elevation, owning room id, obstacle flag).
//   - Direction / Mask describe the four cardinal neighbours (N, E, S, W);
//     diagonals never count as connectivity.
//   - Regions labels the 4-connected components of passable cells.
//
// Why:
//
//   - One flat slice keeps the multi-source BFS and smoothing passes in
//     O(W×H) memory with index arithmetic instead of maps.
//
// Complexity:
//
//   - New:          O(W×H) time and memory.
//   - Mask/At:      O(1).
//   - Regions:      O(W×H×4) time, O(W×H) memory.
//
// Errors:
//
//   - ErrEmptyGrid:  width or height is not positive.
//   - ErrOutOfRange: a coordinate lies outside the grid.
//   - ErrNonRectangular: Parse received rows of differing lengths.
package grid
