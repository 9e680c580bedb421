// Package obstacle places static obstacles (pillars, bumpers) inside large
// open rooms without cutting any room in two.
//
// What:
//
//   - Only open rooms whose interior area reaches Options.MinArea take part.
//   - Connection points, where a channel meets the room, and the cells next
//     to them are never blocked, so every doorway keeps its approach.
//   - Each accepted obstacle is checked with a breadth-first search over the
//     room's remaining cells; a candidate that would split the room is
//     skipped.
//
// Obstacles consume values from the caller's stream only through the
// per-room candidate shuffle.
//
// Errors:
//
//   - ErrGridNil:         nil grid.
//   - ErrOptionViolation: density outside [0,1] or negative MinArea.
package obstacle
