// Package classify turns a carved, elevated grid into marble tiles.
//
// What:
//
//   - ForMask maps a 4-neighbour connectivity mask to a base tile type and
//     rotation (dead ends are capped Straights).
//   - Classify applies the mask table to every passable cell, marks open-room
//     cells as wall-less OpenPlatform, keeps obstacles and empties, then turns
//     eligible cells on a one-level gradient into SlopeUp or SlopeDown facing
//     the neighbour they lead to.
//
// Classification reads the grid and never mutates it, so running it twice on
// the same grid yields identical tiles.
//
// Errors:
//
//   - ErrGridNil: nil grid.
//   - ErrClassificationGap: an isolated passable cell outside an open room,
//     delivered as *GapError with its coordinates and mask.
package classify
