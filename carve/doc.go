// Package carve opens the passable space of a level: room interiors and the
// channels that join consecutive rooms.
//
// What:
//
//   - Rooms marks room cells passable and records the owning room id.
//   - Connect links rooms[i-1] to rooms[i] with an L-shaped channel between
//     their centres. One coin flip per pair picks which leg comes first.
//   - Channels are exactly Options.Width cells wide; offsets across the
//     direction of travel run from -(w-1)/2 to w/2.
//   - A positive CornerRadius rounds every real turn: a quarter annulus
//     (inner max(r-w/2, 0), outer r+w/2) is opened on the inside of the
//     joint together with the cells between it and the joint. The radius is
//     capped by the shorter leg.
//
// Carving never assigns elevation; that belongs to the elevation package.
// Cells past the grid edge are skipped silently.
//
// Errors:
//
//   - ErrGridNil:         nil grid.
//   - ErrRoomOutOfBounds: a room rectangle leaves the grid.
//   - ErrOptionViolation: width < 1 or negative corner radius.
package carve
