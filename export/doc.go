// Package export turns a generated level into its structured document and
// moves that document in and out of JSON and MessagePack.
//
// The JSON shape is
//
//	{width, height, seed,
//	 rooms: [{x, y, w, h, elevation}],
//	 tiles: ["#..,O#", ...],
//	 marble_tiles: [[{tile_type, elevation, rotation, has_walls, metadata}]],
//	 warnings: [...]}
//
// with tile_type carrying the tile type name and warnings omitted when empty.
// Schema reflects the same shape as a JSON Schema document.
//
// Errors:
//
//   - ErrMalformed: a decoded document whose rows do not match its size or
//     whose tiles use unknown type names or rotations.
package export
