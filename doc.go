// Package lvlgen generates procedural 2D marble-run levels: rectangular
// rooms joined by rounded channels, optional smooth elevation, obstacles in
// the larger rooms, and a grid of typed, rotated track tiles ready for a
// renderer.
//
// 🚀 What is lvlgen?
//
//	A seeded, deterministic pipeline where one seed always yields one level:
//		• Rooms: rejection-sampled, non-overlapping, optionally trend-biased
//		• Channels: L-shaped, width-w corridors with filleted corners
//		• Elevation: BFS seeding from rooms + bounded smoothing passes
//		• Tiles: connection masks mapped to straight, curve, junction and slope pieces
//		• Obstacles: interior blockers that never cut a room apart
//
// ✨ Why lvlgen?
//
//   - Reproducible: a single random stream consumed in a fixed order
//   - Honest: shortfalls and unconverged smoothing come back as warnings
//   - Portable: JSON, MessagePack, JSON Schema and an isometric HTML view
//
// Packages, in pipeline order:
//
//	rng/        counted, seeded random stream
//	grid/       cell grid, directions, connection masks, regions
//	room/       Room rectangles and RoomPlacer
//	carve/      PathCarver: rooms and channels into the grid
//	elevation/  ElevationResolver: seeding and smoothing
//	tile/       MarbleTile and its connection rules
//	classify/   TileClassifier: grid to tiles
//	obstacle/   ObstaclePlacer
//	generator/  Params, Generate and the Level result
//	export/     Document, JSON/MessagePack codecs, schema
//	iso/        isometric projection and HTML rendering
//	store/      JSON file, PostgreSQL and gdata level archives
//	server/     websocket generation service
//
// Quick ASCII example (80×25 is the default size):
//
//	#########
//	#,,,,,,,#....
//	#,,,,,,,####.
//	#########  #.
//
// walls are '#', walled floor '.', open-room floor ',' and obstacles 'O'.
//
//	go run ./cmd/lvlgen -seed 888 -elevation -html level.html
package lvlgen
