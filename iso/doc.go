// Package iso draws a level in isometric projection.
//
// Project maps (x, y, elevation) to screen space with 32×16 pixel tiles and
// 12 pixels per elevation level. Faces turns a tile grid into coloured
// quadrilaterals (tile tops plus the south and east walls of walled tiles)
// ordered back to front, which both the HTML page written by WriteHTML and
// the interactive viewer paint as they come.
//
// Colours come from a fixed palette per tile type, lightened 10% per level
// of elevation and darkened for walls.
package iso
