// Package tile is the vocabulary shared by the classifier, the exporters and
// the renderers.
//
// A MarbleTile pairs a Type with an elevation, a rotation in quarter turns
// and a walls flag. Each Type has fixed base openings at rotation 0
// (Straight N-S, Curve90 N-E, TJunction N-E-S, CrossJunction all four,
// Merge N-E-W, LaunchPad N); rotating by k turns every opening clockwise by k.
//
// Types carry no drawing information; colours live with the renderer.
//
// Errors:
//
//   - ErrUnknownType: ParseType or UnmarshalText got an unknown name.
package tile
