// Package server serves level generation over a websocket at /ws.
//
// Every frame is a JSON envelope {"type": ..., "payload": ...}:
//
//	generate {name?, save?, params?}  →  level <export.Document>
//	load     {name}                   →  level <export.Document>
//	list                              →  levels {names}
//	anything that fails               →  error {code, message}
//
// params overrides the server defaults field by field using the
// generator.Params JSON names. Without a "seed" override the seed is derived
// from the server's base seed and a request counter with rng.DeriveSeed, so
// two requests never share a seed by accident.
//
// Each connection reads and generates on its own goroutine while a second
// goroutine drains the outbound queue; no level or grid is shared between
// connections. save, load and list need a store.Storage (WithStore).
package server
