// Package tile defines the tile vocabulary of a marble level and the
// connection rules between tiles.
package tile

import (
	"errors"
	"fmt"
)

// ErrUnknownType is returned when parsing an unrecognised tile type name.
var ErrUnknownType = errors.New("tile: unknown tile type")

// Type is the tagged variant of a tile. The zero value is Empty.
type Type uint8

// Tile types. Only the first ten are produced by the classifier; the rest are
// vocabulary for game engines and hand-authored content.
const (
	Empty Type = iota
	Straight
	Curve90
	TJunction
	YJunction
	CrossJunction
	SlopeUp
	SlopeDown
	OpenPlatform
	Obstacle
	Merge
	OneWayGate
	LoopDeLoop
	HalfPipe
	LaunchPad
	Bridge
	Tunnel

	numTypes
)

var typeNames = [numTypes]string{
	Empty:         "Empty",
	Straight:      "Straight",
	Curve90:       "Curve90",
	TJunction:     "TJunction",
	YJunction:     "YJunction",
	CrossJunction: "CrossJunction",
	SlopeUp:       "SlopeUp",
	SlopeDown:     "SlopeDown",
	OpenPlatform:  "OpenPlatform",
	Obstacle:      "Obstacle",
	Merge:         "Merge",
	OneWayGate:    "OneWayGate",
	LoopDeLoop:    "LoopDeLoop",
	HalfPipe:      "HalfPipe",
	LaunchPad:     "LaunchPad",
	Bridge:        "Bridge",
	Tunnel:        "Tunnel",
}

// Types returns every tile type in declaration order.
func Types() []Type {
	out := make([]Type, numTypes)
	for i := range out {
		out[i] = Type(i)
	}
	return out
}

// Names returns the names of all tile types in declaration order.
func Names() []string {
	out := make([]string, numTypes)
	copy(out, typeNames[:])
	return out
}

func (t Type) String() string {
	if t < numTypes {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// ParseType is the inverse of String.
func ParseType(s string) (Type, error) {
	for i, n := range typeNames {
		if n == s {
			return Type(i), nil
		}
	}
	return Empty, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// MarshalText encodes t by name.
func (t Type) MarshalText() ([]byte, error) {
	if t >= numTypes {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, uint8(t))
	}
	return []byte(typeNames[t]), nil
}

// UnmarshalText decodes a name produced by MarshalText.
func (t *Type) UnmarshalText(b []byte) error {
	v, err := ParseType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Passable reports whether a marble can occupy a tile of this type.
func (t Type) Passable() bool { return t != Empty && t != Obstacle }

// IsSlope reports whether t is SlopeUp or SlopeDown.
func (t Type) IsSlope() bool { return t == SlopeUp || t == SlopeDown }

// DefaultWalls reports whether tiles of this type carry walls unless told
// otherwise.
func (t Type) DefaultWalls() bool {
	switch t {
	case Straight, Curve90, TJunction, YJunction, CrossJunction, SlopeUp, SlopeDown, Merge, LoopDeLoop:
		return true
	}
	return false
}
