// Package blend combines stroke values with the pixel planes of a card.
//
// A stroke value is a grey level: 255 leaves the destination alone and 0
// paints solid black. Planes only ever get darker.
package blend

import "fmt"

// Mode represents a blending mode.
type Mode int

const (
	// ModeMultiply scales the destination by the stroke value, so that
	// overlapping strokes darken each other.
	ModeMultiply Mode = iota
	// ModeDarken keeps the darker of destination and stroke value.
	ModeDarken
)

// String returns the name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeMultiply:
		return "multiply"
	case ModeDarken:
		return "darken"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Byte blends the stroke value src into the destination value dst.
// Unknown modes behave like ModeMultiply.
func Byte(dst, src byte, mode Mode) byte {
	if mode == ModeDarken {
		return min(dst, src)
	}
	return mulDiv255(dst, src)
}

// Planes blends src into element i of every plane.
func Planes(planes *[3][]byte, i int, src byte, mode Mode) {
	for p := range planes {
		planes[p][i] = Byte(planes[p][i], src, mode)
	}
}
