// Package unit defines the physical units accepted by the scale card
// language and their conversion to device pixels.
//
// Every unit except [Percent] is a fixed multiple of a millimetre; the
// device resolution (pixels per millimetre) turns that into pixels.
// [Percent] is relative to the card width, or to the card height for
// arguments that measure a vertical distance.
package unit

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"
)

// Unit identifies a unit of measure.
type Unit int

const (
	// Invalid is the zero Unit. It is never produced by Lookup.
	Invalid Unit = iota
	// MM is millimetres, the base unit of the language.
	MM
	// CM is centimetres.
	CM
	// In is inches, spelled "in".
	In
	// Inch is inches, spelled "inch".
	Inch
	// PT is PostScript points (1/72 inch).
	PT
	// PC is picas (12 points).
	PC
	// DPI is dots per inch, used for resolutions.
	DPI
	// DPCM is dots per centimetre, used for resolutions.
	DPCM
	// Percent is a percentage of the card width or height.
	Percent
)

// Default is the unit assumed for a number written without a unit.
const Default = MM

var names = [...]string{
	Invalid: "invalid",
	MM:      "mm",
	CM:      "cm",
	In:      "in",
	Inch:    "inch",
	PT:      "pt",
	PC:      "pc",
	DPI:     "dpi",
	DPCM:    "dpcm",
	Percent: "%",
}

// millimetres per unit
var factors = [...]float64{
	MM:   1.0,
	CM:   10,
	In:   25.4,
	Inch: 25.4,
	PT:   0.352778,
	PC:   4.23333,
	DPI:  1 / 25.4,
	DPCM: 1.0 / 10,
}

// String returns the spelling of u in the language.
func (u Unit) String() string {
	if u < 0 || int(u) >= len(names) {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return names[u]
}

// IsValid reports whether u is one of the defined units.
func (u Unit) IsValid() bool {
	return u > Invalid && u <= Percent
}

// Factor returns the number of millimetres in one u.
// It returns 0 for Percent and Invalid.
func (u Unit) Factor() float64 {
	if u <= Invalid || u >= Percent {
		return 0
	}
	return factors[u]
}

// Lookup finds the unit spelled name, ignoring case.
func Lookup(name string) (Unit, bool) {
	folded := cases.Fold().String(name)
	for u := MM; u <= Percent; u++ {
		if names[u] == folded {
			return u, true
		}
	}
	return Invalid, false
}

// ErrUnknownUnit is returned when converting a value in an invalid unit.
var ErrUnknownUnit = errors.New("unit: unknown unit")

// Converter converts lengths to and from device pixels.
type Converter struct {
	// PixelsPerMM is the device resolution.
	PixelsPerMM float64

	// Width and Height are the card dimensions in pixels, used to
	// resolve percentages.
	Width, Height float64
}

// ToPixels converts v, measured in u, to pixels. Percentages are taken of
// the card height when vertical is set and of the width otherwise.
func (c Converter) ToPixels(v float64, u Unit, vertical bool) (float64, error) {
	switch {
	case u == Percent:
		return v * c.extent(vertical) / 100, nil
	case u.IsValid():
		return v * factors[u] * c.PixelsPerMM, nil
	default:
		return 0, fmt.Errorf("%w %s", ErrUnknownUnit, u)
	}
}

// FromPixels converts px pixels back to a value in u.
// It is the inverse of ToPixels for non-degenerate converters.
func (c Converter) FromPixels(px float64, u Unit, vertical bool) (float64, error) {
	switch {
	case u == Percent:
		return px * 100 / c.extent(vertical), nil
	case u.IsValid():
		return px / (factors[u] * c.PixelsPerMM), nil
	default:
		return 0, fmt.Errorf("%w %s", ErrUnknownUnit, u)
	}
}

func (c Converter) extent(vertical bool) float64 {
	if vertical {
		return c.Height
	}
	return c.Width
}
