// Package glyph describes stroke fonts.
//
// A stroke font draws every character from line segments and circular
// arcs of a fixed stroke width, rather than from filled outlines. This
// suits scale cards, where labels must match the weight of the ticks they
// annotate.
//
// Glyph coordinates are in units of the text size. The origin is the
// horizontal centre of the glyph on the vertical centre of the capital
// letters, with y pointing up: capitals run from y = -0.35 to y = 0.35.
// Arc angles are measured in degrees clockwise from the +y axis.
package glyph

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Zones is the number of horizontal bands used for kerning. Each glyph
// states its extent separately for the top, middle and bottom band, so
// that shapes like "T" and "L" can tuck into their neighbours.
const Zones = 3

// Codes of the special glyphs that follow the printable ASCII range.
const (
	Micro      rune = 0x80
	Omega      rune = 0x81
	Hyphen     rune = 0x82
	Interpunct rune = 0x83
	AC         rune = 0x84
	DC         rune = 0x85
)

// Cap selects how a glyph line ends.
type Cap int

const (
	// CapDefault uses the renderer's default end style.
	CapDefault Cap = iota
	// CapRoundBeyond adds a round cap past each end point.
	CapRoundBeyond
	// CapRound rounds the ends within the segment length.
	CapRound
	// CapSquare ends the segment square at its end points.
	CapSquare
)

// Line is a straight stroke from (X1, Y1) to (X2, Y2).
type Line struct {
	X1, Y1, X2, Y2 float64
	Cap            Cap
}

// Arc is a circular stroke centred on (X, Y). It sweeps Span degrees,
// centred on the direction Offset.
type Arc struct {
	X, Y   float64
	Radius float64
	Span   float64
	Offset float64
	Cap    Cap
}

// Glyph is the drawing of one character.
type Glyph struct {
	// Left and Right are the extents of the glyph from its origin in each
	// kerning band, top band first.
	Left, Right [Zones]float64

	// Advance, when positive, replaces Left and Right by a fixed width
	// shared by all bands, as used by monospaced fonts.
	Advance float64

	// Shift moves the drawing horizontally without changing the advance.
	Shift float64

	Lines []Line
	Arcs  []Arc
}

// Bearings returns the left and right extents of the glyph. For
// proportional glyphs pad is added on both sides to allow for the stroke
// width.
func (g *Glyph) Bearings(pad float64) (left, right [Zones]float64) {
	if g.Advance > 0 {
		for i := range Zones {
			left[i] = g.Advance / 2
			right[i] = g.Advance / 2
		}
		return left, right
	}
	for i := range Zones {
		left[i] = g.Left[i] + pad
		right[i] = g.Right[i] + pad
	}
	return left, right
}

// Font is a table of glyphs for the character codes starting at 32.
type Font struct {
	Name string

	// Weight is the stroke width in glyph units.
	Weight float64

	Glyphs []Glyph
}

// Glyph returns the glyph for code. Codes outside the table wrap around,
// so that every code maps to some glyph.
func (f *Font) Glyph(code rune) *Glyph {
	n := len(f.Glyphs)
	i := (int(code) - 32) % n
	if i < 0 {
		i += n
	}
	return &f.Glyphs[i]
}

// Provider supplies the fonts used to draw text.
type Provider interface {
	// Font returns the monospaced font if mono is set and the proportional
	// font otherwise.
	Font(mono bool) *Font
}

var substitutes = map[rune]rune{
	'μ': Micro,
	'Ω': Omega,
	'‐': Hyphen,
	'−': Hyphen,
	'·': Interpunct,
	'∙': Interpunct,
	'⋅': Interpunct,
	'∿': AC,
	'⎓': DC,
}

// Normalize maps text to the codes of the glyph table. Compatibility
// characters are folded first (NFKC), so that the micro sign and the ohm
// sign reach the same glyphs as their Greek letters.
func Normalize(s string) string {
	s = norm.NFKC.String(s)
	return strings.Map(func(r rune) rune {
		if sub, ok := substitutes[r]; ok {
			return sub
		}
		return r
	}, s)
}
