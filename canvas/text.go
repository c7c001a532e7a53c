package canvas

import (
	"math"
	"slices"
	"strings"

	"github.com/gogpu/scalecard/glyph"
)

// letterSep is the gap between letters in units of the text size.
const letterSep = 0.15

// Align is the horizontal alignment of text about its anchor point.
type Align int

const (
	// AlignLeft starts the text at the anchor.
	AlignLeft Align = iota
	// AlignCenter centres the text on the anchor.
	AlignCenter
	// AlignRight ends the text at the anchor.
	AlignRight
)

// TextStyle describes how PlotString draws text.
type TextStyle struct {
	// Size is the text size in pixels. Capitals are 0.7 Size tall.
	Size float64

	// Rotate turns the baseline clockwise by this many degrees.
	Rotate float64

	// Mono selects the monospaced font.
	Mono bool

	Align Align
}

type letter struct {
	g *glyph.Glyph

	// at is the glyph origin relative to the start of the text.
	at Point
}

// layout places the glyphs of s along a baseline turned by rad radians
// and returns them with the total advance in pixels.
//
// Glyphs are kerned by band: the pen position of each band advances
// separately, and a new glyph starts at the furthest of them once its own
// left extents are added.
func layout(font *glyph.Font, s string, size, rad float64) ([]letter, float64) {
	var (
		pens    [glyph.Zones]float64
		letters []letter
	)
	pad := font.Weight / 2
	dir := Pt(math.Cos(rad), math.Sin(rad))

	for _, r := range s {
		g := font.Glyph(r)
		if pens != [glyph.Zones]float64{} {
			for i := range pens {
				pens[i] += letterSep
			}
		}
		left, right := g.Bearings(pad)
		for i := range pens {
			pens[i] += left[i]
		}
		x := slices.Max(pens[:])
		for i := range pens {
			pens[i] = x + right[i]
		}
		letters = append(letters, letter{g: g, at: dir.Mul((x + g.Shift) * size)})
	}

	return letters, slices.Max(pens[:]) * size
}

// TextWidth returns the advance of s in pixels.
func (c *Canvas) TextWidth(s string, st TextStyle) float64 {
	font := c.opts.glyphs.Font(st.Mono)
	if font == nil || len(font.Glyphs) == 0 {
		return 0
	}
	_, w := layout(font, glyph.Normalize(s), st.Size, 0)
	return w
}

// PlotString draws s anchored at (x, y). Text that is not positive in
// size is not drawn.
func (c *Canvas) PlotString(s string, x, y float64, st TextStyle) {
	font := c.opts.glyphs.Font(st.Mono)
	if font == nil || len(font.Glyphs) == 0 || !(st.Size > 0) {
		return
	}

	rad := st.Rotate * math.Pi / 180
	letters, width := layout(font, glyph.Normalize(s), st.Size, rad)

	origin := Pt(x, y)
	dir := Pt(math.Cos(rad), math.Sin(rad))
	switch st.Align {
	case AlignCenter:
		origin = origin.Sub(dir.Mul(width / 2))
	case AlignRight:
		origin = origin.Sub(dir.Mul(width))
	}

	weight := font.Weight * st.Size
	for _, l := range letters {
		at := origin.Add(l.at)
		m := Translate(at.X, at.Y).
			Multiply(Rotate(rad)).
			Multiply(Scale(st.Size, -st.Size))
		c.plotGlyph(l.g, m, weight, st)
	}
}

// plotGlyph strokes a glyph through m, which maps glyph units to pixels
// and flips the y axis.
func (c *Canvas) plotGlyph(g *glyph.Glyph, m Matrix, weight float64, st TextStyle) {
	for _, ln := range g.Lines {
		c.Draw(Line{
			P1: m.TransformPoint(Pt(ln.X1, ln.Y1)),
			P2: m.TransformPoint(Pt(ln.X2, ln.Y2)),
		}, glyphStroke(ln.Cap, weight))
	}
	// The flip turns glyph angles, clockwise from +y, into image angles
	// clockwise from straight up, so only the rotation is added.
	for _, a := range g.Arcs {
		centre := m.TransformPoint(Pt(a.X, a.Y))
		c.Draw(NewArc(centre, a.Radius*st.Size, a.Span, a.Offset+st.Rotate),
			glyphStroke(a.Cap, weight))
	}
}

func glyphStroke(cp glyph.Cap, weight float64) Stroke {
	st := DefaultStroke().WithWidth(weight)
	switch cp {
	case glyph.CapRoundBeyond:
		st.End = EndRoundBeyond
	case glyph.CapSquare:
		st.End = EndSquare
	}
	return st
}

// fitWords drops leading words from s until measure reports at most limit,
// or a single word is left.
func fitWords(s string, limit float64, measure func(string) float64) string {
	for measure(s) > limit {
		i := strings.IndexByte(s, ' ')
		if i < 0 {
			break
		}
		s = strings.TrimLeft(s[i+1:], " ")
	}
	return s
}
