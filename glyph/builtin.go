package glyph

// vertical metrics of the built-in font
const (
	top  = 0.35  // cap height and ascender
	base = -0.35 // baseline
	xh   = 0.05  // x-height
	desc = -0.6  // descender
	bowl = -0.15 // centre of the lower-case bowls
	br   = 0.2   // radius of the lower-case bowls
)

// Builtin is the provider of the fonts compiled into the package.
var Builtin Provider = builtin{}

type builtin struct{}

func (builtin) Font(mono bool) *Font {
	if mono {
		return &monoFont
	}
	return &propFont
}

var propFont = Font{
	Name:   "scalecard-sans",
	Weight: 0.07,
	Glyphs: table,
}

var monoFont = Font{
	Name:   "scalecard-mono",
	Weight: 0.07,
	Glyphs: monospaced(table, 0.6),
}

func monospaced(glyphs []Glyph, advance float64) []Glyph {
	out := make([]Glyph, len(glyphs))
	for i, g := range glyphs {
		g.Advance = advance
		out[i] = g
	}
	return out
}

// g starts a glyph w units wide, centred on the origin.
func g(w float64) Glyph {
	h := w / 2
	return Glyph{
		Left:  [Zones]float64{h, h, h},
		Right: [Zones]float64{h, h, h},
	}
}

func (g Glyph) l(x1, y1, x2, y2 float64) Glyph {
	g.Lines = append(g.Lines, Line{X1: x1, Y1: y1, X2: x2, Y2: y2})
	return g
}

func (g Glyph) a(x, y, r, span, offset float64) Glyph {
	g.Arcs = append(g.Arcs, Arc{X: x, Y: y, Radius: r, Span: span, Offset: offset})
	return g
}

func (g Glyph) circle(x, y, r float64) Glyph {
	g.Arcs = append(g.Arcs, Arc{X: x, Y: y, Radius: r, Span: 360, Cap: CapRoundBeyond})
	return g
}

// dot is a very short line with caps past its ends.
func (g Glyph) dot(x, y float64) Glyph {
	g.Lines = append(g.Lines, Line{X1: x - 0.001, Y1: y, X2: x + 0.001, Y2: y, Cap: CapRoundBeyond})
	return g
}

// zones overrides the extents of the top, middle and bottom bands.
func (g Glyph) zones(left, right [Zones]float64) Glyph {
	g.Left, g.Right = left, right
	return g
}

func (g Glyph) shift(dx float64) Glyph {
	g.Shift = dx
	return g
}

// the printable ASCII range, DEL, then the special glyphs
var table = []Glyph{
	// ' ' .. '/'
	g(0.3),
	g(0.1).l(0, top, 0, -0.15).dot(0, base),
	g(0.24).l(-0.07, top, -0.07, 0.2).l(0.07, top, 0.07, 0.2),
	g(0.44).l(-0.05, top, -0.12, base).l(0.12, top, 0.05, base).
		l(-0.2, 0.1, 0.22, 0.1).l(-0.22, -0.1, 0.2, -0.1),
	g(0.4).a(0, 0.175, 0.175, 240, -60).a(0, -0.175, 0.175, 240, 120).
		l(0, 0.42, 0, -0.42),
	g(0.5).circle(-0.15, 0.2, 0.08).circle(0.15, -0.2, 0.08).l(0.2, top, -0.2, base),
	g(0.5).circle(0, 0.2, 0.12).l(-0.08, 0.11, 0.22, base).
		a(-0.02, -0.17, 0.18, 260, 210),
	g(0.1).l(0, top, 0, 0.2),
	g(0.2).a(0.35, 0, 0.45, 100, -90),
	g(0.2).a(-0.35, 0, 0.45, 100, 90),
	g(0.3).l(0, 0.3, 0, 0).l(-0.13, 0.22, 0.13, 0.08).l(-0.13, 0.08, 0.13, 0.22),
	g(0.44).l(-0.2, 0, 0.2, 0).l(0, 0.2, 0, -0.2),
	g(0.1).l(0.02, base, -0.04, -0.47),
	g(0.3).l(-0.12, 0, 0.12, 0),
	g(0.1).dot(0, base),
	g(0.3).l(0.15, top, -0.15, base),

	// '0' .. '9'
	g(0.5).a(0, 0.1, 0.25, 180, 0).a(0, -0.1, 0.25, 180, 180).
		l(-0.25, 0.1, -0.25, -0.1).l(0.25, 0.1, 0.25, -0.1),
	g(0.3).l(0, top, 0, base).l(0, top, -0.12, 0.23),
	g(0.44).a(0, 0.15, 0.2, 200, 20).l(0.173, 0.05, -0.22, base).l(-0.22, base, 0.22, base),
	g(0.4).a(0, 0.175, 0.175, 270, 45).a(0, -0.175, 0.175, 250, 125),
	g(0.5).l(0.1, base, 0.1, top).l(0.1, top, -0.22, -0.12).l(-0.22, -0.12, 0.25, -0.12).
		shift(-0.02),
	g(0.46).l(0.2, top, -0.15, top).l(-0.15, top, -0.17, 0.03).a(0, -0.12, 0.23, 280, 100),
	g(0.46).circle(0, -0.12, 0.23).a(0.35, -0.12, 0.58, 50, -65),
	g(0.44).l(-0.22, top, 0.22, top).l(0.22, top, -0.05, base).
		zones([Zones]float64{0.22, 0.15, 0.05}, [Zones]float64{0.22, 0.15, 0.05}),
	g(0.4).circle(0, 0.18, 0.17).circle(0, -0.16, 0.19),
	g(0.46).circle(0, 0.12, 0.23).a(-0.35, 0.12, 0.58, 50, 115),

	// ':' .. '@'
	g(0.1).dot(0, 0).dot(0, base),
	g(0.1).dot(0, 0).l(0.02, base, -0.04, -0.47),
	g(0.4).l(0.2, 0.2, -0.2, 0).l(-0.2, 0, 0.2, -0.2),
	g(0.4).l(-0.2, 0.08, 0.2, 0.08).l(-0.2, -0.08, 0.2, -0.08),
	g(0.4).l(-0.2, 0.2, 0.2, 0).l(0.2, 0, -0.2, -0.2),
	g(0.34).a(0, 0.2, 0.15, 240, 30).l(0.075, 0.07, 0, -0.02).l(0, -0.02, 0, -0.15).dot(0, base),
	g(0.62).a(0, 0, 0.3, 300, 150).circle(0, 0, 0.12).l(0.12, 0.12, 0.12, -0.08).
		a(0.2, -0.08, 0.08, 150, 165),

	// 'A' .. 'Z'
	g(0.5).l(-0.25, base, 0, top).l(0, top, 0.25, base).l(-0.15, -0.1, 0.15, -0.1).
		zones([Zones]float64{0.05, 0.15, 0.25}, [Zones]float64{0.05, 0.15, 0.25}),
	g(0.43).l(-0.2, base, -0.2, top).l(-0.2, top, 0.03, top).a(0.03, 0.175, 0.175, 180, 90).
		l(-0.2, 0, 0.05, 0).a(0.05, -0.175, 0.175, 180, 90).l(0.05, base, -0.2, base),
	g(0.5).a(0, 0.1, 0.25, 150, -15).l(-0.25, 0.1, -0.25, -0.1).a(0, -0.1, 0.25, 150, 195),
	g(0.47).l(-0.22, base, -0.22, top).l(-0.22, top, -0.05, top).a(-0.05, 0.1, 0.25, 90, 45).
		l(0.2, 0.1, 0.2, -0.1).a(-0.05, -0.1, 0.25, 90, 135).l(-0.05, base, -0.22, base),
	g(0.4).l(-0.2, base, -0.2, top).l(-0.2, top, 0.2, top).l(-0.2, 0, 0.12, 0).l(-0.2, base, 0.2, base),
	g(0.4).l(-0.2, base, -0.2, top).l(-0.2, top, 0.2, top).l(-0.2, 0, 0.12, 0).
		zones([Zones]float64{0.2, 0.2, 0.2}, [Zones]float64{0.2, 0.12, 0.0}),
	g(0.5).a(0, 0.1, 0.25, 150, -15).l(-0.25, 0.1, -0.25, -0.1).a(0, -0.1, 0.25, 180, 180).
		l(0.25, -0.1, 0.25, -0.02).l(0.25, -0.02, 0.05, -0.02),
	g(0.44).l(-0.22, base, -0.22, top).l(0.22, base, 0.22, top).l(-0.22, 0, 0.22, 0),
	g(0.1).l(0, base, 0, top),
	g(0.36).l(0.15, top, 0.15, -0.15).a(-0.03, -0.15, 0.18, 160, 170),
	g(0.44).l(-0.2, base, -0.2, top).l(0.2, top, -0.2, -0.05).l(-0.08, 0.07, 0.22, base),
	g(0.36).l(-0.18, top, -0.18, base).l(-0.18, base, 0.18, base).
		zones([Zones]float64{0.18, 0.18, 0.18}, [Zones]float64{0.0, 0.0, 0.18}),
	g(0.54).l(-0.27, base, -0.27, top).l(-0.27, top, 0, -0.1).l(0, -0.1, 0.27, top).l(0.27, top, 0.27, base),
	g(0.44).l(-0.22, base, -0.22, top).l(-0.22, top, 0.22, base).l(0.22, base, 0.22, top),
	g(0.54).a(0, 0.08, 0.27, 180, 0).a(0, -0.08, 0.27, 180, 180).
		l(-0.27, 0.08, -0.27, -0.08).l(0.27, 0.08, 0.27, -0.08),
	g(0.43).l(-0.2, base, -0.2, top).l(-0.2, top, 0.03, top).a(0.03, 0.175, 0.175, 180, 90).
		l(0.03, 0, -0.2, 0).
		zones([Zones]float64{0.2, 0.2, 0.2}, [Zones]float64{0.2, 0.2, 0.0}),
	g(0.54).a(0, 0.08, 0.27, 180, 0).a(0, -0.08, 0.27, 180, 180).
		l(-0.27, 0.08, -0.27, -0.08).l(0.27, 0.08, 0.27, -0.08).l(0.05, -0.15, 0.27, base),
	g(0.43).l(-0.2, base, -0.2, top).l(-0.2, top, 0.03, top).a(0.03, 0.175, 0.175, 180, 90).
		l(0.03, 0, -0.2, 0).l(0, 0, 0.22, base),
	g(0.4).a(0, 0.175, 0.175, 240, -60).a(0, -0.175, 0.175, 240, 120),
	g(0.5).l(-0.25, top, 0.25, top).l(0, top, 0, base).
		zones([Zones]float64{0.25, 0.05, 0.05}, [Zones]float64{0.25, 0.05, 0.05}),
	g(0.44).l(-0.22, top, -0.22, -0.13).a(0, -0.13, 0.22, 180, 180).l(0.22, top, 0.22, -0.13),
	g(0.5).l(-0.25, top, 0, base).l(0, base, 0.25, top).
		zones([Zones]float64{0.25, 0.15, 0.05}, [Zones]float64{0.25, 0.15, 0.05}),
	g(0.6).l(-0.3, top, -0.15, base).l(-0.15, base, 0, 0.1).l(0, 0.1, 0.15, base).l(0.15, base, 0.3, top),
	g(0.46).l(-0.23, top, 0.23, base).l(-0.23, base, 0.23, top),
	g(0.5).l(-0.25, top, 0, 0).l(0.25, top, 0, 0).l(0, 0, 0, base).
		zones([Zones]float64{0.25, 0.1, 0.05}, [Zones]float64{0.25, 0.1, 0.05}),
	g(0.44).l(-0.22, top, 0.22, top).l(0.22, top, -0.22, base).l(-0.22, base, 0.22, base),

	// '[' .. '`'
	g(0.2).l(-0.07, top, -0.07, base).l(-0.07, top, 0.08, top).l(-0.07, base, 0.08, base),
	g(0.3).l(-0.15, top, 0.15, base),
	g(0.2).l(0.07, top, 0.07, base).l(0.07, top, -0.08, top).l(0.07, base, -0.08, base),
	g(0.3).l(-0.15, 0.15, 0, top).l(0, top, 0.15, 0.15),
	g(0.5).l(-0.25, -0.45, 0.25, -0.45),
	g(0.1).l(-0.05, top, 0.05, 0.25),

	// 'a' .. 'z'
	g(0.4).circle(0, bowl, br).l(br, xh, br, base),
	g(0.4).l(-br, top, -br, base).circle(0, bowl, br),
	g(0.4).a(0, bowl, br, 280, 180),
	g(0.4).l(br, top, br, base).circle(0, bowl, br),
	g(0.4).l(-br, bowl, br, bowl).a(0, bowl, br, 310, 295),
	g(0.26).l(0, 0.2, 0, base).a(0.12, 0.2, 0.12, 135, -22.5).l(-0.12, xh, 0.14, xh),
	g(0.4).circle(0, bowl, br).l(br, xh, br, -0.45).a(0, -0.45, br, 150, 165),
	g(0.4).l(-br, top, -br, base).a(0, bowl, br, 180, 0).l(br, bowl, br, base),
	g(0.1).l(0, xh, 0, base).dot(0, 0.22),
	g(0.2).l(0.05, xh, 0.05, -0.45).a(-0.1, -0.45, 0.15, 120, 150).dot(0.05, 0.22),
	g(0.38).l(-0.18, top, -0.18, base).l(0.16, xh, -0.18, -0.2).l(-0.06, -0.12, 0.18, base),
	g(0.1).l(0, top, 0, base),
	g(0.6).l(-0.3, xh, -0.3, base).a(-0.15, -0.1, 0.15, 180, 0).l(0, -0.1, 0, base).
		a(0.15, -0.1, 0.15, 180, 0).l(0.3, -0.1, 0.3, base),
	g(0.4).l(-br, xh, -br, base).a(0, bowl, br, 180, 0).l(br, bowl, br, base),
	g(0.4).circle(0, bowl, br),
	g(0.4).l(-br, xh, -br, desc).circle(0, bowl, br),
	g(0.4).l(br, xh, br, desc).circle(0, bowl, br),
	g(0.3).l(-0.15, xh, -0.15, base).a(0.05, bowl, br, 110, -35),
	g(0.24).a(0, -0.05, 0.1, 240, -60).a(0, -0.25, 0.1, 240, 120),
	g(0.26).l(0, 0.25, 0, -0.25).a(0.1, -0.25, 0.1, 150, 195).l(-0.12, xh, 0.14, xh),
	g(0.4).l(-br, xh, -br, bowl).a(0, bowl, br, 180, 180).l(br, xh, br, base),
	g(0.4).l(-br, xh, 0, base).l(0, base, br, xh),
	g(0.6).l(-0.3, xh, -0.15, base).l(-0.15, base, 0, -0.05).l(0, -0.05, 0.15, base).l(0.15, base, 0.3, xh),
	g(0.4).l(-br, xh, br, base).l(-br, base, br, xh),
	g(0.4).l(-br, xh, 0, base).l(br, xh, -0.1, desc),
	g(0.36).l(-0.18, xh, 0.18, xh).l(0.18, xh, -0.18, base).l(-0.18, base, 0.18, base),

	// '{' .. '~'
	g(0.2).l(0.08, top, 0, 0.25).l(0, 0.25, 0, 0.05).l(0, 0.05, -0.08, 0).
		l(-0.08, 0, 0, -0.05).l(0, -0.05, 0, -0.25).l(0, -0.25, 0.08, base),
	g(0.1).l(0, top, 0, base),
	g(0.2).l(-0.08, top, 0, 0.25).l(0, 0.25, 0, 0.05).l(0, 0.05, 0.08, 0).
		l(0.08, 0, 0, -0.05).l(0, -0.05, 0, -0.25).l(0, -0.25, -0.08, base),
	g(0.34).a(-0.08, -0.05, 0.1, 120, 0).a(0.08, 0.05, 0.1, 120, 180),

	// DEL
	g(0.4).l(-0.2, top, 0.2, top).l(0.2, top, 0.2, base).l(0.2, base, -0.2, base).l(-0.2, base, -0.2, top),

	// Micro .. DC
	g(0.4).l(-br, xh, -br, desc).a(0, bowl, br, 180, 180).l(br, xh, br, base),
	g(0.54).a(0, 0.05, 0.27, 280, 0).
		l(0.174, -0.157, 0.12, base).l(0.12, base, 0.27, base).
		l(-0.174, -0.157, -0.12, base).l(-0.12, base, -0.27, base),
	g(0.36).l(-0.18, 0, 0.18, 0),
	g(0.1).dot(0, 0),
	g(0.5).a(-0.12, -0.075, 0.15, 120, 0).a(0.12, 0.075, 0.15, 120, 180),
	g(0.5).l(-0.25, 0.08, 0.25, 0.08).
		l(-0.25, -0.08, -0.12, -0.08).l(-0.06, -0.08, 0.06, -0.08).l(0.12, -0.08, 0.25, -0.08),
}
