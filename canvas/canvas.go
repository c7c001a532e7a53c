// Package canvas rasterizes scale card drawings.
//
// A Canvas holds three byte planes (red, green, blue) covering the card
// and a bleed margin of one inch around it. Coordinates are pixels with the
// origin at the top-left corner of the card itself, so the bleed lies at
// negative coordinates and beyond Width and Height.
//
// Every stroke, whether a line, an arc or part of a glyph, goes through the
// same two steps. A broad phase collects candidate pixels near the stroke's
// centreline, then each candidate gets a soft-edged coverage from its
// distance to the centreline. Strokes only darken the planes.
package canvas

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math"

	"github.com/gogpu/scalecard/glyph"
	"github.com/gogpu/scalecard/internal/blend"
	"github.com/gogpu/scalecard/unit"
)

// DefaultFeather is the width in pixels of the soft edge of strokes.
const DefaultFeather = 1.5

// maxPixels limits the size of the planes.
const maxPixels = 1 << 27

// Errors reported while configuring a canvas.
var (
	ErrConfigured    = errors.New("canvas: already configured")
	ErrNotConfigured = errors.New("canvas: not configured")
	ErrPlateSize     = errors.New("plate size must be positive")
	ErrResolution    = errors.New("resolution must be positive")
	ErrTooLarge      = errors.New("plate too large")
)

// Measure is a length or resolution with its unit.
type Measure struct {
	Value float64
	Unit  unit.Unit
}

// M is a convenience function to create a Measure.
func M(v float64, u unit.Unit) Measure {
	return Measure{Value: v, Unit: u}
}

func (m Measure) String() string {
	return fmt.Sprintf("%g%s", m.Value, m.Unit)
}

// Config is the plate geometry of a card. It is fixed once the canvas is
// set up.
type Config struct {
	Resolution Measure
	Width      Measure
	Height     Measure

	// Border is the thickness of the border guides. Zero draws none.
	Border Measure
}

// DefaultConfig returns the plate used when a script does not set one:
// a 10 x 5 cm card at 300 dpi without border.
func DefaultConfig() Config {
	return Config{
		Resolution: M(300, unit.DPI),
		Width:      M(10, unit.CM),
		Height:     M(5, unit.CM),
		Border:     M(0, unit.PT),
	}
}

// Option configures a Canvas during creation.
type Option func(*options)

type options struct {
	feather float64
	glyphs  glyph.Provider
	logger  *slog.Logger
}

func defaultOptions() options {
	return options{
		feather: DefaultFeather,
		glyphs:  glyph.Builtin,
		logger:  slog.New(nopHandler{}),
	}
}

// WithFeather sets the width of the soft edge of strokes in pixels.
// Values that are not positive are ignored.
func WithFeather(px float64) Option {
	return func(o *options) {
		if px > 0 {
			o.feather = px
		}
	}
}

// WithGlyphs sets the fonts used by PlotString.
// A nil provider keeps the built-in stroke font.
func WithGlyphs(p glyph.Provider) Option {
	return func(o *options) {
		if p != nil {
			o.glyphs = p
		}
	}
}

// WithLogger sets the logger for canvas diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Canvas is a card being drawn.
// A Canvas is not safe for concurrent use.
type Canvas struct {
	opts options

	configured bool
	finished   bool

	conv   unit.Converter
	bleed  int
	border float64
	width  int
	height int

	// stride and rows are the image dimensions, bleed included.
	stride int
	rows   int

	// bounds are the valid pixel coordinates.
	bounds image.Rectangle
	planes [3][]byte
}

// New creates an unconfigured canvas. Call Setup before drawing.
func New(opts ...Option) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Canvas{
		opts: o,
		conv: unit.Converter{PixelsPerMM: 1},
	}
}

// Setup fixes the plate geometry, allocates white planes and draws the
// crop marks and border guides. It fails if the canvas is already set up.
func (c *Canvas) Setup(cfg Config) error {
	if c.configured {
		return ErrConfigured
	}

	res, err := c.conv.ToPixels(cfg.Resolution.Value, cfg.Resolution.Unit, false)
	if err != nil {
		return fmt.Errorf("resolution: %w", err)
	}
	if !(res > 0) {
		return ErrResolution
	}

	conv := unit.Converter{PixelsPerMM: res}
	w, err := conv.ToPixels(cfg.Width.Value, cfg.Width.Unit, false)
	if err != nil {
		return fmt.Errorf("plate width: %w", err)
	}
	h, err := conv.ToPixels(cfg.Height.Value, cfg.Height.Unit, true)
	if err != nil {
		return fmt.Errorf("plate height: %w", err)
	}
	// A zero border needs no unit.
	var border float64
	if cfg.Border.Value != 0 {
		border, err = conv.ToPixels(cfg.Border.Value, cfg.Border.Unit, false)
		if err != nil {
			return fmt.Errorf("border: %w", err)
		}
	}
	bleed, _ := conv.ToPixels(1, unit.In, false)

	if !(w+0.5 >= 1) || !(h+0.5 >= 1) {
		return ErrPlateSize
	}
	// Sizes are checked before any conversion to int.
	b := math.Floor(bleed + 0.5)
	stride := math.Floor(w+0.5) + 2*b
	rows := math.Floor(h+0.5) + 2*b
	if !(stride*rows <= maxPixels) {
		return fmt.Errorf("%w: %.0f x %.0f pixels", ErrTooLarge, stride, rows)
	}

	c.bleed = int(b)
	c.width = int(w + 0.5)
	c.height = int(h + 0.5)
	c.border = border
	c.stride = c.width + 2*c.bleed
	c.rows = c.height + 2*c.bleed
	c.bounds = image.Rect(-c.bleed, -c.bleed, c.width+c.bleed, c.height+c.bleed)
	c.conv = unit.Converter{
		PixelsPerMM: res,
		Width:       float64(c.width),
		Height:      float64(c.height),
	}
	for p := range c.planes {
		plane := make([]byte, c.stride*c.rows)
		for i := range plane {
			plane[i] = 255
		}
		c.planes[p] = plane
	}
	c.configured = true

	c.opts.logger.Debug("canvas configured",
		"width", c.width, "height", c.height,
		"bleed", c.bleed, "pixelsPerMM", res, "border", border)

	c.drawCropMarks()
	if c.border > 0 {
		c.drawBorderGuides()
	}
	return nil
}

// drawCropMarks draws trim marks in the bleed, in line with the card
// edges. The bottom ones stop short of the credit line.
func (c *Canvas) drawCropMarks() {
	gap := c.px(3, unit.MM)
	credit := c.px(12, unit.PT)
	st := DefaultStroke().WithWidth(c.px(1, unit.PT))

	b := float64(c.bleed)
	w, h := float64(c.width), float64(c.height)
	maxX, maxY := w+b, h+b

	c.Draw(NewLine(-b, 0, -gap, 0), st)
	c.Draw(NewLine(w+gap, 0, maxX, 0), st)
	c.Draw(NewLine(-b, h, -gap, h), st)
	c.Draw(NewLine(w+gap, h, maxX, h), st)
	c.Draw(NewLine(0, -b, 0, -gap), st)
	c.Draw(NewLine(w, -b, w, -gap), st)
	c.Draw(NewLine(0, h+gap, 0, maxY-credit), st)
	c.Draw(NewLine(w, h+gap, w, maxY-credit), st)
}

// drawBorderGuides frames the card with solid bars just outside its edges.
func (c *Canvas) drawBorderGuides() {
	bb := c.border
	off := bb/2 + c.opts.feather
	st := DefaultStroke().WithWidth(bb).WithBlend(BlendDarken)

	w, h := float64(c.width), float64(c.height)
	c.Draw(NewLine(-bb, -off, w+bb, -off), st)
	c.Draw(NewLine(-bb, h+off, w+bb, h+off), st)
	c.Draw(NewLine(-off, -bb, -off, h+bb), st)
	c.Draw(NewLine(w+off, -bb, w+off, h+bb), st)
}

func (c *Canvas) px(v float64, u unit.Unit) float64 {
	p, _ := c.conv.ToPixels(v, u, false)
	return p
}

// Configured reports whether Setup has succeeded.
func (c *Canvas) Configured() bool { return c.configured }

// ToPixels converts a length to pixels at the canvas resolution.
// Percentages refer to the card height when vertical is set.
func (c *Canvas) ToPixels(v float64, u unit.Unit, vertical bool) (float64, error) {
	return c.conv.ToPixels(v, u, vertical)
}

// Converter returns the unit converter of the canvas.
func (c *Canvas) Converter() unit.Converter { return c.conv }

// PixelsPerMM returns the resolution.
func (c *Canvas) PixelsPerMM() float64 { return c.conv.PixelsPerMM }

// Width returns the card width in pixels, bleed excluded.
func (c *Canvas) Width() int { return c.width }

// Height returns the card height in pixels, bleed excluded.
func (c *Canvas) Height() int { return c.height }

// Bleed returns the width of the bleed margin in pixels.
func (c *Canvas) Bleed() int { return c.bleed }

// Stride returns the width of the planes in pixels, bleed included.
func (c *Canvas) Stride() int { return c.stride }

// Rows returns the height of the planes in pixels, bleed included.
func (c *Canvas) Rows() int { return c.rows }

// Planes returns the red, green and blue planes, row by row. The slices
// are shared with the canvas.
func (c *Canvas) Planes() [3][]byte { return c.planes }

// Put blends the value v into the pixel at (x, y). Pixels outside the
// bleed are ignored.
func (c *Canvas) Put(x, y int, v byte, mode Blend) {
	if !image.Pt(x, y).In(c.bounds) {
		return
	}
	i := (y+c.bleed)*c.stride + x + c.bleed
	blend.Planes(&c.planes, i, v, mode)
}

// Finish draws the credit note centred in the bottom bleed. Leading words
// are dropped until the note fits the image width. Only the first call
// draws.
func (c *Canvas) Finish(note string) error {
	if !c.configured {
		return ErrNotConfigured
	}
	if c.finished {
		return nil
	}
	c.finished = true

	size := c.px(5.5, unit.PT)
	st := TextStyle{Size: size, Align: AlignCenter}
	note = fitWords(note, float64(c.stride), func(s string) float64 {
		return c.TextWidth(s, st)
	})
	c.opts.logger.Debug("credit note", "text", note)
	c.PlotString(note, float64(c.width)/2, float64(c.height+c.bleed)-size/2, st)
	return nil
}
