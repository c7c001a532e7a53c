package scalecard

import (
	"context"
	"fmt"
	"image"
	"io"
	"time"

	"github.com/gogpu/scalecard/canvas"
	intImage "github.com/gogpu/scalecard/internal/image"
	"github.com/gogpu/scalecard/interp"
	"github.com/gogpu/scalecard/script"
)

// Card is a finished scale card.
type Card struct {
	canvas *canvas.Canvas
	note   string
}

// Render parses and runs the design in src and returns the finished card.
// A design without drawing commands gives a blank card of its plate size.
//
// Errors in the design are *script.Error values; Highlight formats them
// with the offending source text.
func Render(ctx context.Context, src string, opts ...Option) (*Card, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := Logger()
	start := time.Now()

	cmds, err := script.Parse(src)
	if err != nil {
		return nil, err
	}
	log.Debug("design parsed", "commands", len(cmds))

	c := canvas.New(
		canvas.WithGlyphs(o.glyphs),
		canvas.WithFeather(o.feather),
		canvas.WithLogger(log),
	)
	in := interp.New(c,
		interp.WithLogger(log),
		interp.WithProgress(o.progress),
	)
	if err := in.Run(ctx, cmds); err != nil {
		return nil, err
	}
	if err := in.Configure(); err != nil {
		return nil, err
	}
	if err := c.Finish(o.note); err != nil {
		return nil, err
	}

	log.Info("card rendered",
		"width", c.Width(), "height", c.Height(),
		"commands", len(cmds), "elapsed", time.Since(start))
	return &Card{canvas: c, note: o.note}, nil
}

// Canvas returns the canvas the card was drawn on.
func (c *Card) Canvas() *canvas.Canvas { return c.canvas }

// Width returns the image width in pixels, bleed included.
func (c *Card) Width() int { return c.canvas.Stride() }

// Height returns the image height in pixels, bleed included.
func (c *Card) Height() int { return c.canvas.Rows() }

// Image returns the card, bleed included, as an image.
func (c *Card) Image() image.Image { return c.canvas }

// EncodePNG writes the card as PNG with its resolution and credit note.
func (c *Card) EncodePNG(w io.Writer) error {
	return intImage.EncodePNG(w, c.canvas.Planes(), c.canvas.Stride(), c.note, c.canvas.PixelsPerMM())
}

// Save writes the card to path. The extension selects the format: .tif and
// .tiff give TIFF, .bmp gives BMP and anything else PNG.
func (c *Card) Save(path string) error {
	f := intImage.FormatFor(path)
	Logger().Info("saving card", "path", path, "format", f.String())
	if err := intImage.Save(path, c.canvas.Planes(), c.canvas.Stride(), c.note, c.canvas.PixelsPerMM()); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
