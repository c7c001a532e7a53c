package scalecard

import (
	"github.com/gogpu/scalecard/glyph"
)

// DefaultNote is the credit line printed in the bottom bleed and stored in
// the image metadata.
const DefaultNote = "Created with Meterdraw v0.85 www.bamfordresearch.com"

// Option configures Render.
//
// Example:
//
//	card, err := scalecard.Render(ctx, src,
//	    scalecard.WithNote("Panel meter, 0-10 V"),
//	    scalecard.WithFeather(1))
type Option func(*options)

type options struct {
	glyphs   glyph.Provider
	note     string
	progress func(done, total int)
	feather  float64
}

func defaultOptions() options {
	return options{
		glyphs: glyph.Builtin,
		note:   DefaultNote,
	}
}

// WithGlyphs sets the fonts used for text. A nil provider keeps the
// built-in stroke fonts.
func WithGlyphs(p glyph.Provider) Option {
	return func(o *options) {
		if p != nil {
			o.glyphs = p
		}
	}
}

// WithNote replaces the credit line. An empty note draws nothing in the
// bleed and leaves an empty metadata text.
func WithNote(note string) Option {
	return func(o *options) {
		o.note = note
	}
}

// WithProgress sets a function called after each command with the number
// of commands done and the total.
func WithProgress(fn func(done, total int)) Option {
	return func(o *options) {
		o.progress = fn
	}
}

// WithFeather sets the width of the soft edge of strokes in pixels.
// Values that are not positive keep the default.
func WithFeather(px float64) Option {
	return func(o *options) {
		o.feather = px
	}
}
