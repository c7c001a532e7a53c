package canvas

import "github.com/gogpu/scalecard/internal/blend"

// End is the shape of the ends of a stroke.
type End int

const (
	// EndRound rounds the stroke off inside its length. This is the default.
	EndRound End = iota
	// EndRoundBeyond adds a half-disc past each end point.
	EndRoundBeyond
	// EndSquare cuts the stroke off square at its end points.
	EndSquare
)

// String returns the name of the end style.
func (e End) String() string {
	switch e {
	case EndRound:
		return "round"
	case EndRoundBeyond:
		return "round-beyond"
	case EndSquare:
		return "square"
	default:
		return "unknown"
	}
}

// Blend selects how a stroke combines with what is already drawn.
type Blend = blend.Mode

const (
	// BlendMultiply darkens overlapping strokes further. This is the default.
	BlendMultiply = blend.ModeMultiply
	// BlendDarken keeps the darker of the stroke and the card.
	BlendDarken = blend.ModeDarken
)

// Stroke defines the style for stroking shapes.
type Stroke struct {
	// Width is the full stroke width in pixels. Negative widths are
	// treated as zero. Default: 1.0
	Width float64

	// End is the shape of the stroke ends. Default: EndRound
	End End

	// Blend is the blending mode. Default: BlendMultiply
	Blend Blend
}

// DefaultStroke returns a Stroke with default settings: a 1-pixel wide
// multiplied stroke rounded within its length.
func DefaultStroke() Stroke {
	return Stroke{
		Width: 1.0,
		End:   EndRound,
		Blend: BlendMultiply,
	}
}

// WithWidth returns a copy of the Stroke with the given width.
func (s Stroke) WithWidth(w float64) Stroke {
	s.Width = w
	return s
}

// WithEnd returns a copy of the Stroke with the given end style.
func (s Stroke) WithEnd(e End) Stroke {
	s.End = e
	return s
}

// WithBlend returns a copy of the Stroke with the given blending mode.
func (s Stroke) WithBlend(b Blend) Stroke {
	s.Blend = b
	return s
}
