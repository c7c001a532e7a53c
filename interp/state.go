// Package interp executes scale card commands on a canvas.
//
// Commands run in order against a State. Each handler receives the current
// State and the command and returns the next State, or an error located
// at the command's head word. The first error stops the run.
//
// Plate geometry (card-size, resolution and card-border) is collected
// until the first other command. That command configures the canvas, after
// which the plate can no longer change.
package interp

import (
	"github.com/gogpu/scalecard/canvas"
)

// State is the drawing state.
type State struct {
	// Stroke is the stroke width in pixels.
	Stroke float64

	// Pivot is the axis of the needle and Centre the centre of the scale
	// arcs. Until set, both are the card origin; setting the pivot also
	// sets an unset centre.
	Pivot     canvas.Point
	Centre    canvas.Point
	HasPivot  bool
	HasCentre bool

	// Span and Offset are in degrees.
	Span   float64
	Offset float64

	// Angles are the scale positions, in percent of the span, used by the
	// last mark or label command.
	Angles []float64

	Mono  bool
	Align canvas.Align

	// Size is the text size in pixels.
	Size float64

	Plate Plate
}

// Plate is the plate geometry. Each part can be set once, and none after
// the canvas is configured.
type Plate struct {
	canvas.Config

	SizeSet       bool
	ResolutionSet bool
	BorderSet     bool
	Configured    bool
}

// NewState returns the state before the first command.
func NewState() State {
	return State{
		Align: canvas.AlignCenter,
		Plate: Plate{Config: canvas.DefaultConfig()},
	}
}

// Dial returns the scale described by the state.
func (s State) Dial() canvas.Dial {
	d := canvas.Dial{
		Pivot:  s.Centre,
		Centre: s.Centre,
		Span:   s.Span,
		Offset: s.Offset,
	}
	if s.HasPivot {
		d.Pivot = s.Pivot
	}
	return d
}

func (s State) stroke() canvas.Stroke {
	return canvas.DefaultStroke().WithWidth(s.Stroke)
}

func (s State) textStyle() canvas.TextStyle {
	return canvas.TextStyle{Size: s.Size, Mono: s.Mono, Align: s.Align}
}
