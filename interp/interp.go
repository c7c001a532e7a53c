package interp

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/gogpu/scalecard/canvas"
	"github.com/gogpu/scalecard/script"
	"github.com/gogpu/scalecard/unit"
)

// Interpreter runs commands on a canvas.
// An Interpreter is not safe for concurrent use.
type Interpreter struct {
	canvas *canvas.Canvas
	opts   options
	state  State
}

// New returns an interpreter drawing on c, which must not be configured
// yet.
func New(c *canvas.Canvas, opts ...Option) *Interpreter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Interpreter{canvas: c, opts: o, state: NewState()}
}

// State returns the current drawing state.
func (in *Interpreter) State() State {
	return in.state
}

// Run executes cmds in order and stops at the first error. The context is
// checked before each command.
func (in *Interpreter) Run(ctx context.Context, cmds []script.Command) error {
	for i, cmd := range cmds {
		if err := ctx.Err(); err != nil {
			return err
		}
		in.opts.logger.Debug("command", "head", cmd.Head, "args", len(cmd.Args), "pos", cmd.Pos.String())
		st, err := in.Exec(in.state, cmd)
		if err != nil {
			return err
		}
		in.state = st
		if in.opts.progress != nil {
			in.opts.progress(i+1, len(cmds))
		}
	}
	return nil
}

// Configure sets up the canvas from the plate geometry collected so far,
// unless a drawing command already did.
func (in *Interpreter) Configure() error {
	if in.state.Plate.Configured {
		return nil
	}
	st, err := in.configure(in.state)
	if err != nil {
		return err
	}
	in.state = st
	return nil
}

// Exec executes one command in state st and returns the next state.
// Errors are *script.Error values located at the command's head.
func (in *Interpreter) Exec(st State, cmd script.Command) (State, error) {
	if cmd.Kind.IsPlate() {
		return plate(st, cmd)
	}
	if !st.Plate.Configured {
		next, err := in.configure(st)
		if err != nil {
			return st, script.WrapError(cmd.Pos, err)
		}
		st = next
	}

	switch cmd.Kind {
	case script.KindWidth:
		return in.width(st, cmd)
	case script.KindColor:
		return st, nil
	case script.KindPivot:
		return in.pivot(st, cmd)
	case script.KindCenter:
		return in.centre(st, cmd)
	case script.KindSpan, script.KindOffset:
		return direction(st, cmd)
	case script.KindLine:
		return in.line(st, cmd)
	case script.KindArc:
		return in.arc(st, cmd)
	case script.KindMonospace, script.KindProportional,
		script.KindAlignLeft, script.KindAlignCenter, script.KindAlignRight:
		return style(st, cmd)
	case script.KindSize:
		return in.size(st, cmd)
	case script.KindText:
		return in.text(st, cmd)
	case script.KindMark:
		return in.mark(st, cmd)
	case script.KindLabel:
		return in.label(st, cmd)
	default:
		return st, script.Errorf(cmd.Pos, "unknown command %s", cmd.Head)
	}
}

func (in *Interpreter) configure(st State) (State, error) {
	if err := in.canvas.Setup(st.Plate.Config); err != nil {
		return st, err
	}
	st.Plate.Configured = true
	st.Stroke, _ = in.canvas.ToPixels(1, unit.PT, false)
	st.Size, _ = in.canvas.ToPixels(12, unit.PT, false)

	in.opts.logger.Info("plate configured",
		"size", st.Plate.Width.String()+" x "+st.Plate.Height.String(),
		"resolution", st.Plate.Resolution.String(),
		"border", st.Plate.Border.String(),
		"pixels", fmt.Sprintf("%d x %d", in.canvas.Width(), in.canvas.Height()))
	return st, nil
}

func countArgs(cmd script.Command, n ...int) error {
	if !slices.Contains(n, len(cmd.Args)) {
		return script.Errorf(cmd.Pos, "wrong number of arguments")
	}
	return nil
}

func minArgs(cmd script.Command, n int) error {
	if len(cmd.Args) < n {
		return script.Errorf(cmd.Pos, "too few arguments")
	}
	return nil
}

// number returns argument i, which must not be a string, unconverted.
func number(cmd script.Command, i int) (float64, error) {
	a := cmd.Args[i]
	if a.IsString() {
		return 0, script.Errorf(cmd.Pos, "argument should not be a string")
	}
	return a.Num, nil
}

func measure(cmd script.Command, i int) (canvas.Measure, error) {
	v, err := number(cmd, i)
	if err != nil {
		return canvas.Measure{}, err
	}
	return canvas.M(v, cmd.Args[i].Unit), nil
}

// length converts argument i to pixels. Vertical lengths take percentages
// of the card height.
func (in *Interpreter) length(cmd script.Command, i int, vertical bool) (float64, error) {
	v, err := number(cmd, i)
	if err != nil {
		return 0, err
	}
	u := cmd.Args[i].Unit
	px, err := in.canvas.ToPixels(v, u, vertical)
	if err != nil {
		return 0, &script.Error{Msg: fmt.Sprintf("unit %s not found", u), Pos: cmd.Pos, Err: err}
	}
	return px, nil
}

func (in *Interpreter) point(cmd script.Command, i int) (canvas.Point, error) {
	x, err := in.length(cmd, i, false)
	if err != nil {
		return canvas.Point{}, err
	}
	y, err := in.length(cmd, i+1, true)
	if err != nil {
		return canvas.Point{}, err
	}
	return canvas.Pt(x, y), nil
}

func plate(st State, cmd script.Command) (State, error) {
	p := &st.Plate
	switch cmd.Kind {
	case script.KindCardSize:
		if p.Configured || p.SizeSet {
			return st, script.Errorf(cmd.Pos, "cannot reset plate size")
		}
		if err := countArgs(cmd, 2); err != nil {
			return st, err
		}
		w, err := measure(cmd, 0)
		if err != nil {
			return st, err
		}
		h, err := measure(cmd, 1)
		if err != nil {
			return st, err
		}
		if !(w.Value > 0 && h.Value > 0) {
			return st, script.WrapError(cmd.Pos, canvas.ErrPlateSize)
		}
		p.Width, p.Height, p.SizeSet = w, h, true

	case script.KindResolution:
		if p.Configured || p.ResolutionSet {
			return st, script.Errorf(cmd.Pos, "cannot reset plate resolution")
		}
		if err := countArgs(cmd, 1); err != nil {
			return st, err
		}
		r, err := measure(cmd, 0)
		if err != nil {
			return st, err
		}
		if !(r.Value > 0) {
			return st, script.WrapError(cmd.Pos, canvas.ErrResolution)
		}
		p.Resolution, p.ResolutionSet = r, true

	case script.KindCardBorder:
		if p.Configured || p.BorderSet {
			return st, script.Errorf(cmd.Pos, "cannot reset plate box")
		}
		if err := countArgs(cmd, 1); err != nil {
			return st, err
		}
		b, err := measure(cmd, 0)
		if err != nil {
			return st, err
		}
		p.Border, p.BorderSet = b, true
	}
	return st, nil
}

func (in *Interpreter) width(st State, cmd script.Command) (State, error) {
	if err := countArgs(cmd, 1); err != nil {
		return st, err
	}
	w, err := in.length(cmd, 0, false)
	if err != nil {
		return st, err
	}
	st.Stroke = w
	return st, nil
}

func (in *Interpreter) pivot(st State, cmd script.Command) (State, error) {
	if err := countArgs(cmd, 2); err != nil {
		return st, err
	}
	p, err := in.point(cmd, 0)
	if err != nil {
		return st, err
	}
	st.Pivot, st.HasPivot = p, true
	if !st.HasCentre {
		st.Centre, st.HasCentre = p, true
	}
	return st, nil
}

func (in *Interpreter) centre(st State, cmd script.Command) (State, error) {
	if err := countArgs(cmd, 2); err != nil {
		return st, err
	}
	p, err := in.point(cmd, 0)
	if err != nil {
		return st, err
	}
	st.Centre, st.HasCentre = p, true
	return st, nil
}

// direction handles span and offset. Their numbers are degrees whatever
// unit follows them.
func direction(st State, cmd script.Command) (State, error) {
	if err := countArgs(cmd, 1); err != nil {
		return st, err
	}
	v, err := number(cmd, 0)
	if err != nil {
		return st, err
	}
	if cmd.Kind == script.KindSpan {
		st.Span = v
	} else {
		st.Offset = v
	}
	return st, nil
}

func (in *Interpreter) line(st State, cmd script.Command) (State, error) {
	if err := countArgs(cmd, 4); err != nil {
		return st, err
	}
	p1, err := in.point(cmd, 0)
	if err != nil {
		return st, err
	}
	p2, err := in.point(cmd, 2)
	if err != nil {
		return st, err
	}
	in.canvas.Line(p1, p2, st.stroke())
	return st, nil
}

// arc strokes an arc about the centre. Span and offset default to the
// state's; the ends are rounded past the arc so that full circles close.
func (in *Interpreter) arc(st State, cmd script.Command) (State, error) {
	if err := countArgs(cmd, 1, 2, 3); err != nil {
		return st, err
	}
	radius, err := in.length(cmd, 0, false)
	if err != nil {
		return st, err
	}
	span, offset := st.Span, st.Offset
	if len(cmd.Args) > 1 {
		if span, err = number(cmd, 1); err != nil {
			return st, err
		}
	}
	if len(cmd.Args) > 2 {
		if offset, err = number(cmd, 2); err != nil {
			return st, err
		}
	}
	in.canvas.Arc(st.Centre, radius, span, offset, st.stroke().WithEnd(canvas.EndRoundBeyond))
	return st, nil
}

func style(st State, cmd script.Command) (State, error) {
	if err := countArgs(cmd, 0); err != nil {
		return st, err
	}
	switch cmd.Kind {
	case script.KindMonospace:
		st.Mono = true
	case script.KindProportional:
		st.Mono = false
	case script.KindAlignLeft:
		st.Align = canvas.AlignLeft
	case script.KindAlignCenter:
		st.Align = canvas.AlignCenter
	case script.KindAlignRight:
		st.Align = canvas.AlignRight
	}
	return st, nil
}

func (in *Interpreter) size(st State, cmd script.Command) (State, error) {
	if err := countArgs(cmd, 1); err != nil {
		return st, err
	}
	s, err := in.length(cmd, 0, true)
	if err != nil {
		return st, err
	}
	st.Size = s
	return st, nil
}

// text draws the remaining arguments, joined without spaces. Numbers are
// drawn as written.
func (in *Interpreter) text(st State, cmd script.Command) (State, error) {
	if err := minArgs(cmd, 3); err != nil {
		return st, err
	}
	p, err := in.point(cmd, 0)
	if err != nil {
		return st, err
	}
	var b strings.Builder
	for _, a := range cmd.Args[2:] {
		b.WriteString(a.Text())
	}
	in.canvas.PlotString(b.String(), p.X, p.Y, st.textStyle())
	return st, nil
}

// mark draws ticks. Angles given with the command replace those of the
// state; without any, the previous ones are used again.
func (in *Interpreter) mark(st State, cmd script.Command) (State, error) {
	if err := minArgs(cmd, 2); err != nil {
		return st, err
	}
	inner, err := in.length(cmd, 0, false)
	if err != nil {
		return st, err
	}
	outer, err := in.length(cmd, 1, false)
	if err != nil {
		return st, err
	}
	if len(cmd.Args) > 2 {
		angles := make([]float64, 0, len(cmd.Args)-2)
		for i := 2; i < len(cmd.Args); i++ {
			a, err := number(cmd, i)
			if err != nil {
				return st, err
			}
			angles = append(angles, a)
		}
		st.Angles = angles
	}
	if len(st.Angles) == 0 {
		return st, script.Errorf(cmd.Pos, "no angles given for marks")
	}
	if err := in.canvas.Marks(st.Dial(), inner, outer, st.Angles, st.stroke()); err != nil {
		return st, script.WrapError(cmd.Pos, err)
	}
	return st, nil
}

// label draws texts at scale positions. Strings are the texts and numbers
// the positions, in any order; positions given with the command replace
// those of the state.
func (in *Interpreter) label(st State, cmd script.Command) (State, error) {
	if err := minArgs(cmd, 2); err != nil {
		return st, err
	}
	radius, err := in.length(cmd, 0, false)
	if err != nil {
		return st, err
	}
	var (
		labels []string
		angles []float64
	)
	for _, a := range cmd.Args[1:] {
		if a.IsString() {
			labels = append(labels, a.Str)
		} else {
			angles = append(angles, a.Num)
		}
	}
	if angles != nil {
		st.Angles = angles
	}
	if len(labels) == 0 {
		return st, script.Errorf(cmd.Pos, "label requires text string(s)")
	}
	if len(st.Angles) == 0 {
		return st, script.Errorf(cmd.Pos, "no angles given for labels")
	}
	if err := in.canvas.Labels(st.Dial(), radius, st.Angles, labels, st.textStyle()); err != nil {
		return st, script.WrapError(cmd.Pos, err)
	}
	return st, nil
}
