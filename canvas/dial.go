package canvas

import (
	"errors"
	"math"
)

// ErrRadiusTooSmall is returned when ticks are requested on a circle that
// does not enclose the pivot. No ray from the pivot would meet it in the
// requested direction.
var ErrRadiusTooSmall = errors.New("arc radius less than distance between pivot and arc center")

// solveLimit bounds SolveRadius results; larger ones come from rays that
// run almost parallel to the circle and are replaced by solveFallback.
const (
	solveLimit    = 10000
	solveFallback = 10
)

// Dial locates a graduated scale. Ticks are drawn along rays from Pivot,
// the needle's axis, and reach a circle about Centre.
type Dial struct {
	Pivot  Point
	Centre Point

	// Span is the angle in degrees covered by 0 to 100 percent of the
	// scale, and Offset the direction of its midpoint.
	Span   float64
	Offset float64
}

// Tick is a point on a scale with the direction, in radians, of the ray
// from the pivot that reaches it.
type Tick struct {
	Point
	Angle float64
}

// PercentAngles converts scale positions in percent to directions in
// radians relative to the middle of a span given in degrees.
func PercentAngles(span float64, percents []float64) []float64 {
	s := span * math.Pi / 180
	angles := make([]float64, len(percents))
	for i, p := range percents {
		angles[i] = s*p/100 - s/2
	}
	return angles
}

// SolveRadius returns the distance from pivot, along the direction a, to
// the circle of the given radius about centre. The radius must not be less
// than the distance between pivot and centre.
//
// In the triangle pivot, centre, tick we know the angle at the pivot, the
// side from pivot to centre and the side from centre to tick. The law of
// sines gives the angle at the tick and then the side from the pivot.
func SolveRadius(pivot, centre Point, radius, a float64) float64 {
	rel := centre.Sub(pivot)
	dist := rel.Length()
	beta := math.Remainder(a-rel.Bearing(), 2*math.Pi)

	const eps = 1e-9
	switch {
	case math.Abs(math.Abs(beta)-math.Pi) < eps:
		return radius - dist
	case math.Abs(beta) < eps:
		return radius + dist
	}

	sinBeta := math.Sin(beta)
	alpha := math.Asin(min(max(sinBeta*dist/radius, -1), 1))
	gamma := math.Pi - beta - alpha
	c := radius / sinBeta * math.Sin(gamma)
	if c > solveLimit {
		c = solveFallback
	}
	return c
}

// TickPoints returns the points where rays from pivot meet the circle of
// the given radius about centre. Directions are angles plus offset, with
// angles in radians and offset in degrees. When pivot and centre are less
// than a pixel apart the ticks lie at radius from the pivot.
func TickPoints(pivot, centre Point, radius float64, angles []float64, offset float64) ([]Tick, error) {
	dist := pivot.Distance(centre)
	if radius < dist {
		return nil, ErrRadiusTooSmall
	}
	off := offset * math.Pi / 180
	ticks := make([]Tick, len(angles))
	for i, a := range angles {
		a += off
		r := radius
		if dist >= 1 {
			r = SolveRadius(pivot, centre, radius, a)
		}
		ticks[i] = Tick{Point: pivot.Polar(r, a), Angle: a}
	}
	return ticks, nil
}

// Ticks returns the points of the scale positions in percents on the
// circle of the given radius.
func (d Dial) Ticks(radius float64, percents []float64) ([]Tick, error) {
	return TickPoints(d.Pivot, d.Centre, radius, PercentAngles(d.Span, percents), d.Offset)
}

// Marks strokes a tick from the inner to the outer circle at each scale
// position. Nothing is drawn if either circle is too small.
func (c *Canvas) Marks(d Dial, inner, outer float64, percents []float64, st Stroke) error {
	from, err := d.Ticks(inner, percents)
	if err != nil {
		return err
	}
	to, err := d.Ticks(outer, percents)
	if err != nil {
		return err
	}
	for i := range from {
		c.Line(from[i].Point, to[i].Point, st)
	}
	return nil
}

// Labels centres labels[i] on the circle of the given radius at scale
// position percents[i], turned to read along the circle about the dial
// centre. Positions without a label are skipped.
func (c *Canvas) Labels(d Dial, radius float64, percents []float64, labels []string, st TextStyle) error {
	ticks, err := d.Ticks(radius, percents)
	if err != nil {
		return err
	}
	st.Align = AlignCenter
	for i, t := range ticks {
		if i >= len(labels) {
			break
		}
		st.Rotate = t.Sub(d.Centre).Bearing() * 180 / math.Pi
		c.PlotString(labels[i], t.X, t.Y, st)
	}
	return nil
}
