package canvas

import "math"

// Shape is a stroke centreline that the rasterizer can sample and measure
// against.
type Shape interface {
	// Length returns the length of the centreline in pixels.
	Length() float64

	// PointAt returns the point at distance d along the centreline. It
	// extrapolates for d outside [0, Length()].
	PointAt(d float64) Point

	// Project returns the distance along the centreline of the point
	// nearest to p and the distance of p from the centreline. For a Line
	// across is unsigned; for an Arc it is negative inside the circle.
	Project(p Point) (along, across float64)

	// Within returns the ranges of distances along the centreline where
	// it passes through the box from lo to hi. The ranges may be loose but
	// never miss a point inside the box.
	Within(lo, hi Point) []Interval
}

// Interval is a range of distances along a centreline.
type Interval struct {
	From, To float64
}

// Line is a straight segment from P1 to P2.
type Line struct {
	P1, P2 Point
}

// NewLine returns the segment from (x1, y1) to (x2, y2).
func NewLine(x1, y1, x2, y2 float64) Line {
	return Line{P1: Pt(x1, y1), P2: Pt(x2, y2)}
}

// Length returns the length of the segment.
func (l Line) Length() float64 {
	return l.P1.Distance(l.P2)
}

// PointAt returns the point at distance d from P1 towards P2.
func (l Line) PointAt(d float64) Point {
	n := l.Length()
	if n == 0 {
		return l.P1
	}
	return l.P1.Add(l.P2.Sub(l.P1).Mul(d / n))
}

// Project measures p against the infinite line through P1 and P2.
func (l Line) Project(p Point) (along, across float64) {
	dir := l.P2.Sub(l.P1)
	n := dir.Length()
	if n == 0 {
		return 0, p.Distance(l.P1)
	}
	rel := p.Sub(l.P1)
	return rel.Dot(dir) / n, math.Abs(dir.Cross(rel)) / n
}

// Within clips the segment to the box.
func (l Line) Within(lo, hi Point) []Interval {
	n := l.Length()
	if !(n > 0) {
		return nil
	}
	dir := l.P2.Sub(l.P1).Mul(1 / n)
	from, to := 0.0, n
	clip := func(p, d, lo, hi float64) {
		if d == 0 {
			if !(p >= lo && p <= hi) {
				from, to = 1, 0
			}
			return
		}
		t0, t1 := (lo-p)/d, (hi-p)/d
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		from, to = max(from, t0), min(to, t1)
	}
	clip(l.P1.X, dir.X, lo.X, hi.X)
	clip(l.P1.Y, dir.Y, lo.Y, hi.Y)
	if !(from <= to) {
		return nil
	}
	return []Interval{{from, to}}
}

// Arc is a circular arc of the given Radius around Centre. Span is the
// angle it covers and Offset the direction of its midpoint, both in
// radians, with directions measured clockwise from straight up.
type Arc struct {
	Centre Point
	Radius float64
	Span   float64
	Offset float64
}

// NewArc returns an arc with span and offset given in degrees. A negative
// span covers the same points as its magnitude; spans beyond a full turn
// are limited to a full circle.
func NewArc(centre Point, radius, span, offset float64) Arc {
	span = math.Min(math.Abs(span), 360)
	return Arc{
		Centre: centre,
		Radius: radius,
		Span:   span * math.Pi / 180,
		Offset: offset * math.Pi / 180,
	}
}

func (a Arc) start() float64 {
	return a.Offset - a.Span/2
}

// Length returns the length of the arc.
func (a Arc) Length() float64 {
	return a.Radius * a.Span
}

// PointAt returns the point at distance d along the arc, moving clockwise
// from its start.
func (a Arc) PointAt(d float64) Point {
	if a.Radius == 0 {
		return a.Centre
	}
	return a.Centre.Polar(a.Radius, a.start()+d/a.Radius)
}

// Project measures p against the circle of the arc. The direction of p is
// taken within half a turn of the arc's midpoint, so along runs from
// -πr+Length/2 to πr+Length/2.
func (a Arc) Project(p Point) (along, across float64) {
	rel := p.Sub(a.Centre)
	across = rel.Length() - a.Radius
	ang := a.Offset + math.Remainder(rel.Bearing()-a.Offset, 2*math.Pi)
	return (ang - a.start()) * a.Radius, across
}

// Within returns the parts of the arc whose directions from the centre
// point into the box. When the centre lies inside the box that is the
// whole arc.
func (a Arc) Within(lo, hi Point) []Interval {
	n := a.Length()
	mid := lo.Add(hi).Mul(0.5)
	half := hi.Sub(lo).Mul(0.5)
	dx, dy := math.Abs(a.Centre.X-mid.X), math.Abs(a.Centre.Y-mid.Y)
	near := math.Hypot(max(dx-half.X, 0), max(dy-half.Y, 0))
	far := math.Hypot(dx+half.X, dy+half.Y)
	if !(n > 0) || !(a.Radius >= near && a.Radius <= far) {
		return nil
	}
	if near == 0 {
		return []Interval{{0, n}}
	}

	// Seen from outside, the box covers less than half a turn.
	ref := mid.Sub(a.Centre).Bearing()
	first, last := math.Inf(1), math.Inf(-1)
	for _, q := range []Point{lo, hi, Pt(lo.X, hi.Y), Pt(hi.X, lo.Y)} {
		ang := ref + math.Remainder(q.Sub(a.Centre).Bearing()-ref, 2*math.Pi)
		first, last = min(first, ang), max(last, ang)
	}
	// Measure from the arc start, with first in [0, 2π).
	shift := a.start() + 2*math.Pi*math.Floor((first-a.start())/(2*math.Pi))
	first, last = first-shift, last-shift

	var in []Interval
	for _, turn := range []float64{-2 * math.Pi, 0} {
		f := max((first+turn)*a.Radius, 0)
		t := min((last+turn)*a.Radius, n)
		if f <= t {
			in = append(in, Interval{f, t})
		}
	}
	return in
}
