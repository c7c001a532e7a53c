package canvas

import (
	"image"
	"math"
)

// Draw strokes the shape. Shapes of zero length draw nothing, and nothing
// is drawn before Setup.
func (c *Canvas) Draw(s Shape, st Stroke) {
	length := s.Length()
	if !c.configured || !(length > 0) || math.IsInf(length, 0) {
		return
	}
	width := max(st.Width, 0)
	c.cover(s, length, width, st, c.candidates(s, width))
}

// Line strokes the segment from p1 to p2.
func (c *Canvas) Line(p1, p2 Point, st Stroke) {
	c.Draw(Line{P1: p1, P2: p2}, st)
}

// Arc strokes an arc around centre. Span and offset are in degrees, with
// directions clockwise from straight up.
func (c *Canvas) Arc(centre Point, radius, span, offset float64, st Stroke) {
	c.Draw(NewArc(centre, radius, span, offset), st)
}

// candidates returns the pixels that may be touched by a stroke of the
// given width along s. It samples the centreline at a spacing below the
// block size and takes the square block around each sample, so that
// consecutive blocks overlap. Only the parts of the centreline within a
// block of the image are sampled, and blocks are clipped to the image.
func (c *Canvas) candidates(s Shape, width float64) []image.Point {
	reach := width/2 + 3
	lo := Pt(float64(c.bounds.Min.X)-reach, float64(c.bounds.Min.Y)-reach)
	hi := Pt(float64(c.bounds.Max.X)+reach, float64(c.bounds.Max.Y)+reach)
	parts := s.Within(lo, hi)
	if len(parts) == 0 {
		return nil
	}

	// A block wider than the image covers all of it.
	if reach > float64(c.stride+c.rows) {
		return c.allPixels()
	}

	block := int(reach)
	step := float64(int(float64(block) * 0.7))
	// No part of a line or arc inside the box is longer than this.
	limit := 4 * math.Pi * hi.Distance(lo)

	seen := make(map[image.Point]struct{})
	var pts []image.Point
	for _, part := range parts {
		steps := int(min(part.To-part.From, limit) / step)
		for i := -1; i <= steps+1; i++ {
			p := s.PointAt(part.From + float64(i)*step)
			if !(p.X >= lo.X-step && p.X <= hi.X+step && p.Y >= lo.Y-step && p.Y <= hi.Y+step) {
				continue
			}
			cx, cy := int(p.X), int(p.Y)
			r := image.Rect(cx-block, cy-block, cx+block+1, cy+block+1).Intersect(c.bounds)
			for y := r.Min.Y; y < r.Max.Y; y++ {
				for x := r.Min.X; x < r.Max.X; x++ {
					q := image.Pt(x, y)
					if _, ok := seen[q]; ok {
						continue
					}
					seen[q] = struct{}{}
					pts = append(pts, q)
				}
			}
		}
	}
	return pts
}

func (c *Canvas) allPixels() []image.Point {
	pts := make([]image.Point, 0, c.stride*c.rows)
	for y := c.bounds.Min.Y; y < c.bounds.Max.Y; y++ {
		for x := c.bounds.Min.X; x < c.bounds.Max.X; x++ {
			pts = append(pts, image.Pt(x, y))
		}
	}
	return pts
}

// cover blends every candidate pixel with its coverage. Within half of
// (width - feather) of the centreline coverage is full; it then falls
// linearly to zero across the feather.
func (c *Canvas) cover(s Shape, length, width float64, st Stroke, pts []image.Point) {
	feather := c.opts.feather
	half := (width - feather) / 2

	var endStart float64
	if st.End == EndRound {
		endStart = half
	}

	for _, q := range pts {
		along, across := s.Project(Pt(float64(q.X), float64(q.Y)))
		if along > length/2 {
			along = length - along
		}

		core := half
		var h float64
		switch {
		case along >= endStart:
			h = math.Abs(across)
		case st.End == EndSquare:
			h = math.Abs(along-endStart) + max(math.Abs(across)-half, 0)
			core = 0
		default:
			h = math.Hypot(across, along-endStart)
		}

		cov := min(max((feather-(h-core))/feather, 0), 1)
		if cov > 0 {
			c.Put(q.X, q.Y, byte(255-int(255*cov)), st.Blend)
		}
	}
}
