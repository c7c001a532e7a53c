package canvas

import (
	"image"
	"testing"
)

// TestDrawLineCoverage checks the soft edge of a 5 pixel line. The core is
// 1.75 pixels either side of the centreline; the feather adds 1.5 more.
func TestDrawLineCoverage(t *testing.T) {
	c := newTestCanvas(t)
	c.Line(Pt(20, 50), Pt(180, 50), DefaultStroke().WithWidth(5))

	tests := []struct {
		name string
		x, y int
		want byte
	}{
		{"centreline", 100, 50, 0},
		{"inside core", 100, 49, 0},
		{"feather", 100, 53, 213},
		{"feather other side", 100, 47, 213},
		{"beyond feather", 100, 54, 255},
		{"end point", 20, 50, 0},
		{"past the end", 18, 50, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if v := value(c, tt.x, tt.y); v != tt.want {
				t.Errorf("pixel (%d, %d) = %d, want %d", tt.x, tt.y, v, tt.want)
			}
		})
	}

	if v := value(c, 19, 50); v == 0 || v == 255 {
		t.Errorf("pixel one past the end = %d, want partial coverage", v)
	}
}

func TestDrawLineEnds(t *testing.T) {
	tests := []struct {
		end  End
		at18 byte
		at17 byte
	}{
		{EndRound, 255, 255},
		{EndRoundBeyond, 43, 213},
		{EndSquare, 255, 255},
	}

	for _, tt := range tests {
		t.Run(tt.end.String(), func(t *testing.T) {
			c := newTestCanvas(t)
			c.Line(Pt(20, 50), Pt(180, 50), DefaultStroke().WithWidth(5).WithEnd(tt.end))
			if v := value(c, 18, 50); v != tt.at18 {
				t.Errorf("pixel 2 past the end = %d, want %d", v, tt.at18)
			}
			if v := value(c, 17, 50); v != tt.at17 {
				t.Errorf("pixel 3 past the end = %d, want %d", v, tt.at17)
			}
			// the far end behaves the same
			if v := value(c, 182, 50); v != tt.at18 {
				t.Errorf("pixel 2 past the far end = %d, want %d", v, tt.at18)
			}
		})
	}
}

// TestSquareEndCorner checks that square ends keep their corners, unlike
// round ones.
func TestSquareEndCorner(t *testing.T) {
	square := newTestCanvas(t)
	round := newTestCanvas(t)
	square.Line(Pt(20, 50), Pt(180, 50), DefaultStroke().WithWidth(9).WithEnd(EndSquare))
	round.Line(Pt(20, 50), Pt(180, 50), DefaultStroke().WithWidth(9).WithEnd(EndRoundBeyond))

	if v := value(square, 20, 53); v != 0 {
		t.Errorf("square corner = %d, want 0", v)
	}
	if sq, rd := value(square, 18, 50), value(round, 18, 50); sq <= rd {
		t.Errorf("square end (%d) should be lighter than round-beyond end (%d) past the end point", sq, rd)
	}
}

func TestDrawBlend(t *testing.T) {
	tests := []struct {
		blend Blend
		want  byte
	}{
		{BlendMultiply, 177},
		{BlendDarken, 213},
	}

	for _, tt := range tests {
		t.Run(tt.blend.String(), func(t *testing.T) {
			c := newTestCanvas(t)
			st := DefaultStroke().WithWidth(5).WithBlend(tt.blend)
			c.Line(Pt(20, 50), Pt(180, 50), st)
			c.Line(Pt(20, 50), Pt(180, 50), st)
			if v := value(c, 100, 53); v != tt.want {
				t.Errorf("pixel after two strokes = %d, want %d", v, tt.want)
			}
		})
	}
}

func TestDrawNothing(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
	}{
		{"zero length line", NewLine(50, 50, 50, 50)},
		{"zero span arc", NewArc(Pt(50, 50), 20, 0, 0)},
		{"zero radius arc", NewArc(Pt(50, 50), 0, 90, 0)},
		{"outside the bleed", NewLine(-2000, -2000, -1000, -2000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCanvas(t)
			before := snapshot(c)
			c.Draw(tt.shape, DefaultStroke().WithWidth(4))
			if !samePlanes(before, c.planes) {
				t.Error("Draw() changed the planes")
			}
		})
	}
}

func TestDrawBeforeSetup(t *testing.T) {
	c := New()
	c.Line(Pt(0, 0), Pt(10, 10), DefaultStroke())
	if c.Configured() {
		t.Error("drawing configured the canvas")
	}
}

// TestDrawClipsToBleed checks that a line running off the image is drawn
// where it is visible.
func TestDrawClipsToBleed(t *testing.T) {
	c := newTestCanvas(t)
	c.Line(Pt(-400, 50), Pt(600, 50), DefaultStroke().WithWidth(3))
	for _, x := range []int{-254, 0, 100, 453} {
		if v := value(c, x, 50); v != 0 {
			t.Errorf("pixel (%d, 50) = %d, want 0", x, v)
		}
	}
}

func TestDrawArc(t *testing.T) {
	c := newTestCanvas(t)
	c.Arc(Pt(100, 50), 30, 90, 0, DefaultStroke().WithWidth(3))

	tests := []struct {
		name string
		x, y int
		want byte
	}{
		{"top of the arc", 100, 20, 0},
		{"inside the circle", 100, 35, 255},
		{"opposite side", 100, 80, 255},
		{"beyond the span", 130, 50, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if v := value(c, tt.x, tt.y); v != tt.want {
				t.Errorf("pixel (%d, %d) = %d, want %d", tt.x, tt.y, v, tt.want)
			}
		})
	}
}

func TestStrokeBuilders(t *testing.T) {
	st := DefaultStroke()
	if st.Width != 1 || st.End != EndRound || st.Blend != BlendMultiply {
		t.Fatalf("DefaultStroke() = %+v", st)
	}
	got := st.WithWidth(3).WithEnd(EndSquare).WithBlend(BlendDarken)
	if got.Width != 3 || got.End != EndSquare || got.Blend != BlendDarken {
		t.Errorf("builders = %+v", got)
	}
	if st.Width != 1 {
		t.Error("builders modified the receiver")
	}
}

func TestCandidatesClipped(t *testing.T) {
	c := newTestCanvas(t)
	all := c.Stride() * c.Rows()

	t.Run("long line", func(t *testing.T) {
		pts := c.candidates(NewLine(-1e7, 50, 1e7, 50), 3)
		if len(pts) == 0 || len(pts) > c.Stride()*9 {
			t.Errorf("got %d candidates, want a band of at most %d", len(pts), c.Stride()*9)
		}
		for _, q := range pts {
			if !q.In(c.bounds) {
				t.Fatalf("candidate %v outside %v", q, c.bounds)
			}
		}
	})

	t.Run("far away", func(t *testing.T) {
		if pts := c.candidates(NewLine(-1e7, -1e7, -1e7+10, -1e7), 3); len(pts) != 0 {
			t.Errorf("got %d candidates, want none", len(pts))
		}
	})

	t.Run("wide stroke", func(t *testing.T) {
		if pts := c.candidates(NewLine(0, 50, 200, 50), 5000); len(pts) != all {
			t.Errorf("got %d candidates, want %d", len(pts), all)
		}
	})
}

func TestDrawWideStroke(t *testing.T) {
	c := newTestCanvas(t)
	// Long enough that the round ends lie off the image.
	c.Line(Pt(-5000, 50), Pt(5200, 50), DefaultStroke().WithWidth(5000))
	for _, p := range []image.Point{{-254, -254}, {453, 353}, {100, 50}} {
		if v := value(c, p.X, p.Y); v != 0 {
			t.Errorf("pixel %v = %d, want 0", p, v)
		}
	}
}

// TestDrawLargeArc draws circles far larger than the image whose tops pass
// through the card, with the arc start on either side.
func TestDrawLargeArc(t *testing.T) {
	for _, offset := range []float64{0, 180} {
		c := newTestCanvas(t)
		c.Arc(Pt(100, 50+1e5), 1e5, 360, offset, DefaultStroke().WithWidth(3))
		if v := value(c, 100, 50); v != 0 {
			t.Errorf("offset %v: pixel (100, 50) = %d, want 0", offset, v)
		}
		if v := value(c, 100, 40); v != 255 {
			t.Errorf("offset %v: pixel (100, 40) = %d, want 255", offset, v)
		}
	}
}
