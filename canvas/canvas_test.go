package canvas

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/gogpu/scalecard/unit"
)

// testConfig is a 20 x 10 mm card at 10 pixels per millimetre: 200 x 100
// pixels with a 254 pixel bleed.
func testConfig() Config {
	return Config{
		Resolution: M(10, unit.MM),
		Width:      M(20, unit.MM),
		Height:     M(10, unit.MM),
	}
}

func newTestCanvas(t *testing.T, opts ...Option) *Canvas {
	t.Helper()
	c := New(opts...)
	if err := c.Setup(testConfig()); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	return c
}

// value returns the red plane at card coordinates (x, y).
func value(c *Canvas, x, y int) byte {
	return c.planes[0][(y+c.bleed)*c.stride+x+c.bleed]
}

func snapshot(c *Canvas) [3][]byte {
	var s [3][]byte
	for p := range c.planes {
		s[p] = slices.Clone(c.planes[p])
	}
	return s
}

func samePlanes(a, b [3][]byte) bool {
	for p := range a {
		if !slices.Equal(a[p], b[p]) {
			return false
		}
	}
	return true
}

func TestSetupDimensions(t *testing.T) {
	c := newTestCanvas(t)

	if !c.Configured() {
		t.Fatal("Configured() = false after Setup")
	}
	checks := []struct {
		name      string
		got, want int
	}{
		{"Width", c.Width(), 200},
		{"Height", c.Height(), 100},
		{"Bleed", c.Bleed(), 254},
		{"Stride", c.Stride(), 708},
		{"Rows", c.Rows(), 608},
	}
	for _, ch := range checks {
		if ch.got != ch.want {
			t.Errorf("%s() = %d, want %d", ch.name, ch.got, ch.want)
		}
	}
	for p, plane := range c.Planes() {
		if len(plane) != 708*608 {
			t.Errorf("len(plane %d) = %d, want %d", p, len(plane), 708*608)
		}
	}
	if c.PixelsPerMM() != 10 {
		t.Errorf("PixelsPerMM() = %v, want 10", c.PixelsPerMM())
	}
}

// TestSetupPercent checks that percentages refer to the card once it is
// set up.
func TestSetupPercent(t *testing.T) {
	c := newTestCanvas(t)

	x, err := c.ToPixels(50, unit.Percent, false)
	if err != nil || x != 100 {
		t.Errorf("ToPixels(50%%, horizontal) = %v, %v, want 100", x, err)
	}
	y, err := c.ToPixels(50, unit.Percent, true)
	if err != nil || y != 50 {
		t.Errorf("ToPixels(50%%, vertical) = %v, %v, want 50", y, err)
	}
}

func TestSetupErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  func(*Config)
		want error
	}{
		{"zero width", func(c *Config) { c.Width = M(0, unit.MM) }, ErrPlateSize},
		{"negative height", func(c *Config) { c.Height = M(-3, unit.CM) }, ErrPlateSize},
		{"percent size", func(c *Config) { c.Width = M(50, unit.Percent) }, ErrPlateSize},
		{"zero resolution", func(c *Config) { c.Resolution = M(0, unit.DPI) }, ErrResolution},
		{"invalid unit", func(c *Config) { c.Width = M(1, unit.Invalid) }, unit.ErrUnknownUnit},
		{"too large", func(c *Config) { c.Width = M(1000, unit.Inch) }, ErrTooLarge},
		{"beyond int range", func(c *Config) { c.Width = M(1e20, unit.MM) }, ErrTooLarge},
		{"infinite height", func(c *Config) { c.Height = M(math.Inf(1), unit.MM) }, ErrTooLarge},
		{"huge resolution", func(c *Config) { c.Resolution = M(1e20, unit.DPI) }, ErrTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.cfg(&cfg)
			c := New()
			err := c.Setup(cfg)
			if !errors.Is(err, tt.want) {
				t.Errorf("Setup() error = %v, want %v", err, tt.want)
			}
			if c.Configured() {
				t.Error("Configured() = true after failed Setup")
			}
		})
	}
}

// TestSetupTooLargeMessage checks that oversized plates report their size
// in pixels rather than an overflowed integer.
func TestSetupTooLargeMessage(t *testing.T) {
	cfg := testConfig()
	cfg.Resolution = M(1e20, unit.DPI)
	err := New().Setup(cfg)
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("Setup() error = %v, want %v", err, ErrTooLarge)
	}
	if strings.Contains(err.Error(), "-") {
		t.Errorf("Setup() error = %q, want positive sizes", err)
	}
}

func TestDefaultLoggerSilent(t *testing.T) {
	c := New()
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelError} {
		if c.opts.logger.Enabled(context.Background(), level) {
			t.Errorf("default logger enabled for %v", level)
		}
	}
	if h := (nopHandler{}).WithGroup("g"); h != (nopHandler{}) {
		t.Errorf("nopHandler.WithGroup() = %T, want nopHandler", h)
	}
}

func TestSetupOnce(t *testing.T) {
	c := newTestCanvas(t)
	if err := c.Setup(testConfig()); !errors.Is(err, ErrConfigured) {
		t.Errorf("second Setup() error = %v, want %v", err, ErrConfigured)
	}
}

func TestDefaultConfig(t *testing.T) {
	c := New()
	if err := c.Setup(DefaultConfig()); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	// 10 x 5 cm at 300 dpi
	if c.Width() != 1181 || c.Height() != 591 || c.Bleed() != 300 {
		t.Errorf("got %d x %d bleed %d, want 1181 x 591 bleed 300", c.Width(), c.Height(), c.Bleed())
	}
}

func TestCropMarks(t *testing.T) {
	c := newTestCanvas(t)

	if v := value(c, -100, 0); v != 0 {
		t.Errorf("crop mark pixel = %d, want 0", v)
	}
	if v := value(c, 100, 50); v != 255 {
		t.Errorf("card centre = %d, want 255", v)
	}
	// the marks stop 3 mm short of the card
	if v := value(c, -20, 0); v != 255 {
		t.Errorf("pixel inside the gap = %d, want 255", v)
	}
}

func TestBorderGuides(t *testing.T) {
	cfg := testConfig()
	cfg.Border = M(1, unit.MM)
	c := New()
	if err := c.Setup(cfg); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}

	tests := []struct {
		x, y int
		want byte
	}{
		{100, -6, 0},
		{100, -1, 213},
		{100, 0, 255},
		{-6, 50, 0},
		{206, 50, 0},
		{100, 106, 0},
		{100, 50, 255},
	}
	for _, tt := range tests {
		if v := value(c, tt.x, tt.y); v != tt.want {
			t.Errorf("pixel (%d, %d) = %d, want %d", tt.x, tt.y, v, tt.want)
		}
	}
}

func TestPutClips(t *testing.T) {
	c := newTestCanvas(t)
	before := snapshot(c)

	for _, p := range [][2]int{{-255, 0}, {0, -255}, {454, 0}, {0, 354}, {-1000, 1000}} {
		c.Put(p[0], p[1], 0, BlendMultiply)
	}
	if !samePlanes(before, c.planes) {
		t.Error("Put outside the bleed changed the planes")
	}

	c.Put(-254, -254, 0, BlendMultiply)
	c.Put(453, 353, 0, BlendMultiply)
	if c.planes[0][0] != 0 || c.planes[2][len(c.planes[2])-1] != 0 {
		t.Error("Put at the bleed corners did not draw")
	}
}

func TestFinish(t *testing.T) {
	if err := New().Finish("note"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Finish() before Setup error = %v, want %v", err, ErrNotConfigured)
	}

	c := newTestCanvas(t)
	before := snapshot(c)
	if err := c.Finish("Scale card credit"); err != nil {
		t.Fatalf("Finish() error = %v", err)
	}
	after := snapshot(c)
	if samePlanes(before, after) {
		t.Fatal("Finish() drew nothing")
	}

	// only the bottom bleed, below the crop marks, is written
	limit := (c.height + c.bleed - 30 + c.bleed) * c.stride
	if !slices.Equal(before[0][:limit], after[0][:limit]) {
		t.Error("Finish() drew outside the bottom bleed")
	}

	if err := c.Finish("other"); err != nil {
		t.Fatalf("second Finish() error = %v", err)
	}
	if !samePlanes(after, c.planes) {
		t.Error("second Finish() drew again")
	}
}

func TestImage(t *testing.T) {
	c := newTestCanvas(t)
	c.Put(0, 0, 100, BlendDarken)

	if got := c.Bounds(); got.Dx() != 708 || got.Dy() != 608 {
		t.Errorf("Bounds() = %v", got)
	}
	r, g, b, a := c.At(254, 254).RGBA()
	if r != 100*257 || g != 100*257 || b != 100*257 || a != 0xffff {
		t.Errorf("At() = (%d, %d, %d, %d)", r, g, b, a)
	}

	img := c.ToImage()
	if got := img.RGBAAt(254, 254); got.R != 100 || got.A != 255 {
		t.Errorf("ToImage() pixel = %v", got)
	}
	if got := img.RGBAAt(300, 300); got.R != 255 || got.G != 255 || got.B != 255 {
		t.Errorf("ToImage() background = %v", got)
	}
}
