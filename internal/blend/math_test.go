package blend

import (
	"testing"
)

// TestDiv255 checks the shift formula against integer division for every
// product of two bytes.
func TestDiv255(t *testing.T) {
	for x := 0; x <= 255*255; x++ {
		expected := x / 255
		got := int(div255(uint16(x)))

		if got != expected {
			t.Fatalf("div255(%d) = %d, want %d", x, got, expected)
		}
	}
}

func TestMulDiv255(t *testing.T) {
	tests := []struct {
		a, b     byte
		expected byte
	}{
		{0, 0, 0},
		{255, 255, 255},
		{0, 255, 0},
		{255, 0, 0},
		{128, 128, 64},
		{200, 100, 78},
		{1, 255, 1},
		{254, 254, 253},
		{127, 127, 63},
	}

	for _, tt := range tests {
		if got := mulDiv255(tt.a, tt.b); got != tt.expected {
			t.Errorf("mulDiv255(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.expected)
		}
	}
}
