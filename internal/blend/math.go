package blend

// div255 divides x by 255 without a division, rounding down.
//
// Formula: ((x + 1) + ((x + 1) >> 8)) >> 8
//
// This is Alvy Ray Smith's formula. It is exact for every product of two
// bytes, which keeps repeated strokes deterministic.
func div255(x uint16) uint16 {
	t := x + 1
	return (t + (t >> 8)) >> 8
}

// mulDiv255 returns floor(a*b/255).
func mulDiv255(a, b byte) byte {
	return byte(div255(uint16(a) * uint16(b)))
}
