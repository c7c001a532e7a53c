package canvas

import (
	"image"
	"image/color"
)

// At implements the image.Image interface. Image coordinates start at the
// top-left corner of the bleed.
func (c *Canvas) At(x, y int) color.Color {
	if x < 0 || x >= c.stride || y < 0 || y >= c.rows {
		return color.RGBA{}
	}
	i := y*c.stride + x
	return color.RGBA{R: c.planes[0][i], G: c.planes[1][i], B: c.planes[2][i], A: 0xff}
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.stride, c.rows)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.RGBAModel
}

// ToImage copies the planes into an opaque image.RGBA.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(c.Bounds())
	for i := range c.stride * c.rows {
		img.Pix[4*i+0] = c.planes[0][i]
		img.Pix[4*i+1] = c.planes[1][i]
		img.Pix[4*i+2] = c.planes[2][i]
		img.Pix[4*i+3] = 0xff
	}
	return img
}
