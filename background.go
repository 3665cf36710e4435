package ggicon

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// minCornerRadius is the smallest background corner radius in pixels.
const minCornerRadius = 4

// CornerRadius returns the background corner radius for a canvas of the
// given size: size/5 (integer division), but never less than 4.
func CornerRadius(size int) int {
	return max(size/5, minCornerRadius)
}

// FillBackground clears the canvas to transparent and paints a rounded
// rectangle covering it in bg. Pixels outside the rounded corners stay
// fully transparent.
func (c *Canvas) FillBackground(bg Color) {
	b := c.Bounds()
	xdraw.Draw(c, b, image.Transparent, image.Point{}, xdraw.Src)

	mask := RoundedRectMask(c.size, c.size, float64(CornerRadius(c.size)))
	xdraw.DrawMask(c, b, image.NewUniform(bg.NRGBA()), image.Point{}, mask, image.Point{}, xdraw.Over)
}
