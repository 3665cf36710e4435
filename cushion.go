package ggicon

import "math"

// Cushion shading parameters: brightness runs from cushionBase at the
// rectangle edge to 1 at its center, following edge^cushionExponent.
const (
	cushionBase     = 0.55
	cushionRange    = 0.45
	cushionExponent = 0.6

	// minCushionSide is the side length at or below which nothing is drawn.
	minCushionSide = 2
)

// CushionBrightness returns the brightness factor for a pixel at the
// normalized axis distances dx, dy from the rectangle center, where 0 is
// the center and 1 is the edge.
func CushionBrightness(dx, dy float64) float64 {
	edge := (1 - dx) * (1 - dy)
	edge = math.Max(0, math.Min(1, edge))
	return cushionBase + cushionRange*math.Pow(edge, cushionExponent)
}

// Cushion paints every pixel of r's pixel range with base, shaded bright
// at the center and darker toward the edges. Pixels are fully opaque.
// Rectangles 2 pixels wide or high, or smaller, are ignored.
func Cushion(c *Canvas, r Rect, base Color) {
	w, h := r.Width(), r.Height()
	if w <= minCushionSide || h <= minCushionSide {
		return
	}

	cx, cy := r.Center()
	halfW, halfH := w/2, h/2

	px := r.Pixels()
	for y := px.Min.Y; y < px.Max.Y; y++ {
		dy := math.Abs(float64(y)-cy) / halfH
		for x := px.Min.X; x < px.Max.X; x++ {
			dx := math.Abs(float64(x)-cx) / halfW
			c.SetPixel(x, y, base.Scale(CushionBrightness(dx, dy)))
		}
	}
}
