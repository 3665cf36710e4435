package ggicon

import (
	"image"
	"image/color"
	"math"
)

// sdfRRect computes the signed distance from a point to a rounded rectangle.
// Negative values are inside, positive values are outside.
func sdfRRect(px, py, cx, cy, halfW, halfH, cornerRadius float64) float64 {
	// Translate to center and use symmetry (work in first quadrant).
	dx := math.Abs(px-cx) - halfW + cornerRadius
	dy := math.Abs(py-cy) - halfH + cornerRadius

	outside := math.Hypot(math.Max(dx, 0), math.Max(dy, 0))
	inside := math.Min(math.Max(dx, dy), 0)

	return outside + inside - cornerRadius
}

// RoundedRectMask rasterizes a w×h rounded rectangle into an alpha mask.
// A pixel is fully opaque when its center lies inside the shape and fully
// transparent otherwise; no intermediate coverage is produced.
func RoundedRectMask(w, h int, radius float64) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return mask
	}

	halfW, halfH := float64(w)/2, float64(h)/2
	radius = math.Max(0, math.Min(radius, math.Min(halfW, halfH)))

	for y := range h {
		for x := range w {
			if sdfRRect(float64(x)+0.5, float64(y)+0.5, halfW, halfH, halfW, halfH, radius) <= 0 {
				mask.SetAlpha(x, y, color.Alpha{A: 0xff})
			}
		}
	}
	return mask
}
