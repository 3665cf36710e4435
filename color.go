package ggicon

import "image/color"

// Color is an opaque color with 8-bit red, green, and blue components.
type Color struct {
	R, G, B uint8
}

// RGB creates a Color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// NRGBA converts c to a fully opaque color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// Scale multiplies each component by f, truncating toward zero and
// clamping to [0, 255].
func (c Color) Scale(f float64) Color {
	return Color{
		R: scale8(c.R, f),
		G: scale8(c.G, f),
		B: scale8(c.B, f),
	}
}

func scale8(v uint8, f float64) uint8 {
	s := float64(v) * f
	switch {
	case s <= 0:
		return 0
	case s >= 255:
		return 255
	default:
		return uint8(s)
	}
}

// Icon colors.
var (
	Orange = Color{R: 255, G: 120, B: 40}
	Blue   = Color{R: 80, G: 140, B: 210}
	Green  = Color{R: 70, G: 190, B: 120}

	// Slate is the rounded-rectangle background.
	Slate = Color{R: 45, G: 50, B: 60}
)

// Palette is an ordered list of block colors. Block n uses entry n mod len.
type Palette []Color

// At returns the color for the n-th block, wrapping in both directions.
// An empty palette yields Slate.
func (p Palette) At(n int) Color {
	if len(p) == 0 {
		return Slate
	}
	i := n % len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}

// defaultPalette is orange, blue, green.
var defaultPalette = [...]Color{Orange, Blue, Green}

// DefaultPalette returns a fresh copy of the orange, blue, green palette.
func DefaultPalette() Palette {
	p := make(Palette, len(defaultPalette))
	copy(p, defaultPalette[:])
	return p
}
