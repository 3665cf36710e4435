package ggicon

import (
	"image"
	"image/color"

	intImage "github.com/gogpu/ggicon/internal/image"
)

// Canvas is a square, non-premultiplied RGBA pixel buffer.
// A new canvas is fully transparent.
type Canvas struct {
	size int
	data []uint8 // RGBA format, 4 bytes per pixel
}

// NewCanvas creates a transparent size×size canvas.
func NewCanvas(size int) (*Canvas, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	return &Canvas{
		size: size,
		data: make([]uint8, size*size*4),
	}, nil
}

// Size returns the side length of the canvas in pixels.
func (c *Canvas) Size() int {
	return c.size
}

// Data returns the raw pixel data (RGBA format).
func (c *Canvas) Data() []uint8 {
	return c.data
}

// SetPixel sets an opaque pixel. Out-of-bounds writes are ignored.
func (c *Canvas) SetPixel(x, y int, col Color) {
	if x < 0 || x >= c.size || y < 0 || y >= c.size {
		return
	}
	i := (y*c.size + x) * 4
	c.data[i+0] = col.R
	c.data[i+1] = col.G
	c.data[i+2] = col.B
	c.data[i+3] = 0xff
}

// NRGBAAt returns the pixel at (x, y), or transparent when out of bounds.
func (c *Canvas) NRGBAAt(x, y int) color.NRGBA {
	if x < 0 || x >= c.size || y < 0 || y >= c.size {
		return color.NRGBA{}
	}
	i := (y*c.size + x) * 4
	return color.NRGBA{R: c.data[i+0], G: c.data[i+1], B: c.data[i+2], A: c.data[i+3]}
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.NRGBAAt(x, y)
}

// Set implements the draw.Image interface.
func (c *Canvas) Set(x, y int, col color.Color) {
	if x < 0 || x >= c.size || y < 0 || y >= c.size {
		return
	}
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	i := (y*c.size + x) * 4
	c.data[i+0] = n.R
	c.data[i+1] = n.G
	c.data[i+2] = n.B
	c.data[i+3] = n.A
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.size, c.size)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}

// ToImage copies the canvas into a new image.NRGBA.
func (c *Canvas) ToImage() *image.NRGBA {
	img := image.NewNRGBA(c.Bounds())
	copy(img.Pix, c.data)
	return img
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	return intImage.SavePNG(path, c.ToImage())
}
