package ggicon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
)

// ErrInvalidSize is returned for icon sizes that are not positive.
var ErrInvalidSize = errors.New("ggicon: size must be positive")

// defaultSizes are the icon resolutions the generator produces.
var defaultSizes = [...]int{16, 32, 64, 128, 256, 512, 1024}

// DefaultSizes returns the standard icon sizes in ascending order.
func DefaultSizes() []int {
	s := make([]int, len(defaultSizes))
	copy(s, defaultSizes[:])
	return s
}

// Gap returns the spacing in pixels between adjacent blocks for an icon
// of the given size: size/80 (integer division), but at least 1.
func Gap(size int) int {
	return max(1, size/80)
}

// Bounds returns the treemap region of a size×size icon inset by padding,
// a fraction of size, on each side.
func Bounds(size int, padding float64) Rect {
	s := float64(size)
	pad := s * padding
	return Rect{X1: pad, Y1: pad, X2: s - pad, Y2: s - pad}
}

// Blocks returns the treemap blocks Render would draw for size.
func Blocks(size int, opts ...Option) []Block {
	o := newOptions(opts)
	return Layout(Bounds(size, o.padding), o.depth, float64(Gap(size)), o.palette)
}

// Render draws a size×size treemap icon: a rounded-rectangle background
// with cushion-shaded blocks over its padded interior.
func Render(size int, opts ...Option) (*Canvas, error) {
	o := newOptions(opts)

	c, err := NewCanvas(size)
	if err != nil {
		return nil, err
	}
	c.FillBackground(o.background)

	log := Logger()
	debug := log.Enabled(context.Background(), slog.LevelDebug)
	blocks := Layout(Bounds(size, o.padding), o.depth, float64(Gap(size)), o.palette)
	for _, b := range blocks {
		if debug {
			log.Debug("shading block",
				"size", size,
				"index", b.Index,
				"pixels", b.Rect.Pixels().String(),
				"color", fmt.Sprintf("#%02x%02x%02x", b.Color.R, b.Color.G, b.Color.B))
		}
		Cushion(c, b.Rect, b.Color)
	}
	return c, nil
}

// FileName returns the conventional file name for an icon of the given
// size, for example "icon_64x64.png".
func FileName(size int) string {
	return fmt.Sprintf("icon_%dx%d.png", size, size)
}

// WriteIcon renders an icon of the given size and saves it as a PNG file
// named by FileName in dir. It returns the path written.
func WriteIcon(dir string, size int, opts ...Option) (string, error) {
	c, err := Render(size, opts...)
	if err != nil {
		return "", fmt.Errorf("ggicon: write icon %d: %w", size, err)
	}

	path := filepath.Join(dir, FileName(size))
	if err := c.SavePNG(path); err != nil {
		return "", fmt.Errorf("ggicon: write icon %d: %w", size, err)
	}

	Logger().Info("icon written", "size", size, "path", path)
	return path, nil
}
