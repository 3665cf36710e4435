package ggicon

import "image"

// minSplitSide is the smallest region side, in pixels, that is still split.
const minSplitSide = 8

// Rect is a region in canvas coordinates. X1 < X2 and Y1 < Y2 for any
// non-empty region.
type Rect struct {
	X1, Y1, X2, Y2 float64
}

// Width returns X2 - X1.
func (r Rect) Width() float64 { return r.X2 - r.X1 }

// Height returns Y2 - Y1.
func (r Rect) Height() float64 { return r.Y2 - r.Y1 }

// Center returns the geometric center of r.
func (r Rect) Center() (cx, cy float64) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Pixels returns the pixel address range covered by r. Coordinates are
// truncated toward zero, so the range is [int(X1), int(X2)) on each axis.
func (r Rect) Pixels() image.Rectangle {
	return image.Rect(int(r.X1), int(r.Y1), int(r.X2), int(r.Y2))
}

// Block is one rectangle of the treemap.
type Block struct {
	Rect  Rect
	Color Color
	// Index is the recursion level that produced the block, starting at 0.
	Index int
}

// Layout subdivides bounds into treemap blocks.
//
// At each level the region is halved along its longer side (ties split
// horizontally, producing a top band). The first half, shrunk by gap on
// the split edge, becomes a block; the second half, shrunk by gap on the
// split edge, is subdivided further. Subdivision stops when the region is
// narrower or shorter than 8 pixels or depth levels have been produced,
// so Layout returns at most depth blocks. Block n is colored palette.At(n).
func Layout(bounds Rect, depth int, gap float64, palette Palette) []Block {
	var blocks []Block
	r := bounds
	for idx := 0; depth > 0; idx++ {
		w, h := r.Width(), r.Height()
		if w < minSplitSide || h < minSplitSide {
			break
		}

		b := Block{Rect: r, Color: palette.At(idx), Index: idx}
		if w > h {
			split := r.X1 + w*0.5
			b.Rect.X2 = split - gap
			r.X1 = split + gap
		} else {
			split := r.Y1 + h*0.5
			b.Rect.Y2 = split - gap
			r.Y1 = split + gap
		}
		blocks = append(blocks, b)
		depth--
	}
	return blocks
}
