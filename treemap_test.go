package ggicon

import (
	"image"
	"math"
	"testing"
)

func TestLayout_Terminal(t *testing.T) {
	tests := []struct {
		name   string
		bounds Rect
		depth  int
	}{
		{"zero depth", Rect{0, 0, 100, 100}, 0},
		{"negative depth", Rect{0, 0, 100, 100}, -3},
		{"too narrow", Rect{0, 0, 7.9, 100}, 6},
		{"too short", Rect{0, 0, 100, 7.9}, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Layout(tt.bounds, tt.depth, 1, DefaultPalette()); len(got) != 0 {
				t.Errorf("Layout() = %d blocks, want 0", len(got))
			}
		})
	}
}

func TestLayout_SplitDirection(t *testing.T) {
	tests := []struct {
		name   string
		bounds Rect
		want   Rect
	}{
		{"wide splits left", Rect{0, 0, 100, 50}, Rect{0, 0, 48, 50}},
		{"tall splits top", Rect{0, 0, 50, 100}, Rect{0, 0, 50, 48}},
		{"square splits top", Rect{0, 0, 100, 100}, Rect{0, 0, 100, 48}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := Layout(tt.bounds, 1, 2, DefaultPalette())
			if len(blocks) != 1 {
				t.Fatalf("Layout() = %d blocks, want 1", len(blocks))
			}
			if blocks[0].Rect != tt.want {
				t.Errorf("block = %+v, want %+v", blocks[0].Rect, tt.want)
			}
		})
	}
}

// Worked example for a 64px icon: padding 3.84, gap 1. The first split
// lands just below y=32, so the first band ends at pixel row 30.
func TestLayout_Icon64(t *testing.T) {
	blocks := Blocks(64)

	want := []struct {
		pixels image.Rectangle
		color  Color
	}{
		{image.Rect(3, 3, 60, 30), Orange},
		{image.Rect(3, 33, 30, 60), Blue},
		{image.Rect(33, 33, 60, 45), Green},
		{image.Rect(33, 47, 45, 60), Orange},
		{image.Rect(47, 47, 60, 52), Blue},
	}
	if len(blocks) != len(want) {
		t.Fatalf("Blocks(64) = %d blocks, want %d", len(blocks), len(want))
	}
	for i, w := range want {
		b := blocks[i]
		if got := b.Rect.Pixels(); got != w.pixels {
			t.Errorf("block %d pixels = %v, want %v", i, got, w.pixels)
		}
		if b.Color != w.color {
			t.Errorf("block %d color = %v, want %v", i, b.Color, w.color)
		}
		if b.Index != i {
			t.Errorf("block %d index = %d", i, b.Index)
		}
	}

	// First block is the top half of the padded interior.
	first := blocks[0].Rect
	if math.Abs(first.X1-3.84) > 1e-9 || math.Abs(first.X2-60.16) > 1e-9 || math.Abs(first.Y2-31) > 1e-9 {
		t.Errorf("first block = %+v, want top band ending at y=31", first)
	}
}

func TestLayout_Properties(t *testing.T) {
	for _, size := range DefaultSizes() {
		blocks := Blocks(size)
		canvas := image.Rect(0, 0, size, size)

		if len(blocks) == 0 || len(blocks) > DefaultDepth {
			t.Errorf("size %d: %d blocks, want 1..%d", size, len(blocks), DefaultDepth)
		}

		for i, b := range blocks {
			r := b.Rect
			if !(r.X1 < r.X2 && r.Y1 < r.Y2) {
				t.Errorf("size %d: block %d is not ordered: %+v", size, i, r)
			}
			if !b.Rect.Pixels().In(canvas) {
				t.Errorf("size %d: block %d %v outside canvas", size, i, b.Rect.Pixels())
			}
			if b.Color != DefaultPalette().At(i) {
				t.Errorf("size %d: block %d color = %v, want %v", size, i, b.Color, DefaultPalette().At(i))
			}
			for j := i + 1; j < len(blocks); j++ {
				if b.Rect.Pixels().Overlaps(blocks[j].Rect.Pixels()) {
					t.Errorf("size %d: blocks %d and %d overlap: %v %v",
						size, i, j, b.Rect.Pixels(), blocks[j].Rect.Pixels())
				}
			}
			if i > 0 {
				prev := blocks[i-1].Rect
				if r.Width()*r.Height() >= prev.Width()*prev.Height() {
					t.Errorf("size %d: block %d area did not shrink", size, i)
				}
			}
		}
	}
}

func TestLayout_DepthBound(t *testing.T) {
	if got := len(Blocks(1024)); got != DefaultDepth {
		t.Errorf("Blocks(1024) = %d blocks, want %d", got, DefaultDepth)
	}
	if got := len(Blocks(16)); got != 1 {
		t.Errorf("Blocks(16) = %d blocks, want 1", got)
	}
	if got := len(Layout(Rect{0, 0, 1 << 20, 1 << 20}, 20, 1, DefaultPalette())); got != 20 {
		t.Errorf("deep layout = %d blocks, want 20", got)
	}
}

func TestGap(t *testing.T) {
	tests := []struct{ size, want int }{
		{16, 1}, {64, 1}, {79, 1}, {160, 2}, {256, 3}, {512, 6}, {1024, 12},
	}
	for _, tt := range tests {
		if got := Gap(tt.size); got != tt.want {
			t.Errorf("Gap(%d) = %d, want %d", tt.size, got, tt.want)
		}
	}
}
