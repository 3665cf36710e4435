package ggicon

// Defaults for icon rendering.
const (
	// DefaultDepth is the maximum number of treemap blocks.
	DefaultDepth = 6

	// DefaultPadding is the margin around the treemap, as a fraction of the
	// icon size, applied on each side.
	DefaultPadding = 0.06
)

// Option configures icon rendering.
//
// Example:
//
//	// Default icon
//	c, err := ggicon.Render(256)
//
//	// Deeper treemap on a black background
//	c, err := ggicon.Render(256, ggicon.WithDepth(8), ggicon.WithBackground(ggicon.RGB(0, 0, 0)))
type Option func(*options)

// options holds rendering configuration.
type options struct {
	depth      int
	padding    float64
	palette    Palette
	background Color
}

// defaultOptions returns the default rendering options.
func defaultOptions() options {
	return options{
		depth:      DefaultDepth,
		padding:    DefaultPadding,
		palette:    DefaultPalette(),
		background: Slate,
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithDepth sets the maximum number of treemap blocks.
// Values below zero are treated as zero.
func WithDepth(depth int) Option {
	return func(o *options) {
		o.depth = max(depth, 0)
	}
}

// WithPadding sets the margin around the treemap as a fraction of the icon
// size. The value is clamped to [0, 0.5).
func WithPadding(fraction float64) Option {
	return func(o *options) {
		switch {
		case fraction < 0:
			fraction = 0
		case fraction >= 0.5:
			fraction = 0.49
		}
		o.padding = fraction
	}
}

// WithPalette sets the block colors. An empty palette keeps the default.
func WithPalette(p Palette) Option {
	return func(o *options) {
		if len(p) == 0 {
			return
		}
		o.palette = append(Palette(nil), p...)
	}
}

// WithBackground sets the rounded-rectangle background color.
func WithBackground(c Color) Option {
	return func(o *options) {
		o.background = c
	}
}
