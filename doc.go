// Package ggicon renders the treemap application icon.
//
// # Overview
//
// An icon is a square canvas holding a dark rounded rectangle with a
// "cushion" treemap on top: the padded interior is repeatedly halved along
// its longer side, each first half becoming a shaded block, cycling through
// orange, blue and green.
//
// # Quick Start
//
//	c, err := ggicon.Render(256)
//	if err != nil {
//	    return err
//	}
//	err = c.SavePNG("icon_256x256.png")
//
// Or in one step, using the conventional file name:
//
//	path, err := ggicon.WriteIcon(".", 256)
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - A Rect covers pixels [int(X1), int(X2)) × [int(Y1), int(Y2))
//
// # Determinism
//
// Rendering uses no randomness. The same size and options always produce
// the same pixels and the same PNG bytes.
package ggicon
