// Package image handles PNG persistence for rendered icons.
package image

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// ErrNilImage is returned when a nil image is passed to an encoder.
var ErrNilImage = errors.New("image: nil image")

// encoder is shared by all writers. Compression level is fixed so that
// identical pixels always produce identical files.
var encoder = png.Encoder{CompressionLevel: png.DefaultCompression}

// SavePNG saves img as a PNG file, creating or truncating path.
// A partially written file is left in place on failure.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := EncodePNG(f, img); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("image: close file: %w", err)
	}
	return nil
}

// EncodePNG encodes img as PNG to the given writer.
func EncodePNG(w io.Writer, img image.Image) error {
	if img == nil {
		return ErrNilImage
	}
	if err := encoder.Encode(w, img); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}
