package figtag

import (
	"image"
	"os"

	// Decoders registered for image.DecodeConfig
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DimensionReader reports the pixel size of an image file.
type DimensionReader interface {
	Dimensions(path string) (width, height int, err error)
}

// DimensionReaderFunc adapts a function to DimensionReader.
type DimensionReaderFunc func(path string) (int, int, error)

// Dimensions calls f(path).
func (f DimensionReaderFunc) Dimensions(path string) (int, int, error) {
	return f(path)
}

// ImageConfigReader reads dimensions from the image header only, without
// decoding pixel data. Supports PNG, JPEG, GIF, BMP, TIFF and WebP.
type ImageConfigReader struct{}

// Dimensions opens path and decodes its image config.
func (ImageConfigReader) Dimensions(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
