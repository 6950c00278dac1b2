// Package convert is the codec boundary: it decodes PNG/JPEG sources and
// re-encodes them as lossy WebP with fixed parameters.
package convert

import (
	"fmt"
	"image"
	"os"

	"github.com/deepteams/webp"
	"github.com/disintegration/imaging"
)

// Fixed encoding parameters. Not user-configurable.
const (
	// Quality is the lossy quality level on the codec's 0-100 scale.
	Quality = 55
	// Method is the encoder effort level (0-6); 6 is slowest and smallest.
	Method = 6
)

// Options returns the encoder options used for every conversion: lossy,
// quality 55, maximum effort. Preset defaults fill the remaining fields.
func Options() *webp.EncoderOptions {
	opts := webp.OptionsForPreset(webp.PresetDefault, Quality)
	opts.Lossless = false
	opts.Method = Method
	return opts
}

// Decode opens and decodes the source image. EXIF orientation is applied
// so rotated photos keep their displayed orientation.
func Decode(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// Encode writes img to path as lossy WebP, overwriting any existing file.
// A partial output file is removed when encoding or closing fails.
func Encode(img image.Image, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := webp.Encode(out, img, Options()); err != nil {
		out.Close()
		os.Remove(path)
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// File converts one source image to a WebP file at dest and returns the
// decoded pixel bounds for reporting. The source file is never modified or
// removed.
func File(src, dest string) (image.Rectangle, error) {
	img, err := Decode(src)
	if err != nil {
		return image.Rectangle{}, err
	}
	if err := Encode(img, dest); err != nil {
		return image.Rectangle{}, err
	}
	return img.Bounds(), nil
}
