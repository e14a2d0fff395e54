// Package imaging is the thin layer between image files on disk and the
// byte-oriented codecs: it decodes images, re-encodes them with the standard
// lossy and lossless formats, scales previews and reports file sizes.
package imaging

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"os"

	"github.com/nfnt/resize"
)

// DefaultJPEGQuality is the quality used for the lossy re-encode.
const DefaultJPEGQuality = 50

// Load decodes the image stored at path. Any format registered with the
// image package (PNG, JPEG and GIF here) is accepted.
func Load(path string) (image.Image, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	img, _, err := image.Decode(in)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// Pixels returns the raw 8-bit RGBA samples of img, row by row, with no
// padding between rows.
func Pixels(img image.Image) []byte {
	bounds := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && rgba.Stride == 4*bounds.Dx() {
		out := make([]byte, 4*bounds.Dx()*bounds.Dy())
		copy(out, rgba.Pix)
		return out
	}

	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba.Pix
}

// WriteJPEG encodes img as a JPEG of the given quality (1-100) to path.
func WriteJPEG(path string, img image.Image, quality int) error {
	if quality < 1 || quality > 100 {
		return fmt.Errorf("jpeg quality must be between 1 and 100, got %d", quality)
	}
	return writeFile(path, func(out *os.File) error {
		return jpeg.Encode(out, img, &jpeg.Options{Quality: quality})
	})
}

// WritePNG encodes img losslessly as a PNG to path.
func WritePNG(path string, img image.Image) error {
	encoder := png.Encoder{CompressionLevel: png.BestCompression}
	return writeFile(path, func(out *os.File) error {
		return encoder.Encode(out, img)
	})
}

func writeFile(path string, encode func(*os.File) error) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(out); err != nil {
		out.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return out.Close()
}

// FileSize returns the size in bytes of the file at path.
func FileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return -1, err
	}
	return info.Size(), nil
}

// ResizeToFit scales img down, keeping its aspect ratio, so that it fits
// within maxWidth × maxHeight. An image that already fits is returned as is.
func ResizeToFit(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= maxWidth && height <= maxHeight {
		return img
	}

	newWidth, newHeight := maxWidth, height*maxWidth/width
	if height > width {
		newWidth, newHeight = width*maxHeight/height, maxHeight
	}

	// Scaling to one bound can still leave the other one exceeded.
	if newHeight > maxHeight {
		newWidth, newHeight = width*maxHeight/height, maxHeight
	}
	if newWidth > maxWidth {
		newWidth, newHeight = maxWidth, height*maxWidth/width
	}
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}

	return resize.Resize(uint(newWidth), uint(newHeight), img, resize.Lanczos3)
}
