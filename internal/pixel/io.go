package pixel

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// ErrUnsupportedFormat is returned when the image container format is
// not supported.
var ErrUnsupportedFormat = errors.New("pixel: unsupported image format")

// jpegQuality is the encode quality used for JPEG output.
const jpegQuality = 95

// Decode reads an image from r, auto-detecting the container format,
// and converts it into a buffer with the given pixel format.
// Supported containers: PNG, JPEG, GIF, BMP, TIFF, WebP.
func Decode(r io.Reader, format Format) (*Buf, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("pixel: decode: %w", err)
	}
	return FromImage(img, format)
}

// Load reads and decodes the image file at path into a buffer with the
// given pixel format.
func Load(path string, format Format) (*Buf, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("pixel: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f, format)
}

// Encode writes b to w in the named container format.
// Supported formats: "png", "jpeg", "bmp", "tiff".
func Encode(w io.Writer, b *Buf, format string) error {
	img := b.Image()
	switch strings.ToLower(format) {
	case "png":
		return png.Encode(w, img)
	case "jpg", "jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	case "bmp":
		return bmp.Encode(w, img)
	case "tif", "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Save encodes b into the file at path, choosing the container format
// from the file extension.
func Save(path string, b *Buf) error {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return fmt.Errorf("%w: %q has no extension", ErrUnsupportedFormat, path)
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("pixel: create file: %w", err)
	}

	if err := Encode(f, b, ext); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
