package merger

import (
	"image"
	"io"

	"github.com/NextChai/ImageMerger/internal/pixel"
)

// Load reads and decodes the image file at path into a buffer with the
// given pixel format. Supported containers: PNG, JPEG, GIF, BMP, TIFF,
// WebP.
func Load(path string, format Format) (*Buf, error) {
	return pixel.Load(path, format)
}

// Decode reads an image from r, auto-detecting the container format,
// and converts it into a buffer with the given pixel format.
func Decode(r io.Reader, format Format) (*Buf, error) {
	return pixel.Decode(r, format)
}

// FromImage converts any image.Image into a buffer with the given
// pixel format.
func FromImage(img image.Image, format Format) (*Buf, error) {
	return pixel.FromImage(img, format)
}

// Save encodes b into the file at path, choosing the container format
// from the file extension. Supported extensions: .png, .jpg, .jpeg,
// .bmp, .tif, .tiff.
func Save(path string, b *Buf) error {
	return pixel.Save(path, b)
}

// Encode writes b to w in the named container format ("png", "jpeg",
// "bmp", "tiff").
func Encode(w io.Writer, b *Buf, format string) error {
	return pixel.Encode(w, b, format)
}
