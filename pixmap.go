package merger

import "github.com/NextChai/ImageMerger/internal/pixel"

// Buf is a public alias for the internal pixel buffer.
// It represents a rectangular pixel buffer with 8-bit interleaved
// channels stored row-major.
type Buf = pixel.Buf

// Format represents a pixel storage format.
type Format = pixel.Format

// Pixel formats.
const (
	// FormatGray8 is 8-bit grayscale (1 byte per pixel).
	FormatGray8 = pixel.FormatGray8

	// FormatRGB8 is 24-bit RGB (3 bytes per pixel, no alpha).
	FormatRGB8 = pixel.FormatRGB8

	// FormatRGBA8 is 32-bit RGBA with straight alpha (4 bytes per
	// pixel). This is the default canvas format.
	FormatRGBA8 = pixel.FormatRGBA8

	// FormatRGBAPremul is 32-bit RGBA with premultiplied alpha.
	FormatRGBAPremul = pixel.FormatRGBAPremul
)

// Buffer and format errors re-exported from the pixel package.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = pixel.ErrInvalidDimensions

	// ErrInvalidFormat is returned when a pixel format is not recognized.
	ErrInvalidFormat = pixel.ErrInvalidFormat

	// ErrUnsupportedFormat is returned for unknown image container formats.
	ErrUnsupportedFormat = pixel.ErrUnsupportedFormat
)

// NewBuf creates a new zero-filled pixel buffer.
func NewBuf(width, height int, format Format) (*Buf, error) {
	return pixel.NewBuf(width, height, format)
}
