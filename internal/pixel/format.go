// Package pixel provides the raw pixel-buffer collaborator for the
// merger package.
//
// Buffers store 8-bit channels interleaved per pixel, rows laid out
// top to bottom. The package covers exactly what the compositor needs:
// allocation, raw access, the blit primitive, conversion to and from
// the standard library image types, and file/stream codecs.
package pixel

// Format represents a pixel storage format.
type Format uint8

const (
	// FormatGray8 is 8-bit grayscale (1 byte per pixel).
	FormatGray8 Format = iota

	// FormatRGB8 is 24-bit RGB (3 bytes per pixel, no alpha).
	FormatRGB8

	// FormatRGBA8 is 32-bit RGBA with straight (non-premultiplied)
	// alpha, matching the byte layout of image.NRGBA. This is the
	// default canvas format.
	FormatRGBA8

	// FormatRGBAPremul is 32-bit RGBA with premultiplied alpha,
	// matching the byte layout of image.RGBA.
	FormatRGBAPremul

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// BytesPerPixel is the number of bytes per pixel.
	BytesPerPixel int

	// Channels is the number of color channels.
	Channels int

	// HasAlpha indicates if the format has an alpha channel.
	HasAlpha bool

	// IsPremultiplied indicates if alpha is premultiplied.
	IsPremultiplied bool

	// IsGrayscale indicates if this is a grayscale format.
	IsGrayscale bool
}

// formatInfoTable contains metadata for each format. All formats use
// 8-bit channels, so BytesPerPixel always equals Channels.
var formatInfoTable = [formatCount]FormatInfo{
	FormatGray8: {
		BytesPerPixel: 1,
		Channels:      1,
		HasAlpha:      false,
		IsGrayscale:   true,
	},
	FormatRGB8: {
		BytesPerPixel: 3,
		Channels:      3,
		HasAlpha:      false,
		IsGrayscale:   false,
	},
	FormatRGBA8: {
		BytesPerPixel: 4,
		Channels:      4,
		HasAlpha:      true,
		IsGrayscale:   false,
	},
	FormatRGBAPremul: {
		BytesPerPixel:   4,
		Channels:        4,
		HasAlpha:        true,
		IsPremultiplied: true,
		IsGrayscale:     false,
	},
}

// IsValid reports whether the format is a recognized pixel format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// Info returns the metadata for the format.
// Returns the zero FormatInfo for invalid formats.
func (f Format) Info() FormatInfo {
	if !f.IsValid() {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns the number of bytes per pixel for the format.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// Channels returns the number of channels per pixel for the format.
func (f Format) Channels() int {
	return f.Info().Channels
}

// RowBytes returns the number of bytes required to store one row of
// width pixels in this format.
func (f Format) RowBytes(width int) int {
	return f.BytesPerPixel() * width
}

const unknownFormat = "Unknown"

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatGray8:
		return "Gray8"
	case FormatRGB8:
		return "RGB8"
	case FormatRGBA8:
		return "RGBA8"
	case FormatRGBAPremul:
		return "RGBAPremul"
	default:
		return unknownFormat
	}
}
