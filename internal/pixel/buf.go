package pixel

import "errors"

// Common errors for buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("pixel: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("pixel: invalid format")

	// ErrFormatMismatch is returned when two buffers in an operation
	// have different pixel formats.
	ErrFormatMismatch = errors.New("pixel: format mismatch")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("pixel: data buffer too small")

	// ErrOutOfBounds is returned when pixel coordinates are outside buffer bounds.
	ErrOutOfBounds = errors.New("pixel: coordinates out of bounds")
)

// Buf is a rectangular pixel buffer.
//
// Pixel data is stored row-major with channels interleaved: the bytes
// of pixel (x, y) start at y*Stride() + x*Format().BytesPerPixel().
// Rows are packed, so the buffer holds exactly
// width * height * channels bytes. A freshly allocated buffer is
// zero-filled (fully transparent black).
//
// Buf is not safe for concurrent mutation; the caller owns
// synchronization when sharing a buffer across goroutines.
type Buf struct {
	data   []byte
	width  int
	height int
	stride int
	format Format
}

// NewBuf creates a new zero-filled buffer with the given dimensions and
// format. Returns an error if the dimensions are non-positive or the
// format is unknown.
func NewBuf(width, height int, format Format) (*Buf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}

	stride := format.RowBytes(width)
	return &Buf{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// FromRaw creates a Buf wrapping existing data without copying.
// The caller must ensure data remains valid for the lifetime of the Buf.
// The data must hold at least format.RowBytes(width)*height bytes.
func FromRaw(data []byte, width, height int, format Format) (*Buf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}

	required := format.RowBytes(width) * height
	if len(data) < required {
		return nil, ErrDataTooSmall
	}

	return &Buf{
		data:   data[:required],
		width:  width,
		height: height,
		stride: format.RowBytes(width),
		format: format,
	}, nil
}

// Clone creates a deep copy of the buffer.
func (b *Buf) Clone() *Buf {
	data := make([]byte, len(b.data))
	copy(data, b.data)

	return &Buf{
		data:   data,
		width:  b.width,
		height: b.height,
		stride: b.stride,
		format: b.format,
	}
}

// Width returns the buffer width in pixels.
func (b *Buf) Width() int {
	return b.width
}

// Height returns the buffer height in pixels.
func (b *Buf) Height() int {
	return b.height
}

// Stride returns the number of bytes per row.
func (b *Buf) Stride() int {
	return b.stride
}

// Format returns the pixel format.
func (b *Buf) Format() Format {
	return b.format
}

// Bounds returns the buffer dimensions as (width, height).
func (b *Buf) Bounds() (int, int) {
	return b.width, b.height
}

// Data returns the raw pixel data slice. Modifying it modifies the buffer.
func (b *Buf) Data() []byte {
	return b.data
}

// RowBytes returns a slice of the pixel data for row y.
// Returns nil if y is out of bounds.
func (b *Buf) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride
	return b.data[start : start+b.stride]
}

// PixelOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if coordinates are out of bounds.
func (b *Buf) PixelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.stride + x*b.format.BytesPerPixel()
}

// PixelBytes returns a slice of the raw bytes for pixel (x, y).
// Returns nil if coordinates are out of bounds.
func (b *Buf) PixelBytes(x, y int) []byte {
	offset := b.PixelOffset(x, y)
	if offset < 0 {
		return nil
	}
	return b.data[offset : offset+b.format.BytesPerPixel()]
}

// SetPixelBytes sets the raw bytes for pixel (x, y).
// Returns ErrOutOfBounds if coordinates are outside buffer bounds.
func (b *Buf) SetPixelBytes(x, y int, px []byte) error {
	offset := b.PixelOffset(x, y)
	if offset < 0 {
		return ErrOutOfBounds
	}
	copy(b.data[offset:offset+b.format.BytesPerPixel()], px)
	return nil
}
