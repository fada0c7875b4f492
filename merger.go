package merger

import (
	"fmt"
	"image"

	"github.com/NextChai/ImageMerger/internal/pixel"
)

// Merger composites a stream of equally-sized images onto a single
// growable canvas, left to right, top to bottom.
//
// All pushed images must match the dimensions and pixel format fixed
// at construction. The canvas is valid and readable at every point in
// the stream; there is no finalize step.
//
// Merger is not safe for concurrent use.
type Merger struct {
	canvas *pixel.Buf // replaced wholesale on growth, never resized in place

	imageWidth   int
	imageHeight  int
	imagesPerRow int

	numImages       int
	lastPastedIndex int // -1 until the first image is placed
	totalRows       int
}

// New creates a Merger for images of the given size, packed
// imagesPerRow per row. The canvas is provisioned for one row of
// images unless WithInitialRows or WithExpectedImages says otherwise,
// and starts fully zero-filled (transparent black).
func New(imageWidth, imageHeight, imagesPerRow int, opts ...Option) (*Merger, error) {
	if imageWidth <= 0 || imageHeight <= 0 {
		return nil, fmt.Errorf("%w: image size %dx%d", pixel.ErrInvalidDimensions, imageWidth, imageHeight)
	}
	if imagesPerRow < 1 {
		return nil, fmt.Errorf("%w: %d images per row", ErrInvalidLayout, imagesPerRow)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.initialRows < 1 {
		return nil, fmt.Errorf("%w: %d initial rows", ErrInvalidLayout, o.initialRows)
	}

	rows := o.initialRows
	if o.expectedImages > 0 {
		if need := (o.expectedImages + imagesPerRow - 1) / imagesPerRow; need > rows {
			rows = need
		}
	}

	canvas, err := pixel.NewBuf(imageWidth*imagesPerRow, imageHeight*rows, o.format)
	if err != nil {
		return nil, err
	}

	return &Merger{
		canvas:          canvas,
		imageWidth:      imageWidth,
		imageHeight:     imageHeight,
		imagesPerRow:    imagesPerRow,
		lastPastedIndex: -1,
		totalRows:       rows,
	}, nil
}

// Push places the next image onto the canvas.
//
// The n-th pushed image (0-based) always lands at column
// n % imagesPerRow, row n / imagesPerRow, regardless of when the
// canvas grew. Destination pixels are fully overwritten, no blending.
// On any error the canvas and counters are left untouched.
func (m *Merger) Push(img *pixel.Buf) error {
	if img.Width() != m.imageWidth || img.Height() != m.imageHeight {
		return fmt.Errorf("%w: got %dx%d, want %dx%d",
			ErrDimensionMismatch, img.Width(), img.Height(), m.imageWidth, m.imageHeight)
	}
	if img.Format() != m.canvas.Format() {
		return fmt.Errorf("%w: got %v, want %v",
			ErrFormatMismatch, img.Format(), m.canvas.Format())
	}

	x, y, err := m.nextPasteCoordinates()
	if err != nil {
		return err
	}
	if err := pixel.Blit(m.canvas, img, x, y); err != nil {
		return err
	}

	m.lastPastedIndex++
	m.numImages++
	return nil
}

// PushImage converts img to the canvas pixel format and pushes it.
// The image's dimensions must match the Merger's image size exactly.
func (m *Merger) PushImage(img image.Image) error {
	bounds := img.Bounds()
	if bounds.Dx() != m.imageWidth || bounds.Dy() != m.imageHeight {
		return fmt.Errorf("%w: got %dx%d, want %dx%d",
			ErrDimensionMismatch, bounds.Dx(), bounds.Dy(), m.imageWidth, m.imageHeight)
	}

	buf, err := pixel.FromImage(img, m.canvas.Format())
	if err != nil {
		return err
	}
	return m.Push(buf)
}

// BulkPush pushes images in order, exactly as repeated Push calls
// would. Every image is validated up front, so a dimension or format
// mismatch anywhere in the slice leaves the canvas and counters
// untouched.
func (m *Merger) BulkPush(imgs []*pixel.Buf) error {
	for i, img := range imgs {
		if img.Width() != m.imageWidth || img.Height() != m.imageHeight {
			return fmt.Errorf("image %d: %w: got %dx%d, want %dx%d",
				i, ErrDimensionMismatch, img.Width(), img.Height(), m.imageWidth, m.imageHeight)
		}
		if img.Format() != m.canvas.Format() {
			return fmt.Errorf("image %d: %w: got %v, want %v",
				i, ErrFormatMismatch, img.Format(), m.canvas.Format())
		}
	}
	for _, img := range imgs {
		if err := m.Push(img); err != nil {
			return err
		}
	}
	return nil
}

// RemoveImage removes the image at the given insertion index.
//
// Whether later images shift to fill the gap or the slot is simply
// cleared has not been decided, so the call is rejected.
func (m *Merger) RemoveImage(index int) error {
	return fmt.Errorf("remove image %d: %w", index, ErrNotImplemented)
}

// Len returns the number of images pasted so far.
func (m *Merger) Len() int {
	return m.numImages
}

// Canvas returns the backing canvas buffer. The returned buffer is the
// live canvas until the next growth event replaces it; callers that
// keep pushing should re-fetch it rather than hold the reference.
func (m *Merger) Canvas() *pixel.Buf {
	return m.canvas
}

// Image returns the canvas as a standard library image, suitable for
// handing to any encoder. The pixel data is copied.
func (m *Merger) Image() image.Image {
	return m.canvas.Image()
}

// Width returns the canvas width in pixels. Fixed at construction.
func (m *Merger) Width() int {
	return m.canvas.Width()
}

// Height returns the current canvas height in pixels.
func (m *Merger) Height() int {
	return m.canvas.Height()
}

// Rows returns the number of image rows the canvas currently has
// capacity for.
func (m *Merger) Rows() int {
	return m.totalRows
}

// PerRow returns the number of images packed per row.
func (m *Merger) PerRow() int {
	return m.imagesPerRow
}

// ImageSize returns the fixed dimensions every pushed image must have.
func (m *Merger) ImageSize() (width, height int) {
	return m.imageWidth, m.imageHeight
}

// nextPasteCoordinates returns the pixel-space destination of the next
// image, growing the canvas first when every slot is occupied. Growth
// is eager: it happens before the coordinate is computed, never after
// an out-of-bounds write.
func (m *Merger) nextPasteCoordinates() (x, y int, err error) {
	available := m.imagesPerRow*m.totalRows - m.numImages
	if available == 0 {
		if err := m.growCanvas(); err != nil {
			return 0, 0, err
		}
	}

	idx := m.lastPastedIndex + 1
	x = (idx % m.imagesPerRow) * m.imageWidth
	y = (idx / m.imagesPerRow) * m.imageHeight
	return x, y, nil
}
