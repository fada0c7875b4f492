package merger

import "errors"

// Errors returned by Merger operations.
var (
	// ErrDimensionMismatch is returned when a pushed image's width or
	// height differs from the dimensions the Merger was constructed
	// with. The push is rejected before any pixel is written.
	ErrDimensionMismatch = errors.New("merger: image dimensions do not match")

	// ErrFormatMismatch is returned when a pushed image's pixel format
	// differs from the canvas format.
	ErrFormatMismatch = errors.New("merger: image format does not match canvas")

	// ErrInvalidLayout is returned when the grid layout is invalid:
	// fewer than one image per row or fewer than one initial row.
	ErrInvalidLayout = errors.New("merger: invalid grid layout")

	// ErrNotImplemented is returned by declared operations whose
	// behavior has not been specified yet.
	ErrNotImplemented = errors.New("merger: operation not implemented")
)
