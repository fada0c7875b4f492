package merger

import "github.com/NextChai/ImageMerger/internal/pixel"

// Option configures a Merger during creation.
//
// Example:
//
//	// Default: one initial row, RGBA canvas
//	m, err := merger.New(64, 64, 8)
//
//	// Pre-size for a known image count
//	m, err := merger.New(64, 64, 8, merger.WithExpectedImages(100))
type Option func(*options)

// options holds optional configuration for Merger creation.
type options struct {
	initialRows    int
	expectedImages int
	format         pixel.Format
}

// defaultOptions returns the default Merger options.
func defaultOptions() options {
	return options{
		initialRows: 1,
		format:      pixel.FormatRGBA8,
	}
}

// WithInitialRows provisions the canvas for n rows of images up front.
// n must be at least 1. Growth past the initial capacity still happens
// one row at a time.
func WithInitialRows(n int) Option {
	return func(o *options) {
		o.initialRows = n
	}
}

// WithExpectedImages pre-sizes the canvas for n images, rounding up to
// whole rows. This avoids intermediate growth copies when the caller
// knows the image count in advance; pushing more than n images is
// still allowed and grows the canvas as usual. Values below 1 are
// ignored.
func WithExpectedImages(n int) Option {
	return func(o *options) {
		o.expectedImages = n
	}
}

// WithFormat sets the canvas pixel format. Every pushed buffer must
// use the same format. The default is FormatRGBA8.
func WithFormat(f Format) Option {
	return func(o *options) {
		o.format = f
	}
}
