// Package merger provides a streaming image-grid compositor.
//
// # Overview
//
// A Merger accepts a sequence of equally-sized images and packs them
// left to right, top to bottom onto a single canvas. The canvas grows
// by whole rows as images arrive, so the caller never has to know the
// final image count in advance. Typical uses are contact sheets,
// sprite atlases, and thumbnail grids built from images produced one
// at a time.
//
// # Quick Start
//
//	import merger "github.com/NextChai/ImageMerger"
//
//	// 64x64 tiles, 8 per row
//	m, err := merger.New(64, 64, 8)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, path := range paths {
//	    img, err := merger.Load(path, merger.FormatRGBA8)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if err := m.Push(img); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
//	// The canvas is valid at every point in the stream.
//	if err := merger.Save("sheet.png", m.Canvas()); err != nil {
//	    log.Fatal(err)
//	}
//
// # Canvas Growth
//
// The canvas is provisioned for one row of images (configurable via
// WithInitialRows or WithExpectedImages) and gains exactly one row of
// capacity whenever a push finds every slot occupied. Growth allocates
// a fresh buffer, copies the old contents into its prefix, and swaps:
// previously placed pixels are preserved byte for byte and new space
// is zero-filled. During the copy both buffers exist, so peak memory
// is transiently twice the canvas size.
//
// # Concurrency
//
// A Merger is not safe for concurrent use. Growth replaces the canvas
// reference, so a concurrent reader may observe a stale buffer; guard
// the whole Merger with a single lock if multiple goroutines push.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Merger, Buf, Format, load/save helpers
//   - internal/pixel: pixel buffers, blit, stdlib image bridging, codecs
//   - internal/cli + cmd/imgmerge: the contact-sheet command line tool
package merger
