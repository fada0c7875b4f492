package merger

import (
	"log/slog"

	"github.com/NextChai/ImageMerger/internal/pixel"
)

// growCanvas adds capacity for exactly one more row of images.
//
// A new buffer one image-height taller is allocated, the old contents
// are copied into its prefix byte for byte, and the canvas reference
// is swapped. The remainder of the new buffer stays zero-filled. The
// old canvas is untouched until the swap, so a failed growth leaves
// the Merger in its prior state. Both buffers coexist for the duration
// of the copy.
func (m *Merger) growCanvas() error {
	newRows := m.totalRows + 1

	next, err := pixel.NewBuf(m.canvas.Width(), m.imageHeight*newRows, m.canvas.Format())
	if err != nil {
		return err
	}
	copy(next.Data(), m.canvas.Data())

	Logger().Debug("canvas grown",
		slog.Int("rows", newRows),
		slog.Int("height", next.Height()),
		slog.Int("bytes", len(next.Data())))

	m.canvas = next
	m.totalRows = newRows
	return nil
}
