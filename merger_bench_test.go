package merger

import (
	"testing"

	"github.com/NextChai/ImageMerger/internal/pixel"
)

// BenchmarkPush measures steady-state push cost for several tile sizes.
func BenchmarkPush(b *testing.B) {
	benchmarks := []struct {
		name string
		size int
	}{
		{"32px", 32},
		{"128px", 128},
		{"512px", 512},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			tile, err := pixel.NewBuf(bm.size, bm.size, pixel.FormatRGBA8)
			if err != nil {
				b.Fatal(err)
			}
			m, err := New(bm.size, bm.size, 8, WithExpectedImages(b.N+8))
			if err != nil {
				b.Fatal(err)
			}
			b.SetBytes(int64(len(tile.Data())))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if err := m.Push(tile); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkPushWithGrowth includes the reallocation cost of growing
// the canvas every full row.
func BenchmarkPushWithGrowth(b *testing.B) {
	tile, err := pixel.NewBuf(64, 64, pixel.FormatRGBA8)
	if err != nil {
		b.Fatal(err)
	}
	m, err := New(64, 64, 8)
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(tile.Data())))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := m.Push(tile); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGrow measures a single growth event at various canvas sizes.
func BenchmarkGrow(b *testing.B) {
	benchmarks := []struct {
		name string
		rows int
	}{
		{"1row", 1},
		{"16rows", 16},
		{"64rows", 64},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				m, err := New(64, 64, 8, WithInitialRows(bm.rows))
				if err != nil {
					b.Fatal(err)
				}
				b.StartTimer()

				if err := m.growCanvas(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
