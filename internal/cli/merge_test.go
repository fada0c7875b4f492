package cli

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		input   string
		wantW   int
		wantH   int
		wantErr bool
	}{
		{"128x128", 128, 128, false},
		{"64x32", 64, 32, false},
		{"1x1", 1, 1, false},
		{"64X32", 64, 32, false},
		{"", 0, 0, true},
		{"128", 0, 0, true},
		{"128x", 0, 0, true},
		{"x128", 0, 0, true},
		{"0x128", 0, 0, true},
		{"128x-1", 0, 0, true},
		{"axb", 0, 0, true},
		{"1x2x3", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			w, h, err := parseSize(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSize(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("parseSize(%q) = (%d, %d), want (%d, %d)", tt.input, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestApplyConfig(t *testing.T) {
	cmd := newMergeCmd()
	flags := mergeFlags{output: "sheet.png", columns: 4}
	cfg := Config{Columns: 8, Resize: "32x32", Output: "atlas.png"}

	applyConfig(cmd, &flags, cfg)

	if flags.columns != 8 {
		t.Errorf("columns = %d, want 8 from config", flags.columns)
	}
	if flags.resize != "32x32" {
		t.Errorf("resize = %q, want %q from config", flags.resize, "32x32")
	}
	if flags.output != "atlas.png" {
		t.Errorf("output = %q, want %q from config", flags.output, "atlas.png")
	}
}

func TestApplyConfigFlagWins(t *testing.T) {
	cmd := newMergeCmd()
	if err := cmd.Flags().Set("columns", "2"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	flags := mergeFlags{output: "sheet.png", columns: 2}
	cfg := Config{Columns: 8}

	applyConfig(cmd, &flags, cfg)

	if flags.columns != 2 {
		t.Errorf("columns = %d, want 2 (explicit flag beats config)", flags.columns)
	}
}

// writeTile writes a solid-color PNG tile and returns its path.
func writeTile(t *testing.T, dir, name string, w, h int, c color.NRGBA) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	defer func() { _ = f.Close() }()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	return path
}

func TestRunMerge(t *testing.T) {
	dir := t.TempDir()
	inputs := []string{
		writeTile(t, dir, "a.png", 8, 8, color.NRGBA{R: 255, A: 255}),
		writeTile(t, dir, "b.png", 8, 8, color.NRGBA{G: 255, A: 255}),
		writeTile(t, dir, "c.png", 8, 8, color.NRGBA{B: 255, A: 255}),
	}
	output := filepath.Join(dir, "out.png")

	cmd := newMergeCmd()
	cmd.SetContext(context.Background())
	flags := mergeFlags{output: output, columns: 2}

	if err := runMerge(cmd, flags, inputs); err != nil {
		t.Fatalf("runMerge() error = %v", err)
	}

	f, err := os.Open(output)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer func() { _ = f.Close() }()

	out, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	// Two columns of 8px tiles, three images -> 16x16 canvas.
	if out.Bounds().Dx() != 16 || out.Bounds().Dy() != 16 {
		t.Errorf("output = %dx%d, want 16x16", out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestRunMergeResizeNormalizes(t *testing.T) {
	dir := t.TempDir()
	// Mixed sizes only work because --resize normalizes them.
	inputs := []string{
		writeTile(t, dir, "a.png", 8, 8, color.NRGBA{R: 255, A: 255}),
		writeTile(t, dir, "b.png", 20, 14, color.NRGBA{G: 255, A: 255}),
	}
	output := filepath.Join(dir, "out.png")

	cmd := newMergeCmd()
	cmd.SetContext(context.Background())
	flags := mergeFlags{output: output, columns: 2, resize: "4x4"}

	if err := runMerge(cmd, flags, inputs); err != nil {
		t.Fatalf("runMerge() error = %v", err)
	}

	f, err := os.Open(output)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer func() { _ = f.Close() }()

	out, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if out.Bounds().Dx() != 8 || out.Bounds().Dy() != 4 {
		t.Errorf("output = %dx%d, want 8x4", out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestRunMergeMismatchedSizes(t *testing.T) {
	dir := t.TempDir()
	inputs := []string{
		writeTile(t, dir, "a.png", 8, 8, color.NRGBA{R: 255, A: 255}),
		writeTile(t, dir, "b.png", 9, 9, color.NRGBA{G: 255, A: 255}),
	}

	cmd := newMergeCmd()
	cmd.SetContext(context.Background())
	flags := mergeFlags{output: filepath.Join(dir, "out.png"), columns: 2}

	if err := runMerge(cmd, flags, inputs); err == nil {
		t.Error("runMerge() error = nil, want dimension mismatch")
	}
}

func TestRunMergeInvalidColumns(t *testing.T) {
	cmd := newMergeCmd()
	cmd.SetContext(context.Background())
	flags := mergeFlags{output: "out.png", columns: 0}

	if err := runMerge(cmd, flags, []string{"a.png"}); err == nil {
		t.Error("runMerge() error = nil, want invalid columns error")
	}
}
