package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	merger "github.com/NextChai/ImageMerger"
)

// mergeFlags holds the flag values for the merge command.
type mergeFlags struct {
	output     string
	columns    int
	resize     string
	configPath string
}

// newMergeCmd creates the merge command.
func newMergeCmd() *cobra.Command {
	var flags mergeFlags

	cmd := &cobra.Command{
		Use:   "merge [flags] <image>...",
		Short: "Pack images into a single grid image",
		Long: `Merge decodes the given images in order and packs them left to right,
top to bottom onto a single canvas, then writes the result.

All inputs must share the same dimensions unless --resize normalizes
them to a uniform tile size. The canvas grows by whole rows as images
arrive, so any number of inputs works with any column count.`,
		Example: `  # 4 columns (default), PNG output
  imgmerge merge -o sheet.png *.png

  # 6 columns of 128x128 thumbnails from mixed-size photos
  imgmerge merge -c 6 --resize 128x128 -o thumbs.jpg photos/*.jpg`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.configPath != "" {
				cfg, err := loadConfig(flags.configPath)
				if err != nil {
					return err
				}
				applyConfig(cmd, &flags, cfg)
			}
			return runMerge(cmd, flags, args)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "sheet.png", "output file (extension picks the encoder)")
	cmd.Flags().IntVarP(&flags.columns, "columns", "c", 4, "number of images per row")
	cmd.Flags().StringVar(&flags.resize, "resize", "", "resize every input to WxH before packing")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "TOML file with default flag values")

	return cmd
}

// applyConfig fills in flag values from cfg for flags the user did not
// set explicitly.
func applyConfig(cmd *cobra.Command, flags *mergeFlags, cfg Config) {
	if cfg.Columns > 0 && !cmd.Flags().Changed("columns") {
		flags.columns = cfg.Columns
	}
	if cfg.Resize != "" && !cmd.Flags().Changed("resize") {
		flags.resize = cfg.Resize
	}
	if cfg.Output != "" && !cmd.Flags().Changed("output") {
		flags.output = cfg.Output
	}
}

// runMerge decodes the inputs, streams them through a merger, and
// writes the packed canvas.
func runMerge(cmd *cobra.Command, flags mergeFlags, inputs []string) error {
	logger := loggerFromContext(cmd.Context())

	if flags.columns < 1 {
		return fmt.Errorf("columns must be at least 1, got %d", flags.columns)
	}

	var resizeW, resizeH int
	if flags.resize != "" {
		var err error
		resizeW, resizeH, err = parseSize(flags.resize)
		if err != nil {
			return err
		}
	}

	track := newProgress(logger)

	var m *merger.Merger
	for i, path := range inputs {
		img, err := imaging.Open(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		if flags.resize != "" {
			img = imaging.Resize(img, resizeW, resizeH, imaging.Lanczos)
		}

		if m == nil {
			// The first input fixes the tile size for the whole run.
			bounds := img.Bounds()
			m, err = merger.New(bounds.Dx(), bounds.Dy(), flags.columns,
				merger.WithExpectedImages(len(inputs)))
			if err != nil {
				return err
			}
			logger.Debug("tile size fixed",
				"width", bounds.Dx(), "height", bounds.Dy(), "columns", flags.columns)
		}

		if err := m.PushImage(img); err != nil {
			return fmt.Errorf("pack %s: %w", path, err)
		}
		logger.Debug("packed", "index", i, "path", path)
	}

	if err := merger.Save(flags.output, m.Canvas()); err != nil {
		return fmt.Errorf("write %s: %w", flags.output, err)
	}

	track.done(fmt.Sprintf("Packed %d images into %s (%dx%d)",
		m.Len(), flags.output, m.Width(), m.Height()))
	return nil
}

// parseSize parses a "WxH" dimension string.
func parseSize(s string) (w, h int, err error) {
	parts := strings.Split(strings.ToLower(s), "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q (expected WxH)", s)
	}
	w, err = strconv.Atoi(parts[0])
	if err != nil || w < 1 {
		return 0, 0, fmt.Errorf("invalid width in %q", s)
	}
	h, err = strconv.Atoi(parts[1])
	if err != nil || h < 1 {
		return 0, 0, fmt.Errorf("invalid height in %q", s)
	}
	return w, h, nil
}
