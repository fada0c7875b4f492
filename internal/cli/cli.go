// Package cli implements the imgmerge command-line interface.
//
// imgmerge builds contact sheets and sprite atlases: it decodes a list
// of input images, optionally resizes them to a uniform tile size, and
// streams them through a merger onto a single output canvas.
//
// All commands support --verbose (-v) for debug-level logging. The
// logger is passed through context.Context using the charmbracelet/log
// library.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// Typically called by the main package with values injected via
// ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the imgmerge CLI and returns an error if any command
// fails. The logger is attached to the command context and accessible
// to all commands via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "imgmerge",
		Short:        "imgmerge packs images into a single grid image",
		Long:         `imgmerge builds contact sheets, sprite atlases, and thumbnail grids by packing equally-sized images left to right, top to bottom onto one canvas.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("imgmerge %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newMergeCmd())

	return root.ExecuteContext(ctx)
}
