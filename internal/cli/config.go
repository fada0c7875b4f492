package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds imgmerge defaults loaded from a TOML file. Flags given
// on the command line take precedence over config values.
//
// Example config:
//
//	columns = 6
//	resize = "128x128"
//	output = "atlas.png"
type Config struct {
	// Columns is the number of images per row.
	Columns int `toml:"columns"`

	// Resize is an optional "WxH" tile size every input is resized to.
	Resize string `toml:"resize"`

	// Output is the output file path; the extension picks the encoder.
	Output string `toml:"output"`
}

// loadConfig reads and decodes the TOML config file at path.
// Unknown keys are rejected so typos surface instead of being ignored.
func loadConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}
