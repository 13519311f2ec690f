package sample

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/mcuadros/go-defaults"
)

// OptionsFile is read from the configuration directory when present.
const OptionsFile = "sample.toml"

// Options tune the sample implementation.
type Options struct {
	// DecisionThreshold is the similarity at or above which a search
	// decides the probe's source is among the candidates.
	DecisionThreshold float64 `toml:"decision_threshold" default:"50"`
	// MaxImagesPerTemplate caps the images hashed into one template.
	MaxImagesPerTemplate int `toml:"max_images_per_template" default:"16"`
}

// DefaultOptions returns options with every default applied.
func DefaultOptions() Options {
	var o Options
	defaults.SetDefaults(&o)
	return o
}

// LoadOptions reads OptionsFile from configDir over the defaults. A missing
// file is not an error.
func LoadOptions(configDir string) (Options, error) {
	o := DefaultOptions()
	if configDir == "" {
		return o, nil
	}
	path := filepath.Join(configDir, OptionsFile)
	md, err := toml.DecodeFile(path, &o)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultOptions(), nil
	}
	if err != nil {
		return o, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return o, fmt.Errorf("unknown keys in %s: %v", path, undecoded)
	}
	if o.MaxImagesPerTemplate < 1 {
		return o, fmt.Errorf("%s: max_images_per_template must be positive", path)
	}
	return o, nil
}
