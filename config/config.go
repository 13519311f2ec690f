// Package config holds the settings of a validation run.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/mcuadros/go-defaults"
	"go.uber.org/multierr"
)

// Config is the active configuration. LoadDefaultConfig or LoadConfig
// replace it; callers may adjust fields afterwards, as with Workers below.
//
//	config.LoadDefaultConfig()
//	config.Config.Workers = runtime.NumCPU()
var Config *Settings

// Settings describes where validation reads images from, where it writes
// templates and logs, and which implementation it drives.
type Settings struct {
	// ImageDir holds the validation images named by the fixture table.
	ImageDir string `toml:"image_dir" default:"images"`
	// OutputDir receives templates and logs.
	OutputDir string `toml:"output_dir" default:"output"`
	// ConfigDir is handed to the implementation as read-only configuration.
	ConfigDir string `toml:"config_dir" default:"config"`
	// DatabaseDir holds the reference database.
	DatabaseDir string `toml:"database_dir" default:"output/database"`

	// Implementation is the registered name of the implementation.
	Implementation string `toml:"implementation" default:"sample"`

	// Workers bounds concurrent template creation. Zero uses every CPU.
	Workers int `toml:"workers"`

	MaxCandidates            uint16 `toml:"max_candidates" default:"100"`
	ReferenceDatabaseMaxSize uint64 `toml:"reference_database_max_size" default:"1073741824"`

	// ResultsDatabase is an sqlite file recording every run. Empty disables it.
	ResultsDatabase string `toml:"results_database"`

	Log LogSettings `toml:"log"`
}

// LogSettings configures logging.
type LogSettings struct {
	// Dir receives rotated log files. Empty logs to stderr only.
	Dir          string        `toml:"dir"`
	Level        string        `toml:"level" default:"info"`
	RotationTime time.Duration `toml:"rotation_time" default:"24h"`
	MaxAge       time.Duration `toml:"max_age" default:"168h"`
}

// Default returns settings with every default applied.
func Default() *Settings {
	s := new(Settings)
	defaults.SetDefaults(s)
	s.ApplyComputed()
	return s
}

// Load reads a TOML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (*Settings, error) {
	s := Default()
	md, err := toml.DecodeFile(path, s)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown keys in config %s: %v", path, undecoded)
	}
	s.ApplyComputed()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadDefaultConfig sets Config to the defaults.
func LoadDefaultConfig() {
	Config = Default()
}

// LoadConfig sets Config from a TOML file.
func LoadConfig(path string) error {
	s, err := Load(path)
	if err != nil {
		return err
	}
	Config = s
	return nil
}

// ApplyComputed fills settings whose defaults depend on the host, such as a
// non-positive worker count. Call it again after overriding fields.
func (s *Settings) ApplyComputed() {
	if s.Workers <= 0 {
		s.Workers = runtime.NumCPU()
	}
}

// Validate rejects settings a run cannot work with.
func (s *Settings) Validate() error {
	var err error
	if s.ImageDir == "" {
		err = multierr.Append(err, errors.New("image_dir is required"))
	}
	if s.OutputDir == "" {
		err = multierr.Append(err, errors.New("output_dir is required"))
	}
	if s.DatabaseDir == "" {
		err = multierr.Append(err, errors.New("database_dir is required"))
	}
	if s.Implementation == "" {
		err = multierr.Append(err, errors.New("implementation is required"))
	}
	if s.MaxCandidates == 0 {
		err = multierr.Append(err, errors.New("max_candidates must be positive"))
	}
	if s.Workers < 0 {
		err = multierr.Append(err, errors.New("workers must not be negative"))
	}
	switch s.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		err = multierr.Append(err, fmt.Errorf("unknown log level %q", s.Log.Level))
	}
	return err
}
