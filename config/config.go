// Package config loads optional project settings for the sparsemx CLI from
// sparsemx.yml (or sparsemx.yaml).
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sparsemx/codec"
)

// FileNames are tried in order by Load.
var FileNames = []string{"sparsemx.yml", "sparsemx.yaml"}

// ErrInvalid classifies a config file that does not parse or whose values
// are out of range.
var ErrInvalid = errors.New("config: invalid value")

// Config holds CLI settings. Zero values mean "use the built-in default".
type Config struct {
	OutputDir        string `yaml:"outputDir,omitempty"`
	Format           string `yaml:"format,omitempty"`
	Verbose          bool   `yaml:"verbose,omitempty"`
	RejectDuplicates bool   `yaml:"rejectDuplicates,omitempty"`
	MaxLineBytes     int    `yaml:"maxLineBytes,omitempty"`
}

// Load reads the first of FileNames present in dir. A missing file is not an
// error: a zero-value Config is returned.
func Load(dir string) (*Config, error) {
	for _, name := range FileNames {
		cfg, err := LoadFile(filepath.Join(dir, name))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return cfg, err
	}

	return &Config{}, nil
}

// LoadFile reads and validates one config file. Unknown keys are rejected so
// typos do not silently fall back to defaults.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w: %w", path, ErrInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch c.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("format %q: %w", c.Format, ErrInvalid)
	}
	if c.MaxLineBytes < 0 {
		return fmt.Errorf("maxLineBytes %d: %w", c.MaxLineBytes, ErrInvalid)
	}

	return nil
}

// DecodeOptions translates the parsing settings into codec options.
func (c *Config) DecodeOptions() []codec.Option {
	opts := []codec.Option{codec.WithDuplicatePolicy(c.RejectDuplicates)}
	if c.MaxLineBytes > 0 {
		opts = append(opts, codec.WithMaxLineBytes(c.MaxLineBytes))
	}

	return opts
}
