// ABOUTME: Unlock and theme configuration loaded from a YAML file over built-in defaults
// ABOUTME: A missing file yields the defaults; ${VAR} expansion and NFC normalization run after decoding

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/cryptsplash/pkg/tui/frame"
	"github.com/mauromedda/cryptsplash/pkg/tui/layout"
)

// Config is the whole configuration.
type Config struct {
	// Debug renders the screen and captures once without touching any device.
	Debug  bool   `yaml:"debug"`
	Device Device `yaml:"device"`
	Theme  Theme  `yaml:"theme"`

	// dir resolves relative art and image paths.
	dir string
}

// Device names the encrypted volume and how to open it.
type Device struct {
	UUID      string        `yaml:"uuid"`
	Name      string        `yaml:"name"`
	Tries     int           `yaml:"tries"`
	Interval  time.Duration `yaml:"interval"`
	ByUUIDDir string        `yaml:"by_uuid_dir"`
	MapperDir string        `yaml:"mapper_dir"`
	Command   string        `yaml:"command"`
}

// Theme is the splash artwork and the password field.
type Theme struct {
	// Transparent, when set, is a single rune rewritten to the skip sentinel
	// in text layers.
	Transparent string      `yaml:"transparent"`
	Layers      []LayerSpec `yaml:"layers"`
	Field       FieldSpec   `yaml:"field"`
}

// LayerSpec is one layer as written in the file. Exactly one of ASCII,
// File and Image supplies its rows.
type LayerSpec struct {
	ASCII        []string        `yaml:"ascii"`
	File         string          `yaml:"file"`
	Image        string          `yaml:"image"`
	ImageColumns int             `yaml:"image_columns"`
	Origin       [2]uint16       `yaml:"origin"`
	X            layout.Position `yaml:"x"`
	Y            layout.Position `yaml:"y"`
}

// FieldSpec is the password field as written in the file.
type FieldSpec struct {
	Left      layout.Position `yaml:"left"`
	Right     layout.Position `yaml:"right"`
	Anchor    layout.Position `yaml:"anchor"`
	AnchorRow int             `yaml:"anchor_row"`
	Rows      []frame.Row     `yaml:"rows"`
	Marker    string          `yaml:"marker"`
	Mask      string          `yaml:"mask"`
}

// Load reads the configuration at path. A missing file is not an error:
// the defaults are returned with relative paths resolved against the
// file's directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := Default()
		cfg.dir = filepath.Dir(path)
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data, filepath.Dir(path))
}

// Parse decodes data over the defaults. dir resolves relative paths.
func Parse(data []byte, dir string) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.dir = dir
	resolveEnvVars(cfg)
	normalize(cfg)
	return cfg, nil
}

// Field returns the password field for the frame builder.
func (c *Config) Field() frame.Field {
	f := c.Theme.Field
	return frame.Field{
		Left:   f.Left,
		Right:  f.Right,
		Anchor: f.Anchor,
		Frame:  frame.Frame{Rows: f.Rows, AnchorRow: f.AnchorRow},
		Marker: f.Marker,
	}
}

// Mask returns the glyph echoed per typed rune.
func (c *Config) Mask() string {
	return c.Theme.Field.Mask
}

// path resolves p against the config directory.
func (c *Config) path(p string) string {
	if p == "" || filepath.IsAbs(p) || c.dir == "" {
		return p
	}
	return filepath.Join(c.dir, p)
}
