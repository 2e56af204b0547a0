// ABOUTME: Tests for config validation and warnings
// ABOUTME: Each broken setting maps to its sentinel; all errors are reported together

package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/mauromedda/cryptsplash/pkg/tui/frame"
	"github.com/mauromedda/cryptsplash/pkg/tui/layout"
)

func validConfig() *Config {
	cfg := Default()
	cfg.Device.UUID = "1234-abcd"
	return cfg
}

func TestValidate_Default(t *testing.T) {
	t.Parallel()

	if err := validConfig().Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	cfg := Default()
	cfg.Debug = true
	if err := cfg.Validate(); err != nil {
		t.Errorf("debug Validate() = %v, want nil without a device", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"no rows", func(c *Config) { c.Theme.Field.Rows = nil }, ErrNoFrameRows},
		{"border width", func(c *Config) { c.Theme.Field.Rows[2].Left = "''" }, ErrBorderWidth},
		{"empty fill", func(c *Config) { c.Theme.Field.Rows[0].Fill = "" }, ErrEmptyFillGlyph},
		{"anchor row high", func(c *Config) { c.Theme.Field.AnchorRow = 3 }, ErrAnchorRow},
		{"anchor row negative", func(c *Config) { c.Theme.Field.AnchorRow = -1 }, ErrAnchorRow},
		{"mask", func(c *Config) { c.Theme.Field.Mask = "" }, ErrEmptyMask},
		{"transparent", func(c *Config) { c.Theme.Transparent = ".." }, ErrTransparent},
		{"no source", func(c *Config) { c.Theme.Layers[0].ASCII = nil }, ErrLayerSource},
		{"two sources", func(c *Config) { c.Theme.Layers[0].File = "art.txt" }, ErrLayerSource},
		{"uuid", func(c *Config) { c.Device.UUID = "" }, ErrNoDevice},
		{"name", func(c *Config) { c.Device.Name = "" }, ErrNoMapperName},
		{"command", func(c *Config) { c.Device.Command = "" }, ErrNoOpenCommand},
		{"tries", func(c *Config) { c.Device.Tries = 0 }, ErrTries},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestValidate_JoinsAll(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Theme.Field.Rows = []frame.Row{{Left: "|", Fill: " ", Right: "|"}}
	cfg.Theme.Field.AnchorRow = 5
	cfg.Theme.Field.Mask = ""
	err := cfg.Validate()
	for _, want := range []error{ErrAnchorRow, ErrEmptyMask} {
		if !errors.Is(err, want) {
			t.Errorf("Validate() = %v, missing %v", err, want)
		}
	}
}

func TestWarnings(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	if w := cfg.Warnings(); len(w) != 0 {
		t.Errorf("Warnings() on defaults = %q, want none", w)
	}

	cfg.Theme.Field.Left = layout.Position{Numerator: 1, Denominator: 3, Absolute: 4}
	cfg.Theme.Layers[0].Y = layout.Position{Numerator: 2}
	cfg.Debug = true
	w := strings.Join(cfg.Warnings(), "\n")
	for _, want := range []string{"field left: abs 4", "layer 0 y: num 2", "debug is on"} {
		if !strings.Contains(w, want) {
			t.Errorf("Warnings() = %q, missing %q", w, want)
		}
	}
}
