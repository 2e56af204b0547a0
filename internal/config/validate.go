// ABOUTME: Configuration checks: hard errors joined with errors.Join, soft findings as warnings
// ABOUTME: The engine degrades instead of failing, so these checks are what catch a broken theme early

package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/mauromedda/cryptsplash/pkg/tui/layout"
	"github.com/mauromedda/cryptsplash/pkg/tui/width"
)

// Validation errors, matched with errors.Is.
var (
	ErrNoFrameRows    = errors.New("field frame has no rows")
	ErrBorderWidth    = errors.New("frame rows have differing border widths")
	ErrAnchorRow      = errors.New("anchor_row is outside the frame")
	ErrEmptyMask      = errors.New("mask is empty")
	ErrLayerSource    = errors.New("layer needs exactly one of ascii, file, image")
	ErrTransparent    = errors.New("transparent must be a single character")
	ErrNoDevice       = errors.New("device uuid is not set")
	ErrTries          = errors.New("device tries must be at least 1")
	ErrNoMapperName   = errors.New("device name is not set")
	ErrNoOpenCommand  = errors.New("device command is not set")
	ErrEmptyFillGlyph = errors.New("frame row has an empty fill")
)

// Validate reports every configuration error at once.
func (c *Config) Validate() error {
	var errs []error

	f := c.Theme.Field
	if len(f.Rows) == 0 {
		errs = append(errs, ErrNoFrameRows)
	} else {
		leftW := width.VisibleLength(f.Rows[0].Left)
		rightW := width.VisibleLength(f.Rows[0].Right)
		for i, r := range f.Rows {
			if width.VisibleLength(r.Left) != leftW || width.VisibleLength(r.Right) != rightW {
				errs = append(errs, fmt.Errorf("row %d: %w", i, ErrBorderWidth))
			}
			if r.Fill == "" {
				errs = append(errs, fmt.Errorf("row %d: %w", i, ErrEmptyFillGlyph))
			}
		}
		if f.AnchorRow < 0 || f.AnchorRow >= len(f.Rows) {
			errs = append(errs, fmt.Errorf("%w: %d of %d rows", ErrAnchorRow, f.AnchorRow, len(f.Rows)))
		}
	}
	if f.Mask == "" {
		errs = append(errs, ErrEmptyMask)
	}
	if t := c.Theme.Transparent; t != "" && utf8.RuneCountInString(t) != 1 {
		errs = append(errs, fmt.Errorf("%w: %q", ErrTransparent, t))
	}

	for i, l := range c.Theme.Layers {
		sources := 0
		for _, set := range []bool{len(l.ASCII) > 0, l.File != "", l.Image != ""} {
			if set {
				sources++
			}
		}
		if sources != 1 {
			errs = append(errs, fmt.Errorf("layer %d: %w", i, ErrLayerSource))
		}
	}

	if !c.Debug {
		d := c.Device
		if d.UUID == "" {
			errs = append(errs, ErrNoDevice)
		}
		if d.Name == "" {
			errs = append(errs, ErrNoMapperName)
		}
		if d.Command == "" {
			errs = append(errs, ErrNoOpenCommand)
		}
		if d.Tries < 1 {
			errs = append(errs, fmt.Errorf("%w: %d", ErrTries, d.Tries))
		}
	}

	return errors.Join(errs...)
}

// Warnings lists settings that load fine but are probably mistakes.
func (c *Config) Warnings() []string {
	var out []string
	check := func(name string, p layout.Position) {
		if !p.IsAbsolute() && p.Absolute != 0 {
			out = append(out, fmt.Sprintf("%s: abs %d is ignored because den is set", name, p.Absolute))
		}
		if p.IsAbsolute() && p.Numerator != 0 {
			out = append(out, fmt.Sprintf("%s: num %d is ignored because den is 0", name, p.Numerator))
		}
	}
	for i, l := range c.Theme.Layers {
		check(fmt.Sprintf("layer %d x", i), l.X)
		check(fmt.Sprintf("layer %d y", i), l.Y)
	}
	f := c.Theme.Field
	check("field left", f.Left)
	check("field right", f.Right)
	check("field anchor", f.Anchor)

	if c.Debug {
		out = append(out, "debug is on: the device will not be opened")
	}
	return out
}
