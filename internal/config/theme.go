// ABOUTME: Built-in defaults, text normalization, and layer loading from inline rows, files, or images
// ABOUTME: The transparency rune becomes the NUL skip sentinel so art can leave cells untouched

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/mauromedda/cryptsplash/pkg/tui/frame"
	tuiimage "github.com/mauromedda/cryptsplash/pkg/tui/image"
	"github.com/mauromedda/cryptsplash/pkg/tui/layout"
	"github.com/mauromedda/cryptsplash/pkg/tui/width"
)

// defaultImageColumns bounds image layers that do not set image_columns.
const defaultImageColumns = 40

var defaultArt = []string{
	"\x1b[1;36m    .-------.    ",
	"   / .-----. \\   ",
	"   | |     | |   ",
	" .-'-'-----'-'-. ",
	" |      _      | ",
	" |     (_)     | ",
	" |      |      | ",
	" '-------------' \x1b[0m",
}

// Default returns the built-in configuration: a padlock above a three-row
// box field in the middle of the screen.
func Default() *Config {
	return &Config{
		Device: Device{
			Name:      "cryptroot",
			Tries:     10,
			Interval:  500 * time.Millisecond,
			ByUUIDDir: DefaultByUUIDDir,
			MapperDir: DefaultMapperDir,
			Command:   "cryptsetup",
		},
		Theme: Theme{
			Layers: []LayerSpec{{
				ASCII:  append([]string(nil), defaultArt...),
				Origin: [2]uint16{8, uint16(len(defaultArt)) + 2},
				X:      layout.Ratio(1, 2, false),
				Y:      layout.Ratio(1, 2, false),
			}},
			Field: FieldSpec{
				Left:      layout.Ratio(1, 4, false),
				Right:     layout.Ratio(3, 4, false),
				Anchor:    layout.Ratio(1, 2, false),
				AnchorRow: 1,
				Rows: []frame.Row{
					{Left: ",", Fill: "-", Right: ","},
					{Left: "|", Fill: " ", Right: "|"},
					{Left: "'", Fill: "-", Right: "'"},
				},
				Mask: "*",
			},
		},
	}
}

// normalize puts every piece of art into NFC so a base letter and its
// combining marks count as one character.
func normalize(c *Config) {
	t := &c.Theme
	t.Transparent = norm.NFC.String(t.Transparent)
	for i := range t.Layers {
		for j, row := range t.Layers[i].ASCII {
			t.Layers[i].ASCII[j] = norm.NFC.String(row)
		}
	}
	f := &t.Field
	for i, r := range f.Rows {
		f.Rows[i] = frame.Row{
			Left:  norm.NFC.String(r.Left),
			Fill:  norm.NFC.String(r.Fill),
			Right: norm.NFC.String(r.Right),
		}
	}
	f.Marker = norm.NFC.String(f.Marker)
	f.Mask = norm.NFC.String(f.Mask)
}

// Layers loads every layer's rows, in drawing order.
func (c *Config) Layers() ([]layout.Layer, error) {
	layers := make([]layout.Layer, 0, len(c.Theme.Layers))
	for i, spec := range c.Theme.Layers {
		rows, err := c.layerRows(spec)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		layers = append(layers, layout.Layer{
			ASCII:    rows,
			Origin:   spec.Origin,
			Position: [2]layout.Position{spec.X, spec.Y},
		})
	}
	return layers, nil
}

func (c *Config) layerRows(spec LayerSpec) ([]string, error) {
	switch {
	case spec.Image != "":
		cols := spec.ImageColumns
		if cols <= 0 {
			cols = defaultImageColumns
		}
		return tuiimage.LoadFile(c.path(spec.Image), cols)
	case spec.File != "":
		data, err := os.ReadFile(c.path(spec.File))
		if err != nil {
			return nil, fmt.Errorf("reading art: %w", err)
		}
		return c.transparent(splitLines(norm.NFC.String(string(data)))), nil
	default:
		return c.transparent(spec.ASCII), nil
	}
}

// transparent returns rows with the transparency rune replaced by Skip.
func (c *Config) transparent(rows []string) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		if c.Theme.Transparent == "" {
			out[i] = row
			continue
		}
		out[i] = strings.ReplaceAll(row, c.Theme.Transparent, string(width.Skip))
	}
	return out
}

// splitLines splits file content into rows, dropping CRs and one trailing
// empty line.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
