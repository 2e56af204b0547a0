// ABOUTME: Input field frame builder: lays out a decorated multi-row box around the password cell
// ABOUTME: Computes the masked-echo budget; degrades to an unframed, unechoed field when it cannot fit

package frame

import (
	"io"
	"strings"

	"github.com/mauromedda/cryptsplash/pkg/tui/ansi"
	"github.com/mauromedda/cryptsplash/pkg/tui/compose"
	"github.com/mauromedda/cryptsplash/pkg/tui/layout"
	"github.com/mauromedda/cryptsplash/pkg/tui/width"
)

// Row is one line of the frame: border glyphs and the glyph repeated
// across the field's usable width.
type Row struct {
	Left  string `yaml:"left"`
	Fill  string `yaml:"fill"`
	Right string `yaml:"right"`
}

// Frame describes the decoration. AnchorRow is the index of the row the
// password is typed on; the field's vertical anchor resolves to that row.
type Frame struct {
	Rows      []Row `yaml:"rows"`
	AnchorRow int   `yaml:"anchor_row"`
}

// Field is the configured password input field.
type Field struct {
	Left   layout.Position
	Right  layout.Position
	Anchor layout.Position
	Frame  Frame
	Marker string
}

// Geometry is the outcome of one Build.
type Geometry struct {
	Left   int16 // first column of the left border
	Right  int16 // resolved right boundary
	Row    int16 // screen row the password is typed on
	Budget int   // echo budget; 0 means echo nothing
	Framed bool
}

// Build draws f's frame on a cols x rows grid and parks the cursor at the
// start of the input cell. When the usable width is below one column, or
// the anchor row is off the grid, nothing is drawn and Budget is 0. Only
// writer errors are returned.
func Build(w io.Writer, f Field, cols, rows uint16) (Geometry, error) {
	g := Geometry{
		Left:  layout.Resolve(f.Left, cols),
		Right: layout.Resolve(f.Right, cols),
		Row:   layout.Resolve(f.Anchor, rows),
	}
	if len(f.Frame.Rows) == 0 {
		return g, nil
	}

	leftW := width.VisibleLength(f.Frame.Rows[0].Left)
	rightW := width.VisibleLength(f.Frame.Rows[0].Right)
	length := int(g.Right) - int(g.Left) - rightW - leftW
	if length < 1 || g.Row < 0 || int(g.Row) >= int(rows) {
		return g, nil
	}

	if err := ansi.ResetAttr(w); err != nil {
		return g, err
	}
	fillX := int16(int(g.Left) + leftW)
	rightX := int16(int(g.Right) - rightW)
	for i, r := range f.Frame.Rows {
		y := layout.Add(g.Row, i-f.Frame.AnchorRow)
		parts := []struct {
			text string
			x    int16
		}{
			{r.Left, g.Left},
			{strings.Repeat(r.Fill, length), fillX},
			{r.Right, rightX},
		}
		for _, p := range parts {
			if err := compose.DrawAt(w, []string{p.text}, p.x, y, int(cols), int(rows)); err != nil {
				return g, err
			}
		}
	}

	if err := ansi.ResetAttr(w); err != nil {
		return g, err
	}
	if err := ansi.MoveTo(w, int(fillX), int(g.Row)); err != nil {
		return g, err
	}
	if _, err := io.WriteString(w, f.Marker); err != nil {
		return g, err
	}

	g.Budget = length
	g.Framed = true
	return g, nil
}
