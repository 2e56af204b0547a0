// ABOUTME: Block compositor: paints multi-line ANSI art at a signed origin on a fixed-size grid
// ABOUTME: Clips all four edges (left/top by skipping, right/bottom by budget) with absolute cursor moves

package compose

import (
	"io"

	"github.com/mauromedda/cryptsplash/pkg/tui/ansi"
	"github.com/mauromedda/cryptsplash/pkg/tui/layout"
	"github.com/mauromedda/cryptsplash/pkg/tui/width"
)

// DrawAt paints block with its top-left cell at (x, y) on a cols x rows
// grid. Cells outside the grid are never written. A block entirely off the
// grid produces no output. Only writer errors are returned.
//
// Rows stop at the bottom edge of the grid (rows - y of them at most), not
// at a plain count of rows; the two differ whenever y != 0.
func DrawAt(w io.Writer, block []string, x, y int16, cols, rows int) error {
	maxX := cols - int(x)
	maxY := rows - int(y)
	if maxX <= 0 || maxY <= 0 {
		return nil
	}

	first, col, row := 0, int(x), int(y)
	if y < 0 {
		first, row = -int(y), 0
	}
	var skip uint32
	if x < 0 {
		skip, col = uint32(-int(x)), 0
	}

	last := min(len(block), maxY)
	for i := first; i < last; i++ {
		if err := ansi.MoveTo(w, col, row); err != nil {
			return err
		}
		if _, err := io.WriteString(w, width.Clip(block[i], uint32(maxX), skip)); err != nil {
			return err
		}
		row++
	}
	return nil
}

// RenderLayers paints layers in order on a cols x rows grid, resetting
// attributes before each so colour never leaks from a clipped layer.
func RenderLayers(w io.Writer, layers []layout.Layer, cols, rows uint16) error {
	for _, l := range layers {
		p := layout.Place(l, cols, rows)
		if err := ansi.ResetAttr(w); err != nil {
			return err
		}
		if err := DrawAt(w, l.ASCII, p.X, p.Y, int(cols), int(rows)); err != nil {
			return err
		}
	}
	return nil
}
