// ABOUTME: Layer is one placeable block of (possibly colored) ASCII art
// ABOUTME: Place resolves a layer's anchor against the terminal size, minus its interior origin

package layout

// Layer is one artwork block. Rows may contain SGR escape runs and the NUL
// skip sentinel. Origin is subtracted from the resolved position so the
// anchor can sit inside the artwork.
type Layer struct {
	ASCII    []string
	Origin   [2]uint16
	Position [2]Position
}

// Placement is the top-left cell of a layer for one render pass.
type Placement struct {
	X, Y int16
}

// Place resolves l on a cols x rows grid.
func Place(l Layer, cols, rows uint16) Placement {
	return Placement{
		X: Sub(Resolve(l.Position[0], cols), l.Origin[0]),
		Y: Sub(Resolve(l.Position[1], rows), l.Origin[1]),
	}
}

// Height returns the number of rows in l.
func (l Layer) Height() int {
	return len(l.ASCII)
}
