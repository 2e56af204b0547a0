// ABOUTME: CellWidth measures how many terminal cells a line really occupies
// ABOUTME: Grapheme-aware (uniseg + go-runewidth); used to flag art the clipper would mis-measure

package width

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// CellWidth returns the display width of line on a real terminal, ignoring
// escape runs. Skip occupies one cell.
func CellWidth(line string) int {
	s := StripEscapes(line)
	if isPlainASCII(s) {
		return len(s)
	}
	w := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		w += clusterWidth(cluster)
	}
	return w
}

// Mismatch reports whether line's real cell width differs from its
// VisibleLength, which is what the compositor clips by.
func Mismatch(line string) bool {
	return CellWidth(line) != VisibleLength(line)
}

// isPlainASCII reports whether s holds only printable ASCII or Skip.
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b != Skip && (b < 0x20 || b > 0x7e) {
			return false
		}
	}
	return true
}

func clusterWidth(cluster string) int {
	r, _ := utf8.DecodeRuneInString(cluster)
	if r == Skip {
		return 1
	}
	return runewidth.RuneWidth(r)
}
