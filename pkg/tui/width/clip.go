// ABOUTME: ANSI-safe clipping of one line of art: escape runs pass through, visible runes are budgeted
// ABOUTME: NUL is a transparent cell emitted as cursor-forward; one rune is one column

package width

import (
	"strings"
	"unicode/utf8"

	"github.com/mauromedda/cryptsplash/pkg/tui/ansi"
)

// Skip is the transparency sentinel: advance one column, draw nothing.
const Skip = '\x00'

// VisibleLength counts the runes of line outside escape runs. Skip counts.
func VisibleLength(line string) int {
	n := 0
	for i := 0; i < len(line); {
		if line[i] == esc {
			i = escapeRunEnd(line, i)
			continue
		}
		_, size := utf8.DecodeRuneInString(line[i:])
		i += size
		n++
	}
	return n
}

// Clip returns the part of line to paint: visible runes with index in
// [startVisible, maxVisible), every escape run before the cut, and Skip
// rewritten as a cursor-forward. Processing stops at the first visible
// rune at index maxVisible, so escape runs after it are dropped and colour
// state may leak; callers reset attributes before drawing unrelated content.
func Clip(line string, maxVisible, startVisible uint32) string {
	var b strings.Builder
	b.Grow(len(line))

	var count uint32
	for i := 0; i < len(line); {
		if line[i] == esc {
			end := escapeRunEnd(line, i)
			b.WriteString(line[i:end])
			i = end
			continue
		}
		if count >= maxVisible {
			break
		}
		r, size := utf8.DecodeRuneInString(line[i:])
		if count >= startVisible {
			if r == Skip {
				b.WriteString(ansi.ForwardSeq)
			} else {
				b.WriteString(line[i : i+size])
			}
		}
		count++
		i += size
	}
	return b.String()
}
