// ABOUTME: Escape-run scanning: ESC through the next 'm' is one atomic, zero-width unit
// ABOUTME: Only the SGR form is recognised; any other escape form counts as visible text

package width

import "strings"

const esc = '\x1b'

// escapeRunEnd returns the byte index just past the escape run starting at
// s[i]. A run without a terminating 'm' extends to the end of s.
func escapeRunEnd(s string, i int) int {
	j := strings.IndexByte(s[i+1:], 'm')
	if j < 0 {
		return len(s)
	}
	return i + 1 + j + 1
}

// StripEscapes removes every escape run from s.
func StripEscapes(s string) string {
	if strings.IndexByte(s, esc) < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == esc {
			i = escapeRunEnd(s, i)
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// Escapes returns the escape runs of s in order.
func Escapes(s string) []string {
	var runs []string
	for i := 0; i < len(s); {
		if s[i] != esc {
			i++
			continue
		}
		end := escapeRunEnd(s, i)
		runs = append(runs, s[i:end])
		i = end
	}
	return runs
}
