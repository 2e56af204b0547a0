// ABOUTME: Escape-sequence vocabulary emitted by the splash renderer
// ABOUTME: Cursor positioning, full reset, attribute reset and cursor-forward, written to an io.Writer

package ansi

import (
	"io"
	"strconv"
)

const (
	// ESC is the byte that opens every escape run.
	ESC = '\x1b'

	// ClearSeq is RIS (reset to initial state); clears the whole screen.
	ClearSeq = "\x1bc"

	// ResetSeq resets all SGR attributes.
	ResetSeq = "\x1b[0m"

	// ForwardSeq moves the cursor one column right without drawing.
	ForwardSeq = "\x1b[1C"
)

// MoveTo positions the cursor at the zero-based grid cell (col, row).
// The emitted CUP sequence is one-based.
func MoveTo(w io.Writer, col, row int) error {
	var buf [24]byte
	b := append(buf[:0], "\x1b["...)
	b = strconv.AppendInt(b, int64(row)+1, 10)
	b = append(b, ';')
	b = strconv.AppendInt(b, int64(col)+1, 10)
	b = append(b, 'H')
	_, err := w.Write(b)
	return err
}

// ClearScreen emits ClearSeq.
func ClearScreen(w io.Writer) error {
	_, err := io.WriteString(w, ClearSeq)
	return err
}

// ResetAttr emits ResetSeq.
func ResetAttr(w io.Writer) error {
	_, err := io.WriteString(w, ResetSeq)
	return err
}
