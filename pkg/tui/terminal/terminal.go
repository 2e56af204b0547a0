// ABOUTME: Terminal abstracts the tty the splash is drawn on: raw mode, size, output and key input
// ABOUTME: ProcessTerminal is the real device; VirtualTerminal backs tests

package terminal

import "io"

// Terminal is the single shared device of a render pass.
type Terminal interface {
	io.ReadWriter
	EnterRawMode() error
	ExitRawMode() error
	Size() (cols, rows int, err error)
}
