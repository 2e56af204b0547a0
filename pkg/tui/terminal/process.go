// ABOUTME: ProcessTerminal implements Terminal on a tty file pair using golang.org/x/term
// ABOUTME: Saves the cooked state on raw-mode entry and restores it on exit

package terminal

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// ProcessTerminal reads keys from in and draws on out.
type ProcessTerminal struct {
	in  *os.File
	out *os.File

	mu       sync.Mutex
	oldState *term.State
}

// NewProcessTerminal returns a Terminal on the process's stdin and stdout.
func NewProcessTerminal() *ProcessTerminal {
	return &ProcessTerminal{in: os.Stdin, out: os.Stdout}
}

// OpenTTY returns a Terminal on the controlling tty, for when stdin or
// stdout are redirected (e.g. when started from an initramfs hook).
func OpenTTY(path string) (*ProcessTerminal, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &ProcessTerminal{in: f, out: f}, nil
}

// EnterRawMode switches the input side to raw mode, saving the previous state.
func (t *ProcessTerminal) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState != nil {
		return nil
	}
	state, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	t.oldState = state
	return nil
}

// ExitRawMode restores the state saved by EnterRawMode. It is a no-op
// when raw mode is not active.
func (t *ProcessTerminal) ExitRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState == nil {
		return nil
	}
	if err := term.Restore(int(t.in.Fd()), t.oldState); err != nil {
		return fmt.Errorf("exiting raw mode: %w", err)
	}
	t.oldState = nil
	return nil
}

// Size returns the current column and row count.
func (t *ProcessTerminal) Size() (cols, rows int, err error) {
	cols, rows, err = term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return cols, rows, nil
}

// Read reads raw input bytes.
func (t *ProcessTerminal) Read(p []byte) (int, error) {
	return t.in.Read(p)
}

// Write sends bytes to the output side.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to terminal: %w", err)
	}
	return n, nil
}

// Close closes the tty opened by OpenTTY. Terminals on stdin/stdout are
// left open.
func (t *ProcessTerminal) Close() error {
	_ = t.ExitRawMode()
	if t.in == os.Stdin {
		return nil
	}
	return t.in.Close()
}
