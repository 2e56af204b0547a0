// ABOUTME: VirtualTerminal implements Terminal in memory for tests
// ABOUTME: Scripted key input, captured output, raw-mode accounting and injectable size failures

package terminal

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrNoSize is returned by VirtualTerminal.Size after FailSize.
var ErrNoSize = errors.New("terminal size unavailable")

// VirtualTerminal is a fake Terminal. Reads drain the scripted input and
// then return io.EOF.
type VirtualTerminal struct {
	mu         sync.Mutex
	out        bytes.Buffer
	in         *strings.Reader
	cols       int
	rows       int
	sizeErr    error
	rawMode    bool
	enterCount int
	exitCount  int
}

// NewVirtualTerminal returns a cols x rows VirtualTerminal with no input.
func NewVirtualTerminal(cols, rows int) *VirtualTerminal {
	return &VirtualTerminal{
		cols: cols,
		rows: rows,
		in:   strings.NewReader(""),
	}
}

// EnterRawMode records a raw-mode entry.
func (v *VirtualTerminal) EnterRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rawMode = true
	v.enterCount++
	return nil
}

// ExitRawMode records a raw-mode exit.
func (v *VirtualTerminal) ExitRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rawMode = false
	v.exitCount++
	return nil
}

// Size returns the configured dimensions, or the error set by FailSize.
func (v *VirtualTerminal) Size() (cols, rows int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.sizeErr != nil {
		return 0, 0, v.sizeErr
	}
	return v.cols, v.rows, nil
}

// Read drains the scripted input.
func (v *VirtualTerminal) Read(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.in.Read(p)
}

// Write appends to the captured output.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	n, err := v.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to virtual buffer: %w", err)
	}
	return n, nil
}

// --- Test helpers (not part of Terminal) ---

// SetInput replaces the scripted input.
func (v *VirtualTerminal) SetInput(s string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.in = strings.NewReader(s)
}

// FailSize makes Size return ErrNoSize.
func (v *VirtualTerminal) FailSize() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.sizeErr = ErrNoSize
}

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.out.String()
}

// Reset clears the captured output.
func (v *VirtualTerminal) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.out.Reset()
}

// IsRawMode reports whether raw mode is active.
func (v *VirtualTerminal) IsRawMode() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.rawMode
}

// EnterCount returns how many times EnterRawMode was called.
func (v *VirtualTerminal) EnterCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.enterCount
}

// ExitCount returns how many times ExitRawMode was called.
func (v *VirtualTerminal) ExitCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.exitCount
}
