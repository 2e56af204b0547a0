// ABOUTME: Tests for VirtualTerminal: raw-mode accounting, output capture, scripted input, size failure
// ABOUTME: Table-driven and parallel where state is independent

package terminal

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"
)

// compile-time check: VirtualTerminal must satisfy Terminal.
var _ Terminal = (*VirtualTerminal)(nil)

func TestVirtualTerminal_Size(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		cols, rows int
	}{
		{name: "standard 80x24", cols: 80, rows: 24},
		{name: "wide 200x50", cols: 200, rows: 50},
		{name: "zero dimensions", cols: 0, rows: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			vt := NewVirtualTerminal(tt.cols, tt.rows)

			c, r, err := vt.Size()
			if err != nil {
				t.Fatalf("Size() unexpected error: %v", err)
			}
			if c != tt.cols || r != tt.rows {
				t.Errorf("Size() = (%d, %d), want (%d, %d)", c, r, tt.cols, tt.rows)
			}
		})
	}
}

func TestVirtualTerminal_FailSize(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)
	vt.FailSize()

	if _, _, err := vt.Size(); !errors.Is(err, ErrNoSize) {
		t.Fatalf("Size() error = %v, want ErrNoSize", err)
	}
}

func TestVirtualTerminal_RawMode(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)

	if vt.IsRawMode() {
		t.Fatal("expected raw mode to be off initially")
	}
	for i := range 3 {
		if err := vt.EnterRawMode(); err != nil {
			t.Fatalf("iteration %d: EnterRawMode() error: %v", i, err)
		}
		if !vt.IsRawMode() {
			t.Fatalf("iteration %d: expected raw mode on", i)
		}
		if err := vt.ExitRawMode(); err != nil {
			t.Fatalf("iteration %d: ExitRawMode() error: %v", i, err)
		}
	}
	if vt.IsRawMode() {
		t.Fatal("expected raw mode off after ExitRawMode")
	}
	if vt.EnterCount() != 3 || vt.ExitCount() != 3 {
		t.Errorf("EnterCount/ExitCount = %d/%d, want 3/3", vt.EnterCount(), vt.ExitCount())
	}
}

func TestVirtualTerminal_WriteAndReset(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)

	for _, s := range []string{"one", "two"} {
		if _, err := vt.Write([]byte(s)); err != nil {
			t.Fatal(err)
		}
	}
	if got := vt.Output(); got != "onetwo" {
		t.Errorf("Output() = %q, want %q", got, "onetwo")
	}

	vt.Reset()
	if got := vt.Output(); got != "" {
		t.Errorf("Output() after Reset = %q, want empty", got)
	}
}

func TestVirtualTerminal_Input(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)
	vt.SetInput("pw\r")

	data, err := io.ReadAll(vt)
	if err != nil {
		t.Fatalf("ReadAll() error: %v", err)
	}
	if string(data) != "pw\r" {
		t.Errorf("read %q, want %q", data, "pw\r")
	}
}

func TestVirtualTerminal_ConcurrentAccess(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)

	var wg sync.WaitGroup
	const goroutines = 10

	wg.Add(goroutines * 2)
	for range goroutines {
		go func() {
			defer wg.Done()
			_, _ = vt.Write([]byte("x"))
		}()
		go func() {
			defer wg.Done()
			_ = vt.EnterRawMode()
			_ = vt.ExitRawMode()
			_, _, _ = vt.Size()
		}()
	}
	wg.Wait()

	if len(vt.Output()) != goroutines {
		t.Errorf("Output length = %d, want %d", len(vt.Output()), goroutines)
	}
}

func TestExitOnCancel_RestoresThenExits(t *testing.T) {
	t.Parallel()

	vt := NewVirtualTerminal(80, 24)
	if err := vt.EnterRawMode(); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	codes := make(chan int, 1)
	stop := ExitOnCancel(ctx, vt, 143, func(code int) { codes <- code })
	defer stop()

	cancel()
	select {
	case code := <-codes:
		if code != 143 {
			t.Errorf("exit code = %d, want 143", code)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("exit not called after cancel")
	}
	if vt.IsRawMode() {
		t.Error("raw mode still on when exit was called")
	}
	if got := vt.Output(); got != "\x1b[0m\x1b[?25h" {
		t.Errorf("output = %q, want attribute reset and visible cursor", got)
	}
}

func TestExitOnCancel_StopPreventsExit(t *testing.T) {
	t.Parallel()

	vt := NewVirtualTerminal(80, 24)
	if err := vt.EnterRawMode(); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	called := false
	stop := ExitOnCancel(ctx, vt, 143, func(int) { called = true })
	stop()
	cancel()

	if called {
		t.Error("exit called after stop")
	}
	if !vt.IsRawMode() || vt.Output() != "" {
		t.Error("terminal touched after stop")
	}
}
