// ABOUTME: RestoreOnPanic and ExitOnCancel put the tty back into cooked mode before the process dies
// ABOUTME: Deferred or started at the top of main so no exit path leaves the console raw

package terminal

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
)

// restoreSeq resets attributes and shows the cursor.
const restoreSeq = "\x1b[0m\x1b[?25h"

// RestoreOnPanic should be deferred in the goroutine that owns t. On panic
// it resets attributes, leaves raw mode, prints the panic and stack to
// stderr and exits with code 1.
func RestoreOnPanic(t Terminal) {
	r := recover()
	if r == nil {
		return
	}

	restore(t)
	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	os.Exit(1)
}

// ExitOnCancel watches ctx while a blocking read may be in progress on t.
// When ctx is cancelled it resets attributes, leaves raw mode and calls
// exit(code). The returned stop ends the watch; after stop returns, exit
// is never called.
func ExitOnCancel(ctx context.Context, t Terminal, code int, exit func(int)) (stop func()) {
	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		select {
		case <-ctx.Done():
			restore(t)
			exit(code)
		case <-done:
		}
	}()
	return func() {
		close(done)
		<-finished
	}
}

// restore is best-effort: attribute reset, visible cursor, cooked mode.
func restore(t Terminal) {
	_, _ = t.Write([]byte(restoreSeq))
	_ = t.ExitRawMode()
}
