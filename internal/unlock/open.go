// ABOUTME: Runs the volume open command with the passphrase on stdin
// ABOUTME: Stdin feeding and stderr draining run in an errgroup so neither pipe can stall the child

package unlock

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/cryptsplash/internal/log"
)

// Opener runs `<Command> open <device> <name> --key-file -`.
type Opener struct {
	Command string
}

// Open runs the command once and returns its exit code. A non-zero exit
// (wrong passphrase, for instance) is not an error; failing to start or
// wait for the command is.
func (o Opener) Open(ctx context.Context, device, name, password string) (int, error) {
	cmd := exec.CommandContext(ctx, o.Command, "open", device, name, "--key-file", "-")

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return -1, fmt.Errorf("opening stdin pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return -1, fmt.Errorf("opening stderr pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return -1, fmt.Errorf("starting %s: %w", o.Command, err)
	}

	var diag bytes.Buffer
	var g errgroup.Group
	g.Go(func() error {
		_, err := io.WriteString(stdin, password)
		closeErr := stdin.Close()
		if err != nil {
			return fmt.Errorf("writing passphrase: %w", err)
		}
		return closeErr
	})
	g.Go(func() error {
		_, err := io.Copy(&diag, stderr)
		return err
	})
	pipeErr := g.Wait()

	// Wait closes the pipes, so it runs only after both copies finish.
	waitErr := cmd.Wait()
	if msg := strings.TrimSpace(diag.String()); msg != "" {
		log.Warn("%s: %s", o.Command, msg)
	}

	var exitErr *exec.ExitError
	switch {
	case errors.As(waitErr, &exitErr):
		if pipeErr != nil {
			log.Debug("%s exited before reading the passphrase: %v", o.Command, pipeErr)
		}
		return exitErr.ExitCode(), nil
	case waitErr != nil:
		return -1, fmt.Errorf("waiting for %s: %w", o.Command, waitErr)
	case pipeErr != nil:
		return -1, pipeErr
	}
	return 0, nil
}
