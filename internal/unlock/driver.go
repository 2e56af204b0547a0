// ABOUTME: Unlock loop: wait for the device, then prompt and open until the passphrase is accepted
// ABOUTME: An existing mapping short-circuits; debug mode only shows the prompt once

package unlock

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/mauromedda/cryptsplash/internal/config"
	"github.com/mauromedda/cryptsplash/internal/log"
	"github.com/mauromedda/cryptsplash/pkg/tui/ansi"
)

// Prompter shows the passphrase screen and returns what was typed.
type Prompter interface {
	Show() (string, error)
}

// VolumeOpener opens the device and reports the command's exit code.
type VolumeOpener interface {
	Open(ctx context.Context, device, name, password string) (int, error)
}

// Driver ties the screen to the open command.
type Driver struct {
	Device  config.Device
	Debug   bool
	Screen  Prompter
	Opener  VolumeOpener
	Console io.Writer
}

// NewDriver returns a Driver for cfg that runs cfg.Device.Command.
func NewDriver(cfg *config.Config, screen Prompter, console io.Writer) *Driver {
	return &Driver{
		Device:  cfg.Device,
		Debug:   cfg.Debug,
		Screen:  screen,
		Opener:  Opener{Command: cfg.Device.Command},
		Console: console,
	}
}

// Run unlocks the device. It returns ErrAlreadyOpen when the mapping
// exists, ErrDeviceNotFound when the device did not appear within the
// configured tries, and nil once the open command exits 0.
func (d *Driver) Run(ctx context.Context) error {
	if d.Debug {
		_, err := d.Screen.Show()
		return err
	}

	if MapperExists(d.Device.MapperDir, d.Device.Name) {
		log.Info("device %s already exists, not doing any crypt setup", d.Device.Name)
		return ErrAlreadyOpen
	}

	dev, err := d.waitForDevice(ctx)
	if err != nil {
		return err
	}
	log.Debug("resolved %s to %s", d.Device.UUID, dev)

	for attempt := 1; ; attempt++ {
		password, err := d.Screen.Show()
		if err != nil {
			return fmt.Errorf("prompting for passphrase: %w", err)
		}
		code, err := d.Opener.Open(ctx, dev, d.Device.Name, password)
		if err != nil {
			return err
		}
		if code == 0 {
			log.Info("opened %s as %s after %d attempt(s)", dev, d.Device.Name, attempt)
			break
		}
		log.Warn("open %s exited with code %d", dev, code)
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return ansi.ClearScreen(d.Console)
}

func (d *Driver) waitForDevice(ctx context.Context) (string, error) {
	tries := max(d.Device.Tries, 1)
	var lastErr error
	for i := range tries {
		dev, err := ResolveDevice(d.Device.ByUUIDDir, d.Device.UUID)
		if err == nil {
			return dev, nil
		}
		lastErr = err
		log.Debug("device %s not ready (try %d/%d): %v", d.Device.UUID, i+1, tries, err)
		if i == tries-1 {
			break
		}
		if err := sleep(ctx, d.Device.Interval); err != nil {
			return "", err
		}
	}
	return "", fmt.Errorf("%w: uuid %s after %d tries: %w", ErrDeviceNotFound, d.Device.UUID, tries, lastErr)
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
