// ABOUTME: CLI entry point for cryptsplash, the boot-time passphrase splash screen
// ABOUTME: Loads the theme, draws the splash, and opens the encrypted volume with the typed passphrase

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mauromedda/cryptsplash/internal/config"
	cslog "github.com/mauromedda/cryptsplash/internal/log"
	"github.com/mauromedda/cryptsplash/internal/splash"
	"github.com/mauromedda/cryptsplash/internal/unlock"
	"github.com/mauromedda/cryptsplash/pkg/tui/terminal"
)

// exitTerminated is the conventional status for death by SIGTERM.
const exitTerminated = 128 + int(syscall.SIGTERM)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args, err := parseFlags(newFlagSet(os.Stderr), os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}

	if args.version {
		fmt.Printf("cryptsplash %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		if errors.Is(err, unlock.ErrAlreadyOpen) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run loads the config and either lints it or drives the unlock.
func run(args cliArgs) error {
	closeLog, err := setupLog(args)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.Load(args.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if args.debug {
		cfg.Debug = true
	}

	if args.check {
		return runCheck(os.Stdout, args.configPath, cfg)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", args.configPath, err)
	}
	for _, w := range cfg.Warnings() {
		cslog.Warn("%s", w)
	}
	layers, err := cfg.Layers()
	if err != nil {
		return fmt.Errorf("loading theme: %w", err)
	}

	term, err := openTerminal(args.tty)
	if err != nil {
		return err
	}
	defer term.Close()
	defer terminal.RestoreOnPanic(term)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()
	// The prompt blocks in a tty read that no context can interrupt, so a
	// termination request restores the console and exits from here.
	defer terminal.ExitOnCancel(ctx, term, exitTerminated, os.Exit)()

	screen := splash.New(term, layers, cfg.Field(), cfg.Mask())
	return unlock.NewDriver(cfg, screen, term).Run(ctx)
}

func openTerminal(path string) (*terminal.ProcessTerminal, error) {
	if path == "" {
		return terminal.NewProcessTerminal(), nil
	}
	return terminal.OpenTTY(path)
}

// setupLog routes log output. Without -log only errors reach stderr, since
// anything else would be drawn over the splash.
func setupLog(args cliArgs) (func(), error) {
	level := cslog.LevelInfo
	if args.verbose {
		level = cslog.LevelDebug
	}

	if args.logPath == "" {
		if !args.verbose && !args.check {
			level = cslog.LevelError
		}
		cslog.SetLevel(level)
		cslog.SetOutput(os.Stderr)
		return func() {}, nil
	}

	f, err := os.OpenFile(args.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	cslog.SetLevel(level)
	prev := cslog.SetOutput(f)
	return func() {
		cslog.SetOutput(prev)
		_ = f.Close()
	}, nil
}
