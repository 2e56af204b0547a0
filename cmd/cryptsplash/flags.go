// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports -config, -tty, -debug, -verbose, -log, -check, -version

package main

import (
	"flag"
	"io"

	"github.com/mauromedda/cryptsplash/internal/config"
)

type cliArgs struct {
	configPath string
	tty        string
	logPath    string
	debug      bool
	verbose    bool
	check      bool
	version    bool
}

func parseFlags(fs *flag.FlagSet, argv []string) (cliArgs, error) {
	var args cliArgs

	fs.StringVar(&args.configPath, "config", config.Path(), "Path to the YAML config")
	fs.StringVar(&args.tty, "tty", "", "Terminal device to draw on (default: stdin/stdout)")
	fs.StringVar(&args.logPath, "log", "", "Append log lines to this file")
	fs.BoolVar(&args.debug, "debug", false, "Show the screen once without opening the device")
	fs.BoolVar(&args.verbose, "verbose", false, "Log debug detail")
	fs.BoolVar(&args.check, "check", false, "Lint the config and exit")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")

	if err := fs.Parse(argv); err != nil {
		return cliArgs{}, err
	}
	return args, nil
}

func newFlagSet(output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("cryptsplash", flag.ContinueOnError)
	fs.SetOutput(output)
	return fs
}
