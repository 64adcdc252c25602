package main

import (
	"flag"
	"os"
)

// options holds the command-line flags.
type options struct {
	plain      bool
	first      int
	position   string
	quickStart bool
	focus      bool
	version    bool
}

func parseFlags(args []string) options {
	var opts options
	fs := flag.NewFlagSet("checkers-local", flag.ExitOnError)
	fs.BoolVar(&opts.plain, "plain", false, "Play on a line console instead of the full-screen board")
	fs.IntVar(&opts.first, "first", 0, "Player to move first (1 or 2)")
	fs.StringVar(&opts.position, "position", "", "Start from a position string, rows separated by '/'")
	fs.BoolVar(&opts.quickStart, "play", false, "Start game immediately with defaults")
	fs.BoolVar(&opts.focus, "focus", false, "Start in focus mode (fullscreen board)")
	fs.BoolVar(&opts.version, "version", false, "Print version and exit")
	fs.SetOutput(os.Stderr)
	_ = fs.Parse(args)
	return opts
}
