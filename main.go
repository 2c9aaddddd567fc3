package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gridwire/terminal"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to YAML config file")
		debugLog   = flag.String("debug-log", "", "Write debug logs to this file (overrides config)")
		help       = flag.Bool("help", false, "Show help")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "An interactive orthogonal wire editor for the terminal.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nMouse: click to select, drag a symbol to reroute its wires.\n")
		fmt.Fprintf(os.Stderr, "Keys:  w wire mode, r/c/l/g place symbol, x rotate, d delete, q quit.\n")
	}
	flag.Parse()

	if *help {
		flag.Usage()
		return
	}

	cfg, err := terminal.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *debugLog != "" {
		cfg.DebugLog = *debugLog
	}

	logger, closeLog, err := newLogger(cfg.DebugLog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := terminal.Run(cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds a file-backed slog logger. The TUI owns the terminal,
// so with no debug file configured logs are discarded.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open debug log: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, nil)), func() { f.Close() }, nil
}
