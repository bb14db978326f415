// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"wol-manager/cmd/cli"
	"wol-manager/cmd/tui"
	"wol-manager/internal/config"
	"wol-manager/internal/logger"
	"wol-manager/internal/wake"
)

func main() {
	// With no arguments, run the interactive host list. Any argument means
	// the CLI handles the invocation.
	if len(os.Args) > 1 {
		cli.RunCLI()
		return
	}

	// TUI diagnostics go to the state-dir log file so they never draw over
	// the alternate screen.
	log, err := logger.NewFile(slog.LevelInfo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: file logging unavailable: %v\n", err)
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	path, err := config.DefaultPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	registry, err := config.Load(path, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	tui.RunTUI(registry, wake.NewDispatcher(log), log)
}
