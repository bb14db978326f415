// SPDX-License-Identifier: Apache-2.0

// Package logger builds the slog loggers used across wol-manager. The CLI
// gets a console logger that keeps normal output (debug/info) on stdout and
// diagnostics (warnings/errors) on stderr, with colored level prefixes. The
// TUI gets a JSON file logger under the XDG state directory so diagnostics
// never draw over the alternate screen.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fatih/color"
)

var (
	debugPrefix = color.New(color.FgBlue).Sprint("Debug: ")
	warnPrefix  = color.New(color.FgYellow).Sprint("Warning: ")
	errorPrefix = color.New(color.FgRed).Sprint("Error: ")
)

// Options configures a console logger. Zero-value writers default to the
// process stdout/stderr.
type Options struct {
	Level  slog.Leveler
	Stdout io.Writer
	Stderr io.Writer
}

// New returns a console logger. Records below slog.LevelWarn go to Stdout,
// the rest to Stderr; warnings and errors carry a colored prefix.
func New(opts Options) *slog.Logger {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Level == nil {
		opts.Level = slog.LevelInfo
	}
	return slog.New(&consoleHandler{
		out:   opts.Stdout,
		err:   opts.Stderr,
		level: opts.Level,
		mu:    &sync.Mutex{},
	})
}

// LogFilePath returns the TUI log file location under the XDG state
// directory ($XDG_STATE_HOME or ~/.local/state).
func LogFilePath() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		stateDir = filepath.Join(homeDir, ".local", "state")
	}
	return filepath.Join(stateDir, "wol-manager", "app.log"), nil
}

// NewFile returns a JSON logger appending to the XDG state log file,
// creating the directory as needed. The file handle is left for the OS to
// close on exit, which is acceptable for a short-lived tool.
func NewFile(level slog.Leveler) (*slog.Logger, error) {
	logFilePath, err := LogFilePath()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(logFilePath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", logFilePath, err)
	}
	return slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})), nil
}

// consoleHandler routes records to stdout or stderr by level and prints
// them as a prefixed line followed by any attributes as key=value pairs.
type consoleHandler struct {
	out   io.Writer
	err   io.Writer
	level slog.Leveler
	attrs []slog.Attr
	mu    *sync.Mutex
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	w := h.out
	prefix := ""
	switch {
	case r.Level >= slog.LevelError:
		w, prefix = h.err, errorPrefix
	case r.Level >= slog.LevelWarn:
		w, prefix = h.err, warnPrefix
	case r.Level < slog.LevelInfo:
		prefix = debugPrefix
	}

	line := prefix + r.Message
	appendAttr := func(a slog.Attr) {
		line += fmt.Sprintf(" %s=%v", a.Key, a.Value)
	}
	for _, a := range h.attrs {
		appendAttr(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(a)
		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintln(w, line)
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	// Groups are not used by this application's log call sites.
	return h
}
