// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestLogger(level slog.Leveler) (*slog.Logger, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	log := New(Options{Level: level, Stdout: &out, Stderr: &errOut})
	return log, &out, &errOut
}

func TestConsoleStreamRouting(t *testing.T) {
	log, out, errOut := newTestLogger(slog.LevelInfo)

	log.Info(`Waking host "foo"`)
	log.Warn(`Unknown host "bar"`)
	log.Error("send failed")

	assert.Contains(t, out.String(), `Waking host "foo"`)
	assert.NotContains(t, out.String(), "Unknown host")

	assert.Contains(t, errOut.String(), `Unknown host "bar"`)
	assert.Contains(t, errOut.String(), "send failed")
	assert.NotContains(t, errOut.String(), "Waking host")
}

func TestConsoleLevelFiltering(t *testing.T) {
	log, out, errOut := newTestLogger(slog.LevelWarn)

	log.Debug("noise")
	log.Info("more noise")
	log.Warn("kept")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "kept")
}

func TestConsoleLevelVar(t *testing.T) {
	level := &slog.LevelVar{}
	level.Set(slog.LevelInfo)
	var out, errOut bytes.Buffer
	log := New(Options{Level: level, Stdout: &out, Stderr: &errOut})

	log.Debug("hidden")
	assert.Empty(t, out.String())

	level.Set(slog.LevelDebug)
	log.Debug("shown")
	assert.Contains(t, out.String(), "shown")
}

func TestConsoleAttrs(t *testing.T) {
	log, out, _ := newTestLogger(slog.LevelInfo)

	log.With("host", "foo").Info("sent", "bytes", 102)

	assert.Contains(t, out.String(), "host=foo")
	assert.Contains(t, out.String(), "bytes=102")
}
