// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"wol-manager/internal/logger"
	"wol-manager/internal/wol"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0640))
	return path
}

func loadWithWarnings(t *testing.T, path string) (*wol.Registry, string) {
	t.Helper()
	var errOut bytes.Buffer
	log := logger.New(logger.Options{Stdout: &bytes.Buffer{}, Stderr: &errOut})
	reg, err := Load(path, log)
	require.NoError(t, err)
	return reg, errOut.String()
}

func TestLoadValidHosts(t *testing.T) {
	path := writeConfig(t, `
hosts:
  - name: foo
    mac: aa:bb:cc:00:11:22
  - name: bar
    mac: aabb.cc00.1123
    ip: 192.168.1.255
    port: 7
`)

	reg, warnings := loadWithWarnings(t, path)
	assert.Empty(t, warnings)
	require.Equal(t, 2, reg.Count())

	foo, ok := reg.Get("foo")
	require.True(t, ok)
	assert.Equal(t, "AA:BB:CC:00:11:22", foo.MAC)
	assert.Equal(t, wol.DefaultIP, foo.IP)
	assert.Equal(t, wol.DefaultPort, foo.Port)

	bar, ok := reg.Get("bar")
	require.True(t, ok)
	assert.Equal(t, "AA:BB:CC:00:11:23", bar.MAC)
	assert.Equal(t, "192.168.1.255", bar.IP)
	assert.Equal(t, 7, bar.Port)

	// Insertion order follows file order.
	assert.Equal(t, "foo", reg.All()[0].Name)
	assert.Equal(t, "bar", reg.All()[1].Name)
}

func TestLoadDropsInvalidHost(t *testing.T) {
	path := writeConfig(t, `
hosts:
  - name: good
    mac: aa:bb:cc:00:11:22
  - name: broken
    mac: not-a-mac
    ip: 127.0.0.x
  - name: also-good
    mac: dd:ee:ff:33:44:55
`)

	reg, warnings := loadWithWarnings(t, path)
	assert.Equal(t, 2, reg.Count())
	assert.Contains(t, warnings, "Invalid host (broken)")
	assert.Contains(t, warnings, "Invalid MAC Address")
	assert.Contains(t, warnings, "Invalid IPv4 Address")

	_, ok := reg.Get("broken")
	assert.False(t, ok)
}

func TestLoadWarnsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `
hosts:
  - name: foo
    mac: aa:bb:cc:00:11:22
    color: green
`)

	reg, warnings := loadWithWarnings(t, path)
	assert.Equal(t, 1, reg.Count())
	assert.Contains(t, warnings, "Unknown property (foo): color")
}

func TestLoadPlaceholderName(t *testing.T) {
	path := writeConfig(t, `
hosts:
  - name: foo
    mac: aa:bb:cc:00:11:22
  - mac: dd:ee:ff:33:44:55
`)

	reg, warnings := loadWithWarnings(t, path)
	assert.Empty(t, warnings)
	require.Equal(t, 2, reg.Count())

	h, ok := reg.Get("#2")
	require.True(t, ok)
	assert.Equal(t, "DD:EE:FF:33:44:55", h.MAC)
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")

	reg, warnings := loadWithWarnings(t, path)
	assert.Equal(t, 0, reg.Count())
	assert.Contains(t, warnings, "Failed to read configuration file")
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "hosts: [whoops")

	var errOut bytes.Buffer
	log := logger.New(logger.Options{Stdout: &bytes.Buffer{}, Stderr: &errOut})
	_, err := Load(path, log)
	assert.Error(t, err)
}

func TestSaveAndLoadRecordsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	in := []HostRecord{
		{Name: "foo", MAC: "AA:BB:CC:00:11:22", IP: wol.DefaultIP, Port: wol.DefaultPort},
		{Name: "bar", MAC: "DD:EE:FF:33:44:55", IP: "192.168.1.255", Port: 7},
	}
	require.NoError(t, SaveRecords(path, in))

	out, err := LoadRecords(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoadRecordsMissingFile(t *testing.T) {
	out, err := LoadRecords(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Empty(t, out)
}
