// SPDX-License-Identifier: Apache-2.0

// Package config reads and writes the host inventory. The configuration is
// a YAML file holding a `hosts` list; each entry supplies name, mac, ip and
// port, with ip and port optional. Loading is tolerant: unknown keys and
// invalid host definitions produce warnings and are dropped, they never
// abort the load.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"wol-manager/internal/wol"

	"gopkg.in/yaml.v3"
)

// hostKeys are the record keys a host entry may carry.
var hostKeys = map[string]bool{
	"name": true,
	"mac":  true,
	"ip":   true,
	"port": true,
}

// HostRecord is one host entry as stored on disk.
type HostRecord struct {
	Name string `yaml:"name"`
	MAC  string `yaml:"mac"`
	IP   string `yaml:"ip,omitempty"`
	Port int    `yaml:"port,omitempty"`
}

// file is the on-disk document shape. Host entries are kept as raw nodes
// during load so unknown keys can be detected per record.
type file struct {
	Hosts []yaml.Node `yaml:"hosts"`
}

// records is the typed document shape used for rewriting the file.
type records struct {
	Hosts []HostRecord `yaml:"hosts"`
}

// DefaultPath returns the config file location under the user config
// directory.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "wol-manager", "config.yaml"), nil
}

// Load parses the host inventory at path into a registry. A missing file is
// a warning and yields an empty registry; unparseable YAML is an error.
// Each record is normalized, defaulted and validated: unknown keys warn and
// are ignored, a record that fails validation warns and is skipped. Records
// without a name get the placeholder "#<1-based index>".
func Load(path string, log *slog.Logger) (*wol.Registry, error) {
	reg := wol.NewRegistry()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn("Failed to read configuration file", "path", path)
			return reg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("invalid configuration file %s: %w", path, err)
	}

	for i := range f.Hosts {
		node := &f.Hosts[i]

		record := HostRecord{IP: wol.DefaultIP, Port: wol.DefaultPort}
		if err := node.Decode(&record); err != nil {
			log.Warn(fmt.Sprintf("Invalid host (#%d): %v", i+1, err))
			continue
		}
		if record.Name == "" {
			record.Name = fmt.Sprintf("#%d", i+1)
		}

		for _, key := range unknownKeys(node) {
			log.Warn(fmt.Sprintf("Unknown property (%s): %s", record.Name, key))
		}

		host := wol.NewHost(record.Name, record.MAC, record.IP, record.Port)
		if err := host.Validate(); err != nil {
			log.Warn(fmt.Sprintf("Invalid host (%s): %s", record.Name, err))
			continue
		}
		reg.Add(host)
	}

	return reg, nil
}

// unknownKeys lists the mapping keys of a host node that are not part of
// the record schema. Non-mapping nodes report nothing; Decode already
// rejected them.
func unknownKeys(node *yaml.Node) []string {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	var unknown []string
	for i := 0; i+1 < len(node.Content); i += 2 {
		if key := node.Content[i].Value; !hostKeys[key] {
			unknown = append(unknown, key)
		}
	}
	return unknown
}

// LoadRecords reads the raw host entries for editing. A missing file yields
// an empty list.
func LoadRecords(path string) ([]HostRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var doc records
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid configuration file %s: %w", path, err)
	}
	return doc.Hosts, nil
}

// SaveRecords rewrites the host inventory, creating the config directory as
// needed.
func SaveRecords(path string, hosts []HostRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(records{Hosts: hosts})
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0640); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}
