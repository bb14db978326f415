// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"net/netip"
	"os"
	"path/filepath"

	"wol-manager/internal/wol"

	"github.com/kevinburke/ssh_config"
)

// PotentialHost is a host alias found in an OpenSSH client configuration
// that could be turned into a wake target. The MAC address cannot come from
// ssh_config; imported entries carry an empty MAC for the user to fill in.
type PotentialHost struct {
	Alias    string
	Hostname string
}

// DefaultSSHConfigPath returns ~/.ssh/config.
func DefaultSSHConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".ssh", "config"), nil
}

// ParseSSHConfig extracts concrete host aliases from the SSH client config
// at path. Wildcard patterns are skipped. A missing file yields an empty
// list.
func ParseSSHConfig(path string) ([]PotentialHost, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open ssh config file %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := ssh_config.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ssh config file %s: %w", path, err)
	}

	var potentialHosts []PotentialHost
	for _, host := range cfg.Hosts {
		if len(host.Patterns) == 0 {
			continue
		}
		alias := host.Patterns[0].String()
		if alias == "" || containsWildcard(alias) {
			continue
		}

		hostname, _ := cfg.Get(alias, "HostName")
		if hostname == "" {
			hostname = alias
		}

		potentialHosts = append(potentialHosts, PotentialHost{
			Alias:    alias,
			Hostname: hostname,
		})
	}

	return potentialHosts, nil
}

// ConvertToHostRecord turns a parsed SSH host into a config record. The
// hostname is used as the wake target IP only when it is an IPv4 literal;
// otherwise the broadcast default applies, since WoL datagrams cannot be
// sent to a DNS name of a machine that is off.
func ConvertToHostRecord(p PotentialHost) HostRecord {
	record := HostRecord{
		Name: p.Alias,
		IP:   wol.DefaultIP,
		Port: wol.DefaultPort,
	}
	if addr, err := netip.ParseAddr(p.Hostname); err == nil && addr.Is4() {
		record.IP = p.Hostname
	}
	return record
}

func containsWildcard(pattern string) bool {
	for _, r := range pattern {
		if r == '*' || r == '?' || r == '!' {
			return true
		}
	}
	return false
}
