// SPDX-License-Identifier: Apache-2.0

// Package wol implements the Wake-on-LAN core: host records, MAC address
// normalization and validation, magic packet construction, and the ordered
// host registry the rest of the application works against.
package wol

import (
	"encoding/hex"
	"fmt"
	"net/netip"
	"regexp"
	"strings"
)

// Defaults applied to host records that omit a target address or port.
// Port 9 is the conventional WoL "discard" port.
const (
	DefaultIP   = "255.255.255.255"
	DefaultPort = 9
)

// Validation failure messages. These exact strings are part of the
// user-facing contract and are matched by config load warnings.
const (
	msgInvalidIP   = "Invalid IPv4 Address"
	msgInvalidMAC  = "Invalid MAC Address"
	msgInvalidName = "Invalid name"
	msgInvalidPort = "Invalid port"
)

// macSeparators strips every separator style we accept on input:
// colons (aa:bb:cc:00:11:22), dashes (aa-bb-cc-00-11-22) and the Cisco
// dotted form (aabb.cc00.1122).
var macSeparators = strings.NewReplacer(".", "", "-", "", ":", "")

// macPattern matches the canonical form only: six colon-separated pairs of
// uppercase hex digits. Anything looser (bare 12 digits, trailing garbage)
// must have been rewritten by NormalizeMAC before validation.
var macPattern = regexp.MustCompile(`^([0-9A-F]{2}:){5}[0-9A-F]{2}$`)

// Host is one wakeable machine. Construct it with NewHost so the MAC is
// normalized; the fields are not meant to change afterwards. A Host may hold
// invalid data until Validate is called — callers must validate before
// sending anything to it.
type Host struct {
	Name string
	MAC  string
	IP   string
	Port int
}

// NewHost builds a Host from raw input. The MAC address is normalized
// unconditionally; no field is validated here.
func NewHost(name, mac, ip string, port int) Host {
	return Host{
		Name: name,
		MAC:  NormalizeMAC(mac),
		IP:   ip,
		Port: port,
	}
}

// NormalizeMAC rewrites a raw MAC string into the canonical colon-separated
// uppercase form. Separators are stripped; if exactly 12 characters remain
// they are regrouped into pairs, otherwise the stripped value is returned
// as-is (uppercased) for Validate to reject.
func NormalizeMAC(raw string) string {
	stripped := macSeparators.Replace(raw)
	if len(stripped) == 12 {
		var b strings.Builder
		for i := 0; i < 12; i += 2 {
			if i > 0 {
				b.WriteByte(':')
			}
			b.WriteString(stripped[i : i+2])
		}
		stripped = b.String()
	}
	return strings.ToUpper(stripped)
}

// ValidationError aggregates every field-level rule a host violated.
type ValidationError struct {
	Failures []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Failures, "; ")
}

// Validate runs every field check and collects all failures; it does not
// stop at the first one. It returns a *ValidationError listing each violated
// rule, or nil when the host is usable.
func (h Host) Validate() error {
	checks := []func() string{
		h.checkIP,
		h.checkMAC,
		h.checkName,
		h.checkPort,
	}

	var failures []string
	for _, check := range checks {
		if msg := check(); msg != "" {
			failures = append(failures, msg)
		}
	}

	if len(failures) > 0 {
		return &ValidationError{Failures: failures}
	}
	return nil
}

func (h Host) checkIP() string {
	addr, err := netip.ParseAddr(h.IP)
	if err != nil || !addr.Is4() {
		return msgInvalidIP
	}
	return ""
}

func (h Host) checkMAC() string {
	if !macPattern.MatchString(h.MAC) {
		return msgInvalidMAC
	}
	return ""
}

func (h Host) checkName() string {
	if h.Name == "" {
		return msgInvalidName
	}
	return ""
}

func (h Host) checkPort() string {
	if h.Port < 0 || h.Port > 65535 {
		return msgInvalidPort
	}
	return ""
}

// MagicPacket builds the 102-byte Wake-on-LAN payload for this host: six
// 0xFF bytes followed by the 6-byte MAC address repeated 16 times. It fails
// when the stored MAC does not decode to 6 bytes; validate the host first.
func (h Host) MagicPacket() ([]byte, error) {
	mac, err := hex.DecodeString(strings.ReplaceAll(h.MAC, ":", ""))
	if err != nil {
		return nil, fmt.Errorf("malformed MAC address %q: %w", h.MAC, err)
	}
	if len(mac) != 6 {
		return nil, fmt.Errorf("malformed MAC address %q: need 6 bytes, have %d", h.MAC, len(mac))
	}

	packet := make([]byte, 0, 102)
	packet = append(packet, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF)
	for i := 0; i < 16; i++ {
		packet = append(packet, mac...)
	}
	return packet, nil
}
