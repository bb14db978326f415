// SPDX-License-Identifier: Apache-2.0

package wol

import (
	"fmt"
	"strconv"
	"strings"
)

// tableColumns are the registry table headers, in display order.
var tableColumns = [4]string{"Hostname", "MAC Address", "IP Address", "Port"}

// Registry holds an ordered collection of hosts. Insertion order is
// preserved (it reflects configuration file order) and duplicate names are
// allowed; lookups return the first match.
type Registry struct {
	hosts []Host
}

// NewRegistry builds a registry seeded with zero or more hosts.
func NewRegistry(hosts ...Host) *Registry {
	return &Registry{hosts: hosts}
}

// Add appends a host to the registry.
func (r *Registry) Add(h Host) {
	r.hosts = append(r.hosts, h)
}

// Get returns the first host whose name matches, case-insensitively.
// A miss is reported through the boolean, never as an error.
func (r *Registry) Get(name string) (Host, bool) {
	for _, h := range r.hosts {
		if strings.EqualFold(h.Name, name) {
			return h, true
		}
	}
	return Host{}, false
}

// All returns the live underlying slice, not a copy: callers that mutate the
// returned elements mutate the registry. Kept deliberately — the wake path
// treats the registry as the single source of truth for "all hosts".
func (r *Registry) All() []Host {
	return r.hosts
}

// Count reports the number of hosts held.
func (r *Registry) Count() int {
	return len(r.hosts)
}

// Table renders all hosts as an aligned text table in insertion order.
// Column alignment is cosmetic; content and row order are the contract.
func (r *Registry) Table() string {
	rows := make([][4]string, 0, len(r.hosts))
	widths := [4]int{}
	for i, col := range tableColumns {
		widths[i] = len(col)
	}

	for _, h := range r.hosts {
		row := [4]string{h.Name, h.MAC, h.IP, strconv.Itoa(h.Port)}
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
		rows = append(rows, row)
	}

	var b strings.Builder
	writeRow := func(row [4]string) {
		for i, cell := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			fmt.Fprintf(&b, "%-*s", widths[i], cell)
		}
		b.WriteString("\n")
	}

	writeRow(tableColumns)
	writeRow([4]string{
		strings.Repeat("-", widths[0]),
		strings.Repeat("-", widths[1]),
		strings.Repeat("-", widths[2]),
		strings.Repeat("-", widths[3]),
	})
	for _, row := range rows {
		writeRow(row)
	}
	return strings.TrimRight(b.String(), "\n")
}
