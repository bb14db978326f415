// SPDX-License-Identifier: Apache-2.0

// Bubble Tea commands performing the dispatch work off the update loop.

package ui

import (
	"context"

	"wol-manager/internal/wake"
	"wol-manager/internal/wol"

	tea "github.com/charmbracelet/bubbletea"
)

// wakeHostsCmd sends magic packets to the given hosts and reports the
// outcome as a wakeResultMsg.
func wakeHostsCmd(dispatcher *wake.Dispatcher, hosts []wol.Host) tea.Cmd {
	return func() tea.Msg {
		names := make([]string, len(hosts))
		for i, h := range hosts {
			names[i] = h.Name
		}
		sent, err := dispatcher.Wake(context.Background(), hosts)
		return wakeResultMsg{names: names, sent: sent, err: err}
	}
}
