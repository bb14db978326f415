// SPDX-License-Identifier: Apache-2.0

// Package ui implements the interactive host list: a cursor over the
// configured hosts with wake actions bound to enter (selected host) and
// "a" (all hosts).
package ui

import (
	"fmt"
	"strings"

	"wol-manager/internal/wake"
	"wol-manager/internal/wol"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type model struct {
	hosts      []wol.Host
	dispatcher *wake.Dispatcher
	keys       KeyMap

	cursor  int
	status  string
	statErr bool
	waking  bool
}

// InitialModel builds the TUI model over the loaded registry.
func InitialModel(reg *wol.Registry, dispatcher *wake.Dispatcher) model {
	return model{
		hosts:      reg.All(),
		dispatcher: dispatcher,
		keys:       DefaultKeyMap,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.hosts)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Wake):
			if m.waking || len(m.hosts) == 0 {
				return m, nil
			}
			m.waking = true
			m.status = fmt.Sprintf("Waking host %q...", m.hosts[m.cursor].Name)
			m.statErr = false
			return m, wakeHostsCmd(m.dispatcher, []wol.Host{m.hosts[m.cursor]})

		case key.Matches(msg, m.keys.WakeAll):
			if m.waking || len(m.hosts) == 0 {
				return m, nil
			}
			m.waking = true
			m.status = fmt.Sprintf("Waking all %d hosts...", len(m.hosts))
			m.statErr = false
			return m, wakeHostsCmd(m.dispatcher, m.hosts)
		}

	case wakeResultMsg:
		m.waking = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Wake failed after %d packet(s): %v", msg.sent, msg.err)
			m.statErr = true
		} else if msg.sent == 1 {
			m.status = fmt.Sprintf("Magic packet sent to %q.", msg.names[0])
			m.statErr = false
		} else {
			m.status = fmt.Sprintf("Magic packets sent to %d hosts.", msg.sent)
			m.statErr = false
		}
	}

	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Wake-on-LAN hosts"))
	b.WriteString("\n\n")

	if len(m.hosts) == 0 {
		b.WriteString(emptyStyle.Render("No hosts configured. Add one with: wm config add"))
		b.WriteString("\n")
	}

	for i, h := range m.hosts {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		line := fmt.Sprintf("%s%s  %s  %s",
			cursor,
			hostStyle.Render(fmt.Sprintf("%-16s", h.Name)),
			macStyle.Render(h.MAC),
			addrStyle.Render(fmt.Sprintf("%s:%d", h.IP, h.Port)),
		)
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		if m.statErr {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(successStyle.Render(m.status))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderFooter(m.keys))
	b.WriteString("\n")
	return b.String()
}

func renderFooter(keys KeyMap) string {
	bindings := []key.Binding{keys.Up, keys.Down, keys.Wake, keys.WakeAll, keys.Quit}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts,
			footerKeyStyle.Render(b.Help().Key)+" "+footerDescStyle.Render(b.Help().Desc))
	}
	return strings.Join(parts, footerSepStyle.Render(" | "))
}
