// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"log/slog"
	"os"

	"wol-manager/internal/ui"
	"wol-manager/internal/wake"
	"wol-manager/internal/wol"

	tea "github.com/charmbracelet/bubbletea"
)

// RunTUI initializes and runs the Bubble Tea application over the loaded
// registry.
func RunTUI(reg *wol.Registry, dispatcher *wake.Dispatcher, log *slog.Logger) {
	m := ui.InitialModel(reg, dispatcher)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error("TUI crashed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
