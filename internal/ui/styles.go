// SPDX-License-Identifier: Apache-2.0

package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	hostStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	macStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	addrStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Italic(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)

	// Footer / help bar styles
	footerKeyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	footerDescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	footerSepStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)
