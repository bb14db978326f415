// SPDX-License-Identifier: Apache-2.0

// Keyboard bindings for the TUI host list.

package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the host list screen.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Wake    key.Binding
	WakeAll key.Binding
	Quit    key.Binding
}

// DefaultKeyMap provides the default keybindings.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Wake: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "wake"),
	),
	WakeAll: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "wake all"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
