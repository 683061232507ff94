package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cokacdir/cokacdir/internal/keybind"
)

// resolveKey turns a terminal key event into the Binding the keybind
// package's ActionMaps index on. KeyMsg.String() already follows the same
// "[mod+]*key" grammar ParseKey parses config keystrings with, so this
// reuses it rather than re-deriving a Binding from KeyMsg's raw fields.
func resolveKey(msg tea.KeyMsg) (keybind.Binding, bool) {
	bindings, err := keybind.ParseKey(msg.String())
	if err != nil || len(bindings) == 0 {
		return keybind.Binding{}, false
	}
	return bindings[0], true
}
