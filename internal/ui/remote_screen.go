package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cokacdir/cokacdir/internal/config"
)

// remoteScreen lets the user point a panel at a saved SFTP profile, or back
// at the local filesystem. It's a plain cursor list, not a dedicated
// keybind context, since it only ever needs move/select/cancel.
type remoteScreen struct {
	profiles []config.RemoteProfile
	cursor   int
}

func newRemoteScreen(profiles []config.RemoteProfile) *remoteScreen {
	return &remoteScreen{profiles: profiles}
}

// handleKey returns (closeRequested, selection). selection is -1 for "local
// filesystem", a zero-based profile index when one was chosen, and -2 when
// the dialog was cancelled without a choice.
func (s *remoteScreen) handleKey(msg tea.KeyMsg) (closeRequested bool, selection int) {
	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.profiles) {
			s.cursor++
		}
	case "enter":
		if s.cursor == 0 {
			return true, -1
		}
		return true, s.cursor - 1
	case "esc", "q":
		return true, -2
	}
	return false, -2
}

func (s *remoteScreen) view() string {
	out := "Connect panel to:\n\n"
	mark := func(i int) string {
		if i == s.cursor {
			return "> "
		}
		return "  "
	}
	out += mark(0) + "(local filesystem)\n"
	for i, p := range s.profiles {
		out += mark(i+1) + fmt.Sprintf("%s (%s@%s:%d)\n", p.Name, p.User, p.Host, p.Port)
	}
	if len(s.profiles) == 0 {
		out += "\nno remote profiles saved\n"
	}
	out += "\nenter: select | esc: cancel\n"
	return out
}
