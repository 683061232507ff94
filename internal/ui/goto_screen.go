package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cokacdir/cokacdir/internal/keybind"
)

// gotoScreen is the go-to-path dialog: a path input plus the bookmark list
// it can jump to, delete from, or edit.
type gotoScreen struct {
	input     textinput.Model
	bookmarks []string
	cursor    int
	editing   bool
}

func newGotoScreen(bookmarks []string) *gotoScreen {
	ti := textinput.New()
	ti.Placeholder = "path or select a bookmark below"
	ti.Focus()
	return &gotoScreen{input: ti, bookmarks: bookmarks}
}

// gotoResult communicates what the dialog wants the caller to do.
// deleteIndex is -1 when no bookmark deletion was requested.
type gotoResult struct {
	close       bool
	submitPath  string
	deleteIndex int
}

func noGotoResult() gotoResult { return gotoResult{deleteIndex: -1} }

func (s *gotoScreen) handleKey(msg tea.KeyMsg, actions *keybind.ActionMap[keybind.GotoAction]) gotoResult {
	if s.editing {
		if msg.String() == "enter" {
			if s.cursor < len(s.bookmarks) {
				s.bookmarks[s.cursor] = s.input.Value()
			}
			s.editing = false
			return noGotoResult()
		}
		s.input, _ = s.input.Update(msg)
		return noGotoResult()
	}

	b, ok := resolveKey(msg)
	if !ok {
		s.input, _ = s.input.Update(msg)
		return noGotoResult()
	}
	action, ok := actions.Lookup(b)
	if !ok {
		s.input, _ = s.input.Update(msg)
		return noGotoResult()
	}

	switch action {
	case keybind.GotoSubmit:
		if s.input.Value() != "" {
			return gotoResult{deleteIndex: -1, submitPath: s.input.Value()}
		}
		if s.cursor < len(s.bookmarks) {
			return gotoResult{deleteIndex: -1, submitPath: s.bookmarks[s.cursor]}
		}
	case keybind.GotoBookmarkDelete:
		if s.cursor < len(s.bookmarks) {
			return gotoResult{deleteIndex: s.cursor}
		}
	case keybind.GotoBookmarkEdit:
		if s.cursor < len(s.bookmarks) {
			s.editing = true
			s.input.SetValue(s.bookmarks[s.cursor])
		}
	case keybind.GotoClose:
		return gotoResult{deleteIndex: -1, close: true}
	}
	return noGotoResult()
}

func (s *gotoScreen) view() string {
	out := "Go to path:\n" + s.input.View() + "\n\nBookmarks:\n"
	for i, b := range s.bookmarks {
		cursor := "  "
		if i == s.cursor {
			cursor = "> "
		}
		out += cursor + b + "\n"
	}
	return out
}
