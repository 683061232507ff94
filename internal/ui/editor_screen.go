package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cokacdir/cokacdir/internal/editor"
	"github.com/cokacdir/cokacdir/internal/keybind"
)

// editorScreen wraps editor.Buffer (undo/redo, find/replace) with a
// bubbles/textarea for rendering and everyday cursor movement/typing,
// which the buffer itself is never consulted for.
type editorScreen struct {
	buf       *editor.Buffer
	area      textarea.Model
	find      textinput.Model
	finding   bool
	wrap      bool
	status    string
	lastFind  []editor.Match
}

func newEditorScreen(path string) (*editorScreen, error) {
	buf, err := editor.Open(path)
	if err != nil {
		return nil, err
	}
	ta := textarea.New()
	ta.SetValue(buf.Text())
	ta.Focus()
	fi := textinput.New()
	fi.Placeholder = "find pattern"
	return &editorScreen{buf: buf, area: ta, find: fi}, nil
}

func (s *editorScreen) syncFromArea() { s.buf.Lines = strings.Split(s.area.Value(), "\n") }
func (s *editorScreen) syncToArea()   { s.area.SetValue(s.buf.Text()) }

// handleKey returns closeRequested=true when the screen should pop off the
// stack (EditorClose); a successful EditorSave keeps the screen open.
// savedPath is set to the buffer's path whenever a save just succeeded, so
// the caller can detect a save to settings.json and reload it in place —
// the live-reload path is this save hook, not a filesystem watcher. A saved
// theme file is not reloaded this way.
func (s *editorScreen) handleKey(msg tea.KeyMsg, actions *keybind.ActionMap[keybind.EditorAction]) (closeRequested bool, savedPath string, cmd tea.Cmd) {
	if s.finding {
		if msg.String() == "enter" {
			s.runFind()
			s.finding = false
			return false, "", nil
		}
		if msg.String() == "esc" {
			s.finding = false
			return false, "", nil
		}
		s.find, cmd = s.find.Update(msg)
		return false, "", cmd
	}

	b, ok := resolveKey(msg)
	if !ok {
		s.area, cmd = s.area.Update(msg)
		return false, "", cmd
	}
	action, ok := actions.Lookup(b)
	if !ok {
		s.area, cmd = s.area.Update(msg)
		return false, "", cmd
	}

	switch action {
	case keybind.EditorUndo:
		s.syncFromArea()
		if s.buf.Undo() {
			s.syncToArea()
			s.status = "undo"
		}
	case keybind.EditorRedo:
		s.syncFromArea()
		if s.buf.Redo() {
			s.syncToArea()
			s.status = "redo"
		}
	case keybind.EditorSave:
		s.syncFromArea()
		if err := s.buf.Save(); err != nil {
			s.status = fmt.Sprintf("save failed: %v", err)
		} else {
			s.status = "saved"
			savedPath = s.buf.Path
		}
	case keybind.EditorFind:
		s.finding = true
		s.find.Focus()
	case keybind.EditorFindNext:
		s.runFind()
	case keybind.EditorToggleWrap:
		s.wrap = !s.wrap
	case keybind.EditorClose:
		return true, "", nil
	default:
		s.area, cmd = s.area.Update(msg)
	}
	return false, savedPath, cmd
}

func (s *editorScreen) runFind() {
	s.syncFromArea()
	matches, err := s.buf.Find(s.find.Value(), false)
	if err != nil {
		s.status = fmt.Sprintf("find error: %v", err)
		return
	}
	s.lastFind = matches
	s.status = fmt.Sprintf("%d match(es)", len(matches))
}

func (s *editorScreen) view(width, height int) string {
	s.area.SetWidth(width)
	s.area.SetHeight(height)
	if s.finding {
		return s.find.View() + "\n" + s.area.View()
	}
	return s.area.View()
}
