package ui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cokacdir/cokacdir/internal/diff"
	"github.com/cokacdir/cokacdir/internal/keybind"
)

type diffDirScreen struct {
	left, right   string
	method        diff.CompareMethod
	entries       []diff.Entry
	cursor        int
	onlyDiffering bool
	status        string
}

func newDiffDirScreen(left, right string, method diff.CompareMethod) (*diffDirScreen, error) {
	s := &diffDirScreen{left: left, right: right, method: method}
	if err := s.refresh(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *diffDirScreen) refresh() error {
	entries, err := diff.Directories(s.left, s.right, s.method)
	if err != nil {
		return err
	}
	s.entries = entries
	return nil
}

func (s *diffDirScreen) visible() []diff.Entry {
	if !s.onlyDiffering {
		return s.entries
	}
	var out []diff.Entry
	for _, e := range s.entries {
		if e.Status != diff.Same {
			out = append(out, e)
		}
	}
	return out
}

func (s *diffDirScreen) handleKey(msg tea.KeyMsg, actions *keybind.ActionMap[keybind.DiffScreenAction]) (closeRequested bool, openFile *diffFileScreen) {
	b, ok := resolveKey(msg)
	if !ok {
		return false, nil
	}
	action, ok := actions.Lookup(b)
	if !ok {
		return false, nil
	}
	rows := s.visible()
	switch action {
	case keybind.DiffScreenMoveUp:
		if s.cursor > 0 {
			s.cursor--
		}
	case keybind.DiffScreenMoveDown:
		if s.cursor < len(rows)-1 {
			s.cursor++
		}
	case keybind.DiffScreenToggleOnlyDiffering:
		s.onlyDiffering = !s.onlyDiffering
		s.cursor = 0
	case keybind.DiffScreenOpenFileDiff:
		if s.cursor < len(rows) {
			e := rows[s.cursor]
			if !e.LeftIsDir && !e.RightIsDir && e.Status == diff.Differing {
				fs, err := newDiffFileScreen(s.left+"/"+e.RelPath, s.right+"/"+e.RelPath)
				if err != nil {
					s.status = fmt.Sprintf("diff failed: %v", err)
					return false, nil
				}
				return false, fs
			}
		}
	case keybind.DiffScreenClose:
		return true, nil
	}
	return false, nil
}

func (s *diffDirScreen) view() string {
	out := fmt.Sprintf("diff %s vs %s\n", s.left, s.right)
	for i, e := range s.visible() {
		cursor := "  "
		if i == s.cursor {
			cursor = "> "
		}
		var sym string
		switch e.Status {
		case diff.OnlyLeft:
			sym = "<"
		case diff.OnlyRight:
			sym = ">"
		case diff.Differing:
			sym = "!"
		default:
			sym = "="
		}
		out += fmt.Sprintf("%s%s %s\n", cursor, sym, e.RelPath)
	}
	return out
}

type diffFileScreen struct {
	left, right string
	ops         []diff.LineOp
	offset      int
	status      string
}

func newDiffFileScreen(left, right string) (*diffFileScreen, error) {
	lb, err := os.ReadFile(left)
	if err != nil {
		return nil, err
	}
	rb, err := os.ReadFile(right)
	if err != nil {
		return nil, err
	}
	return &diffFileScreen{left: left, right: right, ops: diff.Files(string(lb), string(rb))}, nil
}

func (s *diffFileScreen) handleKey(msg tea.KeyMsg, actions *keybind.ActionMap[keybind.DiffFileViewAction]) (closeRequested bool) {
	b, ok := resolveKey(msg)
	if !ok {
		return false
	}
	action, ok := actions.Lookup(b)
	if !ok {
		return false
	}
	switch action {
	case keybind.DiffFileViewScrollUp:
		if s.offset > 0 {
			s.offset--
		}
	case keybind.DiffFileViewScrollDown:
		if s.offset < len(s.ops)-1 {
			s.offset++
		}
	case keybind.DiffFileViewClose:
		return true
	}
	return false
}

func (s *diffFileScreen) view(height int) string {
	out := fmt.Sprintf("%s vs %s\n", s.left, s.right)
	end := s.offset + height
	if end > len(s.ops) {
		end = len(s.ops)
	}
	for _, op := range s.ops[s.offset:end] {
		prefix := "  "
		switch op.Kind {
		case diff.LineInsert:
			prefix = "+ "
		case diff.LineDelete:
			prefix = "- "
		}
		out += prefix + op.Text + "\n"
	}
	return out
}
