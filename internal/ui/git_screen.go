package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cokacdir/cokacdir/internal/gitscreen"
	"github.com/cokacdir/cokacdir/internal/keybind"
)

// gitScreenTab selects which of the status/log tabs is shown.
type gitScreenTab int

const (
	gitTabStatus gitScreenTab = iota
	gitTabLog
)

type gitScreenState struct {
	repoDir   string
	branch    string
	entries   []gitscreen.StatusEntry
	log       []string
	cursor    int
	tab       gitScreenTab
	committing bool
	commitMsg textinput.Model
	status    string
}

func newGitScreenState(ctx context.Context, repoDir string) (*gitScreenState, error) {
	s := &gitScreenState{repoDir: repoDir}
	s.commitMsg = textinput.New()
	s.commitMsg.Placeholder = "commit message"
	if err := s.refresh(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *gitScreenState) refresh(ctx context.Context) error {
	entries, branch, err := gitscreen.Status(ctx, s.repoDir)
	if err != nil {
		return err
	}
	s.entries = entries
	s.branch = branch
	log, err := gitscreen.Log(ctx, s.repoDir, 30)
	if err != nil {
		return err
	}
	s.log = log
	if s.cursor >= len(s.entries) {
		s.cursor = 0
	}
	return nil
}

func (s *gitScreenState) handleKey(ctx context.Context, msg tea.KeyMsg, actions *keybind.ActionMap[keybind.GitScreenAction]) (closeRequested bool, cmd tea.Cmd) {
	if s.committing {
		if msg.String() == "enter" {
			if err := gitscreen.Commit(ctx, s.repoDir, s.commitMsg.Value()); err != nil {
				s.status = fmt.Sprintf("commit failed: %v", err)
			} else {
				s.status = "committed"
				s.refresh(ctx)
			}
			s.committing = false
			s.commitMsg.Reset()
			return false, nil
		}
		if msg.String() == "esc" {
			s.committing = false
			return false, nil
		}
		s.commitMsg, cmd = s.commitMsg.Update(msg)
		return false, cmd
	}

	b, ok := resolveKey(msg)
	if !ok {
		return false, nil
	}
	action, ok := actions.Lookup(b)
	if !ok {
		return false, nil
	}

	switch action {
	case keybind.GitScreenMoveUp:
		if s.cursor > 0 {
			s.cursor--
		}
	case keybind.GitScreenMoveDown:
		if s.cursor < len(s.entries)-1 {
			s.cursor++
		}
	case keybind.GitScreenToggleStage:
		if s.cursor < len(s.entries) {
			e := s.entries[s.cursor]
			var err error
			if e.Code[0] != ' ' && e.Code[0] != '?' {
				err = gitscreen.UnstagePath(ctx, s.repoDir, e.Path)
			} else {
				err = gitscreen.StagePath(ctx, s.repoDir, e.Path)
			}
			if err != nil {
				s.status = fmt.Sprintf("stage failed: %v", err)
			} else {
				s.refresh(ctx)
			}
		}
	case keybind.GitScreenCommit:
		s.committing = true
		s.commitMsg.Focus()
	case keybind.GitScreenSwitchTab:
		if s.tab == gitTabStatus {
			s.tab = gitTabLog
		} else {
			s.tab = gitTabStatus
		}
	case keybind.GitScreenRefresh:
		s.refresh(ctx)
	case keybind.GitScreenClose:
		return true, nil
	}
	return false, nil
}

func (s *gitScreenState) view() string {
	if s.committing {
		return "Commit message:\n" + s.commitMsg.View()
	}
	out := fmt.Sprintf("branch: %s\n", s.branch)
	if s.tab == gitTabLog {
		for _, l := range s.log {
			out += l + "\n"
		}
		return out
	}
	for i, e := range s.entries {
		cursor := "  "
		if i == s.cursor {
			cursor = "> "
		}
		out += fmt.Sprintf("%s%s %s\n", cursor, e.Code, e.Path)
	}
	if s.status != "" {
		out += "\n" + s.status
	}
	return out
}
