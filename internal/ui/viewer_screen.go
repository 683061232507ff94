package ui

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cokacdir/cokacdir/internal/keybind"
	"github.com/cokacdir/cokacdir/internal/viewer"
)

var (
	viewerChromaStyle     = styles.Fallback
	viewerChromaFormatter = formatters.TTY256
)

// viewerScreen wraps viewer.Pager with a bubbles/viewport for scrolling.
type viewerScreen struct {
	pager    *viewer.Pager
	vp       viewport.Model
	status   string
	lastHits []int
}

func newViewerScreen(path string) (*viewerScreen, error) {
	p, err := viewer.Open(path)
	if err != nil {
		return nil, err
	}
	vp := viewport.New(0, 0)
	s := &viewerScreen{pager: p, vp: vp}
	s.refreshContent()
	return s, nil
}

func (s *viewerScreen) refreshContent() {
	if s.pager.Hex {
		s.vp.SetContent(strings.Join(s.pager.HexDump(), "\n"))
		return
	}
	s.vp.SetContent(s.highlightedText())
}

// highlightedText tokenizes the pager's content with the lexer matching
// the file's name and renders it through a 256-color terminal formatter,
// falling back to the plain joined lines when no lexer recognizes the
// file or tokenizing fails.
func (s *viewerScreen) highlightedText() string {
	plain := strings.Join(s.pager.Lines, "\n")
	lexer := lexers.Match(s.pager.Path)
	if lexer == nil {
		return plain
	}
	iterator, err := lexer.Tokenise(nil, plain)
	if err != nil {
		return plain
	}
	var sb strings.Builder
	if err := viewerChromaFormatter.Format(&sb, viewerChromaStyle, iterator); err != nil {
		return plain
	}
	return sb.String()
}

func (s *viewerScreen) handleKey(msg tea.KeyMsg, actions *keybind.ActionMap[keybind.ViewerAction]) (closeRequested, findRequested bool, cmd tea.Cmd) {
	b, ok := resolveKey(msg)
	if !ok {
		s.vp, cmd = s.vp.Update(msg)
		return false, false, cmd
	}
	action, ok := actions.Lookup(b)
	if !ok {
		s.vp, cmd = s.vp.Update(msg)
		return false, false, cmd
	}

	switch action {
	case keybind.ViewerToggleHex:
		s.pager.ToggleHex()
		s.refreshContent()
	case keybind.ViewerBookmarkLine:
		s.pager.ToggleBookmark(s.pager.Cursor)
	case keybind.ViewerNextBookmark:
		if line, ok := s.pager.NextBookmark(s.pager.Cursor); ok {
			s.pager.Cursor = line
			s.vp.SetYOffset(line)
		}
	case keybind.ViewerFind:
		return false, true, nil
	case keybind.ViewerFindNext:
		s.nextHit()
	case keybind.ViewerGoTop:
		s.vp.GotoTop()
	case keybind.ViewerGoBottom:
		s.vp.GotoBottom()
	case keybind.ViewerClose:
		return true, false, nil
	default:
		s.vp, cmd = s.vp.Update(msg)
	}
	return false, false, cmd
}

func (s *viewerScreen) find(pattern string) {
	hits, err := s.pager.Find(pattern)
	if err != nil {
		s.status = fmt.Sprintf("find error: %v", err)
		return
	}
	s.lastHits = hits
	s.status = fmt.Sprintf("%d line(s) match", len(hits))
	if len(hits) > 0 {
		s.vp.SetYOffset(hits[0])
	}
}

// nextHit scrolls to the first remembered find hit past the current
// viewport offset, wrapping back to the first hit once the last is passed.
func (s *viewerScreen) nextHit() {
	if len(s.lastHits) == 0 {
		return
	}
	for _, line := range s.lastHits {
		if line > s.vp.YOffset {
			s.vp.SetYOffset(line)
			return
		}
	}
	s.vp.SetYOffset(s.lastHits[0])
}

func (s *viewerScreen) view(width, height int) string {
	s.vp.Width = width
	s.vp.Height = height
	return s.vp.View()
}
