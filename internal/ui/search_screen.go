package ui

import (
	"io/fs"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cokacdir/cokacdir/internal/keybind"
)

// searchScreen is the fuzzy-filename finder: a query input over the active
// panel's directory tree, and the matching relative paths below it. The
// case-sensitivity and regex toggles turn it into the "advanced search"
// variant without needing a second screen.
type searchScreen struct {
	root          string
	input         textinput.Model
	caseSensitive bool
	useRegex      bool
	results       []string
	cursor        int
	status        string
}

func newSearchScreen(root string) *searchScreen {
	ti := textinput.New()
	ti.Placeholder = "fuzzy search..."
	ti.Focus()
	s := &searchScreen{root: root, input: ti}
	s.runSearch()
	return s
}

func (s *searchScreen) runSearch() {
	query := s.input.Value()
	if query == "" {
		s.results = nil
		return
	}

	var re *regexp.Regexp
	if s.useRegex {
		pattern := query
		if !s.caseSensitive {
			pattern = "(?i)" + pattern
		}
		var err error
		re, err = regexp.Compile(pattern)
		if err != nil {
			s.status = "invalid pattern: " + err.Error()
			s.results = nil
			return
		}
		s.status = ""
	}

	matchQuery := query
	if !s.caseSensitive {
		matchQuery = strings.ToLower(query)
	}

	var results []string
	_ = filepath.Walk(s.root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		base := filepath.Base(path)
		matched := false
		if re != nil {
			matched = re.MatchString(base)
		} else {
			candidate := base
			if !s.caseSensitive {
				candidate = strings.ToLower(candidate)
			}
			matched = strings.Contains(candidate, matchQuery)
		}
		if matched {
			if rel, err := filepath.Rel(s.root, path); err == nil {
				results = append(results, rel)
			}
		}
		return nil
	})
	s.results = results
	s.cursor = 0
}

// handleKey returns (closeRequested, openRelPath). openRelPath is non-empty
// when the caller should navigate the active panel to the chosen match.
// Advanced-search toggles (case sensitivity, regex mode) are checked before
// falling back to the basic result-list navigation, since both sets of
// keys drive the same query box.
func (s *searchScreen) handleKey(msg tea.KeyMsg, actions *keybind.ActionMap[keybind.SearchResultAction], advanced *keybind.ActionMap[keybind.AdvancedSearchAction]) (closeRequested bool, openRelPath string) {
	b, ok := resolveKey(msg)
	if !ok {
		s.input, _ = s.input.Update(msg)
		s.runSearch()
		return false, ""
	}

	if adv, ok := advanced.Lookup(b); ok {
		switch adv {
		case keybind.AdvancedSearchToggleCase:
			s.caseSensitive = !s.caseSensitive
			s.runSearch()
			return false, ""
		case keybind.AdvancedSearchToggleRegex:
			s.useRegex = !s.useRegex
			s.runSearch()
			return false, ""
		}
	}

	action, ok := actions.Lookup(b)
	if !ok {
		s.input, _ = s.input.Update(msg)
		s.runSearch()
		return false, ""
	}
	switch action {
	case keybind.SearchResultMoveUp:
		if s.cursor > 0 {
			s.cursor--
		}
	case keybind.SearchResultMoveDown:
		if s.cursor < len(s.results)-1 {
			s.cursor++
		}
	case keybind.SearchResultOpen:
		if s.cursor < len(s.results) {
			return true, s.results[s.cursor]
		}
	case keybind.SearchResultClose:
		return true, ""
	}
	return false, ""
}

func (s *searchScreen) view() string {
	mode := "substring"
	if s.useRegex {
		mode = "regex"
	}
	caseLabel := "insensitive"
	if s.caseSensitive {
		caseLabel = "sensitive"
	}
	out := "Search: " + s.input.View() + "\n"
	out += "(" + mode + ", case " + caseLabel + " — alt+r/alt+c to toggle)\n\n"
	for i, r := range s.results {
		cursor := "  "
		if i == s.cursor {
			cursor = "> "
		}
		out += cursor + r + "\n"
	}
	if s.status != "" {
		out += "\n" + s.status
	}
	return out
}
