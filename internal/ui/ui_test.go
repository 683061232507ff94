package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cokacdir/cokacdir/internal/config"
	"github.com/cokacdir/cokacdir/internal/keybind"
	"github.com/cokacdir/cokacdir/internal/vfs"
)

func TestResolveKeySimpleRune(t *testing.T) {
	b, ok := resolveKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	require.True(t, ok)
	assert.Equal(t, 'j', b.Code.Char)
}

func TestResolveKeyNamed(t *testing.T) {
	b, ok := resolveKey(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, ok)
	assert.Equal(t, "enter", b.Code.Name)
}

func TestResolveKeyCtrl(t *testing.T) {
	b, ok := resolveKey(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.True(t, ok)
	assert.Equal(t, keybind.ModCtrl, b.Mods&keybind.ModCtrl)
}

func newTestModel(t *testing.T) (*Model, string, string) {
	leftDir := t.TempDir()
	rightDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(leftDir, "a.txt"), []byte("hello"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(leftDir, "sub"), 0o755))

	settings := config.Default()
	settings.Panels[0].StartPath = leftDir
	settings.Panels[1].StartPath = rightDir
	m := NewModel(settings)
	return m, leftDir, rightDir
}

func TestNewModelListsStartingDirectory(t *testing.T) {
	m, _, _ := newTestModel(t)
	names := make([]string, 0)
	for _, e := range m.panels[0].Panel.Visible() {
		names = append(names, e.Name)
	}
	assert.ElementsMatch(t, []string{"a.txt", "sub"}, names)
}

func TestSwitchPanelAction(t *testing.T) {
	m, _, _ := newTestModel(t)
	assert.Equal(t, 0, m.active)
	_, _ = m.handleExplorerKey(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.active)
}

func TestToggleHiddenAction(t *testing.T) {
	m, leftDir, _ := newTestModel(t)
	require.NoError(t, os.WriteFile(filepath.Join(leftDir, ".secret"), []byte("x"), 0o644))
	require.NoError(t, m.panels[0].refresh())
	assert.False(t, m.panels[0].Panel.ShowHidden)

	b, ok := m.keys.Panel.FirstKey(keybind.PanelToggleHidden)
	require.True(t, ok)
	msg := keyMsgFromBinding(b)
	_, _ = m.handleExplorerKey(msg)
	assert.True(t, m.panels[0].Panel.ShowHidden)
}

func keyMsgFromBinding(b keybind.Binding) tea.KeyMsg {
	if b.Code.Name != "" {
		switch b.Code.Name {
		case "enter":
			return tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			return tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			return tea.KeyMsg{Type: tea.KeyTab}
		case "backspace":
			return tea.KeyMsg{Type: tea.KeyBackspace}
		case "f5":
			return tea.KeyMsg{Type: tea.KeyF5}
		}
	}
	if b.Mods == keybind.ModCtrl && b.Code.Char >= 'a' && b.Code.Char <= 'z' {
		return tea.KeyMsg{Type: tea.KeyCtrlA + tea.KeyType(b.Code.Char-'a')}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{b.Code.Char}}
}

func TestCopySelectedToOtherPanel(t *testing.T) {
	m, leftDir, rightDir := newTestModel(t)
	m.panels[0].Panel.ToggleSelect("a.txt")
	m.panels[0].syncList()

	m.copySelected()

	_, err := os.Stat(filepath.Join(rightDir, "a.txt"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(leftDir, "a.txt"))
	assert.NoError(t, err, "copy must not remove the source")
}

func TestMoveSelectedToOtherPanel(t *testing.T) {
	m, leftDir, rightDir := newTestModel(t)
	m.panels[0].Panel.ToggleSelect("a.txt")
	m.panels[0].syncList()

	m.moveSelected()

	_, err := os.Stat(filepath.Join(rightDir, "a.txt"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(leftDir, "a.txt"))
	assert.True(t, os.IsNotExist(err), "move must remove the source")
}

func TestGotoResultDeleteIndexDefaultsToSentinel(t *testing.T) {
	assert.Equal(t, -1, noGotoResult().deleteIndex)
}

func TestApplyGotoResultDeletesBookmark(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.settings.BookmarkedPath = []string{"/one", "/two"}
	m.gotoScr = newGotoScreen(m.settings.BookmarkedPath)

	m.applyGotoResult(gotoResult{deleteIndex: 0})
	assert.Equal(t, []string{"/two"}, m.settings.BookmarkedPath)
}

func TestSearchScreenFindsMatchByBaseName(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "needle.txt"), []byte("x"), 0o644))

	s := newSearchScreen(root)
	for _, r := range "needle" {
		s.input.SetValue(s.input.Value() + string(r))
		s.runSearch()
	}
	require.Len(t, s.results, 1)
	assert.Equal(t, filepath.Join("sub", "needle.txt"), s.results[0])
}

func TestRunBulkRenameAppliesPattern(t *testing.T) {
	m, leftDir, _ := newTestModel(t)
	require.NoError(t, os.WriteFile(filepath.Join(leftDir, "report-draft.txt"), []byte("x"), 0o644))
	require.NoError(t, m.panels[0].refresh())

	m.runBulkRename([]string{"report-draft.txt"}, "draft", "final")

	_, err := os.Stat(filepath.Join(leftDir, "report-final.txt"))
	assert.NoError(t, err)
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "512 B", formatSize(512))
	assert.Equal(t, "1.0 KiB", formatSize(1024))
	assert.Equal(t, "1.5 KiB", formatSize(1536))
}

func TestFormatUptime(t *testing.T) {
	assert.Equal(t, "1d 1h 1m", formatUptime(86400+3600+60))
}

func TestUsageBar(t *testing.T) {
	assert.Equal(t, "[##########----------]", usageBar(50))
	assert.Equal(t, "[####################]", usageBar(150))
}

func TestFileInfoScreenViewForRegularFile(t *testing.T) {
	dir := t.TempDir()
	fullPath := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(fullPath, []byte("hello"), 0o644))
	info, err := os.Stat(fullPath)
	require.NoError(t, err)

	s := newFileInfoScreen(vfs.Local{}, fullPath, info)
	view := s.view()
	assert.Contains(t, view, "5 B")
	assert.Contains(t, view, "esc: close")
}

func TestFileInfoScreenEscClosesWhenIdle(t *testing.T) {
	m, leftDir, _ := newTestModel(t)
	fullPath := filepath.Join(leftDir, "a.txt")
	info, err := os.Stat(fullPath)
	require.NoError(t, err)
	m.fileInfo = newFileInfoScreen(vfs.Local{}, fullPath, info)

	closeReq := m.fileInfo.handleKey(tea.KeyMsg{Type: tea.KeyEsc}, m.keys.FileInfo)
	assert.True(t, closeReq)
}

func TestFileInfoScreenEscCancelsCalculationFirst(t *testing.T) {
	m, leftDir, _ := newTestModel(t)
	info, err := os.Stat(leftDir)
	require.NoError(t, err)
	s := newFileInfoScreen(vfs.Local{}, leftDir, info)
	s.calculating = true
	s.cancel = func() {}

	closeReq := s.handleKey(tea.KeyMsg{Type: tea.KeyEsc}, m.keys.FileInfo)
	assert.False(t, closeReq)
	assert.False(t, s.calculating)
}

func TestSearchScreenCaseSensitiveToggleNarrowsMatches(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "Needle.txt"), []byte("x"), 0o644))

	s := newSearchScreen(root)
	s.input.SetValue("needle")
	s.runSearch()
	require.Len(t, s.results, 1, "case-insensitive by default")

	s.caseSensitive = true
	s.runSearch()
	assert.Empty(t, s.results, "case-sensitive search must not match differing case")
}

func TestRemoteScreenSelectLocal(t *testing.T) {
	s := newRemoteScreen(nil)
	closeReq, selection := s.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, closeReq)
	assert.Equal(t, -1, selection)
}

func TestRemoteScreenSelectProfile(t *testing.T) {
	s := newRemoteScreen([]config.RemoteProfile{{Name: "box"}})
	_, _ = s.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	closeReq, selection := s.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, closeReq)
	assert.Equal(t, 0, selection)
}

func TestRemoteScreenEscCancelsWithoutSelection(t *testing.T) {
	s := newRemoteScreen([]config.RemoteProfile{{Name: "box"}})
	closeReq, selection := s.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, closeReq)
	assert.Equal(t, -2, selection)
}

func TestRemoteConnectMsgSwitchesPanelToLocal(t *testing.T) {
	m, _, _ := newTestModel(t)
	_, _ = m.Update(remoteConnectMsg{panelIndex: 0, fsys: vfs.Local{}})
	_, ok := m.panels[0].Panel.FS.(vfs.Local)
	assert.True(t, ok)
}

func TestRemoteConnectMsgReportsDialError(t *testing.T) {
	m, _, _ := newTestModel(t)
	_, _ = m.Update(remoteConnectMsg{panelIndex: 0, err: fmt.Errorf("boom")})
	assert.Contains(t, m.status, "connect failed")
}

func TestViewerScreenFindKeyRequestsPrompt(t *testing.T) {
	dir := t.TempDir()
	fullPath := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(fullPath, []byte("alpha\nbeta\ngamma\n"), 0o644))

	s, err := newViewerScreen(fullPath)
	require.NoError(t, err)

	m, _, _ := newTestModel(t)
	b, ok := m.keys.Viewer.FirstKey(keybind.ViewerFind)
	require.True(t, ok)
	closeReq, findReq, _ := s.handleKey(keyMsgFromBinding(b), m.keys.Viewer)
	assert.False(t, closeReq)
	assert.True(t, findReq)
}

func TestViewerScreenFindThenNextHitAdvances(t *testing.T) {
	dir := t.TempDir()
	fullPath := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(fullPath, []byte("alpha\nbeta\nalpha\ngamma\n"), 0o644))

	s, err := newViewerScreen(fullPath)
	require.NoError(t, err)

	s.find("alpha")
	require.Len(t, s.lastHits, 2)
	assert.Equal(t, s.lastHits[0], s.vp.YOffset)

	s.nextHit()
	assert.Equal(t, s.lastHits[1], s.vp.YOffset)

	s.nextHit()
	assert.Equal(t, s.lastHits[0], s.vp.YOffset, "wraps back to the first hit")
}

func TestViewerScreenHighlightsKnownExtension(t *testing.T) {
	dir := t.TempDir()
	fullPath := filepath.Join(dir, "main.go")
	require.NoError(t, os.WriteFile(fullPath, []byte("package main\n"), 0o644))

	s, err := newViewerScreen(fullPath)
	require.NoError(t, err)
	assert.Contains(t, s.highlightedText(), "package")
}

func TestSearchScreenRegexModeMatchesPattern(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "report-2024.csv"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644))

	s := newSearchScreen(root)
	s.useRegex = true
	s.input.SetValue(`report-\d+\.csv`)
	s.runSearch()

	require.Len(t, s.results, 1)
	assert.Equal(t, "report-2024.csv", s.results[0])
}

// TestEditorSaveToSettingsPathReloadsKeybindings exercises the live-reload
// hook: saving the open buffer back to settings.json should re-read it and
// rebuild the runtime keymap, the same way a user editing settings.json in
// the built-in editor would pick up a new override without restarting.
func TestEditorSaveToSettingsPathReloadsKeybindings(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	settings := config.Default()
	m := NewModel(settings)

	require.NoError(t, config.Save(settings))
	settingsFile, err := config.SettingsPath()
	require.NoError(t, err)

	s, err := newEditorScreen(settingsFile)
	require.NoError(t, err)
	s.area.SetValue(`{"theme":{"name":"dark"},"diff_compare_method":"content","panels":[{"sort_by":"name","sort_order":"asc"},{"sort_by":"name","sort_order":"asc"}],"keybindings":{"file_panel":{"quit":["//exit","ctrl+q"]}}}`)

	b, ok := m.keys.Editor.FirstKey(keybind.EditorSave)
	require.True(t, ok)
	closeReq, savedPath, _ := s.handleKey(keyMsgFromBinding(b), m.keys.Editor)
	assert.False(t, closeReq)
	assert.Equal(t, settingsFile, savedPath)

	m.reloadIfSettingsPath(savedPath)

	_, stillQuit := m.keys.Panel.Lookup(keybind.Binding{Code: keybind.Code{Char: 'q'}})
	assert.False(t, stillQuit)
	a, ok := m.keys.Panel.Lookup(keybind.Binding{Code: keybind.Code{Char: 'q'}, Mods: keybind.ModCtrl})
	assert.True(t, ok)
	assert.Equal(t, keybind.PanelQuit, a)
}
