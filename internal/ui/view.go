package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cokacdir/cokacdir/internal/keybind"
)

const appName = "cokacdir"

func (m *Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}
	title := m.styles.Title.Render(appName)

	if m.prompt != nil {
		return lipgloss.JoinVertical(lipgloss.Left, title, m.prompt.label, m.prompt.input.View())
	}

	switch m.top() {
	case ScreenEditor:
		return lipgloss.JoinVertical(lipgloss.Left, title, m.styles.Subtitle.Render("editing: "+m.editor.buf.Path),
			m.editor.view(m.width, m.height-4), m.editor.status)
	case ScreenViewer:
		return lipgloss.JoinVertical(lipgloss.Left, title, m.styles.Subtitle.Render("viewing: "+m.viewer.pager.Path),
			m.viewer.view(m.width, m.height-4), m.viewer.status)
	case ScreenGit:
		return lipgloss.JoinVertical(lipgloss.Left, title, m.git.view())
	case ScreenProcess:
		return lipgloss.JoinVertical(lipgloss.Left, title, m.proc.view())
	case ScreenImage:
		return lipgloss.JoinVertical(lipgloss.Left, title, m.img.view())
	case ScreenDiffDir:
		return lipgloss.JoinVertical(lipgloss.Left, title, m.diffDir.view())
	case ScreenDiffFile:
		return lipgloss.JoinVertical(lipgloss.Left, title, m.diffFile.view(m.height-4))
	case ScreenGoto:
		return lipgloss.JoinVertical(lipgloss.Left, title, m.gotoScr.view())
	case ScreenSearch:
		return lipgloss.JoinVertical(lipgloss.Left, title, m.search.view())
	case ScreenHelp:
		return lipgloss.JoinVertical(lipgloss.Left, title, m.helpView())
	case ScreenFileInfo:
		return lipgloss.JoinVertical(lipgloss.Left, title, m.fileInfo.view())
	case ScreenSystemInfo:
		return lipgloss.JoinVertical(lipgloss.Left, title, m.sysInfo.view())
	case ScreenRemote:
		return lipgloss.JoinVertical(lipgloss.Left, title, m.remote.view())
	}

	left := m.panels[0]
	right := m.panels[1]
	leftHeader := m.styles.Subtitle.Render("Left: " + left.Panel.CurrentDir)
	rightHeader := m.styles.Subtitle.Render("Right: " + right.Panel.CurrentDir)
	if m.active == 0 {
		leftHeader = m.styles.Selected.Render("Left: " + left.Panel.CurrentDir)
	} else {
		rightHeader = m.styles.Selected.Render("Right: " + right.Panel.CurrentDir)
	}
	headers := lipgloss.JoinHorizontal(lipgloss.Top, leftHeader, rightHeader)
	content := lipgloss.JoinHorizontal(lipgloss.Top, left.List.View(), right.List.View())

	help := m.styles.Subtitle.Render(strings.Join([]string{
		m.keys.Panel.KeysJoined(keybind.PanelQuit) + ": quit",
		"tab: switch", "space: select", "F5: copy", "F6: move", "F8: delete",
	}, " • "))

	return lipgloss.JoinVertical(lipgloss.Left, title, headers, content, m.status, help)
}

var helpActions = []struct {
	action keybind.PanelAction
	label  string
}{
	{keybind.PanelEnter, "open"},
	{keybind.PanelGoParent, "parent directory"},
	{keybind.PanelSwitchPanel, "switch panel"},
	{keybind.PanelToggleSelect, "select"},
	{keybind.PanelSelectAll, "select all"},
	{keybind.PanelCopy, "copy"},
	{keybind.PanelMove, "move"},
	{keybind.PanelDelete, "delete"},
	{keybind.PanelRename, "rename"},
	{keybind.PanelMkdir, "new directory"},
	{keybind.PanelTouch, "new file"},
	{keybind.PanelEdit, "edit"},
	{keybind.PanelView, "view"},
	{keybind.PanelDiff, "diff panels"},
	{keybind.PanelGotoPath, "go to path"},
	{keybind.PanelBookmarkAdd, "add bookmark"},
	{keybind.PanelBookmarkOpen, "open bookmark"},
	{keybind.PanelPack, "pack/encrypt"},
	{keybind.PanelUnpack, "unpack/decrypt"},
	{keybind.PanelGitScreen, "git status"},
	{keybind.PanelProcessManager, "process manager"},
	{keybind.PanelImageViewer, "image viewer"},
	{keybind.PanelFileInfo, "file info"},
	{keybind.PanelSystemInfo, "system info"},
	{keybind.PanelConnectRemote, "connect remote / local"},
	{keybind.PanelFuzzySearch, "fuzzy search"},
	{keybind.PanelBulkRename, "bulk rename"},
	{keybind.PanelSubshell, "subshell"},
	{keybind.PanelSuspend, "suspend"},
	{keybind.PanelQuit, "quit"},
}

func (m *Model) helpView() string {
	out := "Keybindings (esc to close)\n\n"
	for _, h := range helpActions {
		out += fmt.Sprintf("%-14s %s\n", m.keys.Panel.KeysJoined(h.action), h.label)
	}
	return out
}
