package ui

import (
	"context"
	"fmt"
	"path"
	"regexp"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cokacdir/cokacdir/internal/config"
	"github.com/cokacdir/cokacdir/internal/diff"
	"github.com/cokacdir/cokacdir/internal/enc"
	"github.com/cokacdir/cokacdir/internal/keybind"
	"github.com/cokacdir/cokacdir/internal/panel"
	"github.com/cokacdir/cokacdir/internal/procmgr"
	"github.com/cokacdir/cokacdir/internal/vfs"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		listHeight := msg.Height - 6
		listWidth := msg.Width / 2
		for _, pv := range m.panels {
			pv.setSize(listWidth, listHeight)
		}
		return m, nil

	case opDoneMsg:
		m.inProgress = false
		if msg.err != nil {
			m.status = fmt.Sprintf("failed: %v", msg.err)
		} else {
			m.status = msg.info
		}
		m.activePanel().refresh()
		m.otherPanel().refresh()
		m.pop()
		return m, nil

	case progressMsg:
		cmd := m.progress.SetPercent(msg.percent)
		return m, cmd

	case dirCalcDoneMsg:
		if m.fileInfo != nil {
			m.fileInfo.applyResult(msg)
		}
		return m, nil

	case remoteConnectMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("connect failed: %v", msg.err)
			return m, nil
		}
		pv := m.panels[msg.panelIndex]
		if old, ok := pv.Panel.FS.(*vfs.SFTP); ok {
			old.Close()
		}
		pv.Panel.FS = msg.fsys
		if msg.startPath != "" {
			pv.Panel.CurrentDir = msg.startPath
		}
		if err := pv.refresh(); err != nil {
			m.status = fmt.Sprintf("connect failed: %v", err)
			return m, nil
		}
		m.status = "panel connected"
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.prompt != nil {
		return m.handlePromptKey(msg)
	}

	switch m.top() {
	case ScreenExplorer:
		return m.handleExplorerKey(msg)
	case ScreenEditor:
		closeReq, savedPath, cmd := m.editor.handleKey(msg, m.keys.Editor)
		if savedPath != "" {
			m.reloadIfSettingsPath(savedPath)
		}
		if closeReq {
			m.pop()
		}
		return m, cmd
	case ScreenViewer:
		closeReq, findReq, cmd := m.viewer.handleKey(msg, m.keys.Viewer)
		if closeReq {
			m.pop()
			return m, cmd
		}
		if findReq {
			m.startPrompt("find", func(m *Model, pattern string) {
				m.viewer.find(pattern)
			})
		}
		return m, cmd
	case ScreenGit:
		closeReq, cmd := m.git.handleKey(context.Background(), msg, m.keys.GitScreen)
		if closeReq {
			m.pop()
		}
		return m, cmd
	case ScreenProcess:
		if m.proc.handleKey(msg, m.keys.ProcessManager) {
			m.pop()
		}
		return m, nil
	case ScreenImage:
		if m.img.handleKey(msg, m.keys.ImageViewer) {
			m.pop()
		}
		return m, nil
	case ScreenDiffDir:
		closeReq, openFile := m.diffDir.handleKey(msg, m.keys.DiffScreen)
		if openFile != nil {
			m.diffFile = openFile
			m.push(ScreenDiffFile)
		}
		if closeReq {
			m.pop()
		}
		return m, nil
	case ScreenDiffFile:
		if m.diffFile.handleKey(msg, m.keys.DiffFileView) {
			m.pop()
		}
		return m, nil
	case ScreenGoto:
		res := m.gotoScr.handleKey(msg, m.keys.Goto)
		m.applyGotoResult(res)
		return m, nil
	case ScreenSearch:
		closeReq, relPath := m.search.handleKey(msg, m.keys.SearchResult, m.keys.AdvancedSearch)
		if relPath != "" {
			pv := m.activePanel()
			full := path.Join(m.search.root, relPath)
			pv.Panel.CurrentDir = path.Dir(full)
			pv.refresh()
		}
		if closeReq {
			m.pop()
		}
		return m, nil
	case ScreenHelp:
		if msg.String() == "esc" || msg.String() == "q" {
			m.pop()
		}
		return m, nil
	case ScreenFileInfo:
		if m.fileInfo.handleKey(msg, m.keys.FileInfo) {
			m.pop()
		}
		return m, nil
	case ScreenSystemInfo:
		if m.sysInfo.handleKey(msg, m.keys.SystemInfo, m.activePanel().Panel.CurrentDir) {
			m.pop()
		}
		return m, nil
	case ScreenRemote:
		closeReq, selection := m.remote.handleKey(msg)
		if !closeReq {
			return m, nil
		}
		m.pop()
		switch {
		case selection == -1:
			return m, func() tea.Msg {
				return remoteConnectMsg{panelIndex: m.remoteTargetPanel, fsys: vfs.Local{}}
			}
		case selection >= 0 && selection < len(m.settings.RemoteProfiles):
			profile := m.settings.RemoteProfiles[selection]
			return m, connectRemoteCmd(m.remoteTargetPanel, profile)
		}
		return m, nil
	}
	return m, nil
}

// connectRemoteCmd dials a saved remote profile off the UI goroutine and
// reports the new filesystem (or the dial error) back through
// remoteConnectMsg.
func connectRemoteCmd(panelIndex int, profile config.RemoteProfile) tea.Cmd {
	return func() tea.Msg {
		fsys, err := vfs.DialSFTP(vfs.SFTPDialOpts{
			Addr:       fmt.Sprintf("%s:%d", profile.Host, profile.Port),
			User:       profile.User,
			Password:   profile.Auth.Password,
			KeyPath:    profile.Auth.KeyPath,
			Passphrase: profile.Auth.Passphrase,
		})
		if err != nil {
			return remoteConnectMsg{panelIndex: panelIndex, err: err}
		}
		startPath := profile.DefaultPath
		if startPath == "" {
			startPath = "."
		}
		return remoteConnectMsg{panelIndex: panelIndex, fsys: fsys, startPath: startPath}
	}
}

func (m *Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		p := m.prompt
		m.prompt = nil
		p.onSubmit(m, p.input.Value())
		return m, nil
	case "esc":
		m.prompt = nil
		return m, nil
	}
	var cmd tea.Cmd
	m.prompt.input, cmd = m.prompt.input.Update(msg)
	return m, cmd
}

func (m *Model) applyGotoResult(res gotoResult) {
	switch {
	case res.close:
		m.pop()
	case res.submitPath != "":
		pv := m.activePanel()
		pv.Panel.CurrentDir = res.submitPath
		pv.refresh()
		m.pop()
	case res.deleteIndex >= 0 && res.deleteIndex < len(m.gotoScr.bookmarks):
		idx := res.deleteIndex
		m.settings.BookmarkedPath = append(m.settings.BookmarkedPath[:idx], m.settings.BookmarkedPath[idx+1:]...)
		m.gotoScr.bookmarks = m.settings.BookmarkedPath
	}
}

func (m *Model) handleExplorerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	b, ok := resolveKey(msg)
	if !ok {
		return m, nil
	}
	action, ok := m.keys.Panel.Lookup(b)
	if !ok {
		return m, nil
	}

	pv := m.activePanel()

	switch action {
	case keybind.PanelMoveUp, keybind.PanelMoveDown, keybind.PanelPageUp, keybind.PanelPageDown,
		keybind.PanelGoTop, keybind.PanelGoBottom, keybind.PanelFilter:
		var cmd tea.Cmd
		pv.List, cmd = pv.List.Update(msg)
		return m, cmd

	case keybind.PanelEnter:
		m.enterSelected(pv)

	case keybind.PanelGoParent:
		pv.Panel.CurrentDir = path.Dir(pv.Panel.CurrentDir)
		pv.refresh()

	case keybind.PanelSwitchPanel:
		m.active = 1 - m.active

	case keybind.PanelToggleSelect:
		if entry, ok := pv.selectedEntry(); ok {
			pv.Panel.ToggleSelect(entry.Name)
			pv.syncList()
		}

	case keybind.PanelSelectAll:
		pv.Panel.SelectAll()
		pv.syncList()

	case keybind.PanelSelectNone:
		pv.Panel.SelectNone()
		pv.syncList()

	case keybind.PanelInvertSelect:
		pv.Panel.InvertSelect()
		pv.syncList()

	case keybind.PanelToggleHidden:
		pv.Panel.ShowHidden = !pv.Panel.ShowHidden
		pv.syncList()

	case keybind.PanelSortByName:
		pv.Panel.SortField = panel.SortByName
		pv.Panel.Sort()
		pv.syncList()

	case keybind.PanelSortBySize:
		pv.Panel.SortField = panel.SortBySize
		pv.Panel.Sort()
		pv.syncList()

	case keybind.PanelSortByModTime:
		pv.Panel.SortField = panel.SortByModTime
		pv.Panel.Sort()
		pv.syncList()

	case keybind.PanelSortByExt:
		pv.Panel.SortField = panel.SortByExt
		pv.Panel.Sort()
		pv.syncList()

	case keybind.PanelToggleSortOrder:
		if pv.Panel.SortOrder == panel.Ascending {
			pv.Panel.SortOrder = panel.Descending
		} else {
			pv.Panel.SortOrder = panel.Ascending
		}
		pv.Panel.Sort()
		pv.syncList()

	case keybind.PanelRefresh:
		pv.refresh()

	case keybind.PanelCopy:
		m.copySelected()

	case keybind.PanelMove:
		m.moveSelected()

	case keybind.PanelDelete:
		m.deleteSelected()

	case keybind.PanelMkdir:
		m.startPrompt("new directory name", func(m *Model, name string) {
			if name == "" {
				return
			}
			pv := m.activePanel()
			if err := pv.Panel.FS.Mkdir(path.Join(pv.Panel.CurrentDir, name)); err != nil {
				m.status = fmt.Sprintf("mkdir failed: %v", err)
				return
			}
			pv.refresh()
		})

	case keybind.PanelTouch:
		m.startPrompt("new file name", func(m *Model, name string) {
			if name == "" {
				return
			}
			pv := m.activePanel()
			target := path.Join(pv.Panel.CurrentDir, name)
			w, err := pv.Panel.FS.OpenWrite(target)
			if err != nil {
				m.status = fmt.Sprintf("touch failed: %v", err)
				return
			}
			w.Close()
			pv.refresh()
		})

	case keybind.PanelRename:
		if entry, ok := pv.selectedEntry(); ok {
			m.startPrompt("rename "+entry.Name+" to", func(m *Model, newName string) {
				if newName == "" {
					return
				}
				pv := m.activePanel()
				old := path.Join(pv.Panel.CurrentDir, entry.Name)
				if err := pv.Panel.FS.Rename(old, path.Join(pv.Panel.CurrentDir, newName)); err != nil {
					m.status = fmt.Sprintf("rename failed: %v", err)
					return
				}
				pv.refresh()
			})
		}

	case keybind.PanelEdit:
		if entry, ok := pv.selectedEntry(); ok && !entry.IsDir {
			m.openEditor(path.Join(pv.Panel.CurrentDir, entry.Name))
		}

	case keybind.PanelView:
		if entry, ok := pv.selectedEntry(); ok && !entry.IsDir {
			m.openViewer(path.Join(pv.Panel.CurrentDir, entry.Name))
		}

	case keybind.PanelOpenWith:
		if entry, ok := pv.selectedEntry(); ok && !entry.IsDir {
			m.runHandler(path.Join(pv.Panel.CurrentDir, entry.Name))
		}

	case keybind.PanelDiff:
		other := m.otherPanel()
		fs, err := newDiffDirScreen(pv.Panel.CurrentDir, other.Panel.CurrentDir, diffMethodFromString(m.settings.DiffCompareMethod))
		if err != nil {
			m.status = fmt.Sprintf("diff failed: %v", err)
			return m, nil
		}
		m.diffDir = fs
		m.push(ScreenDiffDir)

	case keybind.PanelGotoPath:
		m.gotoScr = newGotoScreen(m.settings.BookmarkedPath)
		m.push(ScreenGoto)

	case keybind.PanelBookmarkAdd:
		m.settings.BookmarkedPath = append(m.settings.BookmarkedPath, pv.Panel.CurrentDir)
		m.status = "bookmarked " + pv.Panel.CurrentDir

	case keybind.PanelGitScreen:
		gs, err := newGitScreenState(context.Background(), pv.Panel.CurrentDir)
		if err != nil {
			m.status = fmt.Sprintf("git failed: %v", err)
			return m, nil
		}
		m.git = gs
		m.push(ScreenGit)

	case keybind.PanelProcessManager:
		ps, err := newProcScreenState(procmgr.ProcLister{})
		if err != nil {
			m.status = fmt.Sprintf("process list failed: %v", err)
			return m, nil
		}
		m.proc = ps
		m.push(ScreenProcess)

	case keybind.PanelImageViewer:
		if entry, ok := pv.selectedEntry(); ok && !entry.IsDir {
			is, err := newImageScreenState(path.Join(pv.Panel.CurrentDir, entry.Name))
			if err != nil {
				m.status = fmt.Sprintf("image open failed: %v", err)
				return m, nil
			}
			m.img = is
			m.push(ScreenImage)
		}

	case keybind.PanelFileInfo:
		entry, ok := pv.selectedEntry()
		if !ok {
			return m, nil
		}
		full := path.Join(pv.Panel.CurrentDir, entry.Name)
		info, err := pv.Panel.FS.Stat(full)
		if err != nil {
			m.status = fmt.Sprintf("stat failed: %v", err)
			return m, nil
		}
		m.fileInfo = newFileInfoScreen(pv.Panel.FS, full, info)
		m.push(ScreenFileInfo)
		if info.IsDir() {
			return m, m.fileInfo.startCalculation()
		}
		return m, nil

	case keybind.PanelSystemInfo:
		m.sysInfo = newSysInfoScreen(pv.Panel.CurrentDir)
		m.push(ScreenSystemInfo)

	case keybind.PanelConnectRemote:
		m.remote = newRemoteScreen(m.settings.RemoteProfiles)
		m.remoteTargetPanel = m.active
		m.push(ScreenRemote)

	case keybind.PanelPack:
		names := m.selectedOrCurrentNames(pv)
		if len(names) == 0 {
			return m, nil
		}
		m.startPrompt("encryption password", func(m *Model, password string) {
			m.runPack(pv, names, password)
		})

	case keybind.PanelUnpack:
		m.startPrompt("decryption password", func(m *Model, password string) {
			m.runUnpack(pv, password)
		})

	case keybind.PanelFuzzySearch:
		m.search = newSearchScreen(pv.Panel.CurrentDir)
		m.push(ScreenSearch)

	case keybind.PanelBulkRename:
		names := pv.Panel.Selected()
		if len(names) == 0 {
			m.status = "bulk rename needs a selection"
			return m, nil
		}
		m.startPrompt("rename pattern (regex)", func(m *Model, pattern string) {
			m.startPrompt("replacement", func(m *Model, replacement string) {
				m.runBulkRename(names, pattern, replacement)
			})
		})

	case keybind.PanelBookmarkOpen:
		m.gotoScr = newGotoScreen(m.settings.BookmarkedPath)
		m.push(ScreenGoto)

	case keybind.PanelSubshell:
		return m, m.runSubshell(pv.Panel.CurrentDir)

	case keybind.PanelSuspend:
		suspendProcess()
		pv.refresh()

	case keybind.PanelHelp:
		m.push(ScreenHelp)

	case keybind.PanelQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func diffMethodFromString(s string) diff.CompareMethod {
	switch s {
	case "size":
		return diff.CompareBySize
	case "mtime":
		return diff.CompareByModTime
	default:
		return diff.CompareByContent
	}
}

func (m *Model) enterSelected(pv *panelView) {
	entry, ok := pv.selectedEntry()
	if !ok {
		return
	}
	if entry.IsDir {
		pv.Panel.CurrentDir = path.Join(pv.Panel.CurrentDir, entry.Name)
		pv.refresh()
		return
	}
	full := path.Join(pv.Panel.CurrentDir, entry.Name)
	if _, ok := m.handlers.Lookup(full); ok {
		m.runHandler(full)
		return
	}
	m.openViewer(full)
}

func (m *Model) openEditor(path string) {
	s, err := newEditorScreen(path)
	if err != nil {
		m.status = fmt.Sprintf("edit failed: %v", err)
		return
	}
	m.editor = s
	m.push(ScreenEditor)
}

func (m *Model) openViewer(path string) {
	s, err := newViewerScreen(path)
	if err != nil {
		m.status = fmt.Sprintf("view failed: %v", err)
		return
	}
	m.viewer = s
	m.push(ScreenViewer)
}

func (m *Model) runHandler(path string) {
	out, err := m.handlers.Run(context.Background(), path)
	if err != nil {
		m.status = fmt.Sprintf("handler failed: %v\n%s", err, out)
		return
	}
	m.status = out
}

func (m *Model) selectedOrCurrentNames(pv *panelView) []string {
	names := pv.Panel.Selected()
	if len(names) > 0 {
		return names
	}
	if e, ok := pv.selectedEntry(); ok {
		return []string{e.Name}
	}
	return nil
}

func (m *Model) copySelected() {
	src, dst := m.activePanel(), m.otherPanel()
	names := m.selectedOrCurrentNames(src)
	for _, n := range names {
		srcPath := path.Join(src.Panel.CurrentDir, n)
		dstName := panel.ResolveRenameCollision(n, func(candidate string) bool {
			_, err := dst.Panel.FS.Stat(path.Join(dst.Panel.CurrentDir, candidate))
			return err == nil
		})
		dstPath := path.Join(dst.Panel.CurrentDir, dstName)
		if err := crossCopy(src.Panel.FS, dst.Panel.FS, srcPath, dstPath); err != nil {
			m.status = fmt.Sprintf("copy failed: %v", err)
			return
		}
	}
	src.refresh()
	dst.refresh()
	m.status = fmt.Sprintf("copied %d item(s)", len(names))
}

func (m *Model) moveSelected() {
	src, dst := m.activePanel(), m.otherPanel()
	names := m.selectedOrCurrentNames(src)
	for _, n := range names {
		srcPath := path.Join(src.Panel.CurrentDir, n)
		dstName := panel.ResolveRenameCollision(n, func(candidate string) bool {
			_, err := dst.Panel.FS.Stat(path.Join(dst.Panel.CurrentDir, candidate))
			return err == nil
		})
		dstPath := path.Join(dst.Panel.CurrentDir, dstName)
		if err := crossMove(src.Panel.FS, dst.Panel.FS, srcPath, dstPath); err != nil {
			m.status = fmt.Sprintf("move failed: %v", err)
			return
		}
	}
	src.refresh()
	dst.refresh()
	m.status = fmt.Sprintf("moved %d item(s)", len(names))
}

func (m *Model) deleteSelected() {
	pv := m.activePanel()
	names := m.selectedOrCurrentNames(pv)
	for _, n := range names {
		if err := deletePath(pv.Panel.FS, path.Join(pv.Panel.CurrentDir, n)); err != nil {
			m.status = fmt.Sprintf("delete failed: %v", err)
			return
		}
	}
	pv.refresh()
	m.status = fmt.Sprintf("deleted %d item(s)", len(names))
}

func (m *Model) runPack(pv *panelView, names []string, password string) {
	dir := pv.Panel.CurrentDir
	paths := make([]string, len(names))
	for i, n := range names {
		paths[i] = path.Join(dir, n)
	}
	err := enc.PackFiles(context.Background(), paths, []byte(password), 0, nil)
	if err != nil {
		m.status = fmt.Sprintf("pack failed: %v", err)
	} else {
		m.status = fmt.Sprintf("packed %d item(s)", len(paths))
	}
	pv.refresh()
}

func (m *Model) runBulkRename(names []string, pattern, replacement string) {
	pv := m.activePanel()
	re, err := regexp.Compile(pattern)
	if err != nil {
		m.status = fmt.Sprintf("bulk rename failed: invalid pattern: %v", err)
		return
	}
	renamed := 0
	for _, n := range names {
		newName := re.ReplaceAllString(n, replacement)
		if newName == n {
			continue
		}
		old := path.Join(pv.Panel.CurrentDir, n)
		dst := path.Join(pv.Panel.CurrentDir, newName)
		if err := pv.Panel.FS.Rename(old, dst); err != nil {
			m.status = fmt.Sprintf("rename failed for %s: %v", n, err)
			continue
		}
		renamed++
	}
	pv.Panel.SelectNone()
	pv.refresh()
	m.status = fmt.Sprintf("bulk renamed %d item(s)", renamed)
}

func (m *Model) runUnpack(pv *panelView, password string) {
	dir := pv.Panel.CurrentDir
	names, err := enc.UnpackAllGroups(context.Background(), dir, []byte(password), nil)
	if err != nil {
		m.status = fmt.Sprintf("unpack failed: %v", err)
	} else {
		m.status = fmt.Sprintf("unpacked %d file(s)", len(names))
	}
	pv.refresh()
}
