package keybind

func panelDefaults() []Default[PanelAction] {
	return []Default[PanelAction]{
		{PanelMoveUp, []string{"up", "k"}},
		{PanelMoveDown, []string{"down", "j"}},
		{PanelPageUp, []string{"pageup"}},
		{PanelPageDown, []string{"pagedown"}},
		{PanelGoTop, []string{"home", "g"}},
		{PanelGoBottom, []string{"end", "G"}},
		{PanelEnter, []string{"enter", "l"}},
		{PanelGoParent, []string{"backspace", "h"}},
		{PanelSwitchPanel, []string{"tab"}},
		{PanelToggleSelect, []string{"space"}},
		{PanelSelectAll, []string{"ctrl+a"}},
		{PanelSelectNone, []string{"ctrl+d"}},
		{PanelInvertSelect, []string{"*"}},
		{PanelCopy, []string{"f5"}},
		{PanelMove, []string{"f6"}},
		{PanelDelete, []string{"f8", "delete"}},
		{PanelRename, []string{"f2"}},
		{PanelMkdir, []string{"f7"}},
		{PanelTouch, []string{"ctrl+n"}},
		{PanelRefresh, []string{"r", "ctrl+r"}},
		{PanelFilter, []string{"/"}},
		{PanelFuzzySearch, []string{"ctrl+p"}},
		{PanelBulkRename, []string{"ctrl+shift+r"}},
		{PanelSortByName, []string{"alt+n"}},
		{PanelSortBySize, []string{"alt+s"}},
		{PanelSortByModTime, []string{"alt+m"}},
		{PanelSortByExt, []string{"alt+e"}},
		{PanelToggleSortOrder, []string{"alt+o"}},
		{PanelToggleHidden, []string{"ctrl+h"}},
		{PanelOpenWith, []string{"ctrl+e"}},
		{PanelEdit, []string{"f4"}},
		{PanelView, []string{"f3"}},
		{PanelDiff, []string{"ctrl+f"}},
		{PanelGotoPath, []string{"ctrl+g"}},
		{PanelBookmarkAdd, []string{"ctrl+b"}},
		{PanelBookmarkOpen, []string{"ctrl+shift+b"}},
		{PanelPack, []string{"ctrl+k"}},
		{PanelUnpack, []string{"ctrl+u"}},
		{PanelGitScreen, []string{"ctrl+shift+g"}},
		{PanelProcessManager, []string{"ctrl+shift+p"}},
		{PanelImageViewer, []string{"ctrl+shift+i"}},
		{PanelFileInfo, []string{"ctrl+alt+i"}},
		{PanelSystemInfo, []string{"ctrl+alt+s"}},
		{PanelConnectRemote, []string{"ctrl+shift+c"}},
		{PanelSubshell, []string{"ctrl+o"}},
		{PanelSuspend, []string{"ctrl+z"}},
		{PanelHelp, []string{"f1"}},
		{PanelQuit, []string{"ctrl+c", "q"}},
	}
}

func editorDefaults() []Default[EditorAction] {
	return []Default[EditorAction]{
		{EditorMoveUp, []string{"up"}},
		{EditorMoveDown, []string{"down"}},
		{EditorMoveLeft, []string{"left"}},
		{EditorMoveRight, []string{"right"}},
		{EditorLineStart, []string{"home"}},
		{EditorLineEnd, []string{"end"}},
		{EditorPageUp, []string{"pageup"}},
		{EditorPageDown, []string{"pagedown"}},
		{EditorDocStart, []string{"ctrl+home"}},
		{EditorDocEnd, []string{"ctrl+end"}},
		{EditorInsertNewline, []string{"enter"}},
		{EditorBackspace, []string{"backspace"}},
		{EditorDeleteForward, []string{"delete"}},
		{EditorUndo, []string{"ctrl+z"}},
		{EditorRedo, []string{"ctrl+y"}},
		{EditorCut, []string{"ctrl+x"}},
		{EditorCopy, []string{"ctrl+c"}},
		{EditorPaste, []string{"ctrl+v"}},
		{EditorFind, []string{"ctrl+f"}},
		{EditorFindNext, []string{"f3"}},
		{EditorFindPrev, []string{"shift+f3"}},
		{EditorReplace, []string{"ctrl+h"}},
		{EditorToggleWrap, []string{"alt+w"}},
		{EditorSave, []string{"ctrl+s"}},
		{EditorClose, []string{"esc"}},
	}
}

func fileInfoDefaults() []Default[FileInfoAction] {
	return []Default[FileInfoAction]{
		{FileInfoScrollUp, []string{"up"}},
		{FileInfoScrollDown, []string{"down"}},
		{FileInfoClose, []string{"esc"}},
	}
}

func systemInfoDefaults() []Default[SystemInfoAction] {
	return []Default[SystemInfoAction]{
		{SystemInfoRefresh, []string{"r"}},
		{SystemInfoSwitchTab, []string{"tab"}},
		{SystemInfoClose, []string{"esc"}},
	}
}

func searchResultDefaults() []Default[SearchResultAction] {
	return []Default[SearchResultAction]{
		{SearchResultMoveUp, []string{"up"}},
		{SearchResultMoveDown, []string{"down"}},
		{SearchResultOpen, []string{"enter"}},
		{SearchResultClose, []string{"esc"}},
	}
}

func advancedSearchDefaults() []Default[AdvancedSearchAction] {
	return []Default[AdvancedSearchAction]{
		{AdvancedSearchToggleCase, []string{"alt+c"}},
		{AdvancedSearchToggleRegex, []string{"alt+r"}},
		{AdvancedSearchSubmit, []string{"enter"}},
		{AdvancedSearchClose, []string{"esc"}},
	}
}

func diffFileViewDefaults() []Default[DiffFileViewAction] {
	return []Default[DiffFileViewAction]{
		{DiffFileViewScrollUp, []string{"up"}},
		{DiffFileViewScrollDown, []string{"down"}},
		{DiffFileViewNextHunk, []string{"n"}},
		{DiffFileViewPrevHunk, []string{"p"}},
		{DiffFileViewClose, []string{"esc"}},
	}
}

func diffScreenDefaults() []Default[DiffScreenAction] {
	return []Default[DiffScreenAction]{
		{DiffScreenMoveUp, []string{"up"}},
		{DiffScreenMoveDown, []string{"down"}},
		{DiffScreenOpenFileDiff, []string{"enter"}},
		{DiffScreenToggleOnlyDiffering, []string{"alt+d"}},
		{DiffScreenClose, []string{"esc"}},
	}
}

func viewerDefaults() []Default[ViewerAction] {
	return []Default[ViewerAction]{
		{ViewerScrollUp, []string{"up", "k"}},
		{ViewerScrollDown, []string{"down", "j"}},
		{ViewerPageUp, []string{"pageup"}},
		{ViewerPageDown, []string{"pagedown", "space"}},
		{ViewerGoTop, []string{"g", "home"}},
		{ViewerGoBottom, []string{"G", "end"}},
		{ViewerToggleHex, []string{"ctrl+h"}},
		{ViewerFind, []string{"/"}},
		{ViewerFindNext, []string{"n"}},
		{ViewerBookmarkLine, []string{"m"}},
		{ViewerNextBookmark, []string{"M"}},
		{ViewerClose, []string{"esc", "q"}},
	}
}

func imageViewerDefaults() []Default[ImageViewerAction] {
	return []Default[ImageViewerAction]{
		{ImageViewerPan, []string{"h", "j", "k", "l"}},
		{ImageViewerZoomIn, []string{"+"}},
		{ImageViewerZoomOut, []string{"-"}},
		{ImageViewerNext, []string{"n"}},
		{ImageViewerPrev, []string{"p"}},
		{ImageViewerClose, []string{"esc", "q"}},
	}
}

func processManagerDefaults() []Default[ProcessManagerAction] {
	return []Default[ProcessManagerAction]{
		{ProcessManagerMoveUp, []string{"up"}},
		{ProcessManagerMoveDown, []string{"down"}},
		{ProcessManagerSortByCPU, []string{"c"}},
		{ProcessManagerSortByMem, []string{"m"}},
		{ProcessManagerSortByPID, []string{"p"}},
		{ProcessManagerTerminate, []string{"t"}},
		{ProcessManagerKill, []string{"ctrl+k"}},
		{ProcessManagerClose, []string{"esc"}},
	}
}

func aiScreenDefaults() []Default[AIScreenAction] {
	return []Default[AIScreenAction]{
		{AIScreenSubmit, []string{"enter"}},
		{AIScreenClose, []string{"esc"}},
	}
}

func gitScreenDefaults() []Default[GitScreenAction] {
	return []Default[GitScreenAction]{
		{GitScreenMoveUp, []string{"up"}},
		{GitScreenMoveDown, []string{"down"}},
		{GitScreenToggleStage, []string{"space"}},
		{GitScreenCommit, []string{"c"}},
		{GitScreenSwitchTab, []string{"tab"}},
		{GitScreenRefresh, []string{"r"}},
		{GitScreenClose, []string{"esc"}},
	}
}

func gotoDefaults() []Default[GotoAction] {
	return []Default[GotoAction]{
		{GotoSubmit, []string{"enter"}},
		{GotoBookmarkDelete, []string{"ctrl+d"}},
		{GotoBookmarkEdit, []string{"ctrl+e"}},
		{GotoClose, []string{"esc"}},
	}
}
