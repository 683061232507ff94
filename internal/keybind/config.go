package keybind

// RawOverrides is the on-disk shape of a keybindings override file: one
// action-name-to-keystring-list map per context, exactly as a user would
// hand edit it. An action present in the map fully replaces that action's
// default bindings, even with an empty or all-comment list. Unknown action
// names and malformed keystrings are skipped rather than rejected, so a
// partially-wrong file still loads everything valid.
type RawOverrides struct {
	Panel          map[string][]string `json:"file_panel,omitempty"`
	Editor         map[string][]string `json:"editor,omitempty"`
	FileInfo       map[string][]string `json:"file_info,omitempty"`
	SystemInfo     map[string][]string `json:"system_info,omitempty"`
	SearchResult   map[string][]string `json:"search_result,omitempty"`
	AdvancedSearch map[string][]string `json:"advanced_search,omitempty"`
	DiffFileView   map[string][]string `json:"diff_file_view,omitempty"`
	DiffScreen     map[string][]string `json:"diff_screen,omitempty"`
	Viewer         map[string][]string `json:"file_viewer,omitempty"`
	ImageViewer    map[string][]string `json:"image_viewer,omitempty"`
	ProcessManager map[string][]string `json:"process_manager,omitempty"`
	AIScreen       map[string][]string `json:"ai_screen,omitempty"`
	GitScreen      map[string][]string `json:"git_screen,omitempty"`
	Goto           map[string][]string `json:"goto,omitempty"`
}

// Keybindings holds one ActionMap per screen context, built once at
// startup from defaults plus any user overrides.
type Keybindings struct {
	Panel          *ActionMap[PanelAction]
	Editor         *ActionMap[EditorAction]
	FileInfo       *ActionMap[FileInfoAction]
	SystemInfo     *ActionMap[SystemInfoAction]
	SearchResult   *ActionMap[SearchResultAction]
	AdvancedSearch *ActionMap[AdvancedSearchAction]
	DiffFileView   *ActionMap[DiffFileViewAction]
	DiffScreen     *ActionMap[DiffScreenAction]
	Viewer         *ActionMap[ViewerAction]
	ImageViewer    *ActionMap[ImageViewerAction]
	ProcessManager *ActionMap[ProcessManagerAction]
	AIScreen       *ActionMap[AIScreenAction]
	GitScreen      *ActionMap[GitScreenAction]
	Goto           *ActionMap[GotoAction]
}

var panelActionNames = map[string]PanelAction{
	"move_up": PanelMoveUp, "move_down": PanelMoveDown,
	"page_up": PanelPageUp, "page_down": PanelPageDown,
	"go_top": PanelGoTop, "go_bottom": PanelGoBottom,
	"enter": PanelEnter, "go_parent": PanelGoParent,
	"switch_panel": PanelSwitchPanel, "toggle_select": PanelToggleSelect,
	"select_all": PanelSelectAll, "select_none": PanelSelectNone,
	"invert_select": PanelInvertSelect, "copy": PanelCopy,
	"move": PanelMove, "delete": PanelDelete, "rename": PanelRename,
	"mkdir": PanelMkdir, "touch": PanelTouch, "refresh": PanelRefresh,
	"filter": PanelFilter, "fuzzy_search": PanelFuzzySearch,
	"bulk_rename": PanelBulkRename, "sort_by_name": PanelSortByName,
	"sort_by_size": PanelSortBySize, "sort_by_mtime": PanelSortByModTime,
	"sort_by_ext": PanelSortByExt, "toggle_sort_order": PanelToggleSortOrder,
	"toggle_hidden": PanelToggleHidden, "open_with": PanelOpenWith,
	"edit": PanelEdit, "view": PanelView, "diff": PanelDiff,
	"goto_path": PanelGotoPath, "bookmark_add": PanelBookmarkAdd,
	"bookmark_open": PanelBookmarkOpen, "pack": PanelPack,
	"unpack": PanelUnpack, "git_screen": PanelGitScreen,
	"process_manager": PanelProcessManager, "image_viewer": PanelImageViewer,
	"file_info": PanelFileInfo, "system_info": PanelSystemInfo,
	"connect_remote": PanelConnectRemote,
	"subshell": PanelSubshell, "suspend": PanelSuspend,
	"help": PanelHelp, "quit": PanelQuit,
}

// buildOverrides re-keys a raw action-name-to-keystrings map by the
// action's enum value, dropping any name the context doesn't recognize.
func buildOverrides[A comparable](raw map[string][]string, names map[string]A) map[A][]string {
	out := make(map[A][]string, len(raw))
	for name, keystrings := range raw {
		if a, ok := names[name]; ok {
			out[a] = keystrings
		}
	}
	return out
}

// NewKeybindings builds every context's ActionMap from defaults plus the
// given overrides (pass a zero-value RawOverrides for defaults only).
func NewKeybindings(raw RawOverrides) *Keybindings {
	return &Keybindings{
		Panel:          NewActionMap(panelDefaults(), buildOverrides(raw.Panel, panelActionNames)),
		Editor:         NewActionMap(editorDefaults(), buildOverrides(raw.Editor, editorActionNames)),
		FileInfo:       NewActionMap(fileInfoDefaults(), buildOverrides(raw.FileInfo, fileInfoActionNames)),
		SystemInfo:     NewActionMap(systemInfoDefaults(), buildOverrides(raw.SystemInfo, systemInfoActionNames)),
		SearchResult:   NewActionMap(searchResultDefaults(), buildOverrides(raw.SearchResult, searchResultActionNames)),
		AdvancedSearch: NewActionMap(advancedSearchDefaults(), buildOverrides(raw.AdvancedSearch, advancedSearchActionNames)),
		DiffFileView:   NewActionMap(diffFileViewDefaults(), buildOverrides(raw.DiffFileView, diffFileViewActionNames)),
		DiffScreen:     NewActionMap(diffScreenDefaults(), buildOverrides(raw.DiffScreen, diffScreenActionNames)),
		Viewer:         NewActionMap(viewerDefaults(), buildOverrides(raw.Viewer, viewerActionNames)),
		ImageViewer:    NewActionMap(imageViewerDefaults(), buildOverrides(raw.ImageViewer, imageViewerActionNames)),
		ProcessManager: NewActionMap(processManagerDefaults(), buildOverrides(raw.ProcessManager, processManagerActionNames)),
		AIScreen:       NewActionMap(aiScreenDefaults(), buildOverrides(raw.AIScreen, aiScreenActionNames)),
		GitScreen:      NewActionMap(gitScreenDefaults(), buildOverrides(raw.GitScreen, gitScreenActionNames)),
		Goto:           NewActionMap(gotoDefaults(), buildOverrides(raw.Goto, gotoActionNames)),
	}
}

var editorActionNames = map[string]EditorAction{
	"move_up": EditorMoveUp, "move_down": EditorMoveDown,
	"move_left": EditorMoveLeft, "move_right": EditorMoveRight,
	"line_start": EditorLineStart, "line_end": EditorLineEnd,
	"page_up": EditorPageUp, "page_down": EditorPageDown,
	"doc_start": EditorDocStart, "doc_end": EditorDocEnd,
	"insert_newline": EditorInsertNewline, "backspace": EditorBackspace,
	"delete_forward": EditorDeleteForward, "undo": EditorUndo,
	"redo": EditorRedo, "cut": EditorCut, "copy": EditorCopy,
	"paste": EditorPaste, "find": EditorFind, "find_next": EditorFindNext,
	"find_prev": EditorFindPrev, "replace": EditorReplace,
	"toggle_wrap": EditorToggleWrap, "save": EditorSave, "close": EditorClose,
}

var fileInfoActionNames = map[string]FileInfoAction{
	"scroll_up": FileInfoScrollUp, "scroll_down": FileInfoScrollDown,
	"close": FileInfoClose,
}

var systemInfoActionNames = map[string]SystemInfoAction{
	"refresh": SystemInfoRefresh, "switch_tab": SystemInfoSwitchTab,
	"close": SystemInfoClose,
}

var searchResultActionNames = map[string]SearchResultAction{
	"move_up": SearchResultMoveUp, "move_down": SearchResultMoveDown,
	"open": SearchResultOpen, "close": SearchResultClose,
}

var advancedSearchActionNames = map[string]AdvancedSearchAction{
	"toggle_case": AdvancedSearchToggleCase, "toggle_regex": AdvancedSearchToggleRegex,
	"submit": AdvancedSearchSubmit, "close": AdvancedSearchClose,
}

var diffFileViewActionNames = map[string]DiffFileViewAction{
	"scroll_up": DiffFileViewScrollUp, "scroll_down": DiffFileViewScrollDown,
	"next_hunk": DiffFileViewNextHunk, "prev_hunk": DiffFileViewPrevHunk,
	"close": DiffFileViewClose,
}

var diffScreenActionNames = map[string]DiffScreenAction{
	"move_up": DiffScreenMoveUp, "move_down": DiffScreenMoveDown,
	"open_file_diff": DiffScreenOpenFileDiff,
	"toggle_only_differing": DiffScreenToggleOnlyDiffering,
	"close": DiffScreenClose,
}

var viewerActionNames = map[string]ViewerAction{
	"scroll_up": ViewerScrollUp, "scroll_down": ViewerScrollDown,
	"page_up": ViewerPageUp, "page_down": ViewerPageDown,
	"go_top": ViewerGoTop, "go_bottom": ViewerGoBottom,
	"toggle_hex": ViewerToggleHex, "find": ViewerFind,
	"find_next": ViewerFindNext, "bookmark_line": ViewerBookmarkLine,
	"next_bookmark": ViewerNextBookmark, "close": ViewerClose,
}

var imageViewerActionNames = map[string]ImageViewerAction{
	"pan": ImageViewerPan, "zoom_in": ImageViewerZoomIn,
	"zoom_out": ImageViewerZoomOut, "next": ImageViewerNext,
	"prev": ImageViewerPrev, "close": ImageViewerClose,
}

var processManagerActionNames = map[string]ProcessManagerAction{
	"move_up": ProcessManagerMoveUp, "move_down": ProcessManagerMoveDown,
	"sort_by_cpu": ProcessManagerSortByCPU, "sort_by_mem": ProcessManagerSortByMem,
	"sort_by_pid": ProcessManagerSortByPID, "terminate": ProcessManagerTerminate,
	"kill": ProcessManagerKill, "close": ProcessManagerClose,
}

var aiScreenActionNames = map[string]AIScreenAction{
	"submit": AIScreenSubmit, "close": AIScreenClose,
}

var gitScreenActionNames = map[string]GitScreenAction{
	"move_up": GitScreenMoveUp, "move_down": GitScreenMoveDown,
	"toggle_stage": GitScreenToggleStage, "commit": GitScreenCommit,
	"switch_tab": GitScreenSwitchTab, "refresh": GitScreenRefresh,
	"close": GitScreenClose,
}

var gotoActionNames = map[string]GotoAction{
	"submit": GotoSubmit, "bookmark_delete": GotoBookmarkDelete,
	"bookmark_edit": GotoBookmarkEdit, "close": GotoClose,
}
