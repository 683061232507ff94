package keybind

// PanelAction enumerates every action the dual-panel file view can dispatch.
type PanelAction int

const (
	PanelMoveUp PanelAction = iota
	PanelMoveDown
	PanelPageUp
	PanelPageDown
	PanelGoTop
	PanelGoBottom
	PanelEnter
	PanelGoParent
	PanelSwitchPanel
	PanelToggleSelect
	PanelSelectAll
	PanelSelectNone
	PanelInvertSelect
	PanelCopy
	PanelMove
	PanelDelete
	PanelRename
	PanelMkdir
	PanelTouch
	PanelRefresh
	PanelFilter
	PanelFuzzySearch
	PanelBulkRename
	PanelSortByName
	PanelSortBySize
	PanelSortByModTime
	PanelSortByExt
	PanelToggleSortOrder
	PanelToggleHidden
	PanelOpenWith
	PanelEdit
	PanelView
	PanelDiff
	PanelGotoPath
	PanelBookmarkAdd
	PanelBookmarkOpen
	PanelPack
	PanelUnpack
	PanelGitScreen
	PanelProcessManager
	PanelImageViewer
	PanelFileInfo
	PanelSystemInfo
	PanelConnectRemote
	PanelSubshell
	PanelSuspend
	PanelHelp
	PanelQuit
)

// EditorAction enumerates the built-in text editor's actions.
type EditorAction int

const (
	EditorMoveUp EditorAction = iota
	EditorMoveDown
	EditorMoveLeft
	EditorMoveRight
	EditorLineStart
	EditorLineEnd
	EditorPageUp
	EditorPageDown
	EditorDocStart
	EditorDocEnd
	EditorInsertNewline
	EditorBackspace
	EditorDeleteForward
	EditorUndo
	EditorRedo
	EditorCut
	EditorCopy
	EditorPaste
	EditorFind
	EditorFindNext
	EditorFindPrev
	EditorReplace
	EditorToggleWrap
	EditorSave
	EditorClose
)

// FileInfoAction enumerates the file-info popover's actions.
type FileInfoAction int

const (
	FileInfoScrollUp FileInfoAction = iota
	FileInfoScrollDown
	FileInfoClose
)

// SystemInfoAction enumerates the system-info screen's actions.
type SystemInfoAction int

const (
	SystemInfoRefresh SystemInfoAction = iota
	SystemInfoSwitchTab
	SystemInfoClose
)

// SearchResultAction enumerates the fuzzy/search result list's actions.
type SearchResultAction int

const (
	SearchResultMoveUp SearchResultAction = iota
	SearchResultMoveDown
	SearchResultOpen
	SearchResultClose
)

// AdvancedSearchAction enumerates the advanced (filtered) search dialog.
type AdvancedSearchAction int

const (
	AdvancedSearchToggleCase AdvancedSearchAction = iota
	AdvancedSearchToggleRegex
	AdvancedSearchSubmit
	AdvancedSearchClose
)

// DiffFileViewAction enumerates the line-diff viewer's actions.
type DiffFileViewAction int

const (
	DiffFileViewScrollUp DiffFileViewAction = iota
	DiffFileViewScrollDown
	DiffFileViewNextHunk
	DiffFileViewPrevHunk
	DiffFileViewClose
)

// DiffScreenAction enumerates the directory-diff screen's actions.
type DiffScreenAction int

const (
	DiffScreenMoveUp DiffScreenAction = iota
	DiffScreenMoveDown
	DiffScreenOpenFileDiff
	DiffScreenToggleOnlyDiffering
	DiffScreenClose
)

// ViewerAction enumerates the read-only file viewer/pager's actions.
type ViewerAction int

const (
	ViewerScrollUp ViewerAction = iota
	ViewerScrollDown
	ViewerPageUp
	ViewerPageDown
	ViewerGoTop
	ViewerGoBottom
	ViewerToggleHex
	ViewerFind
	ViewerFindNext
	ViewerBookmarkLine
	ViewerNextBookmark
	ViewerClose
)

// ImageViewerAction enumerates the image viewer's actions.
type ImageViewerAction int

const (
	ImageViewerPan ImageViewerAction = iota
	ImageViewerZoomIn
	ImageViewerZoomOut
	ImageViewerNext
	ImageViewerPrev
	ImageViewerClose
)

// ProcessManagerAction enumerates the process manager's actions.
type ProcessManagerAction int

const (
	ProcessManagerMoveUp ProcessManagerAction = iota
	ProcessManagerMoveDown
	ProcessManagerSortByCPU
	ProcessManagerSortByMem
	ProcessManagerSortByPID
	ProcessManagerTerminate
	ProcessManagerKill
	ProcessManagerClose
)

// AIScreenAction enumerates the (stubbed) AI assistant screen's actions.
type AIScreenAction int

const (
	AIScreenSubmit AIScreenAction = iota
	AIScreenClose
)

// GitScreenAction enumerates the git status/log screen's actions.
type GitScreenAction int

const (
	GitScreenMoveUp GitScreenAction = iota
	GitScreenMoveDown
	GitScreenToggleStage
	GitScreenCommit
	GitScreenSwitchTab
	GitScreenRefresh
	GitScreenClose
)

// GotoAction enumerates the go-to-path dialog's bookmark-management actions.
type GotoAction int

const (
	GotoSubmit GotoAction = iota
	GotoBookmarkDelete
	GotoBookmarkEdit
	GotoClose
)
