// Package ui implements the input loop and screen stack: the bubbletea
// model that composes the panel engine, editor, viewer, diff, git, process,
// and image screens into one program, dispatching every key through
// internal/keybind.
package ui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cokacdir/cokacdir/internal/applog"
	"github.com/cokacdir/cokacdir/internal/config"
	"github.com/cokacdir/cokacdir/internal/handler"
	"github.com/cokacdir/cokacdir/internal/keybind"
	"github.com/cokacdir/cokacdir/internal/theme"
	"github.com/cokacdir/cokacdir/internal/vfs"
)

// Screen identifies one entry of the screen stack.
type Screen int

const (
	ScreenExplorer Screen = iota
	ScreenEditor
	ScreenViewer
	ScreenGit
	ScreenProcess
	ScreenImage
	ScreenDiffDir
	ScreenDiffFile
	ScreenGoto
	ScreenProgress
	ScreenHelp
	ScreenSearch
	ScreenFileInfo
	ScreenSystemInfo
	ScreenRemote
)

// promptState is a one-line text input used by several explorer actions
// (rename, mkdir, touch, bulk rename, viewer find, pack/unpack password)
// that don't need a dedicated screen of their own.
type promptState struct {
	label    string
	input    textinput.Model
	onSubmit func(m *Model, value string)
}

// progressMsg sets the progress bar's fraction. Pack and unpack run
// synchronously inside the key handler and do not send it.
type progressMsg struct{ percent float64 }

// opDoneMsg reports the result of an operation dispatched as a tea.Cmd
// (the subshell's return). Pack, unpack and handler invocation run
// synchronously and report through the status line instead.
type opDoneMsg struct {
	err  error
	info string
}

// remoteConnectMsg reports the outcome of dialing (or disconnecting from) a
// remote profile for one panel.
type remoteConnectMsg struct {
	panelIndex int
	fsys       vfs.FS
	startPath  string
	err        error
}

// Model is the top-level bubbletea model.
type Model struct {
	panels   [2]*panelView
	active   int
	keys     *keybind.Keybindings
	settings config.Settings
	styles   theme.Styles
	handlers *handler.Router

	screens []Screen
	prompt  *promptState
	command textinput.Model
	status  string

	editor            *editorScreen
	viewer            *viewerScreen
	git               *gitScreenState
	proc              *procScreenState
	img               *imageScreenState
	diffDir           *diffDirScreen
	diffFile          *diffFileScreen
	gotoScr           *gotoScreen
	search            *searchScreen
	fileInfo          *fileInfoScreen
	sysInfo           *sysInfoScreen
	remote            *remoteScreen
	remoteTargetPanel int

	progress   progress.Model
	inProgress bool

	width, height int
	quitting      bool
}

// NewModel builds the top-level model from persisted settings, both panels
// starting local at their configured (or current) directory.
func NewModel(settings config.Settings) *Model {
	themePath := ""
	if dir, err := config.Dir(); err == nil {
		themePath = filepath.Join(dir, "themes", settings.Theme.Name+".json")
	}
	t, err := theme.Load(themePath, settings.Theme.Name)
	if err != nil {
		applog.Warn("theme file %s ignored: %v", themePath, err)
		t = theme.Builtin(settings.Theme.Name)
	}
	styles := theme.Build(t)

	wd, _ := os.Getwd()
	startPath := func(i int) string {
		if i < len(settings.Panels) && settings.Panels[i].StartPath != "" {
			return settings.Panels[i].StartPath
		}
		return wd
	}

	cmd := textinput.New()
	cmd.Placeholder = "command"

	m := &Model{
		panels: [2]*panelView{
			newPanelView(vfs.Local{}, startPath(0), styles),
			newPanelView(vfs.Local{}, startPath(1), styles),
		},
		active:   settings.ActivePanelIndex,
		keys:     keybind.NewKeybindings(settings.Keybindings),
		settings: settings,
		styles:   styles,
		handlers: handler.New(settings.ExtensionHandler),
		screens:  []Screen{ScreenExplorer},
		command:  cmd,
		progress: progress.New(progress.WithDefaultGradient()),
	}
	for _, pv := range m.panels {
		if err := pv.refresh(); err != nil {
			m.status = fmt.Sprintf("refresh failed: %v", err)
		}
	}
	return m
}

// reloadIfSettingsPath re-reads settings.json and rebuilds the runtime
// keymap from it when path is the settings file the editor just saved.
// This is the only live-reload path: detecting the write inside the
// editor's save hook, not a background filesystem watcher.
func (m *Model) reloadIfSettingsPath(path string) {
	settingsFile, err := config.SettingsPath()
	if err != nil || path != settingsFile {
		return
	}
	s, err := config.Load()
	if err != nil {
		m.status = fmt.Sprintf("settings reload failed: %v", err)
		return
	}
	m.settings = s
	m.keys = keybind.NewKeybindings(s.Keybindings)
	m.status = "settings reloaded"
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) top() Screen {
	return m.screens[len(m.screens)-1]
}

func (m *Model) push(s Screen) {
	m.screens = append(m.screens, s)
}

func (m *Model) pop() {
	if len(m.screens) > 1 {
		m.screens = m.screens[:len(m.screens)-1]
	}
}

func (m *Model) activePanel() *panelView {
	return m.panels[m.active]
}

func (m *Model) otherPanel() *panelView {
	return m.panels[1-m.active]
}

// Settings returns the current settings, including any bookmark or active-
// panel changes made during the run, for the caller to persist on exit.
func (m *Model) Settings() config.Settings {
	m.settings.ActivePanelIndex = m.active
	for i, pv := range m.panels {
		if i < len(m.settings.Panels) {
			m.settings.Panels[i].StartPath = pv.Panel.CurrentDir
		}
	}
	return m.settings
}

func (m *Model) startPrompt(label string, onSubmit func(*Model, string)) {
	ti := textinput.New()
	ti.Placeholder = label
	ti.Focus()
	m.prompt = &promptState{label: label, input: ti, onSubmit: onSubmit}
}
