package ui

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cokacdir/cokacdir/internal/keybind"
	"github.com/cokacdir/cokacdir/internal/vfs"
)

// dirCalcResult is the outcome of a recursive directory-size walk.
type dirCalcResult struct {
	totalSize int64
	fileCount int64
	dirCount  int64
}

// dirCalcDoneMsg reports a finished (or cancelled) size calculation back to
// the model's Update loop.
type dirCalcDoneMsg struct {
	path   string
	result dirCalcResult
	err    error
}

// fileInfoScreen is the file/directory information popover.
type fileInfoScreen struct {
	fs   vfs.FS
	path string
	info fs.FileInfo

	calculating bool
	result      *dirCalcResult
	cancel      context.CancelFunc
	status      string
}

func newFileInfoScreen(fsys vfs.FS, fullPath string, info fs.FileInfo) *fileInfoScreen {
	return &fileInfoScreen{fs: fsys, path: fullPath, info: info}
}

// startCalculation kicks off a cancellable recursive size walk for a
// directory. The returned command runs the walk and reports back through
// dirCalcDoneMsg; it does not block the rest of the UI.
func (s *fileInfoScreen) startCalculation() tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.calculating = true
	fsys, root := s.fs, s.path
	return func() tea.Msg {
		result, err := calculateDirSize(ctx, fsys, root)
		return dirCalcDoneMsg{path: root, result: result, err: err}
	}
}

func calculateDirSize(ctx context.Context, fsys vfs.FS, root string) (dirCalcResult, error) {
	var result dirCalcResult
	err := fsys.Walk(root, func(p string, info fs.FileInfo, err error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if p != root {
				result.dirCount++
			}
			return nil
		}
		result.fileCount++
		result.totalSize += info.Size()
		return nil
	})
	if err == context.Canceled {
		return result, nil
	}
	return result, err
}

func (s *fileInfoScreen) applyResult(msg dirCalcDoneMsg) {
	if msg.path != s.path {
		return
	}
	s.calculating = false
	s.cancel = nil
	if msg.err != nil {
		s.status = fmt.Sprintf("size calculation failed: %v", msg.err)
		return
	}
	r := msg.result
	s.result = &r
}

// handleKey returns true once the dialog should close. Pressing close while
// a calculation is in flight cancels it instead of closing the dialog.
func (s *fileInfoScreen) handleKey(msg tea.KeyMsg, actions *keybind.ActionMap[keybind.FileInfoAction]) bool {
	b, ok := resolveKey(msg)
	if !ok {
		return false
	}
	action, ok := actions.Lookup(b)
	if !ok {
		return false
	}
	switch action {
	case keybind.FileInfoClose:
		if s.calculating && s.cancel != nil {
			s.cancel()
			s.calculating = false
			return false
		}
		return true
	}
	return false
}

func (s *fileInfoScreen) view() string {
	var lines []string
	row := func(label, value string) {
		lines = append(lines, fmt.Sprintf("%-12s %s", label, value))
	}

	row("Name", path.Base(s.path))
	row("Path", s.path)

	kind := "File"
	switch {
	case s.info.IsDir():
		kind = "Directory"
	case s.info.Mode()&fs.ModeSymlink != 0:
		kind = "Symbolic Link"
	}
	row("Type", kind)

	switch {
	case !s.info.IsDir():
		row("Size", formatSize(s.info.Size()))
	case s.calculating:
		row("Total Size", "calculating...")
	case s.result != nil:
		row("Total Size", formatSize(s.result.totalSize))
		row("Files", fmt.Sprintf("%d", s.result.fileCount))
		row("Folders", fmt.Sprintf("%d", s.result.dirCount))
	default:
		row("Size", formatSize(s.info.Size()))
	}

	row("Permissions", s.info.Mode().String())
	row("Modified", s.info.ModTime().Format("2006-01-02 15:04:05"))

	lines = append(lines, "")
	if s.status != "" {
		lines = append(lines, s.status, "")
	}
	if s.calculating {
		lines = append(lines, "esc: cancel calculation")
	} else {
		lines = append(lines, "esc: close")
	}
	return strings.Join(lines, "\n")
}

// formatSize renders a byte count the way `ls -lh`/`df -h` do. No pack
// repository pulls in a byte-formatting library, so this stays stdlib-only.
func formatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
