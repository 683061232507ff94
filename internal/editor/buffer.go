// Package editor implements the built-in text editor: line-oriented
// buffer, undo/redo history, and regex find/replace, wrapped by the
// bubbletea screen in internal/ui around a bubbles/textarea for rendering.
package editor

import (
	"os"
	"regexp"
	"strings"
)

// MaxFileSize is the largest file the editor will open; anything larger
// must go through the viewer instead.
const MaxFileSize = 50 * 1024 * 1024

// ErrTooLarge is returned by Open when a file exceeds MaxFileSize.
var ErrTooLarge = errFileTooLarge{}

type errFileTooLarge struct{}

func (errFileTooLarge) Error() string { return "editor: file exceeds the 50 MiB edit limit" }

// Buffer is the editor's in-memory document: a slice of lines plus an
// undo/redo history of whole-buffer snapshots. A snapshot history is
// simpler than an edit-op log and is the idiom the original tool used;
// given the 50 MiB cap, it stays cheap enough.
type Buffer struct {
	Path  string
	Lines []string

	undo []snapshot
	redo []snapshot

	Dirty bool
}

type snapshot struct {
	lines []string
}

// Open reads path into a new Buffer, refusing anything over MaxFileSize.
func Open(path string) (*Buffer, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if st.Size() > MaxFileSize {
		return nil, ErrTooLarge
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(path, string(raw)), nil
}

// New builds a Buffer from in-memory text, splitting on "\n".
func New(path, content string) *Buffer {
	lines := strings.Split(content, "\n")
	return &Buffer{Path: path, Lines: lines}
}

// Text joins the buffer's lines back into file content.
func (b *Buffer) Text() string {
	return strings.Join(b.Lines, "\n")
}

// Save writes the buffer back to Path.
func (b *Buffer) Save() error {
	if err := os.WriteFile(b.Path, []byte(b.Text()), 0o644); err != nil {
		return err
	}
	b.Dirty = false
	return nil
}

func (b *Buffer) snapshotNow() snapshot {
	cp := make([]string, len(b.Lines))
	copy(cp, b.Lines)
	return snapshot{lines: cp}
}

// checkpoint pushes the buffer's current state onto the undo stack and
// clears redo, the call every mutating operation makes before changing
// Lines.
func (b *Buffer) checkpoint() {
	b.undo = append(b.undo, b.snapshotNow())
	b.redo = nil
	b.Dirty = true
}

// Undo restores the previous snapshot, pushing the current state onto
// redo. It is a no-op if there's nothing to undo.
func (b *Buffer) Undo() bool {
	if len(b.undo) == 0 {
		return false
	}
	cur := b.snapshotNow()
	last := b.undo[len(b.undo)-1]
	b.undo = b.undo[:len(b.undo)-1]
	b.redo = append(b.redo, cur)
	b.Lines = last.lines
	return true
}

// Redo restores the most recently undone snapshot.
func (b *Buffer) Redo() bool {
	if len(b.redo) == 0 {
		return false
	}
	cur := b.snapshotNow()
	last := b.redo[len(b.redo)-1]
	b.redo = b.redo[:len(b.redo)-1]
	b.undo = append(b.undo, cur)
	b.Lines = last.lines
	return true
}

// InsertLine inserts text as a new line at index.
func (b *Buffer) InsertLine(index int, text string) {
	b.checkpoint()
	b.Lines = append(b.Lines[:index], append([]string{text}, b.Lines[index:]...)...)
}

// DeleteLine removes the line at index.
func (b *Buffer) DeleteLine(index int) {
	if index < 0 || index >= len(b.Lines) {
		return
	}
	b.checkpoint()
	b.Lines = append(b.Lines[:index], b.Lines[index+1:]...)
}

// SetLine replaces the line at index with text.
func (b *Buffer) SetLine(index int, text string) {
	if index < 0 || index >= len(b.Lines) {
		return
	}
	b.checkpoint()
	b.Lines[index] = text
}

// Match is one find/find-replace hit, given as a logical line index and
// byte offsets within that line.
type Match struct {
	Line       int
	Start, End int
}

// Find returns every match of pattern (a regular expression) across the
// buffer's logical lines. Matches are always computed against logical
// lines, never against word-wrapped visual lines, so wrapping never
// fragments a match.
func (b *Buffer) Find(pattern string, caseSensitive bool) ([]Match, error) {
	expr := pattern
	if !caseSensitive {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	var matches []Match
	for i, line := range b.Lines {
		for _, loc := range re.FindAllStringIndex(line, -1) {
			matches = append(matches, Match{Line: i, Start: loc[0], End: loc[1]})
		}
	}
	return matches, nil
}

// Replace substitutes every match of pattern with replacement across the
// buffer, recording one undo checkpoint for the whole operation.
func (b *Buffer) Replace(pattern, replacement string, caseSensitive bool) (int, error) {
	expr := pattern
	if !caseSensitive {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return 0, err
	}
	count := 0
	b.checkpoint()
	for i, line := range b.Lines {
		replaced := re.ReplaceAllStringFunc(line, func(m string) string {
			count++
			return replacement
		})
		b.Lines[i] = replaced
	}
	if count == 0 {
		// nothing changed; drop the checkpoint we just pushed so Undo
		// doesn't offer to "undo" a no-op.
		b.undo = b.undo[:len(b.undo)-1]
	}
	return count, nil
}
