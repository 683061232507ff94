package editor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUndoRedoRoundTrip(t *testing.T) {
	b := New("", "a\nb\nc")
	b.SetLine(1, "B")
	assert.Equal(t, []string{"a", "B", "c"}, b.Lines)

	assert.True(t, b.Undo())
	assert.Equal(t, []string{"a", "b", "c"}, b.Lines)

	assert.True(t, b.Redo())
	assert.Equal(t, []string{"a", "B", "c"}, b.Lines)

	assert.False(t, b.Redo())
}

func TestFindMatchesLogicalLinesOnly(t *testing.T) {
	b := New("", "hello world\nfoo hello bar")
	matches, err := b.Find("hello", true)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, 0, matches[0].Line)
	assert.Equal(t, 1, matches[1].Line)
}

func TestReplaceCounts(t *testing.T) {
	b := New("", "cat cat dog")
	n, err := b.Replace("cat", "dog", true)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "dog dog dog", b.Lines[0])

	assert.True(t, b.Undo())
	assert.Equal(t, "cat cat dog", b.Lines[0])
}

func TestOpenRefusesOversizedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.txt")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, f.Truncate(MaxFileSize+1))
	require.NoError(t, f.Close())

	_, err = Open(path)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestWrapAndVisualPosition(t *testing.T) {
	lines := []string{"abcdefgh"}
	visual := Wrap(lines, 3)
	require.Len(t, visual, 3)
	assert.Equal(t, "abc", visual[0].Text)
	assert.Equal(t, "def", visual[1].Text)
	assert.Equal(t, "gh", visual[2].Text)

	row, col := VisualPosition(visual, 0, 4)
	assert.Equal(t, 1, row)
	assert.Equal(t, 1, col)
}
