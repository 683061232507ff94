package viewer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexDump(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.bin")
	require.NoError(t, os.WriteFile(path, []byte("Hello"), 0o644))

	p, err := Open(path)
	require.NoError(t, err)
	rows := p.HexDump()
	require.Len(t, rows, 1)
	assert.Contains(t, rows[0], "48 65 6c 6c 6f")
	assert.Contains(t, rows[0], "Hello")
}

func TestBookmarkNavigation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\nb\nc\nd\n"), 0o644))
	p, err := Open(path)
	require.NoError(t, err)

	p.ToggleBookmark(1)
	p.ToggleBookmark(3)

	next, ok := p.NextBookmark(1)
	require.True(t, ok)
	assert.Equal(t, 3, next)

	next, ok = p.NextBookmark(3)
	require.True(t, ok)
	assert.Equal(t, 1, next) // wraps to the smallest
}

func TestFindCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.txt")
	require.NoError(t, os.WriteFile(path, []byte("Hello\nworld\nHELLO again"), 0o644))
	p, err := Open(path)
	require.NoError(t, err)

	hits, err := p.Find("hello")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, hits)
}
