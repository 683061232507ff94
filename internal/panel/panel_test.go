package panel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cokacdir/cokacdir/internal/vfs"
)

func TestRefreshAndSort(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("xx"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "zdir"), 0o755))

	p := New(vfs.Local{}, dir)
	require.NoError(t, p.Refresh())

	names := make([]string, len(p.Entries))
	for i, e := range p.Entries {
		names[i] = e.Name
	}
	// directories sort first, then files by name ascending.
	assert.Equal(t, []string{"zdir", "a.txt", "b.txt"}, names)
}

func TestSortBySizeDescending(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "small.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "large.txt"), []byte("xxxxx"), 0o644))

	p := New(vfs.Local{}, dir)
	p.SortField = SortBySize
	p.SortOrder = Descending
	require.NoError(t, p.Refresh())

	assert.Equal(t, "large.txt", p.Entries[0].Name)
	assert.Equal(t, "small.txt", p.Entries[1].Name)
}

func TestHiddenEntriesFilteredUnlessShown(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "visible"), []byte("x"), 0o644))

	p := New(vfs.Local{}, dir)
	require.NoError(t, p.Refresh())

	assert.Len(t, p.Visible(), 1)
	p.ShowHidden = true
	assert.Len(t, p.Visible(), 2)
}

func TestSelectAllIncludesHidden(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "visible"), []byte("x"), 0o644))

	p := New(vfs.Local{}, dir)
	require.NoError(t, p.Refresh())
	p.SelectAll()

	assert.ElementsMatch(t, []string{".hidden", "visible"}, p.Selected())
}

func TestToggleAndInvertSelect(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b"), []byte("x"), 0o644))

	p := New(vfs.Local{}, dir)
	require.NoError(t, p.Refresh())

	p.ToggleSelect("a")
	assert.Equal(t, []string{"a"}, p.Selected())

	p.InvertSelect()
	assert.Equal(t, []string{"b"}, p.Selected())

	p.SelectNone()
	assert.Empty(t, p.Selected())
}

func TestRefreshPreservesSelectionByName(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a"), []byte("x"), 0o644))

	p := New(vfs.Local{}, dir)
	require.NoError(t, p.Refresh())
	p.ToggleSelect("a")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "b"), []byte("x"), 0o644))
	require.NoError(t, p.Refresh())

	assert.Equal(t, []string{"a"}, p.Selected())
}

func TestResolveRenameCollision(t *testing.T) {
	existing := map[string]bool{"photo.jpg": true, "photo (1).jpg": true}
	exists := func(name string) bool { return existing[name] }

	assert.Equal(t, "new.jpg", ResolveRenameCollision("new.jpg", exists))
	assert.Equal(t, "photo (2).jpg", ResolveRenameCollision("photo.jpg", exists))
}
