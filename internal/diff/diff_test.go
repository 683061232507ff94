package diff

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoriesDetectsDifferences(t *testing.T) {
	left := t.TempDir()
	right := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(left, "same.txt"), []byte("hello"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(right, "same.txt"), []byte("hello"), 0o644))

	require.NoError(t, os.WriteFile(filepath.Join(left, "changed.txt"), []byte("left version"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(right, "changed.txt"), []byte("right version"), 0o644))

	require.NoError(t, os.WriteFile(filepath.Join(left, "only-left.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(right, "only-right.txt"), []byte("y"), 0o644))

	entries, err := Directories(left, right, CompareByContent)
	require.NoError(t, err)

	statuses := map[string]EntryStatus{}
	for _, e := range entries {
		statuses[e.RelPath] = e.Status
	}
	assert.Equal(t, Same, statuses["same.txt"])
	assert.Equal(t, Differing, statuses["changed.txt"])
	assert.Equal(t, OnlyLeft, statuses["only-left.txt"])
	assert.Equal(t, OnlyRight, statuses["only-right.txt"])
}

func TestFilesLineDiff(t *testing.T) {
	left := "a\nb\nc\n"
	right := "a\nx\nc\n"
	ops := Files(left, right)

	var kinds []LineKind
	for _, op := range ops {
		kinds = append(kinds, op.Kind)
	}
	assert.Contains(t, kinds, LineDelete)
	assert.Contains(t, kinds, LineInsert)
	assert.Contains(t, kinds, LineEqual)
}
