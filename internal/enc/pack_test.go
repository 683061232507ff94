package enc

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "secret.txt")
	content := []byte("this is the content of the file that will be packed and unpacked")
	require.NoError(t, os.WriteFile(path, content, 0o640))

	password := []byte("hunter2")
	chunks, err := PackFile(context.Background(), path, password, 1<<20, nil)
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	info, ok := ParseEncFilename(chunks[0])
	require.True(t, ok)

	restored, err := UnpackGroup(context.Background(), dir, info.GroupID, password, nil)
	require.NoError(t, err)
	assert.Equal(t, path, restored)

	got, err := os.ReadFile(restored)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	for _, c := range chunks {
		_, err := os.Stat(c)
		assert.True(t, os.IsNotExist(err))
	}
}

func TestPackSplitsIntoMultipleChunks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.bin")
	content := make([]byte, 4500)
	for i := range content {
		content[i] = byte(i % 251)
	}
	require.NoError(t, os.WriteFile(path, content, 0o644))

	chunks, err := PackFile(context.Background(), path, []byte("pw"), 1800, nil)
	require.NoError(t, err)
	require.Len(t, chunks, 3)

	info, ok := ParseEncFilename(chunks[0])
	require.True(t, ok)
	restored, err := UnpackGroup(context.Background(), dir, info.GroupID, []byte("pw"), nil)
	require.NoError(t, err)

	got, err := os.ReadFile(restored)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestPackEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	chunks, err := PackFile(context.Background(), path, []byte("pw"), 1024, nil)
	require.NoError(t, err)
	require.Len(t, chunks, 1)

	info, _ := ParseEncFilename(chunks[0])
	restored, err := UnpackGroup(context.Background(), dir, info.GroupID, []byte("pw"), nil)
	require.NoError(t, err)
	got, err := os.ReadFile(restored)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUnpackWrongPasswordFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "secret.txt")
	require.NoError(t, os.WriteFile(path, []byte("top secret data"), 0o644))

	chunks, err := PackFile(context.Background(), path, []byte("correct"), 1<<20, nil)
	require.NoError(t, err)
	info, _ := ParseEncFilename(chunks[0])

	_, err = UnpackGroup(context.Background(), dir, info.GroupID, []byte("wrong"), nil)
	assert.Error(t, err)
}

func TestUnpackMissingChunkFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.bin")
	content := make([]byte, 3000)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	chunks, err := PackFile(context.Background(), path, []byte("pw"), 1000, nil)
	require.NoError(t, err)
	require.Len(t, chunks, 3)

	require.NoError(t, os.Remove(chunks[1]))
	info, _ := ParseEncFilename(chunks[0])

	_, err = UnpackGroup(context.Background(), dir, info.GroupID, []byte("pw"), nil)
	var mcErr *MissingChunkError
	assert.ErrorAs(t, err, &mcErr)
}

func TestEnsureKeyFileCreatesOnce(t *testing.T) {
	dir := t.TempDir()
	path1, err := EnsureKeyFile(dir)
	require.NoError(t, err)
	content1, err := LoadKeyFile(path1)
	require.NoError(t, err)

	path2, err := EnsureKeyFile(dir)
	require.NoError(t, err)
	content2, err := LoadKeyFile(path2)
	require.NoError(t, err)

	assert.Equal(t, path1, path2)
	assert.Equal(t, content1, content2)
}

func TestLoadKeyFileEmptyErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.key")
	require.NoError(t, os.WriteFile(path, []byte("   \n"), 0o600))
	_, err := LoadKeyFile(path)
	assert.ErrorIs(t, err, ErrEmptyKeyFile)
}
