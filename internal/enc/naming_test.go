package enc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeqLabel(t *testing.T) {
	lbl, err := SeqLabel(0)
	require.NoError(t, err)
	assert.Equal(t, "aaaa", lbl)

	lbl, err = SeqLabel(1)
	require.NoError(t, err)
	assert.Equal(t, "aaab", lbl)

	lbl, err = SeqLabel(26)
	require.NoError(t, err)
	assert.Equal(t, "aaba", lbl)

	lbl, err = SeqLabel(456975)
	require.NoError(t, err)
	assert.Equal(t, "zzzz", lbl)

	_, err = SeqLabel(456976)
	assert.Error(t, err)
}

func TestGenerateGroupID(t *testing.T) {
	gid, err := GenerateGroupID()
	require.NoError(t, err)
	assert.Len(t, gid, 16)
	assert.True(t, isHex(gid))
}

func TestKeyPrefix(t *testing.T) {
	assert.Equal(t, "Ab3Z", KeyPrefix([]byte("Ab3+/Z")))
	assert.Equal(t, "Hello9", KeyPrefix([]byte("Hello9")))
	assert.Equal(t, "", KeyPrefix([]byte("!@#$%^")))
	assert.Equal(t, "aB", KeyPrefix([]byte("aB")))
	assert.Equal(t, "abcdef", KeyPrefix([]byte("abcdefghij")))
	assert.Equal(t, "", KeyPrefix([]byte("")))
}

func TestChunkFilenameWithPrefix(t *testing.T) {
	path, err := ChunkFilename("/tmp", "Ab3Z", "a1b2c3d4e5f6a7b8", 0)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/Ab3Z_a1b2c3d4e5f6a7b8_aaaa.cokacenc", path)
}

func TestChunkFilenameEmptyPrefix(t *testing.T) {
	path, err := ChunkFilename("/tmp", "", "a1b2c3d4e5f6a7b8", 0)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/a1b2c3d4e5f6a7b8_aaaa.cokacenc", path)
}

func TestParseEncFilenameWithoutPrefix(t *testing.T) {
	info, ok := ParseEncFilename("/tmp/a1b2c3d4e5f6a7b8_aaab.cokacenc")
	require.True(t, ok)
	assert.Equal(t, "a1b2c3d4e5f6a7b8", info.GroupID)
	assert.Equal(t, 1, info.SeqIndex)
}

func TestParseEncFilenameWithPrefix(t *testing.T) {
	info, ok := ParseEncFilename("/tmp/Ab3Z_a1b2c3d4e5f6a7b8_aaaa.cokacenc")
	require.True(t, ok)
	assert.Equal(t, "a1b2c3d4e5f6a7b8", info.GroupID)
	assert.Equal(t, 0, info.SeqIndex)
}

func TestParseEncFilenameWithLongPrefix(t *testing.T) {
	info, ok := ParseEncFilename("/tmp/Hello9_a1b2c3d4e5f6a7b8_abcd.cokacenc")
	require.True(t, ok)
	assert.Equal(t, "a1b2c3d4e5f6a7b8", info.GroupID)
	assert.Equal(t, 731, info.SeqIndex)
}

func TestParseEncFilenameInvalid(t *testing.T) {
	cases := []string{
		"/tmp/abc.cokacenc",
		"/tmp/a1b2c3d4e5f6a7b8aaaa.cokacenc",
		"/tmp/a1b2c3d4e5f6a7b8_aaaa.txt",
		"/tmp/g1b2c3d4e5f6a7b8_aaaa.cokacenc",
		"/tmp/_a1b2c3d4e5f6a7b8_aaaa.cokacenc",
		"/tmp/a+b_a1b2c3d4e5f6a7b8_aaaa.cokacenc",
	}
	for _, c := range cases {
		_, ok := ParseEncFilename(c)
		assert.False(t, ok, c)
	}
}
