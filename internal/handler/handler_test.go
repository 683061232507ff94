package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupByExtension(t *testing.T) {
	r := New(map[string][]string{"py": {"python3", "{{FILEPATH}}"}})
	argv, ok := r.Lookup("/tmp/script.py")
	require.True(t, ok)
	assert.Equal(t, []string{"python3", "{{FILEPATH}}"}, argv)
}

func TestLookupByGlob(t *testing.T) {
	r := New(map[string][]string{"*.tar.*": {"tar", "-tvf", "{{FILEPATH}}"}})
	_, ok := r.Lookup("/tmp/archive.tar.gz")
	assert.True(t, ok)
	_, ok = r.Lookup("/tmp/plain.txt")
	assert.False(t, ok)
}

func TestLookupMiss(t *testing.T) {
	r := New(map[string][]string{})
	_, ok := r.Lookup("/tmp/whatever.xyz")
	assert.False(t, ok)
}
