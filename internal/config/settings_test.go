package config

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObfuscateRoundTrip(t *testing.T) {
	got := deobfuscate(obfuscate("s3cr3t"))
	assert.Equal(t, "s3cr3t", got)
}

func TestDeobfuscatePlaintextFallback(t *testing.T) {
	assert.Equal(t, "plaintext-pw", deobfuscate("plaintext-pw"))
}

func TestApplyDefaultsFillsMissingFields(t *testing.T) {
	var s Settings
	s.applyDefaults()
	assert.Equal(t, DefaultThemeName, s.Theme.Name)
	assert.Equal(t, "content", s.DiffCompareMethod)
	require.Len(t, s.Panels, 2)
	assert.Equal(t, "name", s.Panels[0].SortBy)
	assert.NotNil(t, s.ExtensionHandler)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	s := Default()
	s.RemoteProfiles = []RemoteProfile{{
		Name: "box", Host: "example.com", Port: 22, User: "me",
		Auth: RemoteAuth{Kind: "password", Password: "hunter2"},
	}}
	require.NoError(t, Save(s))

	loaded, err := Load()
	require.NoError(t, err)
	require.Len(t, loaded.RemoteProfiles, 1)
	assert.Equal(t, "hunter2", loaded.RemoteProfiles[0].Auth.Password)
}

// TestSaveLoadRoundTripPreservesKeybindings exercises the §4.2 keybindings
// override path end to end through the settings store.
func TestSaveLoadRoundTripPreservesKeybindings(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	s := Default()
	s.Keybindings.Panel = map[string][]string{"quit": {"//exit", "ctrl+q"}}
	require.NoError(t, Save(s))

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"//exit", "ctrl+q"}, loaded.Keybindings.Panel["quit"])
}

// TestLoadSavePreservesUnknownKeys exercises the round-trip invariant: a
// top-level key this build doesn't recognize survives a load-then-save
// cycle instead of being dropped.
func TestLoadSavePreservesUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	require.NoError(t, os.MkdirAll(dir+"/.cokacdir", 0o700))

	written := []byte(`{"theme":{"name":"dark"},"diff_compare_method":"content","future_field":{"a":1}}`)
	require.NoError(t, os.WriteFile(dir+"/.cokacdir/settings.json", written, 0o600))

	loaded, err := Load()
	require.NoError(t, err)
	require.Contains(t, loaded.Extra, "future_field")

	require.NoError(t, Save(loaded))
	raw, err := os.ReadFile(dir + "/.cokacdir/settings.json")
	require.NoError(t, err)

	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.JSONEq(t, `{"a":1}`, string(m["future_field"]))
}
