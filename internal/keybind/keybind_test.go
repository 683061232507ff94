package keybind

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKeySimpleChar(t *testing.T) {
	bs, err := ParseKey("a")
	assert.NoError(t, err)
	assert.ElementsMatch(t, []Binding{
		{Code: charCode('a'), Mods: ModNone},
		{Code: charCode('A'), Mods: ModNone},
	}, bs)
}

func TestParseKeyCaseInsensitiveModifiers(t *testing.T) {
	bs, err := ParseKey("Ctrl+S")
	assert.NoError(t, err)
	assert.ElementsMatch(t, []Binding{
		{Code: charCode('s'), Mods: ModCtrl},
		{Code: charCode('S'), Mods: ModCtrl},
	}, bs)
}

func TestParseKeyNamed(t *testing.T) {
	bs, err := ParseKey("ctrl+enter")
	assert.NoError(t, err)
	assert.Equal(t, []Binding{{Code: namedCode("enter"), Mods: ModCtrl}}, bs)
}

func TestParseKeyMultipleModifiers(t *testing.T) {
	bs, err := ParseKey("ctrl+alt+shift+x")
	assert.NoError(t, err)
	for _, b := range bs {
		assert.Equal(t, ModCtrl|ModAlt|ModShift, b.Mods)
	}
}

func TestParseKeyUnknownModifier(t *testing.T) {
	_, err := ParseKey("meta+x")
	assert.Error(t, err)
}

func TestParseKeySpace(t *testing.T) {
	bs, err := ParseKey("space")
	assert.NoError(t, err)
	assert.Equal(t, []Binding{{Code: charCode(' '), Mods: ModNone}}, bs)
}

func TestParseKeyDigitDoesNotExpandCase(t *testing.T) {
	bs, err := ParseKey("5")
	assert.NoError(t, err)
	assert.Equal(t, []Binding{{Code: charCode('5'), Mods: ModNone}}, bs)
}

func TestFormatKeyDisplay(t *testing.T) {
	assert.Equal(t, "ctrl+s", FormatKeyDisplay(Binding{Code: charCode('s'), Mods: ModCtrl}))
	assert.Equal(t, "F5", FormatKeyDisplay(Binding{Code: namedCode("f5")}))
	assert.Equal(t, "space", FormatKeyDisplay(Binding{Code: charCode(' ')}))
}

func TestActionMapDefaultsBothCases(t *testing.T) {
	am := NewActionMap([]Default[PanelAction]{
		{PanelMoveUp, []string{"k"}},
	}, nil)
	a, ok := am.Lookup(Binding{Code: charCode('k')})
	assert.True(t, ok)
	assert.Equal(t, PanelMoveUp, a)
	a, ok = am.Lookup(Binding{Code: charCode('K')})
	assert.True(t, ok)
	assert.Equal(t, PanelMoveUp, a)
}

func TestActionMapOverrideReplacesDefault(t *testing.T) {
	am := NewActionMap([]Default[PanelAction]{
		{PanelMoveUp, []string{"k"}},
		{PanelMoveDown, []string{"j"}},
	}, map[PanelAction][]string{PanelMoveDown: {"k"}})
	a, ok := am.Lookup(Binding{Code: charCode('k')})
	assert.True(t, ok)
	assert.Equal(t, PanelMoveDown, a)
	// the default "up" binding to PanelMoveUp must be gone, not merged
	_, stillBoundToUp := am.Lookup(Binding{Code: charCode('K')})
	assert.True(t, stillBoundToUp) // capital K still bound to PanelMoveDown (expanded override)
	keys := am.Keys(PanelMoveUp)
	assert.Empty(t, keys)
}

// TestActionMapOverrideReplacesAllDefaultKeystrings exercises the real
// multi-keystring case: PanelQuit defaults to two keystrings, and an
// override naming only one replacement must drop both defaults, not just
// the one it happens to share a key with.
func TestActionMapOverrideReplacesAllDefaultKeystrings(t *testing.T) {
	am := NewActionMap([]Default[PanelAction]{
		{PanelQuit, []string{"ctrl+c", "q"}},
	}, map[PanelAction][]string{PanelQuit: {"ctrl+q"}})

	_, ok := am.Lookup(Binding{Code: charCode('q')})
	assert.False(t, ok, "q must no longer quit once overridden")
	_, ok = am.Lookup(Binding{Code: charCode('c'), Mods: ModCtrl})
	assert.False(t, ok, "ctrl+c must no longer quit once overridden")

	a, ok := am.Lookup(Binding{Code: charCode('q'), Mods: ModCtrl})
	assert.True(t, ok)
	assert.Equal(t, PanelQuit, a)

	keys := am.Keys(PanelQuit)
	assert.Len(t, keys, 2)
}

func TestActionMapCommentLinesSkipped(t *testing.T) {
	am := NewActionMap([]Default[PanelAction]{
		{PanelMoveUp, []string{"k"}},
	}, map[PanelAction][]string{
		PanelMoveDown: {"// k is disabled below"},
	})
	// malformed/comment keystring never binds
	a, ok := am.Lookup(Binding{Code: charCode('k')})
	assert.True(t, ok)
	assert.Equal(t, PanelMoveUp, a)
	assert.Empty(t, am.Keys(PanelMoveDown))
}

func TestActionMapShiftStrippedFallback(t *testing.T) {
	am := NewActionMap([]Default[PanelAction]{
		{PanelDelete, []string{"*"}},
	}, nil)
	a, ok := am.Lookup(Binding{Code: charCode('*'), Mods: ModShift})
	assert.True(t, ok)
	assert.Equal(t, PanelDelete, a)
}

func TestActionMapKeysJoined(t *testing.T) {
	am := NewActionMap([]Default[PanelAction]{
		{PanelQuit, []string{"ctrl+c", "q"}},
	}, nil)
	joined := am.KeysJoined(PanelQuit)
	assert.Contains(t, joined, "ctrl+c")
	assert.Contains(t, joined, "q")
}

func TestNewKeybindingsDefaultsOnly(t *testing.T) {
	kb := NewKeybindings(RawOverrides{})
	a, ok := kb.Panel.Lookup(Binding{Code: namedCode("f5")})
	assert.True(t, ok)
	assert.Equal(t, PanelCopy, a)
}

func TestNewKeybindingsWithOverride(t *testing.T) {
	kb := NewKeybindings(RawOverrides{
		Panel: map[string][]string{"delete": {"f5"}},
	})
	a, ok := kb.Panel.Lookup(Binding{Code: namedCode("f5")})
	assert.True(t, ok)
	assert.Equal(t, PanelDelete, a)
}

func TestNewKeybindingsUnknownActionNameIgnored(t *testing.T) {
	kb := NewKeybindings(RawOverrides{
		Panel: map[string][]string{"not_a_real_action": {"f5"}},
	})
	// f5 keeps its default binding since the override action name was unknown
	a, ok := kb.Panel.Lookup(Binding{Code: namedCode("f5")})
	assert.True(t, ok)
	assert.Equal(t, PanelCopy, a)
}

// TestNewKeybindingsScenarioQuitOverride mirrors the documented end-to-end
// override example: replacing file_panel's quit binding with a comment
// placeholder plus a new key disables the old keys entirely.
func TestNewKeybindingsScenarioQuitOverride(t *testing.T) {
	kb := NewKeybindings(RawOverrides{
		Panel: map[string][]string{"quit": {"//exit", "ctrl+q"}},
	})
	_, ok := kb.Panel.Lookup(Binding{Code: charCode('q')})
	assert.False(t, ok)
	_, ok = kb.Panel.Lookup(Binding{Code: charCode('c'), Mods: ModCtrl})
	assert.False(t, ok)
	a, ok := kb.Panel.Lookup(Binding{Code: charCode('q'), Mods: ModCtrl})
	assert.True(t, ok)
	assert.Equal(t, PanelQuit, a)
}
