// Package keybind implements the generic key-to-action binding map shared by
// every screen context: panel, editor, viewer, diff, process manager, and the
// rest. A binding is a terminal key code plus an optional modifier mask; an
// ActionMap resolves a Binding to the action it triggers for one context.
package keybind

import (
	"strings"

	"github.com/cokacdir/cokacdir/internal/applog"
)

// Modifier is a bitmask of key modifiers recognized by the keystring grammar.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModCtrl  Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModShift Modifier = 1 << 2
)

// Code identifies a key independent of modifiers: either a printable rune
// (kept in the case given; ParseKey registers both cases of a letter) or a
// named key such as "enter", "f5", "backspace".
type Code struct {
	Char rune
	Name string
}

func charCode(r rune) Code { return Code{Char: r} }
func namedCode(n string) Code { return Code{Name: n} }

// Binding is a fully resolved key event: a code plus the modifiers held.
type Binding struct {
	Code Code
	Mods Modifier
}

// ActionMap is a reverse lookup from Binding to action A, built from a
// default table and an optional set of user overrides where an override
// for a given Binding replaces (never merges with) any default binding to
// the same key.
type ActionMap[A comparable] struct {
	bindings map[Binding]A
	// keys records, per action, the Bindings that trigger it, in the order
	// they were registered, for help text and "keys for action" queries.
	keys map[A][]Binding
}

// NewActionMap builds an ActionMap from an ordered list of (keystrings,
// action) default entries, then applies overrides (action -> keystring
// list) on top. An action present in overrides fully replaces that
// action's default bindings rather than merging with them.
func NewActionMap[A comparable](defaults []Default[A], overrides map[A][]string) *ActionMap[A] {
	am := &ActionMap[A]{
		bindings: make(map[Binding]A),
		keys:     make(map[A][]Binding),
	}
	for _, d := range defaults {
		for _, ks := range d.Keys {
			am.bind(ks, d.Action)
		}
	}
	for action, keystrings := range overrides {
		am.replace(action, keystrings)
	}
	return am
}

// Default is one row of a context's default keybinding table: an action
// and the keystrings that trigger it out of the box.
type Default[A comparable] struct {
	Action A
	Keys   []string
}

func (am *ActionMap[A]) bind(keystring string, action A) {
	keystring = strings.TrimSpace(keystring)
	if keystring == "" || strings.HasPrefix(keystring, "//") {
		return
	}
	bindings, err := ParseKey(keystring)
	if err != nil {
		applog.Warn("keybinding %q ignored: %v", keystring, err)
		return
	}
	if len(bindings) == 0 {
		return
	}
	for _, b := range bindings {
		if old, ok := am.bindings[b]; ok {
			am.unlink(old, b)
		}
		am.bindings[b] = action
		am.keys[action] = append(am.keys[action], b)
	}
}

func (am *ActionMap[A]) unlink(action A, b Binding) {
	list := am.keys[action]
	for i, x := range list {
		if x == b {
			am.keys[action] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// replace fully substitutes action's bindings with keystrings: every
// existing Binding registered for action is dropped first, so an override
// for an action with several default keystrings doesn't leave any of them
// still live.
func (am *ActionMap[A]) replace(action A, keystrings []string) {
	old := am.keys[action]
	for _, b := range old {
		delete(am.bindings, b)
	}
	am.keys[action] = nil
	for _, ks := range keystrings {
		am.bind(ks, action)
	}
}

// Lookup resolves a Binding to its action. If the exact binding (including
// Shift) isn't found and the code is a Char, it retries with Shift stripped
// — this lets an upper-case-only default table still match when a terminal
// reports Shift explicitly alongside an already-uppercased rune.
func (am *ActionMap[A]) Lookup(b Binding) (A, bool) {
	if a, ok := am.bindings[b]; ok {
		return a, true
	}
	if b.Code.Name == "" && b.Mods&ModShift != 0 {
		stripped := Binding{Code: b.Code, Mods: b.Mods &^ ModShift}
		if a, ok := am.bindings[stripped]; ok {
			return a, true
		}
	}
	var zero A
	return zero, false
}

// Keys returns the Bindings currently mapped to action, in registration
// order, for help-text rendering.
func (am *ActionMap[A]) Keys(action A) []Binding {
	return am.keys[action]
}

// FirstKey returns the first Binding bound to action, or false if none.
func (am *ActionMap[A]) FirstKey(action A) (Binding, bool) {
	list := am.keys[action]
	if len(list) == 0 {
		var zero Binding
		return zero, false
	}
	return list[0], true
}

// KeysJoined renders every Binding for action as human-readable display
// strings joined by "/", for compact help lines.
func (am *ActionMap[A]) KeysJoined(action A) string {
	list := am.keys[action]
	parts := make([]string, 0, len(list))
	for _, b := range list {
		parts = append(parts, FormatKeyDisplay(b))
	}
	return strings.Join(parts, "/")
}
