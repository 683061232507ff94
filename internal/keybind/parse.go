package keybind

import (
	"fmt"
	"strings"
	"unicode"
)

// namedKeys is the closed set of non-printable key names the grammar
// recognizes, independent of case.
var namedKeys = map[string]string{
	"enter":     "enter",
	"return":    "enter",
	"esc":       "esc",
	"escape":    "esc",
	"tab":       "tab",
	"backspace": "backspace",
	"delete":    "delete",
	"del":       "delete",
	"insert":    "insert",
	"up":        "up",
	"down":      "down",
	"left":      "left",
	"right":     "right",
	"home":      "home",
	"end":       "end",
	"pageup":    "pageup",
	"pgup":      "pageup",
	"pagedown":  "pagedown",
	"pgdn":      "pagedown",
	"space":     "space",
	"f1":        "f1", "f2": "f2", "f3": "f3", "f4": "f4",
	"f5": "f5", "f6": "f6", "f7": "f7", "f8": "f8",
	"f9": "f9", "f10": "f10", "f11": "f11", "f12": "f12",
}

// ParseKey parses a keystring of the form "[modifier+]* KEY" (case
// insensitive, modifiers are any of ctrl/alt/shift) into the Bindings it
// produces. An alphabetic KEY always produces two Bindings, one for each
// case of the letter, since terminals report case via the rune itself
// rather than a separate Shift flag for printable characters.
func ParseKey(keystring string) ([]Binding, error) {
	parts := strings.Split(keystring, "+")
	if strings.HasSuffix(keystring, "+") {
		// the key itself is '+', as in "+" or "ctrl++"
		parts = append(strings.Split(strings.TrimSuffix(keystring, "+"), "+"), "+")
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("keybind: empty keystring")
	}
	keyPart := parts[len(parts)-1]
	modParts := parts[:len(parts)-1]

	var mods Modifier
	for _, m := range modParts {
		switch strings.ToLower(strings.TrimSpace(m)) {
		case "ctrl", "control":
			mods |= ModCtrl
		case "alt", "opt", "option":
			mods |= ModAlt
		case "shift":
			mods |= ModShift
		case "":
			// "a++b"-style stray empty segment; ignore.
		default:
			return nil, fmt.Errorf("keybind: unknown modifier %q in %q", m, keystring)
		}
	}

	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return nil, fmt.Errorf("keybind: missing key in %q", keystring)
	}

	if name, ok := namedKeys[strings.ToLower(keyPart)]; ok {
		if name == "space" {
			return expandChar(' ', mods), nil
		}
		return []Binding{{Code: namedCode(name), Mods: mods}}, nil
	}

	runes := []rune(keyPart)
	if len(runes) != 1 {
		return nil, fmt.Errorf("keybind: unrecognized key %q", keyPart)
	}
	return expandChar(runes[0], mods), nil
}

func expandChar(r rune, mods Modifier) []Binding {
	if !unicode.IsLetter(r) {
		return []Binding{{Code: charCode(r), Mods: mods}}
	}
	lower := unicode.ToLower(r)
	upper := unicode.ToUpper(r)
	if lower == upper {
		return []Binding{{Code: charCode(lower), Mods: mods}}
	}
	return []Binding{
		{Code: charCode(lower), Mods: mods},
		{Code: charCode(upper), Mods: mods},
	}
}

// FormatKeyDisplay renders a Binding as a short human-readable string, e.g.
// "ctrl+s", "F5", "a".
func FormatKeyDisplay(b Binding) string {
	var sb strings.Builder
	if b.Mods&ModCtrl != 0 {
		sb.WriteString("ctrl+")
	}
	if b.Mods&ModAlt != 0 {
		sb.WriteString("alt+")
	}
	if b.Mods&ModShift != 0 {
		sb.WriteString("shift+")
	}
	if b.Code.Name != "" {
		if strings.HasPrefix(b.Code.Name, "f") && len(b.Code.Name) > 1 {
			sb.WriteString(strings.ToUpper(b.Code.Name))
		} else {
			sb.WriteString(b.Code.Name)
		}
		return sb.String()
	}
	if b.Code.Char == ' ' {
		sb.WriteString("space")
		return sb.String()
	}
	sb.WriteRune(b.Code.Char)
	return sb.String()
}
