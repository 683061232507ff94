// Package config implements the on-disk settings store: panel state,
// theme selection, extension handlers, bookmarks, and remote profiles,
// persisted as JSON under ~/.cokacdir with serde-style default filling and
// an atomic temp-file-then-rename write.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cokacdir/cokacdir/internal/keybind"
)

// PanelSettings is the per-panel slice of Settings that survives restarts.
type PanelSettings struct {
	StartPath string `json:"start_path,omitempty"`
	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order"`
}

func defaultPanelSettings() PanelSettings {
	return PanelSettings{SortBy: "name", SortOrder: "asc"}
}

// ThemeSettings names the active theme.
type ThemeSettings struct {
	Name string `json:"name"`
}

// DefaultThemeName is the theme selected when none is configured.
const DefaultThemeName = "dark"

// RemoteAuth is one of Password or KeyFile authentication for a remote
// profile; secrets are obfuscated (never encrypted) at rest.
type RemoteAuth struct {
	Kind       string `json:"kind"` // "password" or "key_file"
	Password   string `json:"password,omitempty"`
	KeyPath    string `json:"key_path,omitempty"`
	Passphrase string `json:"passphrase,omitempty"`
}

// RemoteProfile is one saved SFTP connection.
type RemoteProfile struct {
	Name        string     `json:"name"`
	Host        string     `json:"host"`
	Port        int        `json:"port"`
	User        string     `json:"user"`
	Auth        RemoteAuth `json:"auth"`
	DefaultPath string     `json:"default_path,omitempty"`
}

// Settings is the full persisted configuration. Top-level keys this build
// doesn't recognize are kept in Extra rather than dropped, so a load-then-
// save cycle never loses a field written by another version.
type Settings struct {
	Theme             ThemeSettings        `json:"theme"`
	TarPath           string               `json:"tar_path,omitempty"`
	ExtensionHandler  map[string][]string  `json:"extension_handler"`
	BookmarkedPath    []string             `json:"bookmarked_path"`
	Panels            []PanelSettings      `json:"panels"`
	ActivePanelIndex  int                  `json:"active_panel_index"`
	DiffCompareMethod string               `json:"diff_compare_method"`
	RemoteProfiles    []RemoteProfile      `json:"remote_profiles"`
	Keybindings       keybind.RawOverrides `json:"keybindings"`

	Extra map[string]json.RawMessage `json:"-"`
}

// settingsKnownKeys lists the top-level JSON keys Settings decodes itself;
// anything else found on load is stashed into Extra instead of discarded.
var settingsKnownKeys = map[string]bool{
	"theme":               true,
	"tar_path":            true,
	"extension_handler":   true,
	"bookmarked_path":     true,
	"panels":              true,
	"active_panel_index":  true,
	"diff_compare_method": true,
	"remote_profiles":     true,
	"keybindings":         true,
}

// settingsAlias mirrors Settings without its UnmarshalJSON/MarshalJSON
// methods, so those methods can delegate to the default struct codec
// without recursing into themselves.
type settingsAlias Settings

// UnmarshalJSON decodes the known fields normally, then keeps any
// unrecognized top-level key around in Extra.
func (s *Settings) UnmarshalJSON(data []byte) error {
	var alias settingsAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*s = Settings(alias)

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	extra := make(map[string]json.RawMessage)
	for k, v := range raw {
		if !settingsKnownKeys[k] {
			extra[k] = v
		}
	}
	s.Extra = extra
	return nil
}

// MarshalJSON encodes the known fields normally, then merges back in
// whatever unrecognized keys Extra is carrying.
func (s Settings) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(settingsAlias(s))
	if err != nil {
		return nil, err
	}
	if len(s.Extra) == 0 {
		return known, nil
	}
	var merged map[string]json.RawMessage
	if err := json.Unmarshal(known, &merged); err != nil {
		return nil, err
	}
	for k, v := range s.Extra {
		if _, ok := merged[k]; !ok {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}

// Default returns the settings a fresh install starts with: two panels,
// the dark theme, content-based diff comparison, and shell handlers for a
// few common scripting extensions, run directly when such a file is opened.
func Default() Settings {
	return Settings{
		Theme:             ThemeSettings{Name: DefaultThemeName},
		ExtensionHandler:  defaultExtensionHandlers(),
		BookmarkedPath:    []string{},
		Panels:            []PanelSettings{defaultPanelSettings(), defaultPanelSettings()},
		ActivePanelIndex:  0,
		DiffCompareMethod: "content",
		RemoteProfiles:    []RemoteProfile{},
	}
}

func defaultExtensionHandlers() map[string][]string {
	return map[string][]string{
		"sh": {"sh", "{{FILEPATH}}"},
		"py": {"python3", "{{FILEPATH}}"},
		"js": {"node", "{{FILEPATH}}"},
	}
}

// applyDefaults fills any zero-value field left empty by a partially
// specified settings file, the Go equivalent of serde's per-field default
// attribute since encoding/json has no such hook.
func (s *Settings) applyDefaults() {
	if s.Theme.Name == "" {
		s.Theme.Name = DefaultThemeName
	}
	if s.ExtensionHandler == nil {
		s.ExtensionHandler = defaultExtensionHandlers()
	}
	if s.BookmarkedPath == nil {
		s.BookmarkedPath = []string{}
	}
	if len(s.Panels) == 0 {
		s.Panels = []PanelSettings{defaultPanelSettings(), defaultPanelSettings()}
	}
	for i := range s.Panels {
		if s.Panels[i].SortBy == "" {
			s.Panels[i].SortBy = "name"
		}
		if s.Panels[i].SortOrder == "" {
			s.Panels[i].SortOrder = "asc"
		}
	}
	if s.DiffCompareMethod == "" {
		s.DiffCompareMethod = "content"
	}
	if s.RemoteProfiles == nil {
		s.RemoteProfiles = []RemoteProfile{}
	}
}

// Dir returns the cokacdir config directory, honoring $HOME.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cokacdir"), nil
}

// SettingsPath returns the absolute path settings.json lives at, so
// callers outside this package (the editor's save hook, in particular)
// can detect a save to it and trigger a live reload.
func SettingsPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.json"), nil
}

// Load reads settings.json, applying defaults for any missing field, or
// returns Default() if the file doesn't exist yet.
func Load() (Settings, error) {
	path, err := SettingsPath()
	if err != nil {
		return Settings{}, err
	}
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s := Default()
		return s, nil
	}
	if err != nil {
		return Settings{}, err
	}
	var s Settings
	if err := json.Unmarshal(raw, &s); err != nil {
		return Settings{}, err
	}
	for i := range s.RemoteProfiles {
		s.RemoteProfiles[i].Auth.Password = deobfuscate(s.RemoteProfiles[i].Auth.Password)
		s.RemoteProfiles[i].Auth.Passphrase = deobfuscate(s.RemoteProfiles[i].Auth.Passphrase)
	}
	s.applyDefaults()
	return s, nil
}

// Save atomically writes settings to settings.json: marshal, write to a
// temp file in the same directory, then rename over the target, so a crash
// mid-write never leaves a truncated settings file.
func Save(s Settings) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	out := s
	out.RemoteProfiles = make([]RemoteProfile, len(s.RemoteProfiles))
	copy(out.RemoteProfiles, s.RemoteProfiles)
	for i := range out.RemoteProfiles {
		out.RemoteProfiles[i].Auth.Password = obfuscate(s.RemoteProfiles[i].Auth.Password)
		out.RemoteProfiles[i].Auth.Passphrase = obfuscate(s.RemoteProfiles[i].Auth.Passphrase)
	}

	raw, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	path := filepath.Join(dir, "settings.json")
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
