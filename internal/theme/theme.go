// Package theme defines named color zones for every screen and renders
// them into lipgloss styles, loaded from a built-in default or a
// user-supplied JSON theme file under ~/.cokacdir/themes.
package theme

import (
	"encoding/json"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the flat set of named colors a JSON theme file defines. Every
// screen's styles are derived from these zones rather than hardcoding
// colors, so switching themes recolors the whole app.
type Theme struct {
	Name string `json:"name"`

	Foreground string `json:"foreground"`
	Background string `json:"background"`
	Border     string `json:"border"`
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	Selected   string `json:"selected"`
	Cursor     string `json:"cursor"`
	StatusBar  string `json:"status_bar"`
	Error      string `json:"error"`
	Warning    string `json:"warning"`
	GitAdded   string `json:"git_added"`
	GitModified string `json:"git_modified"`
	GitDeleted string `json:"git_deleted"`
	DiffAdded  string `json:"diff_added"`
	DiffRemoved string `json:"diff_removed"`
}

// Dark is the built-in default theme.
func Dark() Theme {
	return Theme{
		Name:        "dark",
		Foreground:  "#CCCCCC",
		Background:  "#1A1A1A",
		Border:      "#444444",
		Title:       "#FFFFFF",
		Subtitle:    "#888888",
		Selected:    "#3A3A5C",
		Cursor:      "#61AFEF",
		StatusBar:   "#2E2E3E",
		Error:       "#E06C75",
		Warning:     "#E5C07B",
		GitAdded:    "#98C379",
		GitModified: "#E5C07B",
		GitDeleted:  "#E06C75",
		DiffAdded:   "#2D4A30",
		DiffRemoved: "#4A2D2D",
	}
}

// Light is the built-in light theme.
func Light() Theme {
	t := Dark()
	t.Name = "light"
	t.Foreground = "#222222"
	t.Background = "#FAFAFA"
	t.Border = "#BBBBBB"
	t.Title = "#000000"
	t.Subtitle = "#666666"
	t.Selected = "#D6E4FF"
	t.StatusBar = "#E0E0E0"
	return t
}

// Builtin looks up a theme by name among the themes shipped with the
// binary, defaulting to Dark when name is unknown.
func Builtin(name string) Theme {
	switch name {
	case "light":
		return Light()
	default:
		return Dark()
	}
}

// Load reads a JSON theme file from path, falling back to the built-in
// theme named fallbackName if the file is absent.
func Load(path, fallbackName string) (Theme, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Builtin(fallbackName), nil
	}
	if err != nil {
		return Theme{}, err
	}
	t := Builtin(fallbackName)
	if err := json.Unmarshal(raw, &t); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// Styles is the set of lipgloss styles derived from a Theme, built once
// and handed to every screen.
type Styles struct {
	Base         lipgloss.Style
	Border       lipgloss.Style
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Selected     lipgloss.Style
	StatusBar    lipgloss.Style
	Error        lipgloss.Style
	Warning      lipgloss.Style
	GitAdded     lipgloss.Style
	GitModified  lipgloss.Style
	GitDeleted   lipgloss.Style
	DiffAdded    lipgloss.Style
	DiffRemoved  lipgloss.Style
}

// Build derives Styles from t.
func Build(t Theme) Styles {
	return Styles{
		Base:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.Foreground)).Background(lipgloss.Color(t.Background)),
		Border:      lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(t.Border)),
		Title:       lipgloss.NewStyle().Foreground(lipgloss.Color(t.Title)).Bold(true),
		Subtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Subtitle)),
		Selected:    lipgloss.NewStyle().Background(lipgloss.Color(t.Selected)).Foreground(lipgloss.Color(t.Title)).Bold(true),
		StatusBar:   lipgloss.NewStyle().Background(lipgloss.Color(t.StatusBar)).Foreground(lipgloss.Color(t.Foreground)),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color(t.Error)).Bold(true),
		Warning:     lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		GitAdded:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.GitAdded)),
		GitModified: lipgloss.NewStyle().Foreground(lipgloss.Color(t.GitModified)),
		GitDeleted:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.GitDeleted)),
		DiffAdded:   lipgloss.NewStyle().Background(lipgloss.Color(t.DiffAdded)),
		DiffRemoved: lipgloss.NewStyle().Background(lipgloss.Color(t.DiffRemoved)),
	}
}
