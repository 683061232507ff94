// Package panel implements the dual-panel directory listing: entry
// listing, sorting, selection, and the paste name-collision resolution
// scheme, built over internal/vfs so either panel can point at a local or
// remote filesystem.
package panel

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/cokacdir/cokacdir/internal/vfs"
)

// Entry is one row of a panel's listing.
type Entry struct {
	Name      string
	IsDir     bool
	Size      int64
	ModTime   int64
	Hidden    bool
	Selected  bool
	GitStatus string
}

// SortField selects which column Sort orders by.
type SortField int

const (
	SortByName SortField = iota
	SortBySize
	SortByModTime
	SortByExt
)

// SortOrder selects ascending or descending.
type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

// Panel is one side of the dual-panel view.
type Panel struct {
	FS         vfs.FS
	CurrentDir string
	Entries    []Entry
	SortField  SortField
	SortOrder  SortOrder
	ShowHidden bool
}

// New constructs a Panel rooted at dir.
func New(fsys vfs.FS, dir string) *Panel {
	return &Panel{FS: fsys, CurrentDir: dir, SortField: SortByName, SortOrder: Ascending}
}

// Refresh re-lists CurrentDir, preserving each entry's previous selection
// state by name where it still exists.
func (p *Panel) Refresh() error {
	prevSelected := make(map[string]bool)
	for _, e := range p.Entries {
		if e.Selected {
			prevSelected[e.Name] = true
		}
	}

	dirEntries, err := p.FS.ReadDir(p.CurrentDir)
	if err != nil {
		return err
	}
	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		info, err := de.Info()
		if err != nil {
			continue
		}
		entries = append(entries, Entry{
			Name:     de.Name(),
			IsDir:    de.IsDir(),
			Size:     info.Size(),
			ModTime:  info.ModTime().Unix(),
			Hidden:   strings.HasPrefix(de.Name(), "."),
			Selected: prevSelected[de.Name()],
		})
	}
	p.Entries = entries
	p.Sort()
	return nil
}

// Visible returns the entries that ShowHidden permits displaying.
func (p *Panel) Visible() []Entry {
	if p.ShowHidden {
		return p.Entries
	}
	out := make([]Entry, 0, len(p.Entries))
	for _, e := range p.Entries {
		if !e.Hidden {
			out = append(out, e)
		}
	}
	return out
}

// Sort orders Entries in place by SortField/SortOrder, directories always
// grouped before files.
func (p *Panel) Sort() {
	less := func(i, j int) bool {
		a, b := p.Entries[i], p.Entries[j]
		if a.IsDir != b.IsDir {
			return a.IsDir
		}
		var cmp bool
		switch p.SortField {
		case SortBySize:
			cmp = a.Size < b.Size
		case SortByModTime:
			cmp = a.ModTime < b.ModTime
		case SortByExt:
			cmp = extOf(a.Name) < extOf(b.Name)
		default:
			cmp = a.Name < b.Name
		}
		if p.SortOrder == Descending {
			return !cmp
		}
		return cmp
	}
	sort.SliceStable(p.Entries, less)
}

func extOf(name string) string {
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		return name[i+1:]
	}
	return ""
}

// ToggleSelect flips the selection of the entry named name.
func (p *Panel) ToggleSelect(name string) {
	for i := range p.Entries {
		if p.Entries[i].Name == name {
			p.Entries[i].Selected = !p.Entries[i].Selected
			return
		}
	}
}

// SelectAll selects every entry, including hidden ones — hidden entries
// participate in Select All the same as visible ones.
func (p *Panel) SelectAll() {
	for i := range p.Entries {
		p.Entries[i].Selected = true
	}
}

// SelectNone clears every selection.
func (p *Panel) SelectNone() {
	for i := range p.Entries {
		p.Entries[i].Selected = false
	}
}

// InvertSelect flips every entry's selection state.
func (p *Panel) InvertSelect() {
	for i := range p.Entries {
		p.Entries[i].Selected = !p.Entries[i].Selected
	}
}

// Selected returns the names of every currently selected entry.
func (p *Panel) Selected() []string {
	var out []string
	for _, e := range p.Entries {
		if e.Selected {
			out = append(out, e.Name)
		}
	}
	return out
}

// CollisionAction is the user's choice when a paste target name already
// exists in the destination.
type CollisionAction int

const (
	CollisionOverwrite CollisionAction = iota
	CollisionSkip
	CollisionRename
)

// ResolveRenameCollision returns a name derived from name that does not
// collide with anything reported by exists, using a deterministic
// " (n)" numeric suffix inserted before the extension, starting at n=1 and
// incrementing until a free name is found.
func ResolveRenameCollision(name string, exists func(candidate string) bool) string {
	if !exists(name) {
		return name
	}
	ext := path.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s (%d)%s", base, n, ext)
		if !exists(candidate) {
			return candidate
		}
	}
}
