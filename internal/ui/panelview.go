package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/cokacdir/cokacdir/internal/panel"
	"github.com/cokacdir/cokacdir/internal/theme"
	"github.com/cokacdir/cokacdir/internal/vfs"
)

// listItem adapts a panel.Entry into the bubbles/list.Item the panel's
// list.Model renders, coloring the title by git status the same way the
// item type it's generalized from did.
type listItem struct {
	entry  panel.Entry
	styles theme.Styles
}

func (i listItem) Title() string {
	title := i.entry.Name
	if i.entry.Selected {
		title = "* " + title
	}
	if i.entry.IsDir {
		title += "/"
	}
	switch {
	case len(i.entry.GitStatus) > 0 && i.entry.GitStatus[0] == 'M':
		return i.styles.GitModified.Render(title)
	case len(i.entry.GitStatus) > 0 && i.entry.GitStatus[0] == 'A':
		return i.styles.GitAdded.Render(title)
	case len(i.entry.GitStatus) > 0 && i.entry.GitStatus[0] == 'D':
		return i.styles.GitDeleted.Render(title)
	default:
		return title
	}
}

func (i listItem) Description() string {
	return fmt.Sprintf("%d bytes | %s", i.entry.Size, time.Unix(i.entry.ModTime, 0).Format("2006-01-02 15:04"))
}

func (i listItem) FilterValue() string { return i.entry.Name }

// panelView pairs a panel.Panel's state with the bubbles/list.Model and
// preview viewport that render it, keeping rendering state separate from
// the underlying panel.Panel's directory/selection state.
type panelView struct {
	Panel   *panel.Panel
	List    list.Model
	Preview viewport.Model
	Branch  string
	styles  theme.Styles
}

func newPanelView(fsys vfs.FS, dir string, styles theme.Styles) *panelView {
	del := list.NewDefaultDelegate()
	l := list.New(nil, del, 0, 0)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	return &panelView{
		Panel:   panel.New(fsys, dir),
		List:    l,
		Preview: viewport.New(0, 0),
		styles:  styles,
	}
}

func (pv *panelView) refresh() error {
	if err := pv.Panel.Refresh(); err != nil {
		return err
	}
	pv.syncList()
	return nil
}

func (pv *panelView) syncList() {
	entries := pv.Panel.Visible()
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = listItem{entry: e, styles: pv.styles}
	}
	pv.List.SetItems(items)
}

func (pv *panelView) selectedEntry() (panel.Entry, bool) {
	it, ok := pv.List.SelectedItem().(listItem)
	if !ok {
		return panel.Entry{}, false
	}
	return it.entry, true
}

func (pv *panelView) setSize(w, h int) {
	pv.List.SetSize(w, h)
	pv.Preview.Width = w
	pv.Preview.Height = h
}
