package shell

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/checklist/internal/ui"
)

// listItem adapts an item text to bubbles/list.Item.
type listItem struct {
	Text string
}

func (i listItem) FilterValue() string { return i.Text }

func toListItems(texts []string) []list.Item {
	out := make([]list.Item, 0, len(texts))
	for _, t := range texts {
		out = append(out, listItem{Text: t})
	}
	return out
}

// itemDelegate renders one row per item. Rows are always drawn unchecked:
// a checked item leaves the list instead of staying ticked.
type itemDelegate struct {
	theme   ui.Theme
	focused bool
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)

	prefix := "  "
	selected := index == m.Index()
	if selected {
		prefix = d.theme.Cursor
	}
	box := d.theme.BoxUnchecked
	text := it.Text

	room := m.Width() - ansi.StringWidth(prefix) - ansi.StringWidth(box) - 1
	text = ui.Truncate(text, room)

	line := fmt.Sprintf("%s %s", d.theme.Muted.Render(box), text)
	switch {
	case selected && d.focused:
		prefix = d.theme.Selected.Render(prefix)
		line = fmt.Sprintf("%s %s", d.theme.Accent.Render(box), d.theme.Selected.Render(text))
	case selected:
		prefix = d.theme.Muted.Render(prefix)
	}
	fmt.Fprint(w, prefix+line)
}
