package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"statusdeck/internal/model"
)

// drawerItem is one entry of the view palette.
type drawerItem struct {
	kind        model.ViewType
	label       string
	needsConfig bool
}

func (i drawerItem) Title() string       { return i.label }
func (i drawerItem) Description() string { return string(i.kind) }
func (i drawerItem) FilterValue() string { return i.label }

// drawerItems lists every view type. Views backed by a data source are
// configured right after they are placed.
func drawerItems() []list.Item {
	labels := map[model.ViewType]string{
		model.ViewSummary: "Summary",
		model.ViewDetails: "Details",
		model.ViewGraph:   "Graph",
		model.ViewDev:     "Dev",
		model.ViewWelcome: "Welcome",
	}
	out := make([]list.Item, 0, len(labels))
	for _, vt := range model.ViewTypes() {
		out = append(out, drawerItem{
			kind:        vt,
			label:       labels[vt],
			needsConfig: vt == model.ViewSummary || vt == model.ViewDetails || vt == model.ViewGraph,
		})
	}
	return out
}

type compactItemDelegate struct {
	normal   lipgloss.Style
	selected lipgloss.Style
}

func newCompactItemDelegate() compactItemDelegate {
	return compactItemDelegate{
		normal:   lipgloss.NewStyle(),
		selected: lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true),
	}
}

func (d compactItemDelegate) Height() int                             { return 1 }
func (d compactItemDelegate) Spacing() int                            { return 0 }
func (d compactItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d compactItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	contentW := m.Width()
	if contentW < 4 {
		return
	}
	style := d.normal
	prefix := "  "
	if index == m.Index() {
		style = d.selected
		prefix = "› "
	}
	txt := fmt.Sprint(item)
	if t, ok := item.(drawerItem); ok {
		txt = t.Title()
		if t.needsConfig {
			txt += " *"
		}
	}
	fmt.Fprint(w, style.Render(fitLine(prefix+txt, contentW)))
}

func newDrawerList() list.Model {
	l := list.New(drawerItems(), newCompactItemDelegate(), drawerWidth, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	return l
}

// drawerIndexAt maps a row inside the item area to an item index.
func drawerIndexAt(l list.Model, row int) (int, bool) {
	if row < 0 || row >= l.Paginator.PerPage {
		return 0, false
	}
	idx := l.Paginator.Page*l.Paginator.PerPage + row
	if idx >= len(l.Items()) {
		return 0, false
	}
	return idx, true
}
