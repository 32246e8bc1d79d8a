package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextTile   key.Binding
	PrevTile   key.Binding
	Drawer     key.Binding
	Add        key.Binding
	Drag       key.Binding
	Remove     key.Binding
	Rename     key.Binding
	Configure  key.Binding
	Grow       key.Binding
	Shrink     key.Binding
	Reset      key.Binding
	EdgeLeft   key.Binding
	EdgeRight  key.Binding
	EdgeTop    key.Binding
	EdgeBottom key.Binding
	Drop       key.Binding
	Cancel     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextTile:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tile")),
		PrevTile:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tile")),
		Drawer:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "views")),
		Add:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Drag:       key.NewBinding(key.WithKeys("d", " "), key.WithHelp("d", "place")),
		Remove:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove")),
		Rename:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename")),
		Configure:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "configure")),
		Grow:       key.NewBinding(key.WithKeys(">", "]"), key.WithHelp(">", "grow")),
		Shrink:     key.NewBinding(key.WithKeys("<", "["), key.WithHelp("<", "shrink")),
		Reset:      key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
		EdgeLeft:   key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h", "left")),
		EdgeRight:  key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l", "right")),
		EdgeTop:    key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "top")),
		EdgeBottom: key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "bottom")),
		Drop:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "drop")),
		Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// dashboardHelp is the help.KeyMap for normal mode.
type dashboardHelp struct{ k keyMap }

func (h dashboardHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Drawer, h.k.NextTile, h.k.Remove, h.k.Rename, h.k.Help, h.k.Quit}
}

func (h dashboardHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.k.NextTile, h.k.PrevTile, h.k.Drawer},
		{h.k.Remove, h.k.Rename, h.k.Configure},
		{h.k.Grow, h.k.Shrink, h.k.Reset},
		{h.k.Help, h.k.Quit},
	}
}

type drawerHelp struct{ k keyMap }

func (h drawerHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Add, h.k.Drag, h.k.Cancel}
}

func (h drawerHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h.ShortHelp()} }

type dragHelp struct{ k keyMap }

func (h dragHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.EdgeLeft, h.k.EdgeBottom, h.k.EdgeTop, h.k.EdgeRight, h.k.NextTile, h.k.Drop, h.k.Cancel}
}

func (h dragHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h.ShortHelp()} }
