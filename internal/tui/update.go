package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"statusdeck/internal/layout"
	"statusdeck/internal/model"
)

func (m dashModel) updateNormal(msg tea.KeyMsg) (dashModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
	case key.Matches(msg, m.keys.NextTile):
		m.focus = m.cycleFocus(m.focus, 1)
	case key.Matches(msg, m.keys.PrevTile):
		m.focus = m.cycleFocus(m.focus, -1)
	case key.Matches(msg, m.keys.Drawer):
		m.openDrawer()
	case key.Matches(msg, m.keys.Remove):
		if m.focus == "" {
			return m, nil
		}
		next := m.cycleFocus(m.focus, 1)
		if m.deck.RemoveTile(m.focus) {
			m.logger.Debug("removed tile", "id", m.focus)
			m.focus = next
		}
	case key.Matches(msg, m.keys.Rename):
		if m.focus != "" {
			return m, m.openPrompt(promptRename, m.focus)
		}
	case key.Matches(msg, m.keys.Configure):
		if m.focus != "" {
			return m, m.openPrompt(promptConfigure, m.focus)
		}
	case key.Matches(msg, m.keys.Grow):
		m.resizeFocused(resizeStep)
	case key.Matches(msg, m.keys.Shrink):
		m.resizeFocused(-resizeStep)
	case key.Matches(msg, m.keys.Reset):
		m.deck.Reset()
		m.focus = ""
		return m, m.setToast("Layout reset", false)
	}
	return m, nil
}

// resizeFocused grows (delta > 0) or shrinks the focused tile inside its
// parent split.
func (m *dashModel) resizeFocused(delta float64) {
	if m.focus == "" {
		return
	}
	first, ok := isFirstChild(m.deck.Layout(), m.focus)
	if !ok {
		return
	}
	if !first {
		delta = -delta
	}
	m.deck.ResizeTile(m.focus, delta)
}

// isFirstChild reports whether leaf id is the First child of its parent split.
// ok is false when id is the root or absent.
func isFirstChild(n layout.Node, id string) (first bool, ok bool) {
	s, isSplit := n.(layout.Split)
	if !isSplit {
		return false, false
	}
	if l, isLeaf := s.First.(layout.Leaf); isLeaf && l.ID == id {
		return true, true
	}
	if l, isLeaf := s.Second.(layout.Leaf); isLeaf && l.ID == id {
		return false, true
	}
	if first, ok := isFirstChild(s.First, id); ok {
		return first, true
	}
	return isFirstChild(s.Second, id)
}

func (m dashModel) selectedDrawerItem() (drawerItem, bool) {
	it, ok := m.drawer.SelectedItem().(drawerItem)
	return it, ok
}

func (m dashModel) updateDrawer(msg tea.KeyMsg) (dashModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Drawer):
		m.closeDrawer()
		return m, nil
	case key.Matches(msg, m.keys.Add):
		it, ok := m.selectedDrawerItem()
		if !ok {
			return m, nil
		}
		m.closeDrawer()
		id := m.deck.AddTile(newTileSettings(it.kind, it.needsConfig))
		m.focus = id
		if it.needsConfig {
			return m, m.openPrompt(promptConfigure, id)
		}
		return m, nil
	case key.Matches(msg, m.keys.Drag):
		it, ok := m.selectedDrawerItem()
		if !ok {
			return m, nil
		}
		m.startDrag(it, false)
		if m.focus != "" {
			m.tracker.SetHover(m.focus, layout.EdgeRight)
		}
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.drawer, cmd = m.drawer.Update(msg)
	return m, cmd
}

// startDrag begins placing a view. The palette closes so the whole dashboard
// is available as a drop area.
func (m *dashModel) startDrag(it drawerItem, byMouse bool) {
	m.tracker.StartDrag(string(it.kind), it.needsConfig)
	m.closeDrawer()
	m.mode = modeDrag
	m.dragByMouse = byMouse
}

func (m dashModel) updateDrag(msg tea.KeyMsg) (dashModel, tea.Cmd) {
	hover, hovering := m.tracker.Hover()
	target := hover.TargetID
	if !hovering {
		target = m.focus
	}
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.tracker.EndDrag()
		m.mode = modeNormal
		m.dragByMouse = false
	case key.Matches(msg, m.keys.Drop):
		return m, m.drop()
	case key.Matches(msg, m.keys.EdgeLeft):
		m.hoverEdge(target, layout.EdgeLeft)
	case key.Matches(msg, m.keys.EdgeRight):
		m.hoverEdge(target, layout.EdgeRight)
	case key.Matches(msg, m.keys.EdgeTop):
		m.hoverEdge(target, layout.EdgeTop)
	case key.Matches(msg, m.keys.EdgeBottom):
		m.hoverEdge(target, layout.EdgeBottom)
	case key.Matches(msg, m.keys.NextTile), key.Matches(msg, m.keys.PrevTile):
		delta := 1
		if key.Matches(msg, m.keys.PrevTile) {
			delta = -1
		}
		edge := layout.EdgeRight
		if hovering {
			edge = hover.Edge
		}
		m.hoverEdge(m.cycleFocus(target, delta), edge)
	}
	return m, nil
}

func (m *dashModel) hoverEdge(target string, edge layout.Edge) {
	if target == "" {
		return
	}
	m.tracker.SetHover(target, edge)
}

// drop completes the gesture: split the hovered tile, or append when nothing
// is hovered. A target that vanished mid-drag rejects the drop.
func (m *dashModel) drop() tea.Cmd {
	intent, hover, hasHover, ok := m.tracker.Drop()
	m.mode = modeNormal
	m.dragByMouse = false
	if !ok {
		return nil
	}
	settings := newTileSettings(model.ViewType(intent.TileKind), intent.NeedsConfig)
	var id string
	if hasHover {
		nid, accepted := m.deck.AddTileRelative(hover.TargetID, hover.Edge, settings)
		if !accepted {
			return m.setToast("Drop target no longer exists", true)
		}
		id = nid
	} else {
		id = m.deck.AddTile(settings)
	}
	m.logger.Debug("dropped tile", "id", id, "kind", intent.TileKind, "target", hover.TargetID, "edge", hover.Edge)
	m.focus = id
	if intent.NeedsConfig {
		return m.openPrompt(promptConfigure, id)
	}
	return nil
}

func newTileSettings(kind model.ViewType, needsConfig bool) model.TileSettings {
	return model.TileSettings{
		ViewType:           kind,
		AdditionalSettings: map[string]any{},
		NeedsConfig:        needsConfig,
	}
}

func (m *dashModel) openPrompt(kind promptKind, id string) tea.Cmd {
	ti := textinput.New()
	ti.CharLimit = 120
	switch kind {
	case promptRename:
		ti.Prompt = "Rename: "
		ti.SetValue(m.deck.Title(id))
	case promptConfigure:
		ti.Prompt = "Data source: "
		ti.Placeholder = "e.g. https://status.example.com/api"
		if s, ok := m.deck.Tile(id); ok {
			ti.SetValue(s.API)
		}
	}
	ti.CursorEnd()
	m.prompt = ti
	m.promptKind = kind
	m.promptTarget = id
	m.mode = modePrompt
	m.resize()
	return m.prompt.Focus()
}

func (m dashModel) updatePrompt(msg tea.KeyMsg) (dashModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.closePrompt()
		return m, nil
	case tea.KeyEnter:
		cmd := m.applyPrompt(strings.TrimSpace(m.prompt.Value()))
		m.closePrompt()
		return m, cmd
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m *dashModel) closePrompt() {
	m.prompt.Blur()
	m.mode = modeNormal
	m.promptTarget = ""
}

func (m *dashModel) applyPrompt(value string) tea.Cmd {
	id := m.promptTarget
	switch m.promptKind {
	case promptRename:
		if !m.deck.RenameTile(id, value) {
			return m.setToast("Tile no longer exists", true)
		}
	case promptConfigure:
		s, ok := m.deck.Tile(id)
		if !ok {
			return m.setToast("Tile no longer exists", true)
		}
		s.API = value
		if s.NeedsConfig {
			s.NeedsConfig = false
			m.deck.UpdateTile(id, s, s.DefaultTitle())
		} else {
			m.deck.UpdateTile(id, s)
		}
	}
	return nil
}
