package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"statusdeck/internal/dnd"
)

// updateMouse handles pointer drags from the palette onto the dashboard.
// Cell-motion reporting only delivers motion while a button is held, which is
// exactly the drag.
func (m dashModel) updateMouse(msg tea.MouseMsg) (dashModel, tea.Cmd) {
	if !m.mouse {
		return m, nil
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if idx, ok := m.drawerHit(msg.X, msg.Y); ok && m.mode == modeDrawer {
			m.drawer.Select(idx)
			if it, ok := m.selectedDrawerItem(); ok {
				m.startDrag(it, true)
				m.trackPointer(msg.X, msg.Y)
			}
			return m, nil
		}
		if m.mode == modeNormal {
			if id, ok := m.tileAt(msg.X, msg.Y); ok {
				m.focus = id
			}
		}
	case tea.MouseActionMotion:
		if m.mode == modeDrag && m.dragByMouse {
			m.trackPointer(msg.X, msg.Y)
		}
	case tea.MouseActionRelease:
		if m.mode == modeDrag && m.dragByMouse {
			m.trackPointer(msg.X, msg.Y)
			return m, m.drop()
		}
	}
	return m, nil
}

// trackPointer updates the hover from the rendered tile boxes.
func (m *dashModel) trackPointer(x, y int) {
	hover, ok := m.resolver.Resolve(x, y, m.deck.TileIDs(), dnd.RectMeasure(m.tileRects()))
	if !ok {
		m.tracker.ClearHover()
		return
	}
	m.tracker.SetHover(hover.TargetID, hover.Edge)
}

// drawerHit maps a screen cell to a palette item. The palette starts one row
// below the header with its own title row, and has a one-column rule on its
// left.
func (m dashModel) drawerHit(x, y int) (int, bool) {
	if !m.drawerVisible() || x <= m.dashWidth() || x >= m.width {
		return 0, false
	}
	return drawerIndexAt(m.drawer, y-headerHeight-1)
}
