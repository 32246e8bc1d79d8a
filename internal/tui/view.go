package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"statusdeck/internal/debounce"
	"statusdeck/internal/layout"
)

func (m dashModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	body := m.viewDashboard()
	if m.drawerVisible() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.viewDrawer())
	}
	return strings.Join([]string{
		m.viewHeader(),
		body,
		m.viewStatusLine(),
		m.viewHelp(),
	}, "\n")
}

func (m dashModel) helpKeys() help.KeyMap {
	switch m.mode {
	case modeDrawer:
		return drawerHelp{m.keys}
	case modeDrag:
		return dragHelp{m.keys}
	default:
		return dashboardHelp{m.keys}
	}
}

func (m dashModel) viewHelp() string {
	if m.mode == modePrompt {
		return normalizePane(styleMuted().Render("enter confirm • esc cancel"), m.width, 1)
	}
	v := m.help.View(m.helpKeys())
	return normalizePane(v, m.width, max(lipgloss.Height(v), 1))
}

func (m dashModel) helpHeight() int {
	if m.mode == modePrompt || !m.help.ShowAll {
		return 1
	}
	return max(lipgloss.Height(m.help.View(m.helpKeys())), 1)
}

func (m dashModel) saveStatus() string {
	if !m.hydrated {
		return "loading…"
	}
	switch m.deck.PersistState() {
	case debounce.Pending:
		return "unsaved"
	case debounce.Running:
		return "saving…"
	}
	if m.lastSaveErr != nil {
		return "save failed"
	}
	return "saved"
}

func (m dashModel) viewHeader() string {
	left := " statusdeck"
	right := fmt.Sprintf("%d tiles · %s ", len(m.deck.TileIDs()), m.saveStatus())
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	line := left
	if gap > 0 {
		line += strings.Repeat(" ", gap) + right
	}
	return styleHeader().Render(fitLine(line, m.width))
}

func (m dashModel) viewStatusLine() string {
	var line string
	switch {
	case m.mode == modePrompt:
		line = m.prompt.View()
	case m.mode == modeDrag:
		line = m.dragHint()
	case m.toast != "":
		st := styleMuted()
		if m.toastErr {
			st = styleToastError()
		}
		line = st.Render(m.toast)
	}
	return fitLine(line, m.width)
}

func (m dashModel) dragHint() string {
	intent, _ := m.tracker.Dragging()
	hover, ok := m.tracker.Hover()
	if !ok {
		return fmt.Sprintf("Placing %s: no target, drop appends", intent.TileKind)
	}
	return fmt.Sprintf("Placing %s: %s of %q", intent.TileKind, hover.Edge, m.deck.Title(hover.TargetID))
}

func (m dashModel) viewDrawer() string {
	h := m.bodyHeight()
	content := lipgloss.NewStyle().Bold(true).Render("Views") + "\n" + m.drawer.View()
	pane := normalizePane(content, drawerWidth-1, h)
	rule := styleMuted().Render("│")
	lines := strings.Split(pane, "\n")
	for i, ln := range lines {
		lines[i] = rule + ln
	}
	return strings.Join(lines, "\n")
}

func (m dashModel) viewDashboard() string {
	w, h := m.dashWidth(), m.bodyHeight()
	tree := m.deck.Layout()
	if tree == nil {
		return zeroState(w, h)
	}
	return m.renderNode(tree, w, h)
}

// renderNode lays tiles out with the same integer split as layout.Rects, so
// pointer hit-testing matches what is drawn.
func (m dashModel) renderNode(n layout.Node, w, h int) string {
	switch t := n.(type) {
	case layout.Leaf:
		return m.renderTile(t.ID, w, h)
	case layout.Split:
		if t.Direction == layout.Column {
			a := layout.SplitSize(h, t.SplitPercentage)
			if h-a <= 0 {
				return m.renderNode(t.First, w, h)
			}
			return lipgloss.JoinVertical(lipgloss.Left, m.renderNode(t.First, w, a), m.renderNode(t.Second, w, h-a))
		}
		a := layout.SplitSize(w, t.SplitPercentage)
		if w-a <= 0 {
			return m.renderNode(t.First, w, h)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, m.renderNode(t.First, a, h), m.renderNode(t.Second, w-a, h))
	}
	return blankPane(w, h)
}

func (m dashModel) renderTile(id string, w, h int) string {
	if w < 3 || h < 3 {
		return blankPane(w, h)
	}
	hover, hovering := m.tracker.Hover()
	isTarget := m.mode == modeDrag && hovering && hover.TargetID == id
	focused := id == m.focus && m.mode != modeDrag

	innerW, innerH := w-2, h-2
	settings, _ := m.deck.Tile(id)
	title := styleTileTitle(focused).Render(m.deck.Title(id))
	body := renderContent(tileContent{id: id, settings: settings, width: innerW, height: innerH - 1})
	inner := normalizePane(title+"\n"+body, innerW, innerH)

	st := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorTileBorder)
	if focused {
		st = st.BorderForeground(colorFocusBorder)
	}
	if isTarget {
		st = st.Border(lipgloss.ThickBorder())
		switch hover.Edge {
		case layout.EdgeLeft:
			st = st.BorderLeftForeground(colorDropTarget)
		case layout.EdgeRight:
			st = st.BorderRightForeground(colorDropTarget)
		case layout.EdgeTop:
			st = st.BorderTopForeground(colorDropTarget)
		case layout.EdgeBottom:
			st = st.BorderBottomForeground(colorDropTarget)
		}
	}
	return st.Render(inner)
}
