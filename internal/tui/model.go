package tui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"statusdeck/internal/deck"
	"statusdeck/internal/dnd"
	"statusdeck/internal/layout"
	"statusdeck/internal/store"
)

type mode int

const (
	modeNormal mode = iota
	modeDrawer
	modeDrag
	modePrompt
)

type promptKind int

const (
	promptRename promptKind = iota
	promptConfigure
)

const (
	drawerWidth = 24
	resizeStep  = 5.0
	toastTTL    = 4 * time.Second

	// Terminal cells are roughly twice as tall as they are wide.
	cellAspect = 2.0
)

type (
	storeEventMsg   deck.Event
	hydratedMsg     struct{}
	toastExpiredMsg struct{ seq int }
)

type dashModel struct {
	ctx    context.Context
	deck   *deck.Store
	ui     store.Store
	logger *log.Logger
	mouse  bool

	width  int
	height int

	keys   keyMap
	help   help.Model
	drawer list.Model

	mode       mode
	drawerOpen bool
	focus      string

	tracker     dnd.Tracker
	resolver    dnd.Resolver
	dragByMouse bool

	prompt       textinput.Model
	promptKind   promptKind
	promptTarget string

	toast    string
	toastErr bool
	toastSeq int

	hydrated    bool
	lastSaveErr error
}

func newDashModel(ctx context.Context, opts Options) dashModel {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return dashModel{
		ctx:      ctx,
		deck:     opts.Deck,
		ui:       opts.UI,
		logger:   logger,
		mouse:    opts.Mouse,
		keys:     defaultKeyMap(),
		help:     help.New(),
		drawer:   newDrawerList(),
		resolver: dnd.Resolver{CellAspect: cellAspect},
		prompt:   textinput.New(),
	}
}

func (m dashModel) Init() tea.Cmd {
	st, ctx := m.deck, m.ctx
	return func() tea.Msg {
		st.Hydrate(ctx)
		return hydratedMsg{}
	}
}

func (m dashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.ensureFocus()
	return next, cmd
}

func (m dashModel) update(msg tea.Msg) (dashModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case hydratedMsg:
		m.hydrated = true
		m.restoreUIState()
		return m, nil

	case storeEventMsg:
		return m.handleStoreEvent(deck.Event(msg))

	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
			m.toastErr = false
		}
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modePrompt:
			return m.updatePrompt(msg)
		case modeDrag:
			return m.updateDrag(msg)
		case modeDrawer:
			return m.updateDrawer(msg)
		default:
			return m.updateNormal(msg)
		}
	}

	if m.mode == modePrompt {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m dashModel) handleStoreEvent(ev deck.Event) (dashModel, tea.Cmd) {
	switch ev.Kind {
	case deck.EventLoadFailed:
		return m, m.setToast(fmt.Sprintf("Could not load saved layout, using defaults: %v", ev.Err), true)
	case deck.EventSaveFailed:
		m.lastSaveErr = ev.Err
		return m, m.setToast(fmt.Sprintf("Could not save layout: %v", ev.Err), true)
	case deck.EventSaved:
		m.lastSaveErr = nil
	}
	return m, nil
}

func (m *dashModel) setToast(text string, isErr bool) tea.Cmd {
	m.toast = text
	m.toastErr = isErr
	m.toastSeq++
	seq := m.toastSeq
	return tea.Tick(toastTTL, func(time.Time) tea.Msg { return toastExpiredMsg{seq: seq} })
}

// resize propagates the window size to the sub-models.
func (m *dashModel) resize() {
	m.help.Width = m.width
	m.drawer.SetSize(drawerWidth-1, max(m.bodyHeight()-1, 1))
	m.prompt.Width = max(m.width-len(m.prompt.Prompt)-2, 10)
}

// ensureFocus keeps focus on an existing tile.
func (m *dashModel) ensureFocus() {
	ids := m.deck.TileIDs()
	for _, id := range ids {
		if id == m.focus {
			return
		}
	}
	m.focus = ""
	if len(ids) > 0 {
		m.focus = ids[0]
	}
}

func (m *dashModel) cycleFocus(from string, delta int) string {
	ids := m.deck.TileIDs()
	if len(ids) == 0 {
		return ""
	}
	idx := 0
	for i, id := range ids {
		if id == from {
			idx = (i + delta + len(ids)) % len(ids)
			return ids[idx]
		}
	}
	return ids[idx]
}

func (m *dashModel) restoreUIState() {
	st, err := m.ui.LoadUIState()
	if err != nil {
		m.logger.Debug("ui state unavailable", "err", err)
		return
	}
	if st.FocusedTileID != "" {
		if _, ok := m.deck.Tile(st.FocusedTileID); ok {
			m.focus = st.FocusedTileID
		}
	}
	if st.DrawerOpen && m.mode == modeNormal {
		m.openDrawer()
	}
}

func (m dashModel) uiState() *store.UIState {
	return &store.UIState{Version: 1, FocusedTileID: m.focus, DrawerOpen: m.drawerOpen}
}

func (m *dashModel) openDrawer() {
	m.drawerOpen = true
	m.mode = modeDrawer
	m.resize()
}

func (m *dashModel) closeDrawer() {
	m.drawerOpen = false
	if m.mode == modeDrawer {
		m.mode = modeNormal
	}
	m.resize()
}

// Geometry. The screen is a one-line header, the body (dashboard plus optional
// drawer), a status line and the help footer.

const headerHeight = 1

func (m dashModel) drawerVisible() bool {
	return m.drawerOpen && m.width >= drawerWidth+12
}

func (m dashModel) dashWidth() int {
	if m.drawerVisible() {
		return m.width - drawerWidth
	}
	return m.width
}

func (m dashModel) bodyHeight() int {
	return max(m.height-headerHeight-1-m.helpHeight(), 1)
}

func (m dashModel) dashBounds() layout.Rect {
	return layout.Rect{X: 0, Y: headerHeight, W: m.dashWidth(), H: m.bodyHeight()}
}

// tileRects returns every tile's box in screen cells.
func (m dashModel) tileRects() map[string]layout.Rect {
	return layout.Rects(m.deck.Layout(), m.dashBounds())
}

func (m dashModel) tileAt(x, y int) (string, bool) {
	for id, r := range m.tileRects() {
		if r.Contains(x, y) {
			return id, true
		}
	}
	return "", false
}
