// Package tui is the interactive dashboard: tiles laid out by the split tree,
// a palette of views, and keyboard or mouse drag-and-drop placement.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"statusdeck/internal/deck"
	"statusdeck/internal/store"
)

type Options struct {
	Deck *deck.Store
	// UI holds the ui_state.json sidecar (focus, palette).
	UI     store.Store
	Mouse  bool
	Logger *log.Logger
}

// Run blocks until the user quits or ctx is cancelled. A pending save is
// flushed before it returns.
func Run(ctx context.Context, opts Options) error {
	applyThemePreference()
	applyColorProfilePreference()

	m := newDashModel(ctx, opts)
	progOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if opts.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(m, progOpts...)

	unsubscribe := opts.Deck.Subscribe(func(ev deck.Event) {
		// Mutations publish from inside Update, where a blocking Send would
		// stall the event loop.
		go p.Send(storeEventMsg(ev))
	})
	final, runErr := p.Run()
	unsubscribe()

	if fm, ok := final.(dashModel); ok {
		if err := opts.UI.SaveUIState(fm.uiState()); err != nil {
			m.logger.Warn("failed to save ui state", "err", err)
		}
	}
	if err := opts.Deck.Flush(); err != nil {
		m.logger.Error("final save failed", "err", err)
		if runErr == nil {
			runErr = fmt.Errorf("save layout: %w", err)
		}
	}
	return runErr
}
