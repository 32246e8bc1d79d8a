// Package deck owns the dashboard's layout state: the split tree, the tile
// registry, and the hydrate-then-persist lifecycle that makes them durable.
//
// All mutations are synchronous and cheap. Persistence is asynchronous: after
// hydration, every accepted mutation (re)starts a debounce timer and the state
// installed when the timer fires is written through the Gateway. Mutations
// referencing unknown tiles are silent no-ops.
package deck

import (
	"context"
	"io"
	"sync"
	"time"

	"statusdeck/internal/debounce"
	"statusdeck/internal/layout"
	"statusdeck/internal/model"
	"statusdeck/internal/tiles"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

const (
	DefaultDebounce    = 500 * time.Millisecond
	defaultSaveTimeout = 10 * time.Second
)

// Gateway is durable storage for the layout state. Load returns (nil, nil)
// when nothing has been stored yet.
type Gateway interface {
	Load(ctx context.Context) (*model.LayoutState, error)
	Save(ctx context.Context, st model.LayoutState) error
}

type Options struct {
	// Gateway may be nil for a purely in-memory store.
	Gateway  Gateway
	Debounce time.Duration
	Logger   *log.Logger

	// Defaults is installed at construction and kept when hydration finds
	// nothing usable. Nil means DefaultState().
	Defaults *model.LayoutState

	// NewID generates tile ids; nil means "tile-<uuid>".
	NewID func() string

	SaveTimeout time.Duration
}

type Store struct {
	gateway     Gateway
	logger      *log.Logger
	newID       func() string
	defaults    model.LayoutState
	saveTimeout time.Duration
	saver       *debounce.Task

	mu        sync.Mutex
	layout    layout.Node
	registry  *tiles.Registry
	hydrated  bool
	hydrating bool
	saveErr   error

	subMu   sync.Mutex
	subs    map[int]func(Event)
	nextSub int
}

func New(opts Options) *Store {
	defaults := DefaultState()
	if opts.Defaults != nil {
		defaults = opts.Defaults.Clone()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	newID := opts.NewID
	if newID == nil {
		newID = func() string { return "tile-" + uuid.NewString() }
	}
	debounceDelay := opts.Debounce
	if debounceDelay <= 0 {
		debounceDelay = DefaultDebounce
	}
	saveTimeout := opts.SaveTimeout
	if saveTimeout <= 0 {
		saveTimeout = defaultSaveTimeout
	}

	s := &Store{
		gateway:     opts.Gateway,
		logger:      logger,
		newID:       newID,
		defaults:    defaults,
		saveTimeout: saveTimeout,
		subs:        map[int]func(Event){},
	}
	s.install(defaults.Clone())
	s.saver = debounce.New(debounceDelay, s.saveFromTimer)
	return s
}

// DefaultState is the first-run dashboard: a single welcome tile.
func DefaultState() model.LayoutState {
	return model.LayoutState{
		Layout: layout.Leaf{ID: "welcomeTile"},
		TileSettings: map[string]model.TileSettings{
			"welcomeTile": {ViewType: model.ViewWelcome, API: "", AdditionalSettings: map[string]any{}},
		},
		TitleMap: map[string]string{"welcomeTile": "Welcome view"},
	}
}

// install replaces the whole triple. Caller holds mu or owns s exclusively.
func (s *Store) install(st model.LayoutState) {
	s.layout = st.Layout
	s.registry = tiles.FromMaps(st.TileSettings, st.TitleMap)
}

// Hydrate loads persisted state once. Load failures and missing state keep the
// current (default) state. Either way the store is hydrated afterwards and
// later mutations are persisted.
func (s *Store) Hydrate(ctx context.Context) {
	s.mu.Lock()
	if s.hydrated || s.hydrating {
		s.mu.Unlock()
		return
	}
	s.hydrating = true
	s.mu.Unlock()

	var loaded *model.LayoutState
	var loadErr error
	if s.gateway != nil {
		loaded, loadErr = s.gateway.Load(ctx)
	}

	s.mu.Lock()
	if loadErr == nil && loaded != nil {
		s.install(loaded.Clone())
	}
	s.hydrated = true
	s.hydrating = false
	s.mu.Unlock()

	switch {
	case loadErr != nil:
		s.logger.Warn("failed to load layout; using defaults", "err", loadErr)
		s.publish(Event{Kind: EventLoadFailed, Err: loadErr})
	case loaded == nil:
		s.logger.Debug("no saved layout; using defaults")
	default:
		if missing, extra := loaded.Orphans(); len(missing) > 0 || len(extra) > 0 {
			s.logger.Warn("saved layout and tile settings disagree", "leavesWithoutSettings", missing, "settingsWithoutLeaf", extra)
		}
		s.logger.Debug("hydrated layout", "tiles", len(loaded.TileSettings))
	}
	s.publish(Event{Kind: EventHydrated})
	s.publish(Event{Kind: EventChanged})
}

func (s *Store) Hydrated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hydrated
}

// changed notifies subscribers of an accepted mutation and, once hydrated,
// restarts the save countdown.
func (s *Store) changed() {
	s.mu.Lock()
	hydrated := s.hydrated
	s.mu.Unlock()
	if hydrated && s.gateway != nil {
		s.saver.Schedule()
	}
	s.publish(Event{Kind: EventChanged})
}

// PersistState reports where the save cycle is: idle, pending or running.
func (s *Store) PersistState() debounce.State {
	return s.saver.State()
}

func (s *Store) saveFromTimer() {
	s.setSaveErr(s.save())
}

func (s *Store) save() error {
	if s.gateway == nil {
		return nil
	}
	st := s.State()
	ctx, cancel := context.WithTimeout(context.Background(), s.saveTimeout)
	defer cancel()
	if err := s.gateway.Save(ctx, st); err != nil {
		s.logger.Error("error saving layout state", "err", err)
		s.publish(Event{Kind: EventSaveFailed, Err: err})
		return err
	}
	s.logger.Debug("saved layout state", "tiles", len(st.TileSettings))
	s.publish(Event{Kind: EventSaved})
	return nil
}

func (s *Store) setSaveErr(err error) {
	s.mu.Lock()
	s.saveErr = err
	s.mu.Unlock()
}

// Flush writes a pending save now instead of waiting for the timer. It returns
// the save error, if the flushed save failed.
func (s *Store) Flush() error {
	s.setSaveErr(nil)
	if !s.saver.Flush() {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveErr
}
